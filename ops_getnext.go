package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "context"

// GetNext advances iter by one step. ok is false once the walk has
// terminated, either because the agent returned EndOfMibView or because
// the returned OID left the cursor's anchor subtree; iter remembers
// that and refuses further requests.
func (s *Session) GetNext(ctx context.Context, iter *WalkIter) (oid ObjectID, value Value, ok bool, err error) {
	if err := s.SendGetNext(iter); err != nil {
		return ObjectID{}, Value{}, false, err
	}
	return s.ReceiveGetNext(iter)
}

func (s *Session) SendGetNext(iter *WalkIter) error {
	if iter.Done() {
		return newErr(KindInvalidData, "walk already terminated")
	}
	return s.send(newRequestPdu(PDUGetNextRequest, 0, []ObjectID{iter.next}))
}

func (s *Session) ReceiveGetNext(iter *WalkIter) (oid ObjectID, value Value, ok bool, err error) {
	pdu, err := s.receive()
	if err != nil {
		return ObjectID{}, Value{}, false, err
	}
	if pdu.Variant == PDUReport {
		return ObjectID{}, Value{}, false, newErr(KindAuthenticationFailed, "received report PDU")
	}
	if len(pdu.Vars) == 0 {
		iter.done = true
		return ObjectID{}, Value{}, false, nil
	}

	vb := pdu.Vars[0]
	if !iter.setNext(vb.Oid) {
		return ObjectID{}, Value{}, false, nil
	}
	if vb.Value.Kind == ValueEndOfMibView {
		iter.done = true
		return ObjectID{}, Value{}, false, nil
	}
	return vb.Oid, vb.Value, true, nil
}
