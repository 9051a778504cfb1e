package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "context"

// GetBulk requests up to maxRepetitions variable bindings starting from
// iter's next OID, returning the prefix of the response that stays
// inside the anchor's subtree. iter advances to the last varbind kept.
func (s *Session) GetBulk(ctx context.Context, iter *WalkIter, maxRepetitions int32) ([]VarBind, error) {
	if err := s.SendGetBulk(iter, maxRepetitions); err != nil {
		return nil, err
	}
	return s.ReceiveGetBulk(iter)
}

func (s *Session) SendGetBulk(iter *WalkIter, maxRepetitions int32) error {
	if iter.Done() {
		return newErr(KindInvalidData, "walk already terminated")
	}
	return s.send(newGetBulkPdu(0, []ObjectID{iter.next}, 0, maxRepetitions))
}

func (s *Session) ReceiveGetBulk(iter *WalkIter) ([]VarBind, error) {
	pdu, err := s.receive()
	if err != nil {
		return nil, err
	}
	if pdu.Variant == PDUReport {
		return nil, newErr(KindAuthenticationFailed, "received report PDU")
	}

	result := make([]VarBind, 0, len(pdu.Vars))
	for _, vb := range pdu.Vars {
		if !iter.setNext(vb.Oid) {
			break
		}
		if vb.Value.Kind == ValueEndOfMibView {
			iter.done = true
			break
		}
		result = append(result, vb)
	}
	return result, nil
}
