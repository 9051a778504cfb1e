package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "context"

// Get fetches a single OID. It returns ok=false with a nil error when
// the response carries no variable bindings, and a KindNoSuchInstance
// error when the agent answers with NoSuchObject, NoSuchInstance, or
// EndOfMibView.
func (s *Session) Get(ctx context.Context, oid ObjectID) (value Value, ok bool, err error) {
	if err := s.SendGet(oid); err != nil {
		return Value{}, false, err
	}
	return s.ReceiveGet()
}

// SendGet issues the async-send half of Get.
func (s *Session) SendGet(oid ObjectID) error {
	return s.send(newRequestPdu(PDUGetRequest, 0, []ObjectID{oid}))
}

// ReceiveGet issues the async-receive half of Get.
func (s *Session) ReceiveGet() (value Value, ok bool, err error) {
	pdu, err := s.receive()
	if err != nil {
		return Value{}, false, err
	}
	if pdu.Variant == PDUReport {
		return Value{}, false, newErr(KindAuthenticationFailed, "received report PDU")
	}
	if len(pdu.Vars) == 0 {
		return Value{}, false, nil
	}
	vb := pdu.Vars[0]
	if vb.Value.IsExceptional() {
		return Value{}, false, newErr(KindNoSuchInstance, "")
	}
	return vb.Value, true, nil
}
