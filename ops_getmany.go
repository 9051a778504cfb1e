package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "context"

// GetMany fetches several OIDs in one request, returning a mapping from
// the dotted-decimal OID string to its value. Entries whose value is
// NoSuchObject, NoSuchInstance, EndOfMibView, or Null are omitted.
func (s *Session) GetMany(ctx context.Context, oids []ObjectID) (map[string]Value, error) {
	if err := s.SendGetMany(oids); err != nil {
		return nil, err
	}
	return s.ReceiveGetMany()
}

func (s *Session) SendGetMany(oids []ObjectID) error {
	return s.send(newRequestPdu(PDUGetRequest, 0, oids))
}

func (s *Session) ReceiveGetMany() (map[string]Value, error) {
	pdu, err := s.receive()
	if err != nil {
		return nil, err
	}
	if pdu.Variant == PDUReport {
		return nil, newErr(KindAuthenticationFailed, "received report PDU")
	}

	result := make(map[string]Value, len(pdu.Vars))
	for _, vb := range pdu.Vars {
		if vb.Value.IsExceptional() || vb.Value.Kind == ValueNull {
			continue
		}
		result[vb.Oid.String()] = vb.Value
	}
	return result, nil
}
