package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// VarBind pairs an OID with the value bound to it. Values returned from
// decoding borrow from the receive buffer for as long as the containing
// PDU does.
type VarBind struct {
	Oid   ObjectID
	Value Value
}

// decodeVarBind decodes one SEQUENCE { name OBJECT IDENTIFIER, value ANY }.
// The name may arrive as a RELATIVE-OID (tag 13) to save bytes; when it
// does, prevOid must hold the previously decoded absolute OID in the
// same response, and the relative form is normalized against it. A
// leading relative OID (prevOid absent) is a decode error.
func decodeVarBind(data []byte, prevOid *ObjectID) (vb VarBind, rest []byte, err error) {
	content, rest, err := decodeSequence(data)
	if err != nil {
		return VarBind{}, nil, err
	}

	h, err := parseHeader(content)
	if err != nil {
		return VarBind{}, nil, err
	}

	var oid ObjectID
	var afterOid []byte
	if h.class == ClassUniversal && h.tag == tagRelativeOID {
		if prevOid == nil {
			return VarBind{}, nil, newErr(KindInvalidPdu, "leading relative OID in response")
		}
		rel, rest2, err := decodeRelativeOID(content)
		if err != nil {
			return VarBind{}, nil, err
		}
		oid = rel.Normalize(*prevOid)
		afterOid = rest2
	} else {
		oid, afterOid, err = decodeObjectID(content)
		if err != nil {
			return VarBind{}, nil, err
		}
	}

	value, tail, err := decodeValue(afterOid)
	if err != nil {
		return VarBind{}, nil, err
	}
	if len(tail) != 0 {
		return VarBind{}, nil, newErr(KindTrailingData, "varbind has trailing content")
	}
	return VarBind{Oid: oid, Value: value}, rest, nil
}

// encodeVarBind pushes SEQUENCE { name, value }. encodePdu uses it for
// every varbind, request and response alike.
func encodeVarBind(buf *Buffer, vb VarBind) error {
	mark := beginSequence(buf)
	if err := encodeValue(buf, vb.Value); err != nil {
		return err
	}
	if err := encodeObjectID(buf, vb.Oid); err != nil {
		return err
	}
	return endSequence(buf, mark)
}

// encodeNullVarBind pushes SEQUENCE { name, NULL }, the varbind shape
// Get-family requests carry for the OIDs to fetch. encodePdu produces
// the same bytes through encodeVarBind with a NULL-valued VarBind.
func encodeNullVarBind(buf *Buffer, oid ObjectID) error {
	mark := beginSequence(buf)
	if err := encodeNull(buf); err != nil {
		return err
	}
	if err := encodeObjectID(buf, oid); err != nil {
		return err
	}
	return endSequence(buf, mark)
}
