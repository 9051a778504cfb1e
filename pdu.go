package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// PDUVariant identifies which of the five supported PDU shapes a Pdu
// holds. Dispatch happens on the context tag of the outer option: 0 =
// GetRequest, 1 = GetNextRequest, 2 = GetResponse, 5 = GetBulkRequest,
// 8 = Report.
type PDUVariant int

const (
	PDUGetRequest PDUVariant = iota
	PDUGetNextRequest
	PDUGetBulkRequest
	PDUGetResponse
	PDUReport
)

func (v PDUVariant) contextTag() int {
	switch v {
	case PDUGetRequest:
		return pduGetRequest
	case PDUGetNextRequest:
		return pduGetNextRequest
	case PDUGetBulkRequest:
		return pduGetBulkRequest
	case PDUGetResponse:
		return pduGetResponse
	case PDUReport:
		return pduReport
	default:
		return -1
	}
}

func pduVariantFromTag(tag int) (PDUVariant, bool) {
	switch tag {
	case pduGetRequest:
		return PDUGetRequest, true
	case pduGetNextRequest:
		return PDUGetNextRequest, true
	case pduGetBulkRequest:
		return PDUGetBulkRequest, true
	case pduGetResponse:
		return PDUGetResponse, true
	case pduReport:
		return PDUReport, true
	default:
		return 0, false
	}
}

// Pdu is the tagged union of GetRequest, GetNextRequest, GetBulkRequest,
// GetResponse, and Report. Get-family requests carry ErrorStatus and
// ErrorIndex as 0 and populate Vars with NULL-valued bindings for the
// OIDs being requested; GetBulkRequest additionally carries
// NonRepeaters and MaxRepetitions in place of ErrorStatus/ErrorIndex.
type Pdu struct {
	Variant        PDUVariant
	RequestID      int32
	ErrorStatus    int32
	ErrorIndex     int32
	NonRepeaters   int32
	MaxRepetitions int32
	Vars           []VarBind
}

// IsResponse reports whether the PDU is one a client would receive
// rather than send.
func (p Pdu) IsResponse() bool {
	return p.Variant == PDUGetResponse || p.Variant == PDUReport
}

// encodePdu pushes the whole PDU: option tag wrapping
// SEQUENCE{requestID, errorStatus/nonRepeaters, errorIndex/maxReps, varbinds}.
func encodePdu(buf *Buffer, p Pdu) error {
	mark := beginSequence(buf)

	vblMark := beginSequence(buf)
	for i := len(p.Vars) - 1; i >= 0; i-- {
		if err := encodeVarBind(buf, p.Vars[i]); err != nil {
			return err
		}
	}
	if err := endSequence(buf, vblMark); err != nil {
		return err
	}

	if p.Variant == PDUGetBulkRequest {
		if err := encodeInteger(buf, int64(p.MaxRepetitions)); err != nil {
			return err
		}
		if err := encodeInteger(buf, int64(p.NonRepeaters)); err != nil {
			return err
		}
	} else {
		if err := encodeInteger(buf, int64(p.ErrorIndex)); err != nil {
			return err
		}
		if err := encodeInteger(buf, int64(p.ErrorStatus)); err != nil {
			return err
		}
	}

	if err := encodeInteger(buf, int64(p.RequestID)); err != nil {
		return err
	}

	return buf.PushTagLen(byte(ClassContext)<<6|0x20|byte(p.Variant.contextTag()), buf.Len()-mark)
}

// newRequestPdu builds a Get/GetNext request over oids, each bound to
// a NULL placeholder value as spec.md §4.4 requires.
func newRequestPdu(variant PDUVariant, requestID int32, oids []ObjectID) Pdu {
	vars := make([]VarBind, len(oids))
	for i, oid := range oids {
		vars[i] = VarBind{Oid: oid, Value: NewNullValue()}
	}
	return Pdu{Variant: variant, RequestID: requestID, Vars: vars}
}

func newGetBulkPdu(requestID int32, oids []ObjectID, nonRepeaters, maxRepetitions int32) Pdu {
	p := newRequestPdu(PDUGetBulkRequest, requestID, oids)
	p.NonRepeaters = nonRepeaters
	p.MaxRepetitions = maxRepetitions
	return p
}

// decodePdu parses the option-wrapped PDU structure; data must begin at
// the outer context option.
func decodePdu(data []byte) (p Pdu, rest []byte, err error) {
	tag, content, rest, err := decodeOption(data)
	if err != nil {
		return Pdu{}, nil, err
	}
	variant, ok := pduVariantFromTag(tag)
	if !ok {
		return Pdu{}, nil, newErr(KindUnknownPdu, "unrecognized PDU context tag")
	}

	requestID, content, err := decodeInteger(content)
	if err != nil {
		return Pdu{}, nil, err
	}
	p.Variant = variant
	p.RequestID = int32(requestID)

	if variant == PDUGetBulkRequest {
		nonRep, c2, err := decodeInteger(content)
		if err != nil {
			return Pdu{}, nil, err
		}
		maxRep, c3, err := decodeInteger(c2)
		if err != nil {
			return Pdu{}, nil, err
		}
		p.NonRepeaters = int32(nonRep)
		p.MaxRepetitions = int32(maxRep)
		content = c3
	} else {
		errStatus, c2, err := decodeInteger(content)
		if err != nil {
			return Pdu{}, nil, err
		}
		errIndex, c3, err := decodeInteger(c2)
		if err != nil {
			return Pdu{}, nil, err
		}
		p.ErrorStatus = int32(errStatus)
		p.ErrorIndex = int32(errIndex)
		content = c3
	}

	vblContent, vblRest, err := decodeSequence(content)
	if err != nil {
		return Pdu{}, nil, err
	}
	if len(vblRest) != 0 {
		return Pdu{}, nil, newErr(KindTrailingData, "bytes after variable-binding list")
	}

	var vars []VarBind
	var prevOid *ObjectID
	remaining := vblContent
	for len(remaining) > 0 {
		vb, next, err := decodeVarBind(remaining, prevOid)
		if err != nil {
			return Pdu{}, nil, err
		}
		vars = append(vars, vb)
		prevOid = &vb.Oid
		remaining = next
	}
	p.Vars = vars

	return p, rest, nil
}
