package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Class is the ASN.1 tag class encoded in the top two bits of the
// identifier octet.
type Class byte

// The four BER tag classes.
const (
	ClassUniversal   Class = 0
	ClassApplication Class = 1
	ClassContext     Class = 2
	ClassPrivate     Class = 3
)

// Universal BER tags used by SNMP.
const (
	tagBoolean          = 1
	tagInteger          = 2
	tagOctetString      = 4
	tagNull             = 5
	tagObjectIdentifier = 6
	tagObjectDescriptor = 7
	tagReal             = 9
	tagRelativeOID      = 13
	tagSequence         = 16
)

// Application-class tags (RFC 2578 §7), used for the SNMP-specific
// scalar types carried in a varbind value.
const (
	tagIPAddress  = 0
	tagCounter32  = 1
	tagGauge32    = 2
	tagTimeTicks  = 3
	tagOpaque     = 4
	tagCounter64  = 6
	tagUInteger32 = 7
)

// Context-class primitive tags used inside a GetResponse varbind to
// signal an exceptional value instead of real data.
const (
	tagNoSuchObject   = 0
	tagNoSuchInstance = 1
	tagEndOfMibView   = 2
)

// PDU dispatch tags: the context-class constructed tag on the outer
// option of a message's payload.
const (
	pduGetRequest     = 0
	pduGetNextRequest = 1
	pduGetResponse    = 2
	pduSetRequest     = 3
	pduTrap           = 4
	pduGetBulkRequest = 5
	pduInformRequest  = 6
	pduSNMPv2Trap     = 7
	pduReport         = 8
)

// header is a parsed BER identifier + length octet sequence.
type header struct {
	class       Class
	constructed bool
	tag         int
	length      int
	headerLen   int
}

// parseHeader consumes identifier octet(s) and a length field from data,
// per X.690 §8.1. A multi-byte tag is used when the low 5 bits of the
// first octet are all set; sub-identifier-style base-128 continuation
// bytes follow. Length is short-form (high bit clear) or long-form
// (0x8n followed by n big-endian bytes, n <= 2 — larger lengths cannot
// occur inside one UDP datagram).
func parseHeader(data []byte) (header, error) {
	if len(data) < 2 {
		return header{}, newErr(KindIncomplete, "short header")
	}
	var h header
	ident := data[0]
	h.class = Class(ident >> 6)
	h.constructed = ident&0x20 != 0
	pos := 1
	tagNum := int(ident & 0x1f)
	if tagNum == 0x1f {
		tagNum = 0
		for {
			if pos >= len(data) {
				return header{}, newErr(KindIncomplete, "truncated multi-byte tag")
			}
			b := data[pos]
			tagNum = (tagNum << 7) | int(b&0x7f)
			pos++
			if b&0x80 == 0 {
				break
			}
		}
	}
	h.tag = tagNum

	if pos >= len(data) {
		return header{}, newErr(KindIncomplete, "missing length octet")
	}
	lb := data[pos]
	pos++
	switch {
	case lb&0x80 == 0:
		h.length = int(lb)
	case lb == 0x81:
		if pos >= len(data) {
			return header{}, newErr(KindIncomplete, "truncated long length")
		}
		h.length = int(data[pos])
		pos++
	case lb == 0x82:
		if pos+1 >= len(data) {
			return header{}, newErr(KindIncomplete, "truncated long length")
		}
		h.length = int(data[pos])<<8 | int(data[pos+1])
		pos += 2
	default:
		return header{}, newErr(KindInvalidTagFormat, "unsupported length form")
	}
	h.headerLen = pos
	if len(data) < pos+h.length {
		return header{}, newErr(KindIncomplete, "header declares more content than available")
	}
	return h, nil
}

// consume splits data into (content, rest) per a successfully parsed
// header.
func (h header) consume(data []byte) (content, rest []byte) {
	content = data[h.headerLen : h.headerLen+h.length]
	rest = data[h.headerLen+h.length:]
	return
}

// decodeSequence validates that data begins with a constructed SEQUENCE
// and returns its content and the bytes following it.
func decodeSequence(data []byte) (content, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagSequence {
		return nil, nil, newErr(KindUnexpectedTag, "expected SEQUENCE")
	}
	if !h.constructed {
		return nil, nil, newErr(KindInvalidTagFormat, "SEQUENCE must be constructed")
	}
	content, rest = h.consume(data)
	return
}

// decodeOption parses a constructed header whose class is Context or
// Universal (used for PDU dispatch on the outer option of a message),
// returning the tag number and the content slice.
func decodeOption(data []byte) (tag int, content, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return 0, nil, nil, err
	}
	if h.class != ClassContext && h.class != ClassUniversal {
		return 0, nil, nil, newErr(KindInvalidTagFormat, "expected context or universal class")
	}
	if !h.constructed {
		return 0, nil, nil, newErr(KindInvalidTagFormat, "expected constructed option")
	}
	content, rest = h.consume(data)
	return h.tag, content, rest, nil
}

// beginSequence remembers the buffer length before children are pushed,
// so the caller can later compute the content length for PushTagLen.
func beginSequence(buf *Buffer) int {
	return buf.Len()
}

// endSequence wraps everything pushed since mark in a SEQUENCE header.
func endSequence(buf *Buffer, mark int) error {
	return buf.PushTagLen(byte(tagSequence)|0x20, buf.Len()-mark)
}
