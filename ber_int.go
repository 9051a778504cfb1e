package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// encodeSignedInt produces the shortest big-endian two's complement
// encoding of v, inserting a leading 0x00 when the high bit of the
// natural encoding would otherwise flip the sign.
func encodeSignedInt(v int64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var buf []byte
	n := v
	for {
		buf = append([]byte{byte(n)}, buf...)
		n >>= 8
		if (n == 0 && buf[0]&0x80 == 0) || (n == -1 && buf[0]&0x80 != 0) {
			break
		}
	}
	return buf
}

// decodeSignedInt reverses encodeSignedInt; empty content decodes as 0.
func decodeSignedInt(content []byte) int64 {
	if len(content) == 0 {
		return 0
	}
	v := int64(int8(content[0]))
	for _, b := range content[1:] {
		v = (v << 8) | int64(b)
	}
	return v
}

// decodeUnsignedInt decodes a big-endian unsigned integer, used by the
// SNMP application tags (Counter32, Gauge32, TimeTicks, UInteger32,
// Counter64) which never carry a sign bit.
func decodeUnsignedInt(content []byte) uint64 {
	var v uint64
	for _, b := range content {
		v = (v << 8) | uint64(b)
	}
	return v
}

// encodeUnsignedInt produces the shortest unsigned big-endian encoding,
// inserting a leading 0x00 when needed to keep the high bit clear (the
// application tags are encoded as non-negative INTEGER-like content).
func encodeUnsignedInt(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var buf []byte
	n := v
	for n > 0 {
		buf = append([]byte{byte(n)}, buf...)
		n >>= 8
	}
	if buf[0]&0x80 != 0 {
		buf = append([]byte{0}, buf...)
	}
	return buf
}

func decodeInteger(data []byte) (value int64, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return 0, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagInteger {
		return 0, nil, newErr(KindUnexpectedTag, "expected INTEGER")
	}
	if h.constructed {
		return 0, nil, newErr(KindInvalidTagFormat, "INTEGER must be primitive")
	}
	content, rest := h.consume(data)
	return decodeSignedInt(content), rest, nil
}

func encodeInteger(buf *Buffer, v int64) error {
	return buf.PushTagged(byte(tagInteger), encodeSignedInt(v))
}

func decodeBoolean(data []byte) (value bool, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return false, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagBoolean {
		return false, nil, newErr(KindUnexpectedTag, "expected BOOLEAN")
	}
	if h.constructed {
		return false, nil, newErr(KindInvalidTagFormat, "BOOLEAN must be primitive")
	}
	if h.length != 1 {
		return false, nil, newErr(KindInvalidData, "BOOLEAN length must be 1")
	}
	content, rest := h.consume(data)
	return content[0] != 0, rest, nil
}

func encodeBoolean(buf *Buffer, v bool) error {
	b := byte(0)
	if v {
		b = 0xff
	}
	return buf.PushTagged(byte(tagBoolean), []byte{b})
}

func decodeNull(data []byte) (rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.class != ClassUniversal || h.tag != tagNull {
		return nil, newErr(KindUnexpectedTag, "expected NULL")
	}
	if h.constructed {
		return nil, newErr(KindInvalidTagFormat, "NULL must be primitive")
	}
	if h.length != 0 {
		return nil, newErr(KindInvalidData, "NULL length must be 0")
	}
	_, rest = h.consume(data)
	return rest, nil
}

func encodeNull(buf *Buffer) error {
	return buf.PushTagged(byte(tagNull), nil)
}

func decodeOctetString(data []byte) (value, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagOctetString {
		return nil, nil, newErr(KindUnexpectedTag, "expected OCTET STRING")
	}
	if h.constructed {
		return nil, nil, newErr(KindInvalidTagFormat, "OCTET STRING must be primitive")
	}
	value, rest = h.consume(data)
	return value, rest, nil
}

func encodeOctetString(buf *Buffer, v []byte) error {
	return buf.PushTagged(byte(tagOctetString), v)
}
