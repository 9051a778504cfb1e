package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "fmt"

// IPAddress is the 4-byte SNMP IpAddress application type.
type IPAddress [4]byte

func (a IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

func decodeApplication(data []byte, tag int) (content, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if h.class != ClassApplication || h.tag != tag {
		return nil, nil, newErr(KindUnexpectedTag, "expected application tag")
	}
	if h.constructed {
		return nil, nil, newErr(KindInvalidTagFormat, "application type must be primitive")
	}
	content, rest = h.consume(data)
	return
}

func decodeIPAddress(data []byte) (value IPAddress, rest []byte, err error) {
	content, rest, err := decodeApplication(data, tagIPAddress)
	if err != nil {
		return IPAddress{}, nil, err
	}
	if len(content) != 4 {
		return IPAddress{}, nil, newErr(KindInvalidData, "IpAddress must be 4 octets")
	}
	copy(value[:], content)
	return value, rest, nil
}

func encodeIPAddress(buf *Buffer, v IPAddress) error {
	return buf.PushTagged(byte(tagIPAddress)|0x40, v[:])
}

// decodeUnsignedApplication decodes a 1-5 octet unsigned big-endian
// value from the given application tag, used by Counter32, Gauge32,
// TimeTicks, and UInteger32.
func decodeUnsignedApplication(data []byte, tag int) (value uint32, rest []byte, err error) {
	content, rest, err := decodeApplication(data, tag)
	if err != nil {
		return 0, nil, err
	}
	if len(content) == 0 || len(content) > 5 {
		return 0, nil, newErr(KindInvalidData, "unsigned application value out of range")
	}
	return uint32(decodeUnsignedInt(content)), rest, nil
}

func encodeUnsignedApplication(buf *Buffer, tag int, v uint32) error {
	return buf.PushTagged(byte(tag)|0x40, encodeUnsignedInt(uint64(v)))
}

func decodeCounter32(data []byte) (uint32, []byte, error) {
	return decodeUnsignedApplication(data, tagCounter32)
}

func decodeGauge32(data []byte) (uint32, []byte, error) {
	return decodeUnsignedApplication(data, tagGauge32)
}

func decodeTimeTicks(data []byte) (uint32, []byte, error) {
	return decodeUnsignedApplication(data, tagTimeTicks)
}

func decodeUInteger32(data []byte) (uint32, []byte, error) {
	return decodeUnsignedApplication(data, tagUInteger32)
}

// decodeCounter64 decodes a 1-9 octet unsigned big-endian value.
func decodeCounter64(data []byte) (value uint64, rest []byte, err error) {
	content, rest, err := decodeApplication(data, tagCounter64)
	if err != nil {
		return 0, nil, err
	}
	if len(content) == 0 || len(content) > 9 {
		return 0, nil, newErr(KindInvalidData, "Counter64 out of range")
	}
	return decodeUnsignedInt(content), rest, nil
}

func encodeCounter64(buf *Buffer, v uint64) error {
	return buf.PushTagged(byte(tagCounter64)|0x40, encodeUnsignedInt(v))
}

func decodeOpaque(data []byte) (value, rest []byte, err error) {
	return decodeApplication(data, tagOpaque)
}

func encodeOpaque(buf *Buffer, v []byte) error {
	return buf.PushTagged(byte(tagOpaque)|0x40, v)
}

func decodeObjectDescriptor(data []byte) (value, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagObjectDescriptor {
		return nil, nil, newErr(KindUnexpectedTag, "expected ObjectDescriptor")
	}
	if h.constructed {
		return nil, nil, newErr(KindInvalidTagFormat, "ObjectDescriptor must be primitive")
	}
	value, rest = h.consume(data)
	return
}

func encodeObjectDescriptor(buf *Buffer, v []byte) error {
	return buf.PushTagged(byte(tagObjectDescriptor), v)
}
