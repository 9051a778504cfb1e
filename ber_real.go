package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"math"
	"strconv"
	"strings"
)

// decodeRealContent implements X.690 §8.5: the binary form (sign, base,
// exponent, mantissa), the ISO 6093 decimal forms (NR1/NR2/NR3), and
// the four special values. Zero-length content decodes as +0. Per
// SPEC_FULL.md's resolution of the REAL open question, scale 0 is
// accepted and simply multiplies by 1 rather than being rejected.
func decodeRealContent(content []byte) (float64, error) {
	if len(content) == 0 {
		return 0, nil
	}
	first := content[0]
	switch {
	case first&0x80 != 0:
		return decodeRealBinary(content)
	case first&0xc0 == 0x40:
		return decodeRealSpecial(first)
	default:
		return decodeRealDecimal(content)
	}
}

func decodeRealBinary(content []byte) (float64, error) {
	first := content[0]
	sign := 1.0
	if first&0x40 != 0 {
		sign = -1.0
	}
	var base float64
	switch (first >> 4) & 0x3 {
	case 0:
		base = 2
	case 1:
		base = 8
	case 2:
		base = 16
	default:
		return 0, newErr(KindInvalidData, "reserved REAL base")
	}
	scale := int((first >> 2) & 0x3)
	pos := 1
	var expLen int
	switch first & 0x3 {
	case 0:
		expLen = 1
	case 1:
		expLen = 2
	case 2:
		expLen = 3
	default:
		if pos >= len(content) {
			return 0, newErr(KindIncomplete, "REAL exponent length octet missing")
		}
		expLen = int(content[pos])
		pos++
	}
	if pos+expLen > len(content) {
		return 0, newErr(KindIncomplete, "REAL exponent truncated")
	}
	exponent := decodeSignedInt(content[pos : pos+expLen])
	pos += expLen
	mantissa := decodeUnsignedInt(content[pos:])
	value := sign * float64(mantissa) * math.Pow(2, float64(scale)) * math.Pow(base, float64(exponent))
	return value, nil
}

func decodeRealSpecial(first byte) (float64, error) {
	switch first {
	case 0x40:
		return math.Inf(1), nil
	case 0x41:
		return math.Inf(-1), nil
	case 0x42:
		return math.NaN(), nil
	case 0x43:
		return math.Copysign(0, -1), nil
	default:
		return 0, newErr(KindInvalidData, "unknown REAL special value")
	}
}

func decodeRealDecimal(content []byte) (float64, error) {
	s := strings.TrimSpace(string(content[1:]))
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, wrapErr(KindInvalidData, "REAL decimal form", err)
	}
	return v, nil
}

// encodeRealContent produces the X.690 binary form with base 2 and
// scale 0, using the minimal mantissa/exponent pair for v.
func encodeRealContent(v float64) []byte {
	switch {
	case v == 0:
		if math.Signbit(v) {
			return []byte{0x43}
		}
		return nil
	case math.IsInf(v, 1):
		return []byte{0x40}
	case math.IsInf(v, -1):
		return []byte{0x41}
	case math.IsNaN(v):
		return []byte{0x42}
	}
	sign := byte(0)
	av := v
	if v < 0 {
		sign = 0x40
		av = -v
	}
	mant, exp := math.Frexp(av) // av == mant * 2**exp, 0.5 <= mant < 1
	mantInt := uint64(mant * (1 << 53))
	exp -= 53
	for mantInt != 0 && mantInt&1 == 0 {
		mantInt >>= 1
		exp++
	}
	mBytes := encodeUnsignedMinimal(mantInt)
	eBytes := encodeSignedInt(int64(exp))

	first := byte(0x80) | sign
	var content []byte
	switch len(eBytes) {
	case 1:
		content = append(content, first)
	case 2:
		content = append(content, first|0x01)
	case 3:
		content = append(content, first|0x02)
	default:
		content = append(content, first|0x03, byte(len(eBytes)))
	}
	content = append(content, eBytes...)
	content = append(content, mBytes...)
	return content
}

// encodeUnsignedMinimal trims v to its minimal big-endian byte length,
// used only for the REAL mantissa which never needs a sign-guard byte.
func encodeUnsignedMinimal(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var buf []byte
	for v > 0 {
		buf = append([]byte{byte(v)}, buf...)
		v >>= 8
	}
	return buf
}

func decodeReal(data []byte) (value float64, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return 0, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagReal {
		return 0, nil, newErr(KindUnexpectedTag, "expected REAL")
	}
	if h.constructed {
		return 0, nil, newErr(KindInvalidTagFormat, "REAL must be primitive")
	}
	content, rest := h.consume(data)
	value, err = decodeRealContent(content)
	return value, rest, err
}

func encodeReal(buf *Buffer, v float64) error {
	return buf.PushTagged(byte(tagReal), encodeRealContent(v))
}
