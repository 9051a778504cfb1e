package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ObjectID is a BER-encoded OBJECT IDENTIFIER, stored as its content
// octets only (no tag/length). Values returned from decoding a
// datagram borrow directly from the receive buffer; callers that need
// to keep one past the buffer's lifetime should copy it with Clone.
type ObjectID struct {
	raw []byte
}

// NewObjectID wraps already-encoded content octets. The caller attests
// that raw is a valid BER OID body.
func NewObjectID(raw []byte) ObjectID { return ObjectID{raw: raw} }

// Bytes returns the raw content octets.
func (o ObjectID) Bytes() []byte { return o.raw }

// Clone copies the content octets so the value outlives a borrowed
// receive buffer.
func (o ObjectID) Clone() ObjectID {
	cp := make([]byte, len(o.raw))
	copy(cp, o.raw)
	return ObjectID{raw: cp}
}

// StartsWith reports whether o's encoded bytes are a prefix of other's.
// Sub-identifier boundaries always fall on continuation-bit transitions,
// so a byte-level prefix check is sufficient and stable under the
// encoding.
func (o ObjectID) StartsWith(other ObjectID) bool {
	return bytes.HasPrefix(other.raw, o.raw)
}

// Equal reports byte-level equality.
func (o ObjectID) Equal(other ObjectID) bool {
	return bytes.Equal(o.raw, other.raw)
}

// subIdentifiers decodes the content octets into their numeric
// sub-identifiers, for String(); not used on any hot decode path.
func (o ObjectID) subIdentifiers() []uint64 {
	if len(o.raw) == 0 {
		return nil
	}
	first := o.raw[0]
	out := make([]uint64, 0, len(o.raw))
	out = append(out, uint64(first/40), uint64(first%40))
	var b uint64
	for _, x := range o.raw[1:] {
		b = (b << 7) | uint64(x&0x7f)
		if x&0x80 == 0 {
			out = append(out, b)
			b = 0
		}
	}
	return out
}

// String renders the OID in dotted-decimal form.
func (o ObjectID) String() string {
	subs := o.subIdentifiers()
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = strconv.FormatUint(s, 10)
	}
	return strings.Join(parts, ".")
}

// ParseOID parses a dotted-decimal OID string such as "1.3.6.1.2.1.1.6.0"
// into its BER content-octet form. The first two sub-identifiers
// collapse into a single 40*a+b octet; a is clamped to at most 6 and b
// to at most 39 when the caller supplies out-of-range values, matching
// the reference decoder's tolerance for malformed dotted strings.
func ParseOID(s string) (ObjectID, error) {
	parts := strings.Split(strings.Trim(s, "."), ".")
	if len(parts) < 2 {
		return ObjectID{}, newErr(KindInvalidData, "OID needs at least two sub-identifiers")
	}
	nums := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return ObjectID{}, wrapErr(KindInvalidData, fmt.Sprintf("OID sub-identifier %q", p), err)
		}
		nums[i] = v
	}
	a, b := nums[0], nums[1]
	if a > 6 {
		a = 6
	}
	if b > 39 {
		b = 39
	}
	raw := []byte{byte(a*40 + b)}
	for _, v := range nums[2:] {
		raw = appendBase128(raw, v)
	}
	return ObjectID{raw: raw}, nil
}

// appendBase128 appends v's base-128 encoding, most significant byte
// first, with the continuation bit set on every byte but the last.
func appendBase128(dst []byte, v uint64) []byte {
	var tmp [10]byte
	i := len(tmp)
	i--
	tmp[i] = byte(v & 0x7f)
	v >>= 7
	for v > 0 {
		i--
		tmp[i] = byte(v&0x7f) | 0x80
		v >>= 7
	}
	return append(dst, tmp[i:]...)
}

func decodeObjectID(data []byte) (value ObjectID, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return ObjectID{}, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagObjectIdentifier {
		return ObjectID{}, nil, newErr(KindUnexpectedTag, "expected OBJECT IDENTIFIER")
	}
	if h.constructed {
		return ObjectID{}, nil, newErr(KindInvalidTagFormat, "OBJECT IDENTIFIER must be primitive")
	}
	content, rest := h.consume(data)
	return ObjectID{raw: content}, rest, nil
}

func encodeObjectID(buf *Buffer, v ObjectID) error {
	return buf.PushTagged(byte(tagObjectIdentifier), v.raw)
}

// RelativeOID is a BER RELATIVE-OID, stored verbatim without the
// 40*a+b collapse OBJECT IDENTIFIER uses for its first octet.
type RelativeOID struct {
	raw []byte
}

// Bytes returns the raw content octets.
func (r RelativeOID) Bytes() []byte { return r.raw }

func decodeRelativeOID(data []byte) (value RelativeOID, rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return RelativeOID{}, nil, err
	}
	if h.class != ClassUniversal || h.tag != tagRelativeOID {
		return RelativeOID{}, nil, newErr(KindUnexpectedTag, "expected RELATIVE-OID")
	}
	if h.constructed {
		return RelativeOID{}, nil, newErr(KindInvalidTagFormat, "RELATIVE-OID must be primitive")
	}
	content, rest := h.consume(data)
	return RelativeOID{raw: content}, rest, nil
}

// subelements counts the sub-identifiers encoded in data: one per byte
// whose continuation bit is clear.
func subelements(data []byte) int {
	n := 0
	for _, c := range data {
		if c&0x80 == 0 {
			n++
		}
	}
	return n
}

// findSubelement returns the byte offset just past the n-th
// sub-identifier boundary in data, or ok=false if data has no bytes
// after its n-th sub-identifier (including when it has fewer than n).
func findSubelement(data []byte, n int) (offset int, ok bool) {
	left := n
	start := 0
	for i, c := range data {
		if left == 0 {
			return start, start < len(data)
		}
		if c&0x80 == 0 {
			left--
			start = i + 1
		}
	}
	return 0, false
}

// Normalize replaces the last len(r) sub-identifiers of base with r's
// sub-identifiers, or replaces base entirely (collapsing r's own first
// two sub-identifiers into the 40*a+b byte) if r has as many or more
// sub-identifiers than base carries beyond its first two.
func (r RelativeOID) Normalize(base ObjectID) ObjectID {
	relSI := subelements(r.raw)
	baseSI := subelements(base.raw[1:]) + 2
	if relSI < baseSI-2 {
		offset, ok := findSubelement(base.raw[1:], baseSI-relSI-2)
		if !ok {
			offset = 0
		}
		offset++
		out := make([]byte, 0, len(base.raw)+len(r.raw))
		out = append(out, base.raw[:offset]...)
		out = append(out, r.raw...)
		return ObjectID{raw: out}
	}
	out := make([]byte, 0, len(r.raw)-1)
	out = append(out, r.raw[0]*40+r.raw[1])
	out = append(out, r.raw[2:]...)
	return ObjectID{raw: out}
}

func encodeRelativeOID(buf *Buffer, v RelativeOID) error {
	return buf.PushTagged(byte(tagRelativeOID), v.raw)
}
