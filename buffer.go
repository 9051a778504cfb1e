package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// bufferCapacity bounds one encoded SNMP message. SNMP messages travel in
// a single UDP datagram, practically well under a negotiated msgMaxSize,
// so a fixed 4 KiB arena is ample headroom over any realistic PDU.
const bufferCapacity = 4096

// Buffer is a fixed-capacity, stack-discipline byte arena. Content is
// appended from the high end of the backing array toward the low end,
// which lets tag/length/value triplets be written without ever
// back-patching a length prefix: the length of a just-written child is
// always known by the time its wrapping tag is pushed. Data() returns
// the contiguous suffix holding everything written so far.
type Buffer struct {
	pos      int
	bookmark int
	data     [bufferCapacity]byte
}

// Reset rewinds the buffer to empty, ready for reuse.
func (b *Buffer) Reset() {
	b.pos = bufferCapacity
	b.bookmark = 0
}

// Free returns the number of unused bytes at the low end of the arena.
func (b *Buffer) Free() int { return b.pos }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return bufferCapacity - b.pos }

// IsEmpty reports whether nothing has been written.
func (b *Buffer) IsEmpty() bool { return b.pos == bufferCapacity }

// IsFull reports whether the arena has no room left.
func (b *Buffer) IsFull() bool { return b.pos == 0 }

// Data returns the written bytes in forward (wire) order.
func (b *Buffer) Data() []byte { return b.data[b.pos:] }

// DataMut returns a mutable view over the written bytes, used by the
// USM authentication pass to patch the MAC in place after encoding.
func (b *Buffer) DataMut() []byte { return b.data[b.pos:] }

// SetBookmark records an absolute position delta bytes ahead of the
// current write position. Because the buffer grows backward, everything
// written after the call shifts the bookmark's offset within Data()
// predictably while its absolute position stays fixed — which is what
// lets the USM signing pass find the auth-parameters placeholder again
// after the rest of the message has been serialized around it.
func (b *Buffer) SetBookmark(delta int) {
	b.bookmark = b.pos + delta
}

// GetBookmark returns the bookmark's current offset within Data().
func (b *Buffer) GetBookmark() int {
	return b.bookmark - b.pos
}

func (b *Buffer) ensureSize(n int) error {
	if b.pos < n {
		return newErr(KindOutOfBuffer, "")
	}
	return nil
}

// Skip reserves n bytes without writing them, used by the privacy layer
// to leave room for a plaintext block that is filled in afterward.
func (b *Buffer) Skip(n int) error {
	if err := b.ensureSize(n); err != nil {
		return err
	}
	b.pos -= n
	return nil
}

// Fill writes count copies of v starting at offset bytes into Data().
func (b *Buffer) Fill(offset int, v byte, count int) error {
	if offset < 0 || offset+count > b.Len() {
		return newErr(KindOutOfBuffer, "fill out of range")
	}
	d := b.Data()
	for i := 0; i < count; i++ {
		d[offset+i] = v
	}
	return nil
}

// PushU8 prepends a single byte.
func (b *Buffer) PushU8(v byte) error {
	if b.IsFull() {
		return newErr(KindOutOfBuffer, "")
	}
	b.pos--
	b.data[b.pos] = v
	return nil
}

// Push prepends chunk verbatim, preserving its internal byte order.
func (b *Buffer) Push(chunk []byte) error {
	if err := b.ensureSize(len(chunk)); err != nil {
		return err
	}
	b.pos -= len(chunk)
	copy(b.data[b.pos:], chunk)
	return nil
}

// pushLength prepends the BER length encoding of n: short form under
// 128, otherwise long form with a 1- or 2-byte big-endian count. Lengths
// at or above 65536 are out of scope — no SNMP message reaches that size
// inside a single UDP datagram.
func (b *Buffer) pushLength(n int) error {
	switch {
	case n < 0:
		return newErr(KindOutOfBuffer, "negative length")
	case n < 128:
		return b.PushU8(byte(n))
	case n < 256:
		if err := b.PushU8(byte(n)); err != nil {
			return err
		}
		return b.PushU8(0x81)
	case n < 65536:
		if err := b.PushU8(byte(n)); err != nil {
			return err
		}
		if err := b.PushU8(byte(n >> 8)); err != nil {
			return err
		}
		return b.PushU8(0x82)
	default:
		return newErr(KindOutOfBuffer, "length too large for a single datagram")
	}
}

// PushTagLen prepends a tag/length header for length bytes of content
// that have already been pushed. Callers remember Len() before encoding
// a sequence's children, encode them (which pushes them in reverse
// order, since each Push prepends), then call PushTagLen once with the
// delta to wrap them.
func (b *Buffer) PushTagLen(tag byte, length int) error {
	if err := b.pushLength(length); err != nil {
		return err
	}
	return b.PushU8(tag)
}

// PushTagged prepends a complete tag/length/value triplet for a
// self-contained value.
func (b *Buffer) PushTagged(tag byte, value []byte) error {
	if err := b.Push(value); err != nil {
		return err
	}
	return b.PushTagLen(tag, len(value))
}
