package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// decodeContextPrimitive validates a context-class primitive header
// with the given tag, used for the three exceptional varbind values
// that a GetResponse (never a request) may carry in place of real data.
func decodeContextPrimitive(data []byte, tag int) (rest []byte, err error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.class != ClassContext || h.tag != tag {
		return nil, newErr(KindUnexpectedTag, "expected context primitive")
	}
	if h.constructed {
		return nil, newErr(KindInvalidTagFormat, "context exception value must be primitive")
	}
	_, rest = h.consume(data)
	return rest, nil
}

func encodeContextPrimitive(buf *Buffer, tag int) error {
	return buf.PushTagged(byte(tag)|0x80, nil)
}
