package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, 128, -128, -129, 255, 256, 65535, -65536, 1 << 30, -(1 << 30)}
	for _, v := range cases {
		var buf Buffer
		buf.Reset()
		require.NoError(t, encodeInteger(&buf, v))
		got, rest, err := decodeInteger(buf.Data())
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, v, got)
	}
}

func TestIntegerShortestForm(t *testing.T) {
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeInteger(&buf, 0))
	require.Equal(t, []byte{0x02, 0x01, 0x00}, buf.Data())

	buf.Reset()
	require.NoError(t, encodeInteger(&buf, 128))
	require.Equal(t, []byte{0x02, 0x02, 0x00, 0x80}, buf.Data())
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		var buf Buffer
		buf.Reset()
		require.NoError(t, encodeBoolean(&buf, v))
		got, rest, err := decodeBoolean(buf.Data())
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, v, got)
	}
}

func TestNullRoundTrip(t *testing.T) {
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeNull(&buf))
	require.Equal(t, []byte{0x05, 0x00}, buf.Data())
	rest, err := decodeNull(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
}

func TestOctetStringRoundTrip(t *testing.T) {
	want := []byte("Gufo SNMP Test")
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeOctetString(&buf, want))
	got, rest, err := decodeOctetString(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, want, got)
}

func TestOctetStringEmpty(t *testing.T) {
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeOctetString(&buf, nil))
	require.Equal(t, []byte{0x04, 0x00}, buf.Data())
}

func TestDecodeRejectsWrongTag(t *testing.T) {
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeInteger(&buf, 1))
	_, _, err := decodeBoolean(buf.Data())
	require.Error(t, err)
	var snmpErr *Error
	require.ErrorAs(t, err, &snmpErr)
	require.Equal(t, KindUnexpectedTag, snmpErr.Kind)
}

func TestDecodeIncompleteHeader(t *testing.T) {
	_, _, err := decodeInteger([]byte{0x02})
	require.Error(t, err)
	var snmpErr *Error
	require.ErrorAs(t, err, &snmpErr)
	require.Equal(t, KindIncomplete, snmpErr.Kind)
}

func TestSequenceRoundTrip(t *testing.T) {
	var buf Buffer
	buf.Reset()
	mark := beginSequence(&buf)
	require.NoError(t, encodeInteger(&buf, 7))
	require.NoError(t, encodeOctetString(&buf, []byte("x")))
	require.NoError(t, endSequence(&buf, mark))

	content, rest, err := decodeSequence(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)

	s, content, err := decodeOctetString(content)
	require.NoError(t, err)
	require.Equal(t, []byte("x"), s)
	v, content, err := decodeInteger(content)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
	require.Empty(t, content)
}

func TestIPAddressRoundTrip(t *testing.T) {
	want := IPAddress{192, 0, 2, 1}
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeIPAddress(&buf, want))
	got, rest, err := decodeIPAddress(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, want, got)
	require.Equal(t, "192.0.2.1", got.String())
}

func TestCounter64RoundTrip(t *testing.T) {
	want := uint64(1) << 40
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeCounter64(&buf, want))
	got, rest, err := decodeCounter64(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, want, got)
}

func TestUnsignedApplicationRoundTrip(t *testing.T) {
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeUnsignedApplication(&buf, tagCounter32, 0xFFFFFFFF))
	got, rest, err := decodeCounter32(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, uint32(0xFFFFFFFF), got)
}

func TestOpaqueRoundTrip(t *testing.T) {
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeOpaque(&buf, want))
	got, rest, err := decodeOpaque(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, want, got)
}
