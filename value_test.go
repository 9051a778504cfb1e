package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueRoundTrip(t *testing.T) {
	cases := []Value{
		NewBoolValue(true),
		NewIntValue(-42),
		NewNullValue(),
		NewOctetStringValue([]byte("hello")),
		NewRealValue(3.5),
		NewIPAddressValue(IPAddress{10, 0, 0, 1}),
		NewCounter32Value(4294967295),
		NewGauge32Value(1),
		NewTimeTicksValue(123456),
		NewOpaqueValue([]byte{1, 2, 3}),
		NewCounter64Value(1 << 50),
		NewUInteger32Value(99),
		NewNoSuchObjectValue(),
		NewNoSuchInstanceValue(),
		NewEndOfMibViewValue(),
	}
	for _, v := range cases {
		var buf Buffer
		buf.Reset()
		require.NoError(t, encodeValue(&buf, v))
		got, rest, err := decodeValue(buf.Data())
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, v.Kind, got.Kind)
	}
}

func TestValueOidRoundTrip(t *testing.T) {
	oid, err := ParseOID("1.3.6.1.2.1.1.1.0")
	require.NoError(t, err)
	v := NewOidValue(oid)

	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeValue(&buf, v))
	got, rest, err := decodeValue(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, oid.Equal(got.Oid()))
}

func TestValueIsExceptional(t *testing.T) {
	require.True(t, NewNoSuchObjectValue().IsExceptional())
	require.True(t, NewNoSuchInstanceValue().IsExceptional())
	require.True(t, NewEndOfMibViewValue().IsExceptional())
	require.False(t, NewIntValue(1).IsExceptional())
}

func TestValueString(t *testing.T) {
	require.Equal(t, "42", NewIntValue(42).String())
	require.Equal(t, `"hi"`, NewOctetStringValue([]byte("hi")).String())
	require.Equal(t, "endOfMibView", NewEndOfMibViewValue().String())
}
