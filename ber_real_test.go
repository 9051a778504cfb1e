package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRealBinaryRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 3.5, -3.5, 1e10, -1e10, 0.125}
	for _, v := range cases {
		var buf Buffer
		buf.Reset()
		require.NoError(t, encodeReal(&buf, v))
		got, rest, err := decodeReal(buf.Data())
		require.NoError(t, err)
		require.Empty(t, rest)
		require.InDelta(t, v, got, 1e-9)
	}
}

func TestRealSpecialValues(t *testing.T) {
	var buf Buffer

	buf.Reset()
	require.NoError(t, encodeReal(&buf, math.Inf(1)))
	got, _, err := decodeReal(buf.Data())
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))

	buf.Reset()
	require.NoError(t, encodeReal(&buf, math.Inf(-1)))
	got, _, err = decodeReal(buf.Data())
	require.NoError(t, err)
	require.True(t, math.IsInf(got, -1))

	buf.Reset()
	require.NoError(t, encodeReal(&buf, math.NaN()))
	got, _, err = decodeReal(buf.Data())
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
}

func TestRealEmptyContentIsZero(t *testing.T) {
	got, err := decodeRealContent(nil)
	require.NoError(t, err)
	require.Equal(t, float64(0), got)
}

// TestRealScaleZeroAccepted resolves the spec's open question: scale 0 is a
// valid (if redundant) binary-form exponent multiplier and must decode, not
// error, per original_source's t_real.rs handling.
func TestRealScaleZeroAccepted(t *testing.T) {
	// base=2 (bits 5:4 = 00), scale=0 (bits 3:2 = 00), sign positive,
	// single-octet exponent form (bits 1:0 = 00): first octet 0x80.
	content := []byte{0x80, 0x03, 0x05} // exponent=3, mantissa=5 -> 5 * 2^3 = 40
	v, err := decodeRealContent(content)
	require.NoError(t, err)
	require.Equal(t, float64(40), v)
}
