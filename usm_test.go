package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestUsmParametersRoundTripNoAuthNoPriv(t *testing.T) {
	p := UsmParameters{
		EngineID:    []byte("engine-x"),
		EngineBoots: 3,
		EngineTime:  4,
		UserName:    []byte("bob"),
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeUsmParameters(&buf, p, false, false))

	got, authOffset, rest, err := decodeUsmParameters(buf.Data())
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, "engine-x", string(got.EngineID))
	require.Equal(t, int32(3), got.EngineBoots)
	require.Equal(t, int32(4), got.EngineTime)
	require.Equal(t, "bob", string(got.UserName))
	require.Empty(t, got.AuthenticationParameters)
	require.Empty(t, got.PrivacyParameters)
	require.Greater(t, authOffset, 0)
}

func TestUsmParametersAuthPlaceholderBookmark(t *testing.T) {
	p := UsmParameters{
		EngineID:    []byte("engine-x"),
		EngineBoots: 1,
		EngineTime:  1,
		UserName:    []byte("carol"),
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeUsmParameters(&buf, p, true, false))

	bookmarkOffset := buf.GetBookmark()
	data := buf.Data()
	require.GreaterOrEqual(t, bookmarkOffset, 0)
	require.LessOrEqual(t, bookmarkOffset+macLength, len(data))
	require.Equal(t, make([]byte, macLength), data[bookmarkOffset:bookmarkOffset+macLength])

	got, authOffset, _, err := decodeUsmParameters(data)
	require.NoError(t, err)
	require.Len(t, got.AuthenticationParameters, macLength)
	require.Equal(t, bookmarkOffset, authOffset)
}

func TestUsmParametersRoundTripWithPriv(t *testing.T) {
	p := UsmParameters{
		EngineID:          []byte("engine-y"),
		EngineBoots:       7,
		EngineTime:        8,
		UserName:          []byte("dave"),
		PrivacyParameters: []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeUsmParameters(&buf, p, false, true))

	got, _, _, err := decodeUsmParameters(buf.Data())
	require.NoError(t, err)
	require.Equal(t, p.PrivacyParameters, got.PrivacyParameters)
}

// TestUsmParametersRoundTripStructDiff compares the full decoded struct
// against the encoded input with cmp.Diff rather than field-by-field
// require.Equal calls, catching any field this test forgets to name
// explicitly.
func TestUsmParametersRoundTripStructDiff(t *testing.T) {
	want := UsmParameters{
		EngineID:                 []byte("engine-z"),
		EngineBoots:              11,
		EngineTime:               22,
		UserName:                 []byte("erin"),
		AuthenticationParameters: make([]byte, macLength),
		PrivacyParameters:        []byte{9, 9, 9, 9, 9, 9, 9, 9},
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, encodeUsmParameters(&buf, want, true, true))

	got, _, _, err := decodeUsmParameters(buf.Data())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decodeUsmParameters round trip mismatch (-want +got):\n%s", diff)
	}
}
