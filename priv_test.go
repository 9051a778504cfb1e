package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrivKeyDESRoundTrip(t *testing.T) {
	key, err := NewPrivKey(PrivDES, make([]byte, 16))
	require.NoError(t, err)
	for i := range key.Key {
		key.Key[i] = byte(i + 1)
	}

	plaintext := []byte("this is a scoped pdu payload!!!")
	ciphertext, privParams, err := key.Encrypt(5, 0, plaintext)
	require.NoError(t, err)
	require.Len(t, privParams, 8)
	require.Equal(t, len(plaintext), len(ciphertext))
	require.NotEqual(t, plaintext, ciphertext)

	got, err := key.Decrypt(5, 0, privParams, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestPrivKeyDESPadsToBlockBoundary(t *testing.T) {
	key, err := NewPrivKey(PrivDES, make([]byte, 16))
	require.NoError(t, err)

	plaintext := []byte("short")
	ciphertext, privParams, err := key.Encrypt(1, 0, plaintext)
	require.NoError(t, err)
	require.Equal(t, 8, len(ciphertext))

	got, err := key.Decrypt(1, 0, privParams, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, got[:len(plaintext)])
	require.Equal(t, make([]byte, 3), got[len(plaintext):])
}

func TestPrivKeyDESSaltAdvancesPerCall(t *testing.T) {
	key, err := NewPrivKey(PrivDES, make([]byte, 16))
	require.NoError(t, err)

	plaintext := []byte("01234567")
	_, salt1, err := key.Encrypt(1, 0, plaintext)
	require.NoError(t, err)
	_, salt2, err := key.Encrypt(1, 0, plaintext)
	require.NoError(t, err)
	require.NotEqual(t, salt1, salt2)
}

func TestPrivKeyAES128RoundTrip(t *testing.T) {
	key, err := NewPrivKey(PrivAES128, make([]byte, 16))
	require.NoError(t, err)
	for i := range key.Key {
		key.Key[i] = byte(32 - i)
	}

	plaintext := []byte("another scoped pdu, any length works for CFB")
	ciphertext, privParams, err := key.Encrypt(9, 42, plaintext)
	require.NoError(t, err)
	require.Len(t, privParams, 8)
	require.Equal(t, len(plaintext), len(ciphertext))

	got, err := key.Decrypt(9, 42, privParams, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestPrivKeyAESWrongEngineTimeFailsToDecryptCorrectly(t *testing.T) {
	key, err := NewPrivKey(PrivAES128, make([]byte, 16))
	require.NoError(t, err)

	plaintext := []byte("payload")
	ciphertext, privParams, err := key.Encrypt(1, 100, plaintext)
	require.NoError(t, err)

	got, err := key.Decrypt(1, 999, privParams, ciphertext)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, got)
}

func TestNewPrivKeyRejectsWrongSize(t *testing.T) {
	_, err := NewPrivKey(PrivAES128, make([]byte, 8))
	require.Error(t, err)
	var snmpErr *Error
	require.ErrorAs(t, err, &snmpErr)
	require.Equal(t, KindInvalidKey, snmpErr.Kind)
}

func TestPrivKeyNoneIsIdentity(t *testing.T) {
	key, err := NewPrivKey(PrivNone, nil)
	require.NoError(t, err)
	plaintext := []byte("plain")
	ciphertext, privParams, err := key.Encrypt(0, 0, plaintext)
	require.NoError(t, err)
	require.Nil(t, privParams)
	require.Equal(t, plaintext, ciphertext)
}
