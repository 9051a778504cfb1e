package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testV3PduAndOid(t *testing.T) Pdu {
	t.Helper()
	oid, err := ParseOID("1.3.6.1.2.1.1.1.0")
	require.NoError(t, err)
	return newRequestPdu(PDUGetRequest, 7, []ObjectID{oid})
}

func TestEncodeDecodeV3MessageNoAuthNoPriv(t *testing.T) {
	pdu := testV3PduAndOid(t)
	m := V3Message{
		MsgID:       123,
		EngineID:    []byte("engine-1"),
		EngineBoots: 1,
		EngineTime:  2,
		UserName:    []byte("alice"),
		Pdu:         pdu,
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, EncodeV3Message(&buf, m))

	decoded, err := decodeV3Message(buf.Data())
	require.NoError(t, err)
	require.False(t, decoded.IsEncrypted())
	require.Equal(t, int32(123), decoded.MsgID)
	require.Equal(t, []byte("alice"), []byte(decoded.Usm.UserName))
	require.Equal(t, int32(1), decoded.Usm.EngineBoots)
	require.Equal(t, int32(2), decoded.Usm.EngineTime)
	require.Equal(t, PDUGetRequest, decoded.Pdu.Variant)
	require.Equal(t, int32(7), decoded.Pdu.RequestID)
}

func TestEncodeDecodeV3MessageAuthOnly(t *testing.T) {
	pdu := testV3PduAndOid(t)
	authKey := DeriveAuthKey(AuthMD5, "maplesyrup", []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2})
	m := V3Message{
		MsgID:       1,
		Reportable:  true,
		EngineID:    []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		EngineBoots: 5,
		EngineTime:  100,
		UserName:    []byte("authuser"),
		Auth:        authKey,
		Pdu:         pdu,
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, EncodeV3Message(&buf, m))

	decoded, err := decodeV3Message(buf.Data())
	require.NoError(t, err)
	require.True(t, decoded.Flags&FlagAuth != 0)
	require.False(t, decoded.IsEncrypted())

	require.True(t, authKey.Verify(buf.Data(), decoded.AuthOffset, decoded.Usm.AuthenticationParameters))

	// A bit flip anywhere in the signed region must fail verification.
	tampered := append([]byte(nil), buf.Data()...)
	tampered[0] ^= 0xff
	require.False(t, authKey.Verify(tampered, decoded.AuthOffset, decoded.Usm.AuthenticationParameters))
}

func TestEncodeDecodeV3MessageAuthAndDESPriv(t *testing.T) {
	pdu := testV3PduAndOid(t)
	engineID := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2}
	authKey := DeriveAuthKey(AuthMD5, "maplesyrup", engineID)
	privMaster := PasswordToMaster(AuthMD5, "maplesyrup")
	privLocalized := MasterToLocalized(AuthMD5, privMaster, engineID)
	privKey, err := NewPrivKey(PrivDES, privLocalized[:16])
	require.NoError(t, err)

	m := V3Message{
		MsgID:       2,
		EngineID:    engineID,
		EngineBoots: 1,
		EngineTime:  1,
		UserName:    []byte("privuser"),
		Auth:        authKey,
		Priv:        privKey,
		Pdu:         pdu,
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, EncodeV3Message(&buf, m))

	decoded, err := decodeV3Message(buf.Data())
	require.NoError(t, err)
	require.True(t, decoded.IsEncrypted())
	require.True(t, authKey.Verify(buf.Data(), decoded.AuthOffset, decoded.Usm.AuthenticationParameters))

	plaintext, err := privKey.Decrypt(1, 1, decoded.Usm.PrivacyParameters, decoded.EncryptedMsgData())
	require.NoError(t, err)

	_, _, gotPdu, err := decodeScopedPdu(plaintext)
	require.NoError(t, err)
	require.Equal(t, PDUGetRequest, gotPdu.Variant)
	require.Equal(t, int32(7), gotPdu.RequestID)
}

func TestEncodeDecodeV3MessageAuthAndAESPriv(t *testing.T) {
	pdu := testV3PduAndOid(t)
	engineID := []byte{0x80, 0x00, 0x1f, 0x88, 0x04, 0x32, 0x37, 0x67, 0x53, 0x38, 0x36, 0x74, 0x64}
	authKey := DeriveAuthKey(AuthSHA1, "user20key", engineID)
	privMaster := PasswordToMaster(AuthSHA1, "user20key")
	privLocalized := MasterToLocalized(AuthSHA1, privMaster, engineID)
	privKey, err := NewPrivKey(PrivAES128, privLocalized[:16])
	require.NoError(t, err)

	m := V3Message{
		MsgID:       3,
		EngineID:    engineID,
		EngineBoots: 9,
		EngineTime:  42,
		UserName:    []byte("aesuser"),
		Auth:        authKey,
		Priv:        privKey,
		Pdu:         pdu,
	}

	var buf Buffer
	buf.Reset()
	require.NoError(t, EncodeV3Message(&buf, m))

	decoded, err := decodeV3Message(buf.Data())
	require.NoError(t, err)
	require.True(t, decoded.IsEncrypted())
	require.True(t, authKey.Verify(buf.Data(), decoded.AuthOffset, decoded.Usm.AuthenticationParameters))

	plaintext, err := privKey.Decrypt(9, 42, decoded.Usm.PrivacyParameters, decoded.EncryptedMsgData())
	require.NoError(t, err)

	contextEngineID, _, gotPdu, err := decodeScopedPdu(plaintext)
	require.NoError(t, err)
	require.Equal(t, PDUGetRequest, gotPdu.Variant)
	require.Empty(t, contextEngineID)
}

func TestDecodeV3MessageWrongSecurityModelIsAnError(t *testing.T) {
	var buf Buffer
	buf.Reset()
	mark := beginSequence(&buf)
	require.NoError(t, buf.Push([]byte{0x05, 0x00})) // placeholder msgData: NULL
	require.NoError(t, encodeOctetString(&buf, []byte{0x30, 0x00}))
	require.NoError(t, encodeV3GlobalHeader(&buf, v3GlobalHeader{MsgID: 1, MsgMaxSize: 2048, SecurityModel: 1}))
	require.NoError(t, encodeInteger(&buf, int64(Version3)))
	require.NoError(t, endSequence(&buf, mark))

	_, err := decodeV3Message(buf.Data())
	require.Error(t, err)
	var snmpErr *Error
	require.ErrorAs(t, err, &snmpErr)
	require.Equal(t, KindUnknownSecurityModel, snmpErr.Kind)
}
