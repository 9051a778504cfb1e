package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// AuthProtocol identifies the USM authentication protocol in use.
type AuthProtocol int

// AuthNone disables authentication; AuthMD5 and AuthSHA1 implement
// HMAC-MD5-96 and HMAC-SHA1-96 respectively.
const (
	AuthNone AuthProtocol = iota
	AuthMD5
	AuthSHA1
)

// authKeySize returns the localized-key size for protocol (16 bytes for
// MD5, 20 for SHA-1).
func authKeySize(protocol AuthProtocol) int {
	switch protocol {
	case AuthMD5:
		return 16
	case AuthSHA1:
		return 20
	default:
		return 0
	}
}

// macLength is the truncated MAC size both HMAC-MD5-96 and
// HMAC-SHA1-96 produce.
const macLength = 12

func newAuthHash(protocol AuthProtocol) hash.Hash {
	if protocol == AuthSHA1 {
		return sha1.New()
	}
	return md5.New()
}

// AuthKey holds SNMPv3 authentication state: the protocol and the
// localized key bytes. A session initialized from a password derives
// both the master and localized key via Derive*.
type AuthKey struct {
	Protocol AuthProtocol
	Key      []byte // localized
}

// NewAuthKey validates key against the protocol's required size.
func NewAuthKey(protocol AuthProtocol, localizedKey []byte) (*AuthKey, error) {
	if protocol == AuthNone {
		return &AuthKey{Protocol: AuthNone}, nil
	}
	if len(localizedKey) != authKeySize(protocol) {
		return nil, newErr(KindInvalidKey, "localized auth key has the wrong size")
	}
	return &AuthKey{Protocol: protocol, Key: localizedKey}, nil
}

// PasswordToMaster implements RFC 3414 §2.6's password-to-key
// algorithm: hash 1,048,576 bytes of the password repeated cyclically,
// keeping the first KS bytes of the digest (KS = 16 for MD5, 20 for
// SHA-1).
func PasswordToMaster(protocol AuthProtocol, password string) []byte {
	h := newAuthHash(protocol)
	var pi int
	for i := 0; i < 1048576; i += 64 {
		chunk := make([]byte, 64)
		for e := 0; e < 64; e++ {
			chunk[e] = password[pi%len(password)]
			pi++
		}
		h.Write(chunk)
	}
	return h.Sum(nil)
}

// MasterToLocalized implements RFC 3414 §2.6's key localization:
// localized = hash(master || engineID || master), truncated to the
// protocol's key size (16 bytes for MD5, 20 for SHA-1) regardless of
// how long the supplied master key happens to be.
func MasterToLocalized(protocol AuthProtocol, master []byte, engineID []byte) []byte {
	h := newAuthHash(protocol)
	h.Write(master)
	h.Write(engineID)
	h.Write(master)
	sum := h.Sum(nil)
	return sum[:authKeySize(protocol)]
}

// DeriveAuthKey localizes a password directly into a usable AuthKey for
// the given engine.
func DeriveAuthKey(protocol AuthProtocol, password string, engineID []byte) *AuthKey {
	master := PasswordToMaster(protocol, password)
	return &AuthKey{Protocol: protocol, Key: MasterToLocalized(protocol, master, engineID)}
}

// hmacHalves XORs key (zero-extended to 64 bytes) with ipad and opad,
// per the generic HMAC construction. The HMAC here is implemented
// explicitly rather than via crypto/hmac, matching the reference
// engine's hand-rolled signing pass.
func hmacHalves(key []byte) (k1, k2 [64]byte) {
	var extended [64]byte
	copy(extended[:], key)
	for i := 0; i < 64; i++ {
		k1[i] = extended[i] ^ 0x36
		k2[i] = extended[i] ^ 0x5c
	}
	return
}

// sign computes the 12-byte truncated HMAC over message (with the
// auth-parameters field already zeroed to macLength bytes).
func (k *AuthKey) sign(message []byte) [macLength]byte {
	k1, k2 := hmacHalves(k.Key)
	h1 := newAuthHash(k.Protocol)
	h1.Write(k1[:])
	h1.Write(message)
	d1 := h1.Sum(nil)

	h2 := newAuthHash(k.Protocol)
	h2.Write(k2[:])
	h2.Write(d1)
	d2 := h2.Sum(nil)

	var mac [macLength]byte
	copy(mac[:], d2[:macLength])
	return mac
}

// Authenticate patches the macLength-byte MAC into message at offset,
// computed over the whole message with that span zeroed.
func (k *AuthKey) Authenticate(message []byte, offset int) error {
	if k.Protocol == AuthNone {
		return nil
	}
	if offset < 0 || offset+macLength > len(message) {
		return newErr(KindInvalidData, "auth parameters offset out of range")
	}
	for i := 0; i < macLength; i++ {
		message[offset+i] = 0
	}
	mac := k.sign(message)
	copy(message[offset:offset+macLength], mac[:])
	return nil
}

// Verify recomputes the MAC over message (with receivedMAC's span
// zeroed for the computation) and compares it to receivedMAC.
func (k *AuthKey) Verify(message []byte, offset int, receivedMAC []byte) bool {
	if k.Protocol == AuthNone {
		return true
	}
	if len(receivedMAC) != macLength || offset < 0 || offset+macLength > len(message) {
		return false
	}
	work := make([]byte, len(message))
	copy(work, message)
	for i := 0; i < macLength; i++ {
		work[offset+i] = 0
	}
	mac := k.sign(work)
	for i := 0; i < macLength; i++ {
		if mac[i] != receivedMAC[i] {
			return false
		}
	}
	return true
}
