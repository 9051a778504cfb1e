package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	crand "crypto/rand"
	"encoding/binary"
	"sync/atomic"
)

// PrivProtocol identifies the USM privacy (encryption) protocol.
type PrivProtocol int

const (
	PrivNone PrivProtocol = iota
	PrivDES
	PrivAES128
)

func privKeySize(protocol PrivProtocol) int {
	switch protocol {
	case PrivDES, PrivAES128:
		return 16
	default:
		return 0
	}
}

// PrivKey holds USM privacy state: the protocol, localized key, and the
// per-session salt counters used to build a fresh IV for every message.
// DES and AES keep independent counters because their salts are 32 and
// 64 bits respectively, mirroring the two widths RFC 3414 and RFC 3826
// define.
type PrivKey struct {
	Protocol PrivProtocol
	Key      []byte

	localDESSalt uint32
	localAESSalt uint64
}

// NewPrivKey validates key against protocol's required size and seeds
// the salt counters from crypto/rand so two sessions never reuse a
// salt after a restart.
func NewPrivKey(protocol PrivProtocol, localizedKey []byte) (*PrivKey, error) {
	if protocol == PrivNone {
		return &PrivKey{Protocol: PrivNone}, nil
	}
	if len(localizedKey) != privKeySize(protocol) {
		return nil, newErr(KindInvalidKey, "localized privacy key has the wrong size")
	}
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, wrapErr(KindInvalidKey, "seeding privacy salt", err)
	}
	return &PrivKey{
		Protocol:     protocol,
		Key:          localizedKey,
		localDESSalt: binary.BigEndian.Uint32(seed[:4]),
		localAESSalt: binary.BigEndian.Uint64(seed[:]),
	}, nil
}

// Encrypt encrypts plaintext (a serialized ScopedPDU) under the current
// engine boots/time, returning the ciphertext and the privacyParameters
// octet string to send alongside it. Each call advances the salt
// counter, so the same PrivKey must not be used concurrently without
// external synchronization beyond the counter increment itself.
func (k *PrivKey) Encrypt(engineBoots, engineTime int32, plaintext []byte) (ciphertext, privParams []byte, err error) {
	switch k.Protocol {
	case PrivDES:
		return k.encryptDES(engineBoots, plaintext)
	case PrivAES128:
		return k.encryptAES(engineBoots, engineTime, plaintext)
	default:
		return plaintext, nil, nil
	}
}

// Decrypt reverses Encrypt given the privacyParameters received on the
// wire and the peer's reported engine boots/time.
func (k *PrivKey) Decrypt(engineBoots, engineTime int32, privParams, ciphertext []byte) ([]byte, error) {
	switch k.Protocol {
	case PrivDES:
		return k.decryptDES(privParams, ciphertext)
	case PrivAES128:
		return k.decryptAES(engineBoots, engineTime, privParams, ciphertext)
	default:
		return ciphertext, nil
	}
}

func (k *PrivKey) desIV(salt []byte) [8]byte {
	var iv [8]byte
	preIV := k.Key[8:16]
	for i := range iv {
		iv[i] = preIV[i] ^ salt[i]
	}
	return iv
}

func (k *PrivKey) encryptDES(engineBoots int32, plaintext []byte) (ciphertext, privParams []byte, err error) {
	salt := make([]byte, 8)
	binary.BigEndian.PutUint32(salt, uint32(engineBoots))
	binary.BigEndian.PutUint32(salt[4:], atomic.AddUint32(&k.localDESSalt, 1))

	block, err := des.NewCipher(k.Key[:8])
	if err != nil {
		return nil, nil, wrapErr(KindInvalidKey, "DES key schedule", err)
	}
	padded := make([]byte, len(plaintext))
	copy(padded, plaintext)
	if r := len(padded) % des.BlockSize; r != 0 {
		padded = append(padded, make([]byte, des.BlockSize-r)...)
	}
	iv := k.desIV(salt)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(out, padded)
	return out, salt, nil
}

func (k *PrivKey) decryptDES(privParams, ciphertext []byte) ([]byte, error) {
	if len(privParams) != 8 {
		return nil, newErr(KindInvalidData, "DES privacy parameters must be 8 octets")
	}
	if len(ciphertext) == 0 || len(ciphertext)%des.BlockSize != 0 {
		return nil, newErr(KindInvalidData, "DES ciphertext is not block aligned")
	}
	block, err := des.NewCipher(k.Key[:8])
	if err != nil {
		return nil, wrapErr(KindInvalidKey, "DES key schedule", err)
	}
	iv := k.desIV(privParams)
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(out, ciphertext)
	return out, nil
}

func (k *PrivKey) encryptAES(engineBoots, engineTime int32, plaintext []byte) (ciphertext, privParams []byte, err error) {
	salt := make([]byte, 8)
	binary.BigEndian.PutUint64(salt, atomic.AddUint64(&k.localAESSalt, 1))

	block, err := aes.NewCipher(k.Key[:16])
	if err != nil {
		return nil, nil, wrapErr(KindInvalidKey, "AES key schedule", err)
	}
	var iv [16]byte
	binary.BigEndian.PutUint32(iv[0:4], uint32(engineBoots))
	binary.BigEndian.PutUint32(iv[4:8], uint32(engineTime))
	copy(iv[8:], salt)

	out := make([]byte, len(plaintext))
	cipher.NewCFBEncrypter(block, iv[:]).XORKeyStream(out, plaintext)
	return out, salt, nil
}

func (k *PrivKey) decryptAES(engineBoots, engineTime int32, privParams, ciphertext []byte) ([]byte, error) {
	if len(privParams) != 8 {
		return nil, newErr(KindInvalidData, "AES privacy parameters must be 8 octets")
	}
	block, err := aes.NewCipher(k.Key[:16])
	if err != nil {
		return nil, wrapErr(KindInvalidKey, "AES key schedule", err)
	}
	var iv [16]byte
	binary.BigEndian.PutUint32(iv[0:4], uint32(engineBoots))
	binary.BigEndian.PutUint32(iv[4:8], uint32(engineTime))
	copy(iv[8:], privParams)

	out := make([]byte, len(ciphertext))
	cipher.NewCFBDecrypter(block, iv[:]).XORKeyStream(out, ciphertext)
	return out, nil
}
