package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// UsmParameters is the User-based Security Model's securityParameters
// structure, carried as an OCTET STRING wrapping its own SEQUENCE right
// after the v3 global header in the outer message SEQUENCE. AuthenticationParameters holds a macLength
// placeholder on encode (patched in place once the whole message is
// serialized) and the peer's MAC on decode; PrivacyParameters holds the
// salt that seeded the privacy IV.
type UsmParameters struct {
	EngineID                 []byte
	EngineBoots              int32
	EngineTime               int32
	UserName                 []byte
	AuthenticationParameters []byte
	PrivacyParameters        []byte
}

// encodeUsmParameters pushes SEQUENCE { engineID, engineBoots,
// engineTime, userName, authParameters, privParameters }. When hasAuth
// is set, authParameters is reserved as macLength zero bytes and buf's
// bookmark is left pointing at the start of that span so the caller can
// locate it again after the rest of the message is built around it.
func encodeUsmParameters(buf *Buffer, p UsmParameters, hasAuth, hasPriv bool) error {
	mark := beginSequence(buf)

	if hasPriv {
		if err := encodeOctetString(buf, p.PrivacyParameters); err != nil {
			return err
		}
	} else {
		if err := encodeOctetString(buf, nil); err != nil {
			return err
		}
	}

	if hasAuth {
		if err := buf.Push(make([]byte, macLength)); err != nil {
			return err
		}
		buf.SetBookmark(0)
		if err := buf.PushTagLen(byte(tagOctetString), macLength); err != nil {
			return err
		}
	} else {
		if err := encodeOctetString(buf, nil); err != nil {
			return err
		}
	}

	if err := encodeOctetString(buf, p.UserName); err != nil {
		return err
	}
	if err := encodeInteger(buf, int64(p.EngineTime)); err != nil {
		return err
	}
	if err := encodeInteger(buf, int64(p.EngineBoots)); err != nil {
		return err
	}
	if err := encodeOctetString(buf, p.EngineID); err != nil {
		return err
	}

	return endSequence(buf, mark)
}

// decodeUsmParameters parses the securityParameters SEQUENCE already
// unwrapped from its containing OCTET STRING. authOffset is the byte
// offset of the authenticationParameters content within data, which
// decodeV3Message needs to locate the MAC for verification.
func decodeUsmParameters(data []byte) (p UsmParameters, authOffset int, rest []byte, err error) {
	content, rest, err := decodeSequence(data)
	if err != nil {
		return UsmParameters{}, 0, nil, err
	}
	if len(rest) != 0 {
		return UsmParameters{}, 0, nil, newErr(KindTrailingData, "bytes after USM security parameters")
	}

	engineID, content, err := decodeOctetString(content)
	if err != nil {
		return UsmParameters{}, 0, nil, err
	}
	engineBoots, content, err := decodeInteger(content)
	if err != nil {
		return UsmParameters{}, 0, nil, err
	}
	engineTime, content, err := decodeInteger(content)
	if err != nil {
		return UsmParameters{}, 0, nil, err
	}
	userName, content, err := decodeOctetString(content)
	if err != nil {
		return UsmParameters{}, 0, nil, err
	}
	authParams, afterAuth, err := decodeOctetString(content)
	if err != nil {
		return UsmParameters{}, 0, nil, err
	}
	authOffset = len(data) - len(authParams) - len(afterAuth)

	privParams, tail, err := decodeOctetString(afterAuth)
	if err != nil {
		return UsmParameters{}, 0, nil, err
	}
	if len(tail) != 0 {
		return UsmParameters{}, 0, nil, newErr(KindTrailingData, "bytes after USM security parameters")
	}

	p = UsmParameters{
		EngineID:                 engineID,
		EngineBoots:              int32(engineBoots),
		EngineTime:               int32(engineTime),
		UserName:                 userName,
		AuthenticationParameters: authParams,
		PrivacyParameters:        privParams,
	}
	return p, authOffset, rest, nil
}
