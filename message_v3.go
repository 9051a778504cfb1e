package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// MsgFlags is the single-octet msgFlags field of the v3 global header.
type MsgFlags byte

const (
	FlagAuth       MsgFlags = 0x01
	FlagPriv       MsgFlags = 0x02
	FlagReportable MsgFlags = 0x04
)

// usmSecurityModel is the only securityModel this engine implements.
const usmSecurityModel = 3

// DefaultMsgMaxSize is advertised in outgoing v3 headers when
// V3Message.MsgMaxSize is zero.
const DefaultMsgMaxSize = 2048

type v3GlobalHeader struct {
	MsgID         int32
	MsgMaxSize    int32
	Flags         MsgFlags
	SecurityModel int32
}

// encodeV3GlobalHeader pushes SEQUENCE { msgID, msgMaxSize, msgFlags
// OCTET STRING, msgSecurityModel }.
func encodeV3GlobalHeader(buf *Buffer, h v3GlobalHeader) error {
	mark := beginSequence(buf)
	if err := encodeInteger(buf, int64(h.SecurityModel)); err != nil {
		return err
	}
	if err := encodeOctetString(buf, []byte{byte(h.Flags)}); err != nil {
		return err
	}
	if err := encodeInteger(buf, int64(h.MsgMaxSize)); err != nil {
		return err
	}
	if err := encodeInteger(buf, int64(h.MsgID)); err != nil {
		return err
	}
	return endSequence(buf, mark)
}

func decodeV3GlobalHeader(data []byte) (h v3GlobalHeader, rest []byte, err error) {
	content, rest, err := decodeSequence(data)
	if err != nil {
		return v3GlobalHeader{}, nil, err
	}

	msgID, content, err := decodeInteger(content)
	if err != nil {
		return v3GlobalHeader{}, nil, err
	}
	msgMaxSize, content, err := decodeInteger(content)
	if err != nil {
		return v3GlobalHeader{}, nil, err
	}
	flagBytes, content, err := decodeOctetString(content)
	if err != nil {
		return v3GlobalHeader{}, nil, err
	}
	if len(flagBytes) != 1 {
		return v3GlobalHeader{}, nil, newErr(KindInvalidData, "msgFlags must be one octet")
	}
	secModel, content, err := decodeInteger(content)
	if err != nil {
		return v3GlobalHeader{}, nil, err
	}
	if len(content) != 0 {
		return v3GlobalHeader{}, nil, newErr(KindTrailingData, "bytes after v3 global header")
	}

	h = v3GlobalHeader{
		MsgID:         int32(msgID),
		MsgMaxSize:    int32(msgMaxSize),
		Flags:         MsgFlags(flagBytes[0]),
		SecurityModel: int32(secModel),
	}
	return h, rest, nil
}

// encodeScopedPdu pushes SEQUENCE { contextEngineID, contextName, pdu },
// the plaintext unit that privacy encryption, when enabled, wraps.
func encodeScopedPdu(buf *Buffer, contextEngineID, contextName []byte, pdu Pdu) error {
	mark := beginSequence(buf)
	if err := encodePdu(buf, pdu); err != nil {
		return err
	}
	if err := encodeOctetString(buf, contextName); err != nil {
		return err
	}
	if err := encodeOctetString(buf, contextEngineID); err != nil {
		return err
	}
	return endSequence(buf, mark)
}

// decodeScopedPdu does not reject trailing bytes: DES privacy pads its
// plaintext to an 8-byte boundary with zeros, so the decrypted buffer
// legitimately has pad bytes after the SEQUENCE ends.
func decodeScopedPdu(data []byte) (contextEngineID, contextName []byte, pdu Pdu, err error) {
	content, _, err := decodeSequence(data)
	if err != nil {
		return nil, nil, Pdu{}, err
	}

	contextEngineID, content, err = decodeOctetString(content)
	if err != nil {
		return nil, nil, Pdu{}, err
	}
	contextName, content, err = decodeOctetString(content)
	if err != nil {
		return nil, nil, Pdu{}, err
	}
	pdu, tail, err := decodePdu(content)
	if err != nil {
		return nil, nil, Pdu{}, err
	}
	if len(tail) != 0 {
		return nil, nil, Pdu{}, newErr(KindTrailingData, "bytes after PDU in scoped PDU")
	}

	return contextEngineID, contextName, pdu, nil
}

// V3Message is the caller-assembled content of one outbound v3 datagram.
// Auth and Priv may be nil to disable authentication/privacy.
type V3Message struct {
	MsgID           int32
	MsgMaxSize      int32
	Reportable      bool
	ContextEngineID []byte
	ContextName     []byte
	EngineID        []byte
	EngineBoots     int32
	EngineTime      int32
	UserName        []byte
	Auth            *AuthKey
	Priv            *PrivKey
	Pdu             Pdu
}

// EncodeV3Message serializes m into buf, encrypting the scoped PDU under
// Priv when set and patching the USM MAC into place under Auth when
// set. The MAC covers the entire serialized message, which is why
// signing happens last, after every other field (including the
// authentication placeholder) has been written.
func EncodeV3Message(buf *Buffer, m V3Message) error {
	hasAuth := m.Auth != nil && m.Auth.Protocol != AuthNone
	hasPriv := m.Priv != nil && m.Priv.Protocol != PrivNone

	var flags MsgFlags
	if hasAuth {
		flags |= FlagAuth
	}
	if hasPriv {
		flags |= FlagPriv
	}
	if m.Reportable {
		flags |= FlagReportable
	}

	var scoped Buffer
	scoped.Reset()
	if err := encodeScopedPdu(&scoped, m.ContextEngineID, m.ContextName, m.Pdu); err != nil {
		return err
	}
	plaintext := scoped.Data()

	usm := UsmParameters{
		EngineID:    m.EngineID,
		EngineBoots: m.EngineBoots,
		EngineTime:  m.EngineTime,
		UserName:    m.UserName,
	}

	msgData := plaintext
	if hasPriv {
		ciphertext, salt, err := m.Priv.Encrypt(m.EngineBoots, m.EngineTime, plaintext)
		if err != nil {
			return err
		}
		usm.PrivacyParameters = salt
		msgData = ciphertext
	}

	mark := beginSequence(buf)

	if hasPriv {
		if err := encodeOctetString(buf, msgData); err != nil {
			return err
		}
	} else {
		if err := buf.Push(msgData); err != nil {
			return err
		}
	}

	usmMark := buf.Len()
	if err := encodeUsmParameters(buf, usm, hasAuth, hasPriv); err != nil {
		return err
	}
	if err := buf.PushTagLen(byte(tagOctetString), buf.Len()-usmMark); err != nil {
		return err
	}

	msgMaxSize := m.MsgMaxSize
	if msgMaxSize == 0 {
		msgMaxSize = DefaultMsgMaxSize
	}
	if err := encodeV3GlobalHeader(buf, v3GlobalHeader{
		MsgID:         m.MsgID,
		MsgMaxSize:    msgMaxSize,
		Flags:         flags,
		SecurityModel: usmSecurityModel,
	}); err != nil {
		return err
	}

	if err := encodeInteger(buf, int64(Version3)); err != nil {
		return err
	}

	if err := endSequence(buf, mark); err != nil {
		return err
	}

	if hasAuth {
		offset := buf.GetBookmark()
		if err := m.Auth.Authenticate(buf.DataMut(), offset); err != nil {
			return err
		}
	}

	return nil
}

// V3Decoded is a fully parsed, still-unauthenticated v3 datagram. The
// caller is responsible for verifying AuthOffset against the
// negotiated user's AuthKey before trusting ContextEngineID/Pdu, and for
// decrypting an encrypted payload with the matching PrivKey (using
// Usm.PrivacyParameters) and passing the plaintext to decodeScopedPdu.
type V3Decoded struct {
	MsgID      int32
	MsgMaxSize int32
	Flags      MsgFlags
	Usm        UsmParameters
	AuthOffset int

	// ContextEngineID, ContextName, and Pdu are zero when Flags has
	// FlagPriv set: the caller must decrypt msgData with the user's
	// PrivKey and call decodeScopedPdu on the result itself.
	ContextEngineID []byte
	ContextName     []byte
	Pdu             Pdu

	encryptedMsgData []byte
}

// IsEncrypted reports whether msgData arrived as ciphertext, in which
// case ContextEngineID/ContextName/Pdu are zero and EncryptedMsgData
// holds the bytes to decrypt.
func (d V3Decoded) IsEncrypted() bool { return d.Flags&FlagPriv != 0 }

// EncryptedMsgData returns the ciphertext payload when IsEncrypted.
func (d V3Decoded) EncryptedMsgData() []byte { return d.encryptedMsgData }

// decodeV3Message parses a v3 datagram up to (but not through)
// decryption: when FlagPriv is set, the session layer must decrypt
// EncryptedMsgData with the negotiated PrivKey and pass the plaintext to
// decodeScopedPdu itself, since decryption requires the user's key which
// this layer does not have.
func decodeV3Message(data []byte) (V3Decoded, error) {
	outerContent, outerRest, err := decodeSequence(data)
	if err != nil {
		return V3Decoded{}, err
	}
	if len(outerRest) != 0 {
		return V3Decoded{}, newErr(KindTrailingData, "bytes after outer SEQUENCE")
	}

	versionVal, c1, err := decodeInteger(outerContent)
	if err != nil {
		return V3Decoded{}, err
	}
	if Version(versionVal) != Version3 {
		return V3Decoded{}, invalidVersionErr(int(versionVal))
	}

	hdr, c2, err := decodeV3GlobalHeader(c1)
	if err != nil {
		return V3Decoded{}, err
	}
	if hdr.SecurityModel != usmSecurityModel {
		return V3Decoded{}, newErr(KindUnknownSecurityModel, "only the user-based security model is supported")
	}

	secParamsBytes, c3, err := decodeOctetString(c2)
	if err != nil {
		return V3Decoded{}, err
	}
	secParamsOffset := len(data) - len(secParamsBytes) - len(c3)

	usm, authOffsetWithinSecParams, _, err := decodeUsmParameters(secParamsBytes)
	if err != nil {
		return V3Decoded{}, err
	}

	result := V3Decoded{
		MsgID:      hdr.MsgID,
		MsgMaxSize: hdr.MsgMaxSize,
		Flags:      hdr.Flags,
		Usm:        usm,
		AuthOffset: secParamsOffset + authOffsetWithinSecParams,
	}

	if hdr.Flags&FlagPriv != 0 {
		ciphertext, msgDataRest, err := decodeOctetString(c3)
		if err != nil {
			return V3Decoded{}, err
		}
		if len(msgDataRest) != 0 {
			return V3Decoded{}, newErr(KindTrailingData, "bytes after encrypted msgData")
		}
		result.encryptedMsgData = ciphertext
		return result, nil
	}

	contextEngineID, contextName, pdu, err := decodeScopedPdu(c3)
	if err != nil {
		return V3Decoded{}, err
	}
	result.ContextEngineID = contextEngineID
	result.ContextName = contextName
	result.Pdu = pdu
	return result, nil
}
