package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// encodeV1Message pushes the whole v1/v2c datagram:
// SEQUENCE { version INTEGER, community OCTET STRING, pdu }.
func encodeV1Message(buf *Buffer, version Version, community []byte, pdu Pdu) error {
	mark := beginSequence(buf)
	if err := encodePdu(buf, pdu); err != nil {
		return err
	}
	if err := encodeOctetString(buf, community); err != nil {
		return err
	}
	if err := encodeInteger(buf, int64(version)); err != nil {
		return err
	}
	return endSequence(buf, mark)
}

// decodeV1Message parses a v1/v2c datagram. expected pins the version
// the session was configured for; a mismatch is not treated as a decode
// error (a peer speaking the wrong version is a routing mistake, not
// malformed input) but is reported so the caller can silently discard
// the datagram per the session's read loop.
func decodeV1Message(data []byte, expected Version) (community []byte, pdu Pdu, versionMatches bool, err error) {
	content, rest, err := decodeSequence(data)
	if err != nil {
		return nil, Pdu{}, false, err
	}
	if len(rest) != 0 {
		return nil, Pdu{}, false, newErr(KindTrailingData, "bytes after outer SEQUENCE")
	}

	versionVal, content, err := decodeInteger(content)
	if err != nil {
		return nil, Pdu{}, false, err
	}
	version := Version(versionVal)
	if !version.valid() {
		return nil, Pdu{}, false, invalidVersionErr(int(versionVal))
	}
	if version != expected {
		return nil, Pdu{}, false, nil
	}

	community, content, err = decodeOctetString(content)
	if err != nil {
		return nil, Pdu{}, false, err
	}

	pdu, content, err = decodePdu(content)
	if err != nil {
		return nil, Pdu{}, false, err
	}
	if len(content) != 0 {
		return nil, Pdu{}, false, newErr(KindTrailingData, "bytes after PDU")
	}

	return community, pdu, version == expected, nil
}
