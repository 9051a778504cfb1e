package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "context"

// Refresh sends a v3 GetRequest with no variable bindings. Agents that
// don't yet know this session (engine-id not discovered, or engine
// boots/time out of the acceptable window) answer with a Report PDU
// carrying their authoritative engine parameters, which
// decodeAndValidateV3 applies to the session as a side effect of
// receiving any datagram. Refresh is a no-op for v1/v2c sessions.
func (s *Session) Refresh(ctx context.Context) error {
	if s.version != Version3 {
		return nil
	}
	if err := s.SendRefresh(); err != nil {
		return err
	}
	return s.ReceiveRefresh()
}

func (s *Session) SendRefresh() error {
	if s.version != Version3 {
		return nil
	}
	return s.send(Pdu{Variant: PDUGetRequest})
}

// ReceiveRefresh waits for the reply. Unlike the other operations, a
// Report PDU here is the expected and successful outcome, not an
// authentication failure: engineBoots/engineTime have already been
// absorbed into the session by the time this returns.
func (s *Session) ReceiveRefresh() error {
	_, err := s.receive()
	return err
}
