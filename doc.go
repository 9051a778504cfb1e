// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package gosnmp is a client-side SNMP engine supporting v1, v2c, and
// v3 (User-based Security Model). It is built from three layers: a
// zero-copy BER codec operating on a fixed-capacity stack-discipline
// buffer, a message pipeline that wraps PDUs in the v1/v2c or v3
// envelope (including USM authentication and privacy), and a Session
// type that owns a connected UDP socket and drives Get/GetNext/GetBulk
// exchanges against one agent at a time.
//
// A session is opened with Dial:
//
//	session, err := gosnmp.Dial(ctx, "192.0.2.1:161", gosnmp.WithCommunity("public"))
//	if err != nil {
//		return err
//	}
//	defer session.Close()
//
//	oid, _ := gosnmp.ParseOID("1.3.6.1.2.1.1.6.0")
//	value, ok, err := session.Get(ctx, oid)
//
// Decode errors are hard failures; a peer speaking a different version,
// community, or USM user produces no error at all — the datagram is
// silently dropped and the receive loop keeps waiting, since stray
// traffic on a shared port is expected, not exceptional. See errors.go
// for the full Kind taxonomy.
package gosnmp
