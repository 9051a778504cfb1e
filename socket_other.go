//go:build !linux

package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "net"

// applySocketOptions falls back to the portable *net.UDPConn knobs on
// non-Linux platforms: there is no cross-platform way to set IP_TOS
// without a raw socket, so it is silently ignored outside Linux.
func applySocketOptions(conn *net.UDPConn, tos byte, sendBufferSize, recvBufferSize int) error {
	if sendBufferSize > 0 {
		if err := conn.SetWriteBuffer(sendBufferSize); err != nil {
			return wrapErr(KindSocketError, "set write buffer", err)
		}
	}
	if recvBufferSize > 0 {
		if err := conn.SetReadBuffer(recvBufferSize); err != nil {
			return wrapErr(KindSocketError, "set read buffer", err)
		}
	}
	return nil
}
