//go:build linux

package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"net"

	"golang.org/x/sys/unix"
)

// applySocketOptions sets IP_TOS, SO_SNDBUF, and SO_RCVBUF directly
// through golang.org/x/sys/unix, which exposes knobs net.UDPConn's
// portable API does not (IP_TOS has no stdlib setter at all). A desired
// buffer size the kernel rejects, with any error, is halved and retried
// until one is accepted; if none is, the buffer keeps the OS default
// and no error is reported.
func applySocketOptions(conn *net.UDPConn, tos byte, sendBufferSize, recvBufferSize int) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return wrapErr(KindSocketError, "raw socket access", err)
	}

	var sockErr error
	ctrlErr := raw.Control(func(fd uintptr) {
		if tos != 0 {
			if err := unix.SetsockoptInt(int(fd), unix.IPPROTO_IP, unix.IP_TOS, int(tos)); err != nil {
				sockErr = wrapErr(KindSocketError, "set IP_TOS", err)
				return
			}
		}
		if sendBufferSize > 0 {
			if err := setSockoptHalving(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF, sendBufferSize); err != nil {
				sockErr = wrapErr(KindSocketError, "set SO_SNDBUF", err)
				return
			}
		}
		if recvBufferSize > 0 {
			if err := setSockoptHalving(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF, recvBufferSize); err != nil {
				sockErr = wrapErr(KindSocketError, "set SO_RCVBUF", err)
				return
			}
		}
	})
	if ctrlErr != nil {
		return wrapErr(KindSocketError, "raw socket control", ctrlErr)
	}
	return sockErr
}

func setSockoptHalving(fd, level, opt, want int) error {
	for want > 0 {
		err := unix.SetsockoptInt(fd, level, opt, want)
		if err == nil {
			return nil
		}
		want /= 2
	}
	return nil
}
