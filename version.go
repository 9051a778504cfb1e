package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Version identifies the SNMP message format: v1 and v2c share a
// community-based envelope, v3 adds the USM security header.
type Version int32

const (
	Version1  Version = 0
	Version2c Version = 1
	Version3  Version = 3
)

func (v Version) String() string {
	switch v {
	case Version1:
		return "1"
	case Version2c:
		return "2c"
	case Version3:
		return "3"
	default:
		return "unknown"
	}
}

func (v Version) valid() bool {
	switch v {
	case Version1, Version2c, Version3:
		return true
	default:
		return false
	}
}
