package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"
)

// idGenerator yields non-negative i32-range values via an atomic
// counter, seeded from a random starting point so restarting a process
// does not replay request-ids an agent might still associate with a
// stale session. A session keeps two independent generators: one for
// the PDU request-id, one (v3 only) for the message-id.
type idGenerator struct {
	next int32
}

func newIDGenerator() *idGenerator {
	var seed [4]byte
	_, _ = rand.Read(seed[:]) // crypto/rand.Read never errors on this platform set
	v := int32(binary.BigEndian.Uint32(seed[:]) & 0x7fffffff)
	return &idGenerator{next: v}
}

// Next returns the next id in the sequence, wrapping within the
// non-negative int32 range.
func (g *idGenerator) Next() int32 {
	for {
		v := atomic.AddInt32(&g.next, 1)
		if v >= 0 {
			return v
		}
		// Wrapped into negative territory; reset and retry.
		atomic.CompareAndSwapInt32(&g.next, v, 0)
	}
}
