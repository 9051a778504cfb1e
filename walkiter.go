package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// WalkIter is the cursor a GetNext/GetBulk-driven walk advances. It
// remembers the anchor OID the caller started from and the OID to send
// in the next request.
type WalkIter struct {
	anchor ObjectID
	next   ObjectID
	done   bool
}

// NewWalkIter starts a cursor at anchor; the first request sent with it
// asks for anchor itself, as GetNext/GetBulk's semantics require.
func NewWalkIter(anchor ObjectID) *WalkIter {
	return &WalkIter{anchor: anchor, next: anchor}
}

// Anchor returns the walk's starting OID.
func (it *WalkIter) Anchor() ObjectID { return it.anchor }

// Done reports whether a prior setNext call terminated the walk.
func (it *WalkIter) Done() bool { return it.done }

// setNext probes a returned OID against the anchor: if the anchor is a
// prefix, the cursor advances to oid for a future request and the
// caller keeps the pair; otherwise the walk terminates and this and all
// future requests against it are refused.
func (it *WalkIter) setNext(oid ObjectID) bool {
	if it.done {
		return false
	}
	if !it.anchor.StartsWith(oid) {
		it.done = true
		return false
	}
	it.next = oid
	return true
}
