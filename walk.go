package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "context"

// WalkFunc is called once per (oid, value) pair a walk delivers. A
// non-nil return stops the walk and is propagated as its error.
type WalkFunc func(oid ObjectID, value Value) error

// Walk iterates GetNext starting at anchor until the subtree is
// exhausted or fn returns an error.
func (s *Session) Walk(ctx context.Context, anchor ObjectID, fn WalkFunc) error {
	iter := NewWalkIter(anchor)
	for {
		oid, value, ok, err := s.GetNext(ctx, iter)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(oid, value); err != nil {
			return err
		}
	}
}

// BulkWalk iterates GetBulk starting at anchor, requesting up to
// maxRepetitions variable bindings per round, until the subtree is
// exhausted or fn returns an error.
func (s *Session) BulkWalk(ctx context.Context, anchor ObjectID, maxRepetitions int32, fn WalkFunc) error {
	iter := NewWalkIter(anchor)
	for {
		vars, err := s.GetBulk(ctx, iter, maxRepetitions)
		if err != nil {
			return err
		}
		if len(vars) == 0 {
			return nil
		}
		for _, vb := range vars {
			if err := fn(vb.Oid, vb.Value); err != nil {
				return err
			}
		}
		if iter.Done() {
			return nil
		}
	}
}
