package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "sync"

// BufferPool is a process-wide, lock-protected free list of *Buffer
// values. It bounds allocation churn for high request rates; there is no
// hard cap on pool size since the socket (one outstanding request per
// session) already bounds concurrency.
type BufferPool struct {
	mu   sync.Mutex
	free []*Buffer
}

// NewBufferPool returns an empty pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

var defaultBufferPool = NewBufferPool()

// Acquire returns a handle wrapping a buffer, allocating a fresh one if
// the pool is empty.
func (p *BufferPool) Acquire() *BufferHandle {
	p.mu.Lock()
	var buf *Buffer
	if n := len(p.free); n > 0 {
		buf = p.free[n-1]
		p.free = p.free[:n-1]
	}
	p.mu.Unlock()
	if buf == nil {
		buf = &Buffer{}
		buf.Reset()
	}
	return &BufferHandle{pool: p, buf: buf}
}

func (p *BufferPool) release(buf *Buffer) {
	buf.Reset()
	p.mu.Lock()
	p.free = append(p.free, buf)
	p.mu.Unlock()
}

// BufferHandle owns one acquired Buffer and returns it to its pool when
// Release is called. Callers must not retain the *Buffer returned by Buf
// after releasing the handle.
type BufferHandle struct {
	pool *BufferPool
	buf  *Buffer
}

// Buf returns the underlying buffer.
func (h *BufferHandle) Buf() *Buffer { return h.buf }

// Release resets the buffer and returns it to the pool. It is safe to
// call more than once; only the first call has an effect.
func (h *BufferHandle) Release() {
	if h.buf == nil {
		return
	}
	h.pool.release(h.buf)
	h.buf = nil
}
