package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Logger is an interface used for debugging. Both Print and Printf have
// the same signatures as package log in the standard library, so
// *log.Logger satisfies it directly.
//
// For verbose logging to stdout:
//
//	session, err := gosnmp.Dial(ctx, addr, gosnmp.WithLogger(log.New(os.Stdout, "", 0)))
type Logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
}

// discardLogger is the zero-cost default: every session is constructed
// with a non-nil logger so call sites never need a nil check.
type discardLogger struct{}

func (discardLogger) Print(v ...interface{})            {}
func (discardLogger) Printf(format string, v ...interface{}) {}

var defaultLogger Logger = discardLogger{}
