// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"

	flog "github.com/talusnet/talusd/log/v2"
)

// logRotator rotates the on-disk log file; nil until initLogRotator runs.
var logRotator *rotator.Rotator

// initLogRotator opens (creating if necessary) logFile and starts rotating
// it once it passes 10 MiB, keeping the most recent 3 rolled files.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return err
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

// newLogBackend returns a flog.Backend writing to both stdout and the
// rotating log file once initLogRotator has run, or to stdout alone
// otherwise.
func newLogBackend() *flog.Backend {
	if logRotator == nil {
		return flog.NewDefaultBackend()
	}
	return flog.NewBackend(io.MultiWriter(os.Stdout, logRotator))
}
