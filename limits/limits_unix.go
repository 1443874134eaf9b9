// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !windows

// Package limits provides platform-specific resource-limit adjustment,
// since a full node opening a peer socket per connection plus a handful
// of leveldb file handles can exceed the default per-process descriptor
// limit on some systems.
package limits

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// desiredFileLimit is the file descriptor limit requested at startup.
const desiredFileLimit = 2048

// SetLimits raises the process's open-file-descriptor limit toward
// desiredFileLimit, within whatever hard limit the OS enforces.
func SetLimits() error {
	var rLimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return err
	}
	if rLimit.Cur >= desiredFileLimit {
		return nil
	}

	want := uint64(desiredFileLimit)
	if rLimit.Max < want {
		want = rLimit.Max
	}
	if want <= rLimit.Cur {
		return nil
	}

	rLimit.Cur = want
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return fmt.Errorf("failed to raise file descriptor limit: %w", err)
	}
	return nil
}
