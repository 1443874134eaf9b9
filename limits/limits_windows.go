// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build windows

package limits

// SetLimits is a no-op on Windows, which has no equivalent of POSIX
// RLIMIT_NOFILE for the node to raise.
func SetLimits() error {
	return nil
}
