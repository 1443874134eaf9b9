// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// tstCheckScriptError ensures the type of the two passed errors are both
// txscript.Error and that their error codes match when the expected error
// is non-nil. It returns a non-nil error describing the mismatch when the
// assertion fails, or nil on success.
func tstCheckScriptError(gotErr, wantErr error) error {
	if wantErr == nil {
		if gotErr != nil {
			return fmt.Errorf("unexpected error - got %v, want none", gotErr)
		}
		return nil
	}

	wantScriptErr, ok := wantErr.(Error)
	if !ok {
		return fmt.Errorf("unexpected test error type %T", wantErr)
	}

	gotScriptErr, ok := gotErr.(Error)
	if !ok {
		return fmt.Errorf("wrong error - got type %T, want txscript.Error", gotErr)
	}
	if gotScriptErr.ErrorCode != wantScriptErr.ErrorCode {
		return fmt.Errorf("wrong error code - got %v, want %v", gotScriptErr.ErrorCode, wantScriptErr.ErrorCode)
	}

	return nil
}
