// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// maxStackSize is the maximum combined number of elements the main and alt
// stacks may hold at once (§4.1, "1000-element overflow limit").
const maxStackSize = 1000

// maxScriptElementSize is the largest byte array a single stack entry may
// hold.
const maxScriptElementSize = 520

// stack represents the primary or alternate execution stack. Items are
// stored as raw byte slices; numeric and boolean interpretation is done at
// the point of use, not at the point of storage, matching the scripting
// language's untyped stack.
type stack struct {
	stk [][]byte
}

func (s *stack) Depth() int {
	return len(s.stk)
}

func (s *stack) PushByteArray(so []byte) {
	s.stk = append(s.stk, so)
}

func (s *stack) PushInt(val scriptNum) {
	s.PushByteArray(val.Bytes())
}

func (s *stack) PushBool(val bool) {
	if val {
		s.PushByteArray([]byte{1})
	} else {
		s.PushByteArray(nil)
	}
}

func (s *stack) PopByteArray() ([]byte, error) {
	return s.nipN(0)
}

func (s *stack) PopInt() (scriptNum, error) {
	so, err := s.PopByteArray()
	if err != nil {
		return 0, err
	}
	return MakeScriptNum(so, true, defaultScriptNumLen)
}

func (s *stack) PopBool() (bool, error) {
	so, err := s.PopByteArray()
	if err != nil {
		return false, err
	}
	return asBool(so), nil
}

// PeekByteArray returns, without removing, the idx'th item from the top of
// the stack (0 is the top).
func (s *stack) PeekByteArray(idx int) ([]byte, error) {
	sz := len(s.stk)
	if idx < 0 || idx >= sz {
		return nil, scriptError(ErrInvalidStackOperation, "index out of range")
	}
	return s.stk[sz-idx-1], nil
}

func (s *stack) PeekInt(idx int) (scriptNum, error) {
	so, err := s.PeekByteArray(idx)
	if err != nil {
		return 0, err
	}
	return MakeScriptNum(so, true, defaultScriptNumLen)
}

func (s *stack) PeekBool(idx int) (bool, error) {
	so, err := s.PeekByteArray(idx)
	if err != nil {
		return false, err
	}
	return asBool(so), nil
}

// nipN removes and returns the idx'th item from the top of the stack.
func (s *stack) nipN(idx int) ([]byte, error) {
	sz := len(s.stk)
	if idx < 0 || idx >= sz {
		return nil, scriptError(ErrInvalidStackOperation, "index out of range")
	}
	so := s.stk[sz-idx-1]
	if idx == 0 {
		s.stk = s.stk[:sz-1]
	} else {
		copy(s.stk[sz-idx-1:], s.stk[sz-idx:])
		s.stk = s.stk[:sz-1]
	}
	return so, nil
}

func (s *stack) Tuck() error {
	so2, err := s.PopByteArray()
	if err != nil {
		return err
	}
	so1, err := s.PopByteArray()
	if err != nil {
		return err
	}
	s.PushByteArray(so2)
	s.PushByteArray(so1)
	s.PushByteArray(so2)
	return nil
}

func (s *stack) DropN(n int) error {
	for ; n > 0; n-- {
		if _, err := s.PopByteArray(); err != nil {
			return err
		}
	}
	return nil
}

func (s *stack) DupN(n int) error {
	if n < 1 {
		return scriptError(ErrInvalidStackOperation, "n must be >= 1")
	}
	for i := 0; i < n; i++ {
		so, err := s.PeekByteArray(n - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(so)
	}
	return nil
}

func (s *stack) RotN(n int) error {
	entry := 3*n - 1
	for i := 0; i < n; i++ {
		nso, err := s.nipN(entry)
		if err != nil {
			return err
		}
		s.PushByteArray(nso)
	}
	return nil
}

func (s *stack) SwapN(n int) error {
	for i := 0; i < n; i++ {
		so, err := s.nipN((2 * n) - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(so)
	}
	return nil
}

func (s *stack) OverN(n int) error {
	for i := 0; i < n; i++ {
		so, err := s.PeekByteArray((2 * n) - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(so)
	}
	return nil
}

func (s *stack) PickN(n int) error {
	so, err := s.PeekByteArray(n)
	if err != nil {
		return err
	}
	s.PushByteArray(so)
	return nil
}

func (s *stack) RollN(n int) error {
	so, err := s.nipN(n)
	if err != nil {
		return err
	}
	s.PushByteArray(so)
	return nil
}

// asBool interprets a stack item as a boolean: any non-zero byte makes it
// true, except a lone sign bit on the final byte (negative zero).
func asBool(t []byte) bool {
	for i, b := range t {
		if b == 0 {
			continue
		}
		if i == len(t)-1 && b == 0x80 {
			return false
		}
		return true
	}
	return false
}

func (s *stack) String() string {
	var out string
	for i := len(s.stk) - 1; i >= 0; i-- {
		out += fmt.Sprintf("%02d: %x\n", i, s.stk[i])
	}
	return out
}
