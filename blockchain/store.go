// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/dsnet/compress/bzip2"

	"github.com/talusnet/talusd/wire"
)

// maxBlockFileSize is the rotation threshold for an open blk*.dat file:
// the original's 0x7F000000-MaxBlockSize headroom, which keeps a file
// below 2 GiB even after one more maximum-size block is appended, so
// fseek/ftell never overflow a signed 32-bit offset (§4.3.3).
const maxBlockFileSize = 0x7F000000 - MaxBlockSize

// blockMagic prefixes every record in a block file, the way the original
// store used pchMessageStart to resynchronize a reader after a partial
// write; talusd doesn't need multi-network file sharing, so a single
// constant stands in for the per-network magic.
var blockMagic = [4]byte{0xfa, 0xce, 0xb0, 0x0c}

// BlockStore is the append-only on-disk block archive described in
// §4.3.3: blocks are appended to the current blk*.dat file until it
// crosses maxBlockFileSize, at which point a new file is opened and the
// one just sealed is compressed into a cold archive, since it will never
// be appended to again.
type BlockStore struct {
	mu          sync.Mutex
	dir         string
	currentFile uint32
	currentSize uint32
	f           *os.File
}

// NewBlockStore opens (creating if necessary) a block store rooted at
// dir.
func NewBlockStore(dir string) (*BlockStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &BlockStore{dir: dir, currentFile: 1}
	if err := s.openCurrent(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BlockStore) blockFilePath(file uint32) string {
	return filepath.Join(s.dir, fmt.Sprintf("blk%04d.dat", file))
}

func (s *BlockStore) openCurrent() error {
	f, err := os.OpenFile(s.blockFilePath(s.currentFile), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	s.f = f
	s.currentSize = uint32(info.Size())
	return nil
}

// WriteBlock serializes block, records it in the current file with a
// magic-prefixed length header, and returns the file number and the
// offset of the serialized block itself (immediately after the header),
// so a later reader can seek straight to it.
func (s *BlockStore) WriteBlock(block *wire.MsgBlock) (file uint32, offset uint32, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentSize >= maxBlockFileSize {
		if err := s.rotate(); err != nil {
			return 0, 0, err
		}
	}

	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		return 0, 0, err
	}

	var header bytes.Buffer
	header.Write(blockMagic[:])
	if err := binary.Write(&header, binary.LittleEndian, uint32(buf.Len())); err != nil {
		return 0, 0, err
	}

	if _, err := s.f.Write(header.Bytes()); err != nil {
		return 0, 0, err
	}
	offset = s.currentSize + uint32(header.Len())
	if _, err := s.f.Write(buf.Bytes()); err != nil {
		return 0, 0, err
	}

	s.currentSize += uint32(header.Len() + buf.Len())
	return s.currentFile, offset, nil
}

// rotate seals the current file, compresses it into a .bz2 cold archive
// in the background-safe (synchronous, caller already holds s.mu) sense,
// and opens the next file number.
func (s *BlockStore) rotate() error {
	sealed := s.currentFile
	sealedPath := s.blockFilePath(sealed)

	if err := s.f.Close(); err != nil {
		return err
	}
	if err := s.archive(sealedPath); err != nil {
		return err
	}

	s.currentFile = sealed + 1
	return s.openCurrent()
}

// archive bzip2-compresses the sealed block file at path into path+".bz2"
// and removes the uncompressed original, per the cold-storage scheme
// named for this dependency.
func (s *BlockStore) archive(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".bz2")
	if err != nil {
		return err
	}
	defer out.Close()

	w, err := bzip2.NewWriter(out, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, in); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return os.Remove(path)
}

// Close closes the currently-open block file.
func (s *BlockStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
