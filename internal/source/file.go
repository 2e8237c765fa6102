// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileSource reads rows from a local file.
type FileSource struct {
	Path string
	Opts ParseOptions

	size int64
}

func (s *FileSource) Rows() ([]Row, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	s.size = int64(len(data))

	opts := s.Opts
	if opts.Format == "" || opts.Format == "auto" {
		// Extension beats sniffing when it's unambiguous.
		switch strings.ToLower(filepath.Ext(s.Path)) {
		case ".jsonl", ".ndjson":
			opts.Format = "jsonl"
		}
	}

	return ParseRows(data, opts)
}

func (s *FileSource) Size() int64 {
	if s.size > 0 {
		return s.size
	}
	if fi, err := os.Stat(s.Path); err == nil {
		return fi.Size()
	}
	return -1
}

func (s *FileSource) String() string {
	return s.Path
}

func (s *FileSource) Type() string {
	return "file"
}

// StdinSource reads rows from standard input.
type StdinSource struct {
	Opts ParseOptions

	size int64
}

func (s *StdinSource) Rows() ([]Row, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	s.size = int64(len(data))
	return ParseRows(data, s.Opts)
}

func (s *StdinSource) Size() int64 {
	if s.size > 0 {
		return s.size
	}
	return -1
}

func (s *StdinSource) String() string {
	return "-"
}

func (s *StdinSource) Type() string {
	return "stdin"
}
