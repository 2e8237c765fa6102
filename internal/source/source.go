// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"strings"

	"github.com/apex/log"
)

// Source is anything that can produce the row collection for a spec.
type Source interface {
	// Rows loads and splits the content.
	Rows() ([]Row, error)
	// Size returns the raw content size in bytes, or -1 if unknown
	// before loading.
	Size() int64
	String() string
	Type() string
}

// Option adjusts parsing for whichever source the spec resolves to.
type Option func(*ParseOptions)

// WithFormat forces the content format ("text", "jsonl", "auto").
func WithFormat(format string) Option {
	return func(o *ParseOptions) {
		o.Format = format
	}
}

// WithSplit sets the text split mode ("para" or "line").
func WithSplit(split string) Option {
	return func(o *ParseOptions) {
		o.Split = split
	}
}

// WithJSONPath sets the gjson path extracted from each jsonl document.
func WithJSONPath(path string) Option {
	return func(o *ParseOptions) {
		o.Path = path
	}
}

// NewSource resolves a spec to a concrete source. "-" reads stdin,
// "s3://bucket/key" fetches an object, anything else is a local file.
func NewSource(ctx context.Context, spec string, opts ...Option) (Source, error) {
	var po ParseOptions
	for _, opt := range opts {
		opt(&po)
	}

	log.Debugf("NewSource: spec=%q opts=%+v", spec, po)

	switch {
	case spec == "-":
		return &StdinSource{Opts: po}, nil
	case strings.HasPrefix(spec, "s3://"):
		return NewS3Source(ctx, spec, po)
	}

	return &FileSource{Path: spec, Opts: po}, nil
}
