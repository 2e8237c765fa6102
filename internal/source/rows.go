// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Row is one unit of list content. It satisfies the vlist Item contract.
type Row struct {
	Index int
	Text  string
}

func (r Row) ID() string {
	return fmt.Sprintf("row-%d", r.Index)
}

func (r Row) Content() string {
	return r.Text
}

// ParseOptions control how raw bytes become rows.
type ParseOptions struct {
	// Format is "text", "jsonl", or "auto" (sniff).
	Format string
	// Split is "para" (blank-line separated, the default) or "line".
	// Ignored for jsonl.
	Split string
	// Path is a gjson path extracted from each jsonl document. Empty
	// keeps the whole (compact) document.
	Path string
}

// ParseRows splits raw content into rows per the options.
func ParseRows(data []byte, opts ParseOptions) ([]Row, error) {
	format := opts.Format
	if format == "" || format == "auto" {
		format = sniffFormat(data)
	}

	switch format {
	case "jsonl":
		return parseJSONL(data, opts.Path)
	case "text":
		return parseText(data, opts.Split), nil
	}

	return nil, fmt.Errorf("unknown format %q", opts.Format)
}

// sniffFormat peeks at the first non-blank line. A line that parses as a
// JSON object or array means jsonl; anything else is plain text.
func sniffFormat(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if (strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[")) && gjson.Valid(line) {
			return "jsonl"
		}
		break
	}
	return "text"
}

func parseText(data []byte, split string) []Row {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil
	}

	var chunks []string
	if split == "line" {
		chunks = strings.Split(text, "\n")
	} else {
		// Paragraph mode: one or more blank lines separate rows.
		for _, p := range strings.Split(text, "\n\n") {
			p = strings.Trim(p, "\n")
			if p != "" {
				chunks = append(chunks, p)
			}
		}
	}

	rows := make([]Row, len(chunks))
	for i, c := range chunks {
		rows[i] = Row{Index: i, Text: c}
	}
	return rows
}

func parseJSONL(data []byte, path string) ([]Row, error) {
	var rows []Row
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("line %d is not valid JSON", n+1)
		}

		text := line
		if path != "" {
			result := gjson.Get(line, path)
			if !result.Exists() {
				// Keep the row; an absent path is content-level, not
				// fatal.
				text = ""
			} else {
				text = result.String()
			}
		}

		rows = append(rows, Row{Index: len(rows), Text: text})
	}
	return rows, nil
}
