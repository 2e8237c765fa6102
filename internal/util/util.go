// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package util holds small helpers shared across commands.
package util

import (
	"os"
	"strings"
)

// IsSourceSpec reports whether the arg looks like a source spec rather than
// a flag: stdin, an s3 URL, or an existing local file.
func IsSourceSpec(arg string) bool {
	if arg == "-" || strings.HasPrefix(arg, "s3://") {
		return true
	}
	if strings.HasPrefix(arg, "-") {
		return false
	}
	fi, err := os.Stat(arg)
	return err == nil && !fi.IsDir()
}
