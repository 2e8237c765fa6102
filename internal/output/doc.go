// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output renders query datasets. A dataset is a slice of flat maps
// that gets filtered, transformed, sorted and then emitted as a table, JSON
// or YAML per command flags.
package output
