// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package poscache tracks the vertical geometry of a large ordered list of
// variable-height rows. It answers "which row is at scroll offset S" with a
// binary search and absorbs post-render height corrections lazily, so the
// scrollable extent is always exact while per-row offsets are repaired only
// when a lookup actually needs them.
package poscache
