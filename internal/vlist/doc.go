// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package vlist layers a renderable list on top of the position cache:
// it wraps row content to the current width, measures the rendered views,
// feeds the corrections back into the cache, and composes the visible
// window of terminal lines for a host viewport.
package vlist
