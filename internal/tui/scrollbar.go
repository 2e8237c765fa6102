// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/staranto/vlctlgo/internal/config"
)

// ScrollbarParams configures a vertical scrollbar rendering. All values are
// in content lines, not rows, since rows have variable height.
type ScrollbarParams struct {
	TotalLines   int // Total content height
	Offset       int // First visible content line
	VisibleLines int // Lines that fit in the viewport
	TrackHeight  int // Height of the track in terminal rows
}

// RenderScrollbar returns a single-column string (newline-separated)
// representing a vertical scrollbar track. Returns a column of spaces when
// all content is visible so the column width stays reserved and the layout
// doesn't jitter.
func RenderScrollbar(params ScrollbarParams) string {
	if params.TrackHeight < 1 {
		return ""
	}

	if params.TotalLines <= params.VisibleLines {
		lines := make([]string, params.TrackHeight)
		for i := range lines {
			lines[i] = " "
		}
		return strings.Join(lines, "\n")
	}

	// Thumb size: proportional to the visible fraction, minimum 1, clamped
	// to the track.
	thumbSize := (params.VisibleLines * params.TrackHeight) / params.TotalLines
	if thumbSize < 1 {
		thumbSize = 1
	}
	if thumbSize > params.TrackHeight {
		thumbSize = params.TrackHeight
	}

	// Thumb position: proportional to the offset within the scrollable
	// range.
	maxOffset := params.TotalLines - params.VisibleLines
	if maxOffset < 1 {
		maxOffset = 1
	}
	thumbPos := (params.Offset * (params.TrackHeight - thumbSize)) / maxOffset
	if thumbPos < 0 {
		thumbPos = 0
	}
	if thumbPos > params.TrackHeight-thumbSize {
		thumbPos = params.TrackHeight - thumbSize
	}

	trackColor, _ := config.GetString("view.colors.track", "240")
	thumbColor, _ := config.GetString("view.colors.thumb", "250")

	trackChar := lipgloss.NewStyle().Foreground(lipgloss.Color(trackColor)).Render("│")
	thumbChar := lipgloss.NewStyle().Foreground(lipgloss.Color(thumbColor)).Render("┃")

	lines := make([]string, params.TrackHeight)
	for i := range lines {
		if i >= thumbPos && i < thumbPos+thumbSize {
			lines[i] = thumbChar
		} else {
			lines[i] = trackChar
		}
	}

	return strings.Join(lines, "\n")
}
