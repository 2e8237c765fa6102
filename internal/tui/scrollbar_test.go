// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScrollbarAllVisible(t *testing.T) {
	out := RenderScrollbar(ScrollbarParams{
		TotalLines:   5,
		Offset:       0,
		VisibleLines: 10,
		TrackHeight:  10,
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, " ", l)
	}
}

func TestRenderScrollbarZeroTrack(t *testing.T) {
	assert.Equal(t, "", RenderScrollbar(ScrollbarParams{TrackHeight: 0}))
}

func TestRenderScrollbarThumb(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		wantThumb int // line index where the thumb starts
	}{
		{name: "top", offset: 0, wantThumb: 0},
		{name: "middle", offset: 45, wantThumb: 4},
		{name: "bottom", offset: 90, wantThumb: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderScrollbar(ScrollbarParams{
				TotalLines:   100,
				Offset:       tt.offset,
				VisibleLines: 10,
				TrackHeight:  10,
			})

			lines := strings.Split(out, "\n")
			require.Len(t, lines, 10)

			// Exactly one thumb cell for this ratio.
			assert.Equal(t, 1, strings.Count(out, "┃"))
			assert.Contains(t, lines[tt.wantThumb], "┃")
		})
	}
}
