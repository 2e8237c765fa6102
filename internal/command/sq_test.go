// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	"github.com/staranto/vlctlgo/internal/poscache"
)

func rowsOf(heights ...int) []poscache.Row {
	rows := make([]poscache.Row, len(heights))
	top := 0
	for i, h := range heights {
		rows[i] = poscache.Row{Height: h, Top: top, Bottom: top + h}
		top += h
	}
	return rows
}

func TestHeightStats_Empty(t *testing.T) {
	min, max, mean := heightStats(nil)
	assert.Equal(t, 0, min)
	assert.Equal(t, 0, max)
	assert.Equal(t, 0.0, mean)
}

func TestHeightStats_SingleRow(t *testing.T) {
	min, max, mean := heightStats(rowsOf(4))
	assert.Equal(t, 4, min)
	assert.Equal(t, 4, max)
	assert.Equal(t, 4.0, mean)
}

func TestHeightStats_Uniform(t *testing.T) {
	min, max, mean := heightStats(rowsOf(2, 2, 2))
	assert.Equal(t, 2, min)
	assert.Equal(t, 2, max)
	assert.Equal(t, 2.0, mean)
}

func TestHeightStats_Mixed(t *testing.T) {
	min, max, mean := heightStats(rowsOf(1, 5, 3, 2))
	assert.Equal(t, 1, min)
	assert.Equal(t, 5, max)
	assert.Equal(t, 2.8, mean)
}

func TestHeightStats_MeanRounding(t *testing.T) {
	// 1+2 = 3 over 2 rows = 1.5 exactly.
	min, max, mean := heightStats(rowsOf(1, 2))
	assert.Equal(t, 1, min)
	assert.Equal(t, 2, max)
	assert.Equal(t, 1.5, mean)

	// 1+1+2 = 4 over 3 rows = 1.333.. rounds to 1.3.
	_, _, mean = heightStats(rowsOf(1, 1, 2))
	assert.Equal(t, 1.3, mean)
}

func TestBuildAttrsDefaults(t *testing.T) {
	// No --attrs flag on a bare command, so only the defaults land.
	al := BuildAttrs(&cli.Command{}, "index", "height")
	assert.Len(t, al, 2)
	assert.Equal(t, "index", al[0].Key)
	assert.Equal(t, "height", al[1].Key)
}
