// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/vlctlgo/internal/attrs"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		delimiter string
		wantCount int
		want      []Filter
	}{
		{
			name:      "empty spec",
			spec:      "",
			wantCount: 0,
		},
		{
			name:      "single exact match filter",
			spec:      "state=measured",
			wantCount: 1,
			want: []Filter{
				{Key: "state", Operand: "=", Target: "measured", Negate: false},
			},
		},
		{
			name:      "prefix match filter",
			spec:      "text^The",
			wantCount: 1,
			want: []Filter{
				{Key: "text", Operand: "^", Target: "The", Negate: false},
			},
		},
		{
			name:      "negated exact match",
			spec:      "state!=estimated",
			wantCount: 1,
			want: []Filter{
				{Key: "state", Operand: "=", Target: "estimated", Negate: true},
			},
		},
		{
			name:      "negated prefix match",
			spec:      "text!^The",
			wantCount: 1,
			want: []Filter{
				{Key: "text", Operand: "^", Target: "The", Negate: true},
			},
		},
		{
			name:      "multiple filters",
			spec:      "height>2,state=measured",
			wantCount: 2,
			want: []Filter{
				{Key: "height", Operand: ">", Target: "2", Negate: false},
				{Key: "state", Operand: "=", Target: "measured", Negate: false},
			},
		},
		{
			name:      "contains operand",
			spec:      "text@cache",
			wantCount: 1,
			want: []Filter{
				{Key: "text", Operand: "@", Target: "cache", Negate: false},
			},
		},
		{
			name:      "regex operand",
			spec:      "text/^row-\\d+$",
			wantCount: 1,
			want: []Filter{
				{Key: "text", Operand: "/", Target: "^row-\\d+$", Negate: false},
			},
		},
		{
			name:      "invalid filter skipped",
			spec:      "state=measured,bogus-filter,height>2",
			wantCount: 2,
			want: []Filter{
				{Key: "state", Operand: "=", Target: "measured", Negate: false},
				{Key: "height", Operand: ">", Target: "2", Negate: false},
			},
		},
		{
			name:      "custom delimiter",
			spec:      "state=measured;height>2",
			delimiter: ";",
			wantCount: 2,
			want: []Filter{
				{Key: "state", Operand: "=", Target: "measured", Negate: false},
				{Key: "height", Operand: ">", Target: "2", Negate: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delimiter != "" {
				t.Setenv("VLCTL_FILTER_DELIM", tt.delimiter)
			}

			got := BuildFilters(tt.spec)
			assert.Len(t, got, tt.wantCount)
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func geometryAttrs(t *testing.T) attrs.AttrList {
	t.Helper()
	var al attrs.AttrList
	assert.NoError(t, al.Set("index,height,state,text"))
	return al
}

func geometryDataset() []map[string]interface{} {
	return []map[string]interface{}{
		{"index": 0, "height": 1, "state": "measured", "text": "The first row"},
		{"index": 1, "height": 3, "state": "measured", "text": "a tall row"},
		{"index": 2, "height": 5, "state": "estimated", "text": "The last row"},
	}
}

func TestFilterDataset(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		wantIndexes []int
	}{
		{
			name:        "no filters keeps everything",
			spec:        "",
			wantIndexes: []int{0, 1, 2},
		},
		{
			name:        "string equality",
			spec:        "state=measured",
			wantIndexes: []int{0, 1},
		},
		{
			name:        "negated string equality",
			spec:        "state!=measured",
			wantIndexes: []int{2},
		},
		{
			name:        "numeric greater than",
			spec:        "height>2",
			wantIndexes: []int{1, 2},
		},
		{
			name:        "numeric less than",
			spec:        "height<3",
			wantIndexes: []int{0},
		},
		{
			name:        "prefix",
			spec:        "text^The",
			wantIndexes: []int{0, 2},
		},
		{
			name:        "contains",
			spec:        "text@tall",
			wantIndexes: []int{1},
		},
		{
			name:        "regex",
			spec:        "text/row$",
			wantIndexes: []int{0, 1, 2},
		},
		{
			name:        "conjunction",
			spec:        "state=measured,height>2",
			wantIndexes: []int{1},
		},
		{
			name:        "unknown key is skipped not fatal",
			spec:        "nope=x,height>2",
			wantIndexes: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDataset(geometryDataset(), geometryAttrs(t), tt.spec)

			var indexes []int
			for _, row := range got {
				indexes = append(indexes, row["index"].(int))
			}
			assert.Equal(t, tt.wantIndexes, indexes)
		})
	}
}

func TestFilterDatasetProjection(t *testing.T) {
	var al attrs.AttrList
	assert.NoError(t, al.Set("index,text:body"))

	got := FilterDataset(geometryDataset(), al, "")
	assert.Len(t, got, 3)
	assert.Equal(t, "The first row", got[0]["body"])
	// Unprojected keys are dropped.
	_, ok := got[0]["state"]
	assert.False(t, ok)
}
