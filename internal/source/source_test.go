// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsText(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		opts  ParseOptions
		want  []string
		count int
	}{
		{
			name:  "paragraphs by default",
			data:  "first para\nstill first\n\nsecond para\n\n\nthird para\n",
			opts:  ParseOptions{},
			want:  []string{"first para\nstill first", "second para", "third para"},
			count: 3,
		},
		{
			name:  "line split",
			data:  "one\ntwo\nthree",
			opts:  ParseOptions{Split: "line"},
			want:  []string{"one", "two", "three"},
			count: 3,
		},
		{
			name:  "empty input",
			data:  "\n\n",
			opts:  ParseOptions{},
			count: 0,
		},
		{
			name:  "windows line endings",
			data:  "a\r\n\r\nb",
			opts:  ParseOptions{},
			want:  []string{"a", "b"},
			count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseRows([]byte(tt.data), tt.opts)
			require.NoError(t, err)
			require.Len(t, rows, tt.count)
			for i, w := range tt.want {
				assert.Equal(t, w, rows[i].Text)
				assert.Equal(t, i, rows[i].Index)
			}
		})
	}
}

func TestParseRowsJSONL(t *testing.T) {
	data := `{"msg":"hello","level":"info"}
{"msg":"world","level":"warn"}
`

	t.Run("whole documents", func(t *testing.T) {
		rows, err := ParseRows([]byte(data), ParseOptions{Format: "jsonl"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Contains(t, rows[0].Text, `"msg":"hello"`)
	})

	t.Run("gjson path extraction", func(t *testing.T) {
		rows, err := ParseRows([]byte(data), ParseOptions{Format: "jsonl", Path: "msg"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "hello", rows[0].Text)
		assert.Equal(t, "world", rows[1].Text)
	})

	t.Run("missing path keeps the row", func(t *testing.T) {
		rows, err := ParseRows([]byte(data), ParseOptions{Format: "jsonl", Path: "nope"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "", rows[0].Text)
	})

	t.Run("invalid json line", func(t *testing.T) {
		_, err := ParseRows([]byte("{\"ok\":1}\nnot json\n"), ParseOptions{Format: "jsonl"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestParseRowsAutoSniff(t *testing.T) {
	rows, err := ParseRows([]byte(`{"a":1}`), ParseOptions{Format: "auto"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = ParseRows([]byte("plain old text"), ParseOptions{Format: "auto"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "plain old text", rows[0].Text)
}

func TestNewSourceDispatch(t *testing.T) {
	ctx := context.Background()

	s, err := NewSource(ctx, "-")
	require.NoError(t, err)
	assert.Equal(t, "stdin", s.Type())

	s, err = NewSource(ctx, "testdata/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "file", s.Type())

	s, err = NewSource(ctx, "s3://bucket/path/to/key.jsonl", WithJSONPath("msg"))
	require.NoError(t, err)
	assert.Equal(t, "s3", s.Type())
	assert.Equal(t, "s3://bucket/path/to/key.jsonl", s.String())

	_, err = NewSource(ctx, "s3://justabucket")
	require.Error(t, err)
}

func TestFileSourceRows(t *testing.T) {
	s := &FileSource{Path: "testdata/notes.txt"}
	rows, err := s.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Greater(t, s.Size(), int64(0))
}

func TestFileSourceJSONLByExtension(t *testing.T) {
	s := &FileSource{Path: "testdata/events.jsonl", Opts: ParseOptions{Path: "event"}}
	rows, err := s.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "start", rows[0].Text)
	assert.Equal(t, "stop", rows[1].Text)
}
