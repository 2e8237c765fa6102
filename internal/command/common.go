// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/vlctlgo/internal/attrs"
	"github.com/staranto/vlctlgo/internal/cacheutil"
	"github.com/staranto/vlctlgo/internal/config"
	"github.com/staranto/vlctlgo/internal/meta"
	"github.com/staranto/vlctlgo/internal/output"
	"github.com/staranto/vlctlgo/internal/poscache"
	"github.com/staranto/vlctlgo/internal/source"
	"github.com/staranto/vlctlgo/internal/vlist"
)

// defaultMeasureWidth is used when there's no --width and no tty to ask.
const defaultMeasureWidth = 80

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr vlctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "vlctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// DumpSchemaIfRequested prints the dataset schema for the command when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, name string, entries []output.SchemaEntry) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(name, entries)
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewSourceFromFlags resolves the source spec carried in Meta into a
// concrete source, honoring the parse flags.
func NewSourceFromFlags(ctx context.Context, cmd *cli.Command) (source.Source, error) {
	m := GetMeta(cmd)
	if m.Source == "" {
		return nil, errors.New("no source specified (file path, s3:// url, or - for stdin)")
	}

	return source.NewSource(ctx, m.Source,
		source.WithFormat(cmd.String("format")),
		source.WithSplit(cmd.String("split")),
		source.WithJSONPath(cmd.String("jsonpath")),
	)
}

// MeasureWidth resolves the wrap width for a measurement pass: --width if
// given, otherwise the terminal width, otherwise a fixed fallback.
func MeasureWidth(cmd *cli.Command) int {
	if w := cmd.Int("width"); w > 0 {
		return w
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultMeasureWidth
}

// BuildList loads the source and builds an unmeasured list at the
// measurement width. height only matters for commands that walk a viewport
// window; pass 0 otherwise.
func BuildList(ctx context.Context, cmd *cli.Command, height int) (*vlist.List, source.Source, error) {
	src, err := NewSourceFromFlags(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	rows, err := src.Rows()
	if err != nil {
		return nil, nil, err
	}

	items := make([]vlist.Item, len(rows))
	for i := range rows {
		items[i] = rows[i]
	}

	opts := []vlist.Option{
		vlist.WithSize(MeasureWidth(cmd), height),
		vlist.WithEstimate(cmd.Int("estimate")),
	}
	if ov := cmd.Int("overscan"); ov > 0 {
		opts = append(opts, vlist.WithOverscan(ov))
	}

	list, err := vlist.New(items, opts...)
	if err != nil {
		return nil, nil, err
	}

	return list, src, nil
}

var measurementSubdirs = []string{"measurements"}

// measurementKey builds the clear-text cache key for a measurement pass.
// The full content participates so edits invalidate; cacheutil hashes the
// key before it hits the filesystem.
func measurementKey(list *vlist.List, src source.Source, width int) string {
	texts := make([]string, list.Len())
	for i := range texts {
		texts[i] = list.Item(i).Content()
	}
	return cacheutil.Key(src.String(), strconv.Itoa(width), strings.Join(texts, "\n"))
}

// MeasureList measures every row of the list, correcting from persisted
// heights when possible and falling back to a full render-and-measure pass.
func MeasureList(list *vlist.List, src source.Source) error {
	width, _ := list.Size()
	key := measurementKey(list, src, width)

	// Age out old entries before we read. cache.clean is in hours; unset
	// means never.
	cleanHours, _ := config.GetInt("cache.clean", 0)
	if err := cacheutil.Purge(cleanHours); err != nil {
		log.WithError(err).Warn("failed to purge cache")
	}

	if entry, ok := cacheutil.Read(measurementSubdirs, key); ok {
		var heights []int
		if err := json.Unmarshal(entry.Data, &heights); err == nil && len(heights) == list.Len() {
			ms := make([]poscache.Measurement, len(heights))
			for i, h := range heights {
				ms[i] = poscache.Measurement{Index: i, Height: h}
			}
			if err := list.Cache().Correct(ms); err == nil {
				log.Debugf("measurements from cache: %s", entry.Path)
				return nil
			}
		}
		log.Debugf("stale measurement cache entry: %s", entry.Path)
	}

	if err := list.MeasureAll(); err != nil {
		return err
	}

	cacheRows := list.Cache().Rows()
	heights := make([]int, len(cacheRows))
	for i, r := range cacheRows {
		heights[i] = r.Height
	}
	data, err := json.Marshal(heights)
	if err == nil {
		if err := cacheutil.Write(measurementSubdirs, key, data); err != nil {
			log.WithError(err).Warn("failed to cache measurements")
		}
	}

	return nil
}

// geometrySchema is the dataset schema shared by wq and rq.
var geometrySchema = []output.SchemaEntry{
	{Key: "index", Desc: "zero-based row index"},
	{Key: "state", Desc: "estimated or measured"},
	{Key: "height", Desc: "row height in lines"},
	{Key: "top", Desc: "first line of the row"},
	{Key: "bottom", Desc: "first line after the row"},
	{Key: "text", Desc: "raw row content"},
}

// geometryDataset builds one dataset row per list row in [start, end].
func geometryDataset(list *vlist.List, start, end int) []map[string]interface{} {
	//nolint:prealloc
	var dataset []map[string]interface{}

	for i := start; i <= end; i++ {
		row, err := list.Cache().RowAt(i)
		if err != nil {
			break
		}
		state, _ := list.Cache().State(i)

		var text string
		if item := list.Item(i); item != nil {
			text = item.Content()
		}

		dataset = append(dataset, map[string]interface{}{
			"index":  i,
			"state":  state.String(),
			"height": row.Height,
			"top":    row.Top,
			"bottom": row.Bottom,
			"text":   text,
		})
	}

	return dataset
}
