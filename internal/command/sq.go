// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"math"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/vlctlgo/internal/meta"
	"github.com/staranto/vlctlgo/internal/output"
	"github.com/staranto/vlctlgo/internal/poscache"
)

// sqSchema is the dataset schema for the summary query.
var sqSchema = []output.SchemaEntry{
	{Key: "source", Desc: "source spec"},
	{Key: "type", Desc: "source type (file, stdin, s3)"},
	{Key: "bytes", Desc: "raw content size"},
	{Key: "width", Desc: "wrap width used for measurement"},
	{Key: "rows", Desc: "row count"},
	{Key: "lines", Desc: "total height in lines"},
	{Key: "min", Desc: "smallest row height"},
	{Key: "max", Desc: "largest row height"},
	{Key: "mean", Desc: "mean row height"},
}

// SqCommandAction is the action handler for the "sq" subcommand. It measures
// every row and emits a one-row summary of the source geometry.
func SqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "sq") {
		return nil
	}

	// Bail out early if we're just dumping the schema.
	if DumpSchemaIfRequested(cmd, "sq", sqSchema) {
		return nil
	}

	attrs := BuildAttrs(cmd, "source", "type", "bytes", "width", "rows", "lines", "min", "max", "mean")
	log.Debugf("attrs: %v", attrs)

	list, src, err := BuildList(ctx, cmd, 0)
	if err != nil {
		return err
	}

	if err := MeasureList(list, src); err != nil {
		return err
	}

	width, _ := list.Size()
	min, max, mean := heightStats(list.Cache().Rows())

	var size string
	if src.Size() >= 0 {
		size = humanize.Bytes(uint64(src.Size()))
	} else {
		size = "-"
	}

	dataset := []map[string]interface{}{{
		"source": src.String(),
		"type":   src.Type(),
		"bytes":  size,
		"width":  width,
		"rows":   list.Len(),
		"lines":  list.Cache().TotalHeight(),
		"min":    min,
		"max":    max,
		"mean":   mean,
	}}

	output.SliceDiceSpit(dataset, attrs, cmd, os.Stdout, nil)

	return nil
}

// SqCommandBuilder constructs the cli.Command for "sq", wiring metadata,
// flags, and action/validator handlers.
func SqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "sq",
		Usage:     "summary query",
		UsageText: `vlctl sq [Source] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(append([]cli.Flag{
			NewWidthFlag("sq"),
			tldrFlag,
			schemaFlag,
		}, NewSourceFlags("sq")...), NewGlobalFlags("sq")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := SqCommandValidator(ctx, cmd); err != nil {
				return err
			}
			return SqCommandAction(ctx, cmd)
		},
	}
}

// SqCommandValidator performs validation for "sq" and delegates to
// GlobalFlagsValidator.
func SqCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}

// heightStats returns the smallest, largest and mean row height. The mean
// is rounded to one decimal place. An empty slice yields all zeros.
func heightStats(rows []poscache.Row) (min int, max int, mean float64) {
	if len(rows) == 0 {
		return 0, 0, 0
	}

	min = rows[0].Height
	max = rows[0].Height
	total := 0
	for _, r := range rows {
		if r.Height < min {
			min = r.Height
		}
		if r.Height > max {
			max = r.Height
		}
		total += r.Height
	}

	mean = math.Round(float64(total)/float64(len(rows))*10) / 10
	return min, max, mean
}
