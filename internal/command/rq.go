// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/vlctlgo/internal/meta"
	"github.com/staranto/vlctlgo/internal/output"
)

// RqCommandAction is the action handler for the "rq" subcommand. It measures
// every row and emits the full geometry table per common flags.
func RqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "rq") {
		return nil
	}

	// Bail out early if we're just dumping the schema.
	if DumpSchemaIfRequested(cmd, "rq", geometrySchema) {
		return nil
	}

	// The text column is middle-ellipsized so the geometry stays readable;
	// --attrs 'text::' clears the transform when the full content is wanted.
	attrs := BuildAttrs(cmd, "index", "top", "bottom", "height", "state", "text::-40")
	log.Debugf("attrs: %v", attrs)

	list, src, err := BuildList(ctx, cmd, 0)
	if err != nil {
		return err
	}

	if err := MeasureList(list, src); err != nil {
		return err
	}

	end := list.Len() - 1
	if limit := cmd.Int("limit"); limit > 0 && limit-1 < end {
		end = limit - 1
	}

	dataset := geometryDataset(list, 0, end)
	output.SliceDiceSpit(dataset, attrs, cmd, os.Stdout, nil)

	return nil
}

// RqCommandBuilder constructs the cli.Command for "rq", wiring metadata,
// flags, and action/validator handlers.
func RqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rq",
		Usage:     "row geometry query",
		UsageText: `vlctl rq [Source] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(append([]cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "limit rows returned",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("rq.limit", altsrc.StringSourcer(meta.Config.Source)),
					yaml.YAML("limit", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 99999,
			},
			NewWidthFlag("rq"),
			tldrFlag,
			schemaFlag,
		}, NewSourceFlags("rq")...), NewGlobalFlags("rq")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RqCommandValidator(ctx, c); err != nil {
				return err
			}
			return RqCommandAction(ctx, c)
		},
	}
}

// RqCommandValidator performs validation for "rq" and delegates to
// GlobalFlagsValidator.
func RqCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}
