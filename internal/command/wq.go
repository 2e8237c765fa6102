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

// WqCommandAction is the action handler for the "wq" subcommand. It answers
// "which rows does a viewport at --offset intersect": the list is built from
// estimates, a single lazy measure pass runs over the window, and the
// resulting geometry is emitted per common flags. Rows outside the window
// keep their estimated state.
func WqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "wq") {
		return nil
	}

	// Bail out early if we're just dumping the schema.
	if DumpSchemaIfRequested(cmd, "wq", geometrySchema) {
		return nil
	}

	attrs := BuildAttrs(cmd, "index", "top", "bottom", "height", "state")
	log.Debugf("attrs: %v", attrs)

	list, _, err := BuildList(ctx, cmd, cmd.Int("vh"))
	if err != nil {
		return err
	}

	list.SetOffset(cmd.Int("offset"))
	list.Layout()

	// Emit everything the measure pass touched, overscan included.
	start, end := list.Window()
	log.Debugf("window: offset=%d start=%d end=%d", list.Offset(), start, end)

	if end < start {
		return nil
	}

	dataset := geometryDataset(list, start, end)
	output.SliceDiceSpit(dataset, attrs, cmd, os.Stdout, nil)

	return nil
}

// WqCommandBuilder constructs the cli.Command for "wq", wiring metadata,
// flags, and action/validator handlers.
func WqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "wq",
		Usage:     "window query",
		UsageText: `vlctl wq [Source] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(append([]cli.Flag{
			&cli.IntFlag{
				Name:  "offset",
				Usage: "scroll offset in lines",
				Value: 0,
				Validator: func(value int) error {
					return FlagValidators(value, NonNegativeIntValidator)
				},
			},
			&cli.IntFlag{
				Name:  "vh",
				Usage: "viewport height in lines",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("wq.vh", altsrc.StringSourcer(meta.Config.Source)),
					yaml.YAML("vh", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 25,
				Validator: func(value int) error {
					return FlagValidators(value, PositiveIntValidator)
				},
			},
			&cli.IntFlag{
				Name:  "overscan",
				Usage: "rows rendered past each edge of the viewport",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("wq.overscan", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 2,
				Validator: func(value int) error {
					return FlagValidators(value, PositiveIntValidator)
				},
			},
			NewWidthFlag("wq"),
			tldrFlag,
			schemaFlag,
		}, NewSourceFlags("wq")...), NewGlobalFlags("wq")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := WqCommandValidator(ctx, c); err != nil {
				return err
			}
			return WqCommandAction(ctx, c)
		},
	}
}

// WqCommandValidator performs validation for "wq" and delegates to
// GlobalFlagsValidator.
func WqCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}
