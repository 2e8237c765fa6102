// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/vlctlgo/internal/meta"
	"github.com/staranto/vlctlgo/internal/tui"
)

// ViewCommandAction is the action handler for the "view" subcommand. It
// loads the source into a list and hands it to the interactive viewer.
// Measurement happens lazily, frame by frame, as the user scrolls.
func ViewCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "view") {
		return nil
	}

	// The initial size is a placeholder; the program replaces it with the
	// real terminal size on the first WindowSizeMsg.
	list, src, err := BuildList(ctx, cmd, 0)
	if err != nil {
		return err
	}

	model := tui.NewModel(list, src.String(), src.Size())
	return tui.Run(model)
}

// ViewCommandBuilder constructs the cli.Command for "view", wiring metadata,
// flags, and the action handler.
func ViewCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "interactive viewer",
		UsageText: `vlctl view [Source] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "overscan",
				Usage: "rows rendered past each edge of the viewport",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("view.overscan", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 2,
				Validator: func(value int) error {
					return FlagValidators(value, PositiveIntValidator)
				},
			},
			NewWidthFlag("view"),
			tldrFlag,
		}, NewSourceFlags("view")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return ViewCommandAction(ctx, c)
		},
	}
}
