// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/vlctlgo/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var (
	cfg config.Type

	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the dataset schema",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}

// NewSourceFlags constructs the flags shared by every command that loads and
// measures a source. params[0] is the command namespace used for config file
// lookups.
func NewSourceFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"F"},
			Usage:   "source format (text, jsonl, auto)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"format", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("format", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "auto",
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		},
		&cli.StringFlag{
			Name:  "split",
			Usage: "text row split mode (para, line)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"split", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("split", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "para",
			Validator: func(value string) error {
				return FlagValidators(value, SplitValidator)
			},
		},
		&cli.StringFlag{
			Name:    "jsonpath",
			Aliases: []string{"j"},
			Usage:   "gjson path extracted from each jsonl document",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"jsonpath", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("jsonpath", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.IntFlag{
			Name:    "estimate",
			Aliases: []string{"e"},
			Usage:   "estimated row height in lines before measurement",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"estimate", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("estimate", altsrc.StringSourcer(cfg.Source)),
			),
			Value: 3,
			Validator: func(value int) error {
				return FlagValidators(value, PositiveIntValidator)
			},
		},
	}

	return
}

// NewWidthFlag constructs the measurement width flag used by the query
// commands. 0 means "use the terminal width, or 80 when not a tty".
func NewWidthFlag(params ...string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "width",
		Aliases: []string{"W"},
		Usage:   "wrap width used for measurement (0 = terminal width)",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(params[0]+"."+"width", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("width", altsrc.StringSourcer(cfg.Source)),
		),
		Value: 0,
	}
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
