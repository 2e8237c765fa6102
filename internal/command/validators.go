// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func FormatValidator(value any) error {
	var validFormatFlagValues = []string{"text", "jsonl", "auto"}
	for _, v := range validFormatFlagValues {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", validFormatFlagValues)
}

func SplitValidator(value any) error {
	var validSplitFlagValues = []string{"para", "line"}
	for _, v := range validSplitFlagValues {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", validSplitFlagValues)
}

func PositiveIntValidator(value any) error {
	if value.(int) <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func NonNegativeIntValidator(value any) error {
	if value.(int) < 0 {
		return errors.New("must not be negative")
	}
	return nil
}
