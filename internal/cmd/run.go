// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newFlagsFrom(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.ParseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help or version is requested. So exit
	// without error in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	if errors.Is(err, context.Canceled) {
		slog.Warn("Cancelled")
		return -1
	}

	slog.Error(err.Error())

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	slog.SetDefault(newLogger(cfg.Stderr, false))

	flags, err := newFlagsFrom(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	slog.SetDefault(newLogger(cfg.Stderr, flags.debug).
		With(slog.String("command", flags.command.name())))

	slog.Debug("Running command")

	err = flags.command.run(ctx, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
