// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
)

type extractCommand struct {
	archive FilePath
	target  FilePath
	dir     string
}

func (*extractCommand) name() string  { return "extract" }
func (*extractCommand) usage() string { return "[flags...] ARCHIVE TARGET" }

func (*extractCommand) synopsis() string {
	return "write the snapshot's files and directories into a directory"
}

func (c *extractCommand) registerFlags(flagSet *flag.FlagSet) {
	flagSet.StringVar(
		&c.dir,
		"dir",
		c.dir,
		"extract only the directory with exactly this path",
	)
}

func (c *extractCommand) setArgs(args []string) error {
	err := positionalArgs(args, "ARCHIVE", "TARGET")
	if err != nil {
		return err
	}

	err = c.archive.Set(args[0])
	if err != nil {
		return err
	}

	return c.target.Set(args[1])
}

func (c *extractCommand) run(_ context.Context, _ IO) error {
	root, err := readArchive(string(c.archive))
	if err != nil {
		return err
	}

	dir, err := subDir(root, c.dir)
	if err != nil {
		return err
	}

	slog.Debug("Extracting",
		slog.String("dir", dir.Path()),
		slog.String("target", string(c.target)))

	err = dir.Extract(string(c.target))
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	return nil
}
