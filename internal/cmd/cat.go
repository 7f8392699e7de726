// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"flag"
	"fmt"
)

type catCommand struct {
	archive FilePath
	path    string
}

func (*catCommand) name() string  { return "cat" }
func (*catCommand) usage() string { return "ARCHIVE PATH" }

func (*catCommand) synopsis() string {
	return "write the contents of the file with exactly the given path to stdout"
}

func (*catCommand) registerFlags(*flag.FlagSet) {}

func (c *catCommand) setArgs(args []string) error {
	err := positionalArgs(args, "ARCHIVE", "PATH")
	if err != nil {
		return err
	}

	c.path = args[1]

	return c.archive.Set(args[0])
}

func (c *catCommand) run(_ context.Context, cfg IO) error {
	root, err := readArchive(string(c.archive))
	if err != nil {
		return err
	}

	file, exists := root.GetFile(c.path)
	if !exists {
		return fmt.Errorf("file %s: %w", c.path, ErrNotFound)
	}

	_, err = cfg.Stdout.Write(file.Contents())
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}
