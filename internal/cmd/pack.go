// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/includedir/internal/archive"
	"github.com/aibor/includedir/internal/builder"
)

const (
	jobsMin = 1
	jobsMax = 256
)

type packCommand struct {
	source FilePath
	output FilePath
	jobs   int
}

func (*packCommand) name() string  { return "pack" }
func (*packCommand) usage() string { return "[flags...] DIR" }

func (*packCommand) synopsis() string {
	return "snapshot a directory into a CPIO archive"
}

func (c *packCommand) registerFlags(flagSet *flag.FlagSet) {
	c.jobs = builder.DefaultReadLimit

	flagSet.Var(
		&c.output,
		"o",
		"write archive to this file instead of stdout",
	)

	flagSet.Var(
		&limitedIntValue{
			Value: &c.jobs,
			min:   jobsMin,
			max:   jobsMax,
		},
		"jobs",
		"number of files to read concurrently",
	)
}

func (c *packCommand) setArgs(args []string) error {
	err := positionalArgs(args, "DIR")
	if err != nil {
		return err
	}

	return c.source.Set(args[0])
}

func (c *packCommand) run(ctx context.Context, cfg IO) error {
	source := string(c.source)

	err := ValidateDirPath(source)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}

	loader := builder.FSLoader{
		FS:        os.DirFS(source),
		ReadLimit: c.jobs,
	}

	var tree builder.Tree

	err = loader.LoadInto(ctx, &tree, ".")
	if err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}

	if c.output == "" {
		return writeArchive(cfg.Stdout, &tree)
	}

	return writeArchiveFile(string(c.output), &tree)
}

func writeArchive(w io.Writer, tree *builder.Tree) error {
	err := archive.Write(w, tree.Build())
	if err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

func writeArchiveFile(path string, tree *builder.Tree) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	err = writeArchive(file, tree)
	if err == nil {
		err = file.Close()
	} else {
		_ = file.Close()
	}

	if err != nil {
		_ = os.Remove(path)
		return err
	}

	slog.Debug("Wrote archive", slog.String("path", path))

	return nil
}
