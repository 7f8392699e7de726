// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aibor/includedir/internal/archive"
	"github.com/aibor/includedir/snapshot"
)

// command is a sub-command of the CLI.
type command interface {
	// name is the name the command is invoked with.
	name() string
	// usage describes the positional arguments.
	usage() string
	// synopsis is a one line description.
	synopsis() string
	// registerFlags adds the command's flags to the given [flag.FlagSet].
	registerFlags(flagSet *flag.FlagSet)
	// setArgs takes the positional arguments that remain after flag parsing.
	setArgs(args []string) error
	// run executes the command.
	run(ctx context.Context, cfg IO) error
}

// commands returns new instances of all commands by name.
func commands() map[string]command {
	all := []command{
		&packCommand{},
		&findCommand{},
		&catCommand{},
		&extractCommand{},
		&serveCommand{},
	}

	byName := make(map[string]command, len(all))
	for _, cmd := range all {
		byName[cmd.name()] = cmd
	}

	return byName
}

// readArchive reads the snapshot stored in the archive file at path.
func readArchive(path string) (snapshot.Dir, error) {
	file, err := os.Open(path)
	if err != nil {
		return snapshot.Dir{}, fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	dir, err := archive.Read(file)
	if err != nil {
		return snapshot.Dir{}, fmt.Errorf("read archive %s: %w", path, err)
	}

	slog.Debug("Read archive",
		slog.String("path", path),
		slog.Int("files", len(dir.Files())),
		slog.Int("dirs", len(dir.Dirs())))

	return dir, nil
}

// subDir returns the directory of root with the given path. The empty path
// and "." refer to root itself.
func subDir(root snapshot.Dir, path string) (snapshot.Dir, error) {
	if snapshot.Clean(path) == "" {
		return root, nil
	}

	dir, exists := root.GetDir(path)
	if !exists {
		return snapshot.Dir{}, fmt.Errorf("directory %s: %w", path, ErrNotFound)
	}

	return dir, nil
}
