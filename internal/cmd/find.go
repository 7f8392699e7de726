// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/aibor/includedir/snapshot"
	"gopkg.in/yaml.v3"
)

const (
	entryTypeFile = "file"
	entryTypeDir  = "dir"
)

type findCommand struct {
	archive FilePath
	pattern string
	yaml    bool
}

// listEntry is the YAML representation of a found entry.
type listEntry struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
	Size int64  `yaml:"size,omitempty"`
}

func newListEntry(entry snapshot.DirEntry) listEntry {
	if file, isFile := entry.File(); isFile {
		return listEntry{
			Path: file.Path(),
			Type: entryTypeFile,
			Size: file.Size(),
		}
	}

	return listEntry{
		Path: entry.Path(),
		Type: entryTypeDir,
	}
}

func (*findCommand) name() string  { return "find" }
func (*findCommand) usage() string { return "[flags...] ARCHIVE PATTERN" }

func (*findCommand) synopsis() string {
	return "print the paths of all entries matching a glob pattern"
}

func (c *findCommand) registerFlags(flagSet *flag.FlagSet) {
	flagSet.BoolVar(
		&c.yaml,
		"yaml",
		c.yaml,
		"print entries as YAML list with type and size",
	)
}

func (c *findCommand) setArgs(args []string) error {
	err := positionalArgs(args, "ARCHIVE", "PATTERN")
	if err != nil {
		return err
	}

	c.pattern = args[1]

	return c.archive.Set(args[0])
}

func (c *findCommand) run(_ context.Context, cfg IO) error {
	root, err := readArchive(string(c.archive))
	if err != nil {
		return err
	}

	globs, err := root.Find(c.pattern)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	if c.yaml {
		return printYAML(cfg.Stdout, globs)
	}

	return printPaths(cfg.Stdout, globs)
}

func printPaths(w io.Writer, globs *snapshot.Globs) error {
	for entry := range globs.All() {
		path := entry.Path()
		if entry.IsDir() {
			path += "/"
		}

		_, err := fmt.Fprintln(w, path)
		if err != nil {
			return fmt.Errorf("print: %w", err)
		}
	}

	return nil
}

func printYAML(w io.Writer, globs *snapshot.Globs) error {
	entries := []listEntry{}
	for entry := range globs.All() {
		entries = append(entries, newListEntry(entry))
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(entries)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return encoder.Close() //nolint:wrapcheck
}
