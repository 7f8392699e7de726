// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"runtime/debug"
	"slices"
	"strings"
)

const (
	name = "includedir"

	usageMessage = `Usage of 'includedir':
    includedir [flags...] command [command flags...] [args...]

Snapshot a directory tree into a CPIO archive and query or extract it:
	includedir pack -o assets.cpio ./assets
	includedir find assets.cpio '**/*.json'
	includedir cat assets.cpio config/app.json
	includedir extract assets.cpio /tmp/assets
	includedir serve -addr 127.0.0.1:8080 assets.cpio

Global flags can also be provided via environment variable INCLUDEDIR_ARGS:
	INCLUDEDIR_ARGS="-debug" includedir find assets.cpio '*'

Global flags can also be provided via file ./.includedir-args, with one
argument per line.
`
)

type flags struct {
	flagSet *flag.FlagSet

	version bool
	debug   bool

	command command
}

func newFlags(output io.Writer) *flags {
	flags := &flags{}

	flags.initFlagset(output)

	return flags
}

// ParseArgs parses the global flags, selects the command by the first
// positional argument and passes the remaining arguments to it.
func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := f.flagSet.Args()

	if len(positionalArgs) < 1 {
		return f.fail("no command given", nil)
	}

	cmd, exists := commands()[positionalArgs[0]]
	if !exists {
		return f.fail("unknown command "+positionalArgs[0], nil)
	}

	err = parseCommandArgs(cmd, positionalArgs[1:], f.flagSet.Output())
	if err != nil {
		return err
	}

	f.command = cmd

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nCommands:")

	all := commands()
	for _, name := range slices.Sorted(maps.Keys(all)) {
		fmt.Fprintf(f.flagSet.Output(), "  %-8s %s\n", name, all[name].synopsis())
	}

	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

// parseCommandArgs parses the command's own flags and positional arguments.
func parseCommandArgs(cmd command, args []string, output io.Writer) error {
	flagSet := flag.NewFlagSet(name+" "+cmd.name(), flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintf(output, "Usage of '%s %s':\n    %s %s %s\n\n%s\n",
			name, cmd.name(), name, cmd.name(), cmd.usage(),
			cmd.synopsis())
		fmt.Fprintln(output, "\nFlags:")
		flagSet.PrintDefaults()
	}

	cmd.registerFlags(flagSet)

	err := flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	err = cmd.setArgs(flagSet.Args())
	if err != nil {
		err = &ParseArgsError{msg: cmd.name(), err: err}
		fmt.Fprintln(output, err.Error())
		flagSet.Usage()

		return err
	}

	return nil
}

// positionalArgs returns an error if the number of args is not as expected.
func positionalArgs(args []string, names ...string) error {
	if len(args) != len(names) {
		return fmt.Errorf("%w: expected %d arguments (%s), got %d",
			ErrInvalidArguments, len(names), strings.Join(names, " "), len(args))
	}

	return nil
}
