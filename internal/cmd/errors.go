// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if help or the version is requested.
	ErrHelp = flag.ErrHelp

	// ErrReadBuildInfo is returned if the build information can not be read.
	ErrReadBuildInfo = errors.New("failed to read build info")

	// ErrEmptyFilePath is returned if a file path flag is empty.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrNotDir is returned if a path is expected to be a directory.
	ErrNotDir = errors.New("not a directory")

	// ErrInvalidArguments is returned if the positional arguments of a
	// command are not as expected.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrNotFound is returned if a path does not exist in a snapshot.
	ErrNotFound = errors.New("not found in snapshot")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
