// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"io/fs"

	"github.com/aibor/includedir/internal/glob"
)

var (
	// ErrNotExist is returned by [Dir.FS] if a name does not exist.
	ErrNotExist = fs.ErrNotExist

	// ErrInvalid is returned by [Dir.FS] for invalid names or operations.
	ErrInvalid = fs.ErrInvalid
)

// PatternError is returned by [Dir.Find] if the pattern is invalid.
type PatternError = glob.PatternError

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
