// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package builder

import (
	"errors"
	"io/fs"
)

var (
	// ErrNodeNotDir is returned if a tree node is supposed to be a directory
	// but is not.
	ErrNodeNotDir = errors.New("tree node is not a directory")

	// ErrNodeNotExists is returned if a tree node that is looked up does not
	// exist.
	ErrNodeNotExists = errors.New("tree node does not exist")

	// ErrNodeExists is returned if a tree node exists that was not expected.
	ErrNodeExists = errors.New("tree node already exists")

	// ErrInvalidName is returned if a node name is empty or contains a
	// separator.
	ErrInvalidName = errors.New("invalid node name")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
