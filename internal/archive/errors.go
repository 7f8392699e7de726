// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
)

var (
	// ErrUnsupportedType is returned if an archive entry is neither a
	// directory nor a regular file.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrShortBody is returned if an entry's body is shorter than its header
	// states.
	ErrShortBody = errors.New("short body")
)
