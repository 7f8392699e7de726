// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"path"
	"path/filepath"
)

// Clean returns the normalized form of a relative path as it is stored in a
// tree: slash separated, without redundant elements. The root is the empty
// string.
func Clean(name string) string {
	cleaned := path.Clean(filepath.ToSlash(name))
	if cleaned == "." {
		return ""
	}

	return cleaned
}

// baseName returns the last element of a normalized path.
func baseName(name string) string {
	if name == "" {
		return ""
	}

	return path.Base(name)
}
