// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"bytes"
)

// File is a regular file in a snapshot tree.
type File struct {
	path     string
	contents []byte
}

// NewFile creates a new [File]. The path is relative to the tree's root. The
// contents are not copied and must not be modified afterwards.
func NewFile(path string, contents []byte) File {
	return File{
		path:     Clean(path),
		contents: contents,
	}
}

// Path returns the file's path relative to the tree's root.
func (f File) Path() string {
	return f.path
}

// Name returns the last element of the file's path.
func (f File) Name() string {
	return baseName(f.path)
}

// Contents returns the file's contents. The returned slice is shared and must
// not be modified.
func (f File) Contents() []byte {
	return f.contents
}

// Size returns the length of the file's contents.
func (f File) Size() int64 {
	return int64(len(f.contents))
}

// NewReader returns a reader for the file's contents.
func (f File) NewReader() *bytes.Reader {
	return bytes.NewReader(f.contents)
}

// String returns a string representation of the File.
func (f File) String() string {
	return "file " + f.path
}
