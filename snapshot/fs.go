// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"io/fs"
	"slices"
	"strings"
)

var (
	_ fs.FS         = (*FS)(nil)
	_ fs.ReadFileFS = (*FS)(nil)
	_ fs.ReadDirFS  = (*FS)(nil)
	_ fs.StatFS     = (*FS)(nil)
)

// FS is a read-only [fs.FS] view of a [Dir]. Names are relative to the
// [Dir], not to the tree's root. Create it with [Dir.FS].
type FS struct {
	root Dir
}

// FS returns an [fs.FS] view of the directory.
func (d Dir) FS() *FS {
	return &FS{root: d}
}

// Open implements [fs.FS].
func (fsys *FS) Open(name string) (fs.File, error) {
	entry, err := fsys.find("open", name)
	if err != nil {
		return nil, err
	}

	return newOpenFile(entry), nil
}

// ReadFile implements [fs.ReadFileFS]. The returned slice is a copy.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	entry, err := fsys.find("read", name)
	if err != nil {
		return nil, err
	}

	file, isFile := entry.File()
	if !isFile {
		return nil, &PathError{Op: "read", Path: name, Err: ErrInvalid}
	}

	return slices.Clone(file.contents), nil
}

// ReadDir implements [fs.ReadDirFS]. Entries are sorted by name.
func (fsys *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	entry, err := fsys.find("readdir", name)
	if err != nil {
		return nil, err
	}

	dir, isDir := entry.Dir()
	if !isDir {
		return nil, &PathError{Op: "readdir", Path: name, Err: ErrInvalid}
	}

	return dirEntries(dir), nil
}

// Stat implements [fs.StatFS].
func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	entry, err := fsys.find("stat", name)
	if err != nil {
		return nil, err
	}

	return fileInfo{entry}, nil
}

// find resolves the name element by element starting at the root.
func (fsys *FS) find(op, name string) (DirEntry, error) {
	if !fs.ValidPath(name) {
		return DirEntry{}, &PathError{Op: op, Path: name, Err: ErrInvalid}
	}

	current := DirEntryOf(fsys.root)
	if name == "." {
		return current, nil
	}

	for element := range strings.SplitSeq(name, "/") {
		dir, isDir := current.Dir()
		if !isDir {
			return DirEntry{}, &PathError{Op: op, Path: name, Err: ErrNotExist}
		}

		child, exists := dir.child(element)
		if !exists {
			return DirEntry{}, &PathError{Op: op, Path: name, Err: ErrNotExist}
		}

		current = child
	}

	return current, nil
}

// child returns the direct child with the given base name.
func (d Dir) child(name string) (DirEntry, bool) {
	for _, file := range d.files {
		if file.Name() == name {
			return FileEntry(file), true
		}
	}

	for _, dir := range d.dirs {
		if dir.Name() == name {
			return DirEntryOf(dir), true
		}
	}

	return DirEntry{}, false
}
