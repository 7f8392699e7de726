// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

// DirEntry is either a [File] or a [Dir].
type DirEntry struct {
	file  File
	dir   Dir
	isDir bool
}

// FileEntry returns a [DirEntry] for the given [File].
func FileEntry(file File) DirEntry {
	return DirEntry{file: file}
}

// DirEntryOf returns a [DirEntry] for the given [Dir].
func DirEntryOf(dir Dir) DirEntry {
	return DirEntry{dir: dir, isDir: true}
}

// Path returns the path of the referenced entry.
func (e DirEntry) Path() string {
	if e.isDir {
		return e.dir.path
	}

	return e.file.path
}

// Name returns the last element of the referenced entry's path.
func (e DirEntry) Name() string {
	return baseName(e.Path())
}

// IsDir returns true if the entry references a [Dir].
func (e DirEntry) IsDir() bool {
	return e.isDir
}

// File returns the referenced [File], if it is one.
func (e DirEntry) File() (File, bool) {
	return e.file, !e.isDir
}

// Dir returns the referenced [Dir], if it is one.
func (e DirEntry) Dir() (Dir, bool) {
	return e.dir, e.isDir
}

// String returns a string representation of the DirEntry.
func (e DirEntry) String() string {
	if e.isDir {
		return e.dir.String()
	}

	return e.file.String()
}
