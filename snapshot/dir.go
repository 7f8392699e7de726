// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

// Dir is a directory in a snapshot tree with its ordered child files and
// directories.
type Dir struct {
	path  string
	files []File
	dirs  []Dir
}

// NewDir creates a new [Dir]. The path is relative to the tree's root, the
// root itself has the empty path. The caller is responsible for passing
// children whose paths are prefixed by path and are distinct. The slices are
// not copied and must not be modified afterwards.
func NewDir(path string, files []File, dirs []Dir) Dir {
	return Dir{
		path:  Clean(path),
		files: files,
		dirs:  dirs,
	}
}

// Path returns the directory's path relative to the tree's root.
func (d Dir) Path() string {
	return d.path
}

// Name returns the last element of the directory's path. It is empty for the
// root.
func (d Dir) Name() string {
	return baseName(d.path)
}

// Files returns the direct child files. The returned slice is shared and must
// not be modified.
func (d Dir) Files() []File {
	return d.files
}

// Dirs returns the direct child directories. The returned slice is shared and
// must not be modified.
func (d Dir) Dirs() []Dir {
	return d.dirs
}

// Entries returns all direct children, files first.
func (d Dir) Entries() []DirEntry {
	entries := make([]DirEntry, 0, len(d.files)+len(d.dirs))

	for _, file := range d.files {
		entries = append(entries, FileEntry(file))
	}

	for _, dir := range d.dirs {
		entries = append(entries, DirEntryOf(dir))
	}

	return entries
}

// String returns a string representation of the Dir.
func (d Dir) String() string {
	return "dir " + d.path
}

// Contains returns true if there is a file or directory with exactly the
// given path anywhere below the directory.
func (d Dir) Contains(path string) bool {
	_, isFile := d.GetFile(path)
	if isFile {
		return true
	}

	_, isDir := d.GetDir(path)

	return isDir
}

// GetDir returns the directory with exactly the given path. The search is
// depth-first, each child directory is compared before its own subtree is
// searched. The directory itself is never returned, not even for its own
// path.
func (d Dir) GetDir(path string) (Dir, bool) {
	return d.getDir(Clean(path))
}

func (d Dir) getDir(path string) (Dir, bool) {
	for _, dir := range d.dirs {
		if dir.path == path {
			return dir, true
		}

		if found, exists := dir.getDir(path); exists {
			return found, true
		}
	}

	return Dir{}, false
}

// GetFile returns the file with exactly the given path. The direct files are
// compared first, then the child directories are searched depth-first in
// their order.
func (d Dir) GetFile(path string) (File, bool) {
	cleaned := Clean(path)
	if cleaned == "" {
		return File{}, false
	}

	return d.getFile(cleaned)
}

func (d Dir) getFile(path string) (File, bool) {
	for _, file := range d.files {
		if file.path == path {
			return file, true
		}
	}

	for _, dir := range d.dirs {
		if found, exists := dir.getFile(path); exists {
			return found, true
		}
	}

	return File{}, false
}
