// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"bytes"
	"io"
	"io/fs"
	"slices"
	"strings"
	"time"
)

const (
	fsFileMode = 0o444
	fsDirMode  = fs.ModeDir | 0o555
)

var (
	_ fs.FileInfo = fileInfo{}
	_ fs.DirEntry = fileInfo{}
)

// fileInfo implements [fs.FileInfo] and [fs.DirEntry] for a [DirEntry].
type fileInfo struct {
	entry DirEntry
}

func (i fileInfo) Name() string {
	name := i.entry.Name()
	if name == "" {
		return "."
	}

	return name
}

func (i fileInfo) Size() int64 {
	file, isFile := i.entry.File()
	if !isFile {
		return 0
	}

	return file.Size()
}

func (i fileInfo) Mode() fs.FileMode {
	if i.entry.IsDir() {
		return fsDirMode
	}

	return fsFileMode
}

func (i fileInfo) Type() fs.FileMode          { return i.Mode().Type() }
func (i fileInfo) IsDir() bool                { return i.entry.IsDir() }
func (fileInfo) ModTime() time.Time           { return time.Time{} }
func (i fileInfo) Sys() any                   { return i.entry }
func (i fileInfo) Info() (fs.FileInfo, error) { return i, nil }
func (i fileInfo) String() string             { return fs.FormatFileInfo(i) }

func dirEntries(dir Dir) []fs.DirEntry {
	entries := make([]fs.DirEntry, 0, len(dir.files)+len(dir.dirs))

	for _, entry := range dir.Entries() {
		entries = append(entries, fileInfo{entry})
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries
}

var (
	_ fs.File        = (*openFile)(nil)
	_ fs.ReadDirFile = (*openFile)(nil)
	_ io.ReaderAt    = (*openFile)(nil)
	_ io.Seeker      = (*openFile)(nil)
)

type openFile struct {
	info    fileInfo
	reader  *bytes.Reader
	entries []fs.DirEntry
	offset  int
}

func newOpenFile(entry DirEntry) *openFile {
	f := &openFile{info: fileInfo{entry}}

	if dir, isDir := entry.Dir(); isDir {
		f.entries = dirEntries(dir)
	} else {
		file, _ := entry.File()
		f.reader = file.NewReader()
	}

	return f
}

// Stat implements [fs.File].
func (f *openFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Read implements [fs.File].
func (f *openFile) Read(b []byte) (int, error) {
	if f.reader == nil {
		return 0, f.pathError("read", ErrInvalid)
	}

	return f.reader.Read(b) //nolint:wrapcheck
}

// ReadAt implements [io.ReaderAt].
func (f *openFile) ReadAt(b []byte, offset int64) (int, error) {
	if f.reader == nil {
		return 0, f.pathError("read", ErrInvalid)
	}

	return f.reader.ReadAt(b, offset) //nolint:wrapcheck
}

// Seek implements [io.Seeker].
func (f *openFile) Seek(offset int64, whence int) (int64, error) {
	if f.reader == nil {
		return 0, f.pathError("seek", ErrInvalid)
	}

	return f.reader.Seek(offset, whence) //nolint:wrapcheck
}

// Close implements [fs.File].
func (*openFile) Close() error {
	return nil
}

// ReadDir implements [fs.ReadDirFile].
func (f *openFile) ReadDir(count int) ([]fs.DirEntry, error) {
	if !f.info.IsDir() {
		return nil, f.pathError("readdir", ErrInvalid)
	}

	start := f.offset
	end := len(f.entries)
	available := end - start

	if available == 0 && count > 0 {
		return nil, io.EOF
	}

	if count > 0 && available > count {
		end = start + count
	}

	f.offset = end

	return f.entries[start:end], nil
}

func (f *openFile) pathError(op string, err error) error {
	return &PathError{Op: op, Path: f.info.entry.Path(), Err: err}
}
