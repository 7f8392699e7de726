// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"fmt"
	"io"

	"github.com/aibor/includedir/snapshot"
	"github.com/cavaliergopher/cpio"
)

const (
	numLinks = 2

	dirMode  = 0o755
	fileMode = 0o644
)

// Writer writes snapshot entries into a CPIO archive.
type Writer struct {
	cpioWriter *cpio.Writer
}

// NewWriter creates a new archive writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cpio.NewWriter(w)}
}

// Close writes the archive trailer. Flush is called by the underlying closer.
func (w *Writer) Close() error {
	err := w.cpioWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// writeHeader writes the cpio header.
func (w *Writer) writeHeader(hdr *cpio.Header) error {
	if err := w.cpioWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
func (w *Writer) WriteDirectory(path string) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | dirMode,
		Links: numLinks,
	}

	return w.writeHeader(header)
}

// WriteRegular adds a regular file with the given contents to the archive.
func (w *Writer) WriteRegular(path string, contents []byte) error {
	header := &cpio.Header{
		Name: path,
		Mode: cpio.TypeReg | fileMode,
		Size: int64(len(contents)),
	}

	if err := w.writeHeader(header); err != nil {
		return err
	}

	if _, err := w.cpioWriter.Write(contents); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}

// WriteEntry adds the given [snapshot.DirEntry] to the archive. Only the entry
// itself is written, not the children of a directory.
func (w *Writer) WriteEntry(entry snapshot.DirEntry) error {
	if file, isFile := entry.File(); isFile {
		return w.WriteRegular(file.Path(), file.Contents())
	}

	return w.WriteDirectory(entry.Path())
}

// Write writes all descendants of dir in pre-order as a complete archive
// including the trailer.
func Write(w io.Writer, dir snapshot.Dir) error {
	writer := NewWriter(w)

	for entry := range dir.Walk() {
		err := writer.WriteEntry(entry)
		if err != nil {
			return err
		}
	}

	return writer.Close()
}
