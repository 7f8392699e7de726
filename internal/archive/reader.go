// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/aibor/includedir/internal/builder"
	"github.com/aibor/includedir/snapshot"
	"github.com/cavaliergopher/cpio"
)

// Read reads a CPIO archive and returns its content as snapshot. Entry
// names are normalized relative to the archive root, so "./a" and "/a" both
// become "a". Parent directories are created if the archive lacks them.
// Archives with other entries than directories and regular files are
// rejected with [ErrUnsupportedType].
func Read(r io.Reader) (snapshot.Dir, error) {
	var tree builder.Tree

	reader := cpio.NewReader(r)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return snapshot.Dir{}, fmt.Errorf("read header: %w", err)
		}

		err = readEntry(&tree, reader, hdr)
		if err != nil {
			return snapshot.Dir{}, err
		}
	}

	return tree.Build(), nil
}

func readEntry(tree *builder.Tree, reader io.Reader, hdr *cpio.Header) error {
	switch hdr.Mode & cpio.ModeType {
	case cpio.TypeDir:
		_, err := tree.Mkdir(hdr.Name)
		if err != nil {
			return fmt.Errorf("add directory %s: %w", hdr.Name, err)
		}
	case cpio.TypeReg:
		contents, err := readBody(reader, hdr.Size)
		if err != nil {
			return fmt.Errorf("read body for %s: %w", hdr.Name, err)
		}

		err = tree.AddFile(hdr.Name, contents)
		if err != nil {
			return fmt.Errorf("add file: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, hdr.Name, hdr.Mode)
	}

	return nil
}

// readBody reads exactly size bytes. The buffer grows with the data actually
// read, so the size stated in the header is not allocated up front. Empty
// bodies result in nil contents.
func readBody(reader io.Reader, size int64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}

	contents, err := io.ReadAll(io.LimitReader(reader, size))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if int64(len(contents)) < size {
		return nil, ErrShortBody
	}

	return contents, nil
}
