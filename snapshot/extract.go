// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"os"
	"path/filepath"
)

const (
	extractDirMode  = 0o755
	extractFileMode = 0o644
)

// Extract writes the directory's files and sub-directories into target. The
// target directory and all missing parents are created.
//
// Each child is written as target joined with its base name, so the tree
// below the directory is reproduced level by level. Existing files are
// truncated and overwritten. Each file is synced before the next one is
// written.
//
// The first error aborts the extraction and is returned as is. Files and
// directories written up to that point are not removed.
func (d Dir) Extract(target string) error {
	err := os.MkdirAll(target, extractDirMode)
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, file := range d.files {
		err := writeFile(filepath.Join(target, file.Name()), file.contents)
		if err != nil {
			return err
		}
	}

	for _, dir := range d.dirs {
		err := dir.Extract(filepath.Join(target, dir.Name()))
		if err != nil {
			return err
		}
	}

	return nil
}

//nolint:wrapcheck
func writeFile(name string, contents []byte) error {
	file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, extractFileMode)
	if err != nil {
		return err
	}

	_, err = file.Write(contents)
	if err == nil {
		err = file.Sync()
	}

	if err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
