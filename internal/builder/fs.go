// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package builder

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/aibor/includedir/snapshot"
	"golang.org/x/sync/errgroup"
)

// DefaultReadLimit is the default number of files [FromFS] reads
// concurrently.
const DefaultReadLimit = 8

// FSLoader loads a directory of an [fs.FS] into a [Tree].
type FSLoader struct {
	// FS to load from.
	FS fs.FS

	// ReadLimit limits the number of concurrent file reads. If not positive,
	// [DefaultReadLimit] is used.
	ReadLimit int
}

// FromFS loads the directory root of fsys and returns it as snapshot. Paths
// in the snapshot are relative to root.
func FromFS(ctx context.Context, fsys fs.FS, root string) (snapshot.Dir, error) {
	loader := FSLoader{FS: fsys}

	var tree Tree

	err := loader.LoadInto(ctx, &tree, root)
	if err != nil {
		return snapshot.Dir{}, err
	}

	return tree.Build(), nil
}

// LoadInto adds all directories and regular files below root to the tree.
// Other file types, like symbolic links, are skipped. File contents are read
// concurrently. The first failed read cancels the walk and all pending reads
// and is returned.
func (l *FSLoader) LoadInto(ctx context.Context, tree *Tree, root string) error {
	limit := l.ReadLimit
	if limit <= 0 {
		limit = DefaultReadLimit
	}

	readers, ctx := errgroup.WithContext(ctx)
	readers.SetLimit(limit)

	walkErr := fs.WalkDir(l.FS, root, func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		rel := relativePath(root, name)

		switch {
		case entry.IsDir():
			_, err := tree.Mkdir(rel)
			if err != nil {
				return &PathError{Op: "mkdir", Path: name, Err: err}
			}
		case rel == "":
			return &PathError{Op: "load", Path: name, Err: ErrNodeNotDir}
		case entry.Type().IsRegular():
			node, err := l.addFile(tree, rel)
			if err != nil {
				return &PathError{Op: "add", Path: name, Err: err}
			}

			readers.Go(func() error {
				return l.read(ctx, name, node)
			})
		default:
			slog.Debug("Skipping unsupported file type",
				slog.String("path", name),
				slog.String("type", entry.Type().String()))
		}

		return nil
	})

	// A failed read cancels the walk, so its error takes precedence over the
	// resulting cancellation.
	readErr := readers.Wait()
	if readErr != nil {
		return readErr
	}

	if walkErr != nil {
		return fmt.Errorf("walk %s: %w", root, walkErr)
	}

	return nil
}

func (*FSLoader) addFile(tree *Tree, name string) (*TreeNode, error) {
	dir, base := path.Split(name)

	parent, err := tree.Mkdir(dir)
	if err != nil {
		return nil, err
	}

	return parent.AddFile(base, nil)
}

func (l *FSLoader) read(ctx context.Context, name string, node *TreeNode) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	contents, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	node.Contents = contents

	slog.Debug("Loaded file",
		slog.String("path", name),
		slog.Int("size", len(contents)))

	return nil
}

func relativePath(root, name string) string {
	if root == "." {
		return name
	}

	rel := strings.TrimPrefix(name, root)

	return strings.TrimPrefix(rel, "/")
}
