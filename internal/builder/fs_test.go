// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package builder_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/aibor/includedir/internal/builder"
	"github.com/aibor/includedir/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md":          &fstest.MapFile{Data: []byte("hello")},
		"src/main.rs":        &fstest.MapFile{Data: []byte("fn main(){}")},
		"src/util/helper.rs": &fstest.MapFile{Data: []byte("pub fn help() {}")},
		"empty":              &fstest.MapFile{Mode: fs.ModeDir},
		"dev":                &fstest.MapFile{Mode: fs.ModeDevice},
	}
}

func collectPaths(dir snapshot.Dir) []string {
	var result []string
	for entry := range dir.Walk() {
		result = append(result, entry.Path())
	}

	return result
}

func TestFromFS(t *testing.T) {
	root, err := builder.FromFS(context.Background(), testFS(), ".")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"README.md", "empty", "src", "src/main.rs", "src/util", "src/util/helper.rs"},
		collectPaths(root),
	)

	file, exists := root.GetFile("src/util/helper.rs")
	require.True(t, exists)
	assert.Equal(t, "pub fn help() {}", string(file.Contents()))

	assert.False(t, root.Contains("dev"), "unsupported types are skipped")
}

func TestFromFS_SubDir(t *testing.T) {
	root, err := builder.FromFS(context.Background(), testFS(), "src")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"main.rs", "util", "util/helper.rs"},
		collectPaths(root),
	)
}

func TestFromFS_ReadLimit(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		fsys["dir/"+name] = &fstest.MapFile{Data: []byte(name)}
	}

	loader := builder.FSLoader{FS: fsys, ReadLimit: 2}

	var tree builder.Tree

	err := loader.LoadInto(context.Background(), &tree, ".")
	require.NoError(t, err)

	root := tree.Build()
	dir, exists := root.GetDir("dir")
	require.True(t, exists)
	require.Len(t, dir.Files(), 10)

	for _, file := range dir.Files() {
		assert.Equal(t, file.Name(), string(file.Contents()))
	}
}

var errOpen = errors.New("open failed")

// failingFS fails opening the file with the given name.
type failingFS struct {
	fs.FS
	name string
}

func (f failingFS) Open(name string) (fs.File, error) {
	if name == f.name {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errOpen}
	}

	return f.FS.Open(name) //nolint:wrapcheck
}

func manyFilesFS(count int) fstest.MapFS {
	fsys := fstest.MapFS{}
	for idx := range count {
		name := fmt.Sprintf("a%03d", idx)
		fsys[name] = &fstest.MapFile{Data: []byte(name)}
	}

	return fsys
}

func TestFromFS_Errors(t *testing.T) {
	tests := []struct {
		name        string
		fsys        fs.FS
		root        string
		ctx         func() context.Context
		expectedErr error
	}{
		{
			name:        "missing root",
			fsys:        testFS(),
			root:        "missing",
			expectedErr: fs.ErrNotExist,
		},
		{
			name:        "root is a file",
			fsys:        testFS(),
			root:        "README.md",
			expectedErr: builder.ErrNodeNotDir,
		},
		{
			name:        "failed read among many",
			fsys:        failingFS{FS: manyFilesFS(200), name: "a000"},
			root:        ".",
			expectedErr: errOpen,
		},
		{
			name:        "failed read of last file",
			fsys:        failingFS{FS: manyFilesFS(200), name: "a199"},
			root:        ".",
			expectedErr: errOpen,
		},
		{
			name: "cancelled",
			fsys: testFS(),
			root: ".",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				return ctx
			},
			expectedErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			_, err := builder.FromFS(ctx, tt.fsys, tt.root)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestFromFS_RoundTripThroughFS(t *testing.T) {
	root, err := builder.FromFS(context.Background(), testFS(), ".")
	require.NoError(t, err)

	again, err := builder.FromFS(context.Background(), root.FS(), ".")
	require.NoError(t, err)

	assert.Equal(t, collectPaths(root), collectPaths(again))
	assert.True(t, slices.EqualFunc(root.Files(), again.Files(), func(a, b snapshot.File) bool {
		return a.Path() == b.Path() && string(a.Contents()) == string(b.Contents())
	}))
}
