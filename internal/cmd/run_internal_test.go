// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSourceTree creates a small directory tree and returns its path.
func writeSourceTree(t *testing.T) string {
	t.Helper()

	source := t.TempDir()

	files := map[string]string{
		"README.md":          "hello",
		"notes.txt":          "some notes",
		"src/main.rs":        "fn main(){}",
		"src/util/helper.rs": "pub fn help() {}",
		"src/util/data.txt":  "1,2,3",
		"docs/guide.txt":     "read me",
	}

	for name, content := range files {
		path := filepath.Join(source, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return source
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := Run(context.Background(), args, IO{
		Stdin:  &bytes.Buffer{},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	return result{
		code:   code,
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
}

// packSourceTree packs a fresh source tree and returns the archive path.
func packSourceTree(t *testing.T) string {
	t.Helper()

	archivePath := filepath.Join(t.TempDir(), "tree.cpio")

	res := runCLI(t, "pack", "-o", archivePath, writeSourceTree(t))
	require.Equal(t, 0, res.code, res.stderr)

	return archivePath
}

func TestRun_Find(t *testing.T) {
	archivePath := packSourceTree(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name: "globstar",
			args: []string{"find", archivePath, "**/*.txt"},
			expected: "notes.txt\n" +
				"docs/guide.txt\n" +
				"src/util/data.txt\n",
		},
		{
			name: "single level",
			args: []string{"find", archivePath, "src/*"},
			expected: "src/main.rs\n" +
				"src/util/\n",
		},
		{
			name:     "no match",
			args:     []string{"find", archivePath, "*.go"},
			expected: "",
		},
		{
			name: "yaml",
			args: []string{"find", "-yaml", archivePath, "src/*"},
			expected: "- path: src/main.rs\n" +
				"  type: file\n" +
				"  size: 11\n" +
				"- path: src/util\n" +
				"  type: dir\n",
		},
		{
			name:     "yaml empty",
			args:     []string{"find", "-yaml", archivePath, "*.go"},
			expected: "[]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)
			require.Equal(t, 0, res.code, res.stderr)

			assert.Equal(t, tt.expected, res.stdout)
		})
	}
}

func TestRun_FindInvalidPattern(t *testing.T) {
	archivePath := packSourceTree(t)

	res := runCLI(t, "find", archivePath, "[abc")
	assert.Equal(t, -1, res.code)
	assert.Contains(t, res.stderr, "[abc")
}

func TestRun_Cat(t *testing.T) {
	archivePath := packSourceTree(t)

	res := runCLI(t, "cat", archivePath, "src/util/helper.rs")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "pub fn help() {}", res.stdout)

	res = runCLI(t, "cat", archivePath, "helper.rs")
	assert.Equal(t, -1, res.code)
	assert.Contains(t, res.stderr, ErrNotFound.Error())
	assert.Empty(t, res.stdout)
}

func TestRun_Extract(t *testing.T) {
	archivePath := packSourceTree(t)

	t.Run("all", func(t *testing.T) {
		target := t.TempDir()

		res := runCLI(t, "extract", archivePath, target)
		require.Equal(t, 0, res.code, res.stderr)

		content, err := os.ReadFile(filepath.Join(target, "src", "util", "data.txt"))
		require.NoError(t, err)
		assert.Equal(t, "1,2,3", string(content))

		content, err = os.ReadFile(filepath.Join(target, "README.md"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("sub dir", func(t *testing.T) {
		target := t.TempDir()

		res := runCLI(t, "extract", "-dir", "src", archivePath, target)
		require.Equal(t, 0, res.code, res.stderr)

		content, err := os.ReadFile(filepath.Join(target, "util", "helper.rs"))
		require.NoError(t, err)
		assert.Equal(t, "pub fn help() {}", string(content))

		assert.NoFileExists(t, filepath.Join(target, "README.md"))
	})

	t.Run("missing sub dir", func(t *testing.T) {
		res := runCLI(t, "extract", "-dir", "nope", archivePath, t.TempDir())
		assert.Equal(t, -1, res.code)
		assert.Contains(t, res.stderr, ErrNotFound.Error())
	})
}

func TestRun_PackStdout(t *testing.T) {
	res := runCLI(t, "pack", writeSourceTree(t))
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stdout, "src/util/helper.rs")
	assert.Contains(t, res.stdout, "TRAILER!!!")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("not an archive"), 0o600))

	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{
			name: "help",
			args: []string{"-help"},
			code: 0,
		},
		{
			name:   "no command",
			args:   []string{},
			code:   -1,
			stderr: "no command given",
		},
		{
			name:   "pack missing source",
			args:   []string{"pack", filepath.Join(dir, "missing")},
			code:   -1,
			stderr: "no such file or directory",
		},
		{
			name:   "pack file source",
			args:   []string{"pack", file},
			code:   -1,
			stderr: ErrNotDir.Error(),
		},
		{
			name:   "missing archive",
			args:   []string{"find", filepath.Join(dir, "missing"), "*"},
			code:   -1,
			stderr: "open archive",
		},
		{
			name:   "invalid archive",
			args:   []string{"cat", file, "a"},
			code:   -1,
			stderr: "read archive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, res.code)
			assert.Contains(t, res.stderr, tt.stderr)
		})
	}
}

func TestRun_PackOutputRemovedOnError(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.cpio")

	res := runCLI(t, "pack", "-o", output, filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, -1, res.code)
	assert.NoFileExists(t, output)
}
