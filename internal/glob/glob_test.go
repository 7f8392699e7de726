// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package glob_test

import (
	"strings"
	"testing"

	"github.com/aibor/includedir/internal/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern  string
		matches  []string
		excludes []string
	}{
		{
			pattern:  "*.txt",
			matches:  []string{"a.txt", ".txt"},
			excludes: []string{"dir/a.txt", "a.txt.bak", "a_txt"},
		},
		{
			pattern:  "src/*",
			matches:  []string{"src/main.rs", "src/lib"},
			excludes: []string{"src", "src/lib/mod.rs", "other/main.rs"},
		},
		{
			pattern:  "**/*",
			matches:  []string{"README.md", "src", "src/main.rs", "a/b/c/d"},
			excludes: []string{},
		},
		{
			pattern:  "{README.md,**/*.txt}",
			matches:  []string{"README.md", "a.txt", "a/b/c.txt"},
			excludes: []string{"a/README.md", "a.md"},
		},
		{
			pattern:  "**/*.txt",
			matches:  []string{"a.txt", "a/b.txt", "a/b/c.txt"},
			excludes: []string{"a.md", "a/b.txt/c"},
		},
		{
			pattern:  "a/**/b",
			matches:  []string{"a/b", "a/x/b", "a/x/y/b"},
			excludes: []string{"b", "a/xb", "x/a/b"},
		},
		{
			pattern:  "a/**",
			matches:  []string{"a/b", "a/b/c"},
			excludes: []string{"b/a"},
		},
		{
			pattern:  "?.go",
			matches:  []string{"a.go"},
			excludes: []string{"ab.go", "/.go", "x/a.go"},
		},
		{
			pattern:  "file[0-9].[!c]*",
			matches:  []string{"file1.txt", "file9.h"},
			excludes: []string{"filex.txt", "file1.c", "file1.cpp"},
		},
		{
			pattern:  "*.{md,txt}",
			matches:  []string{"a.md", "b.txt"},
			excludes: []string{"c.go", "d/a.md"},
		},
		{
			pattern:  `\*.txt`,
			matches:  []string{"*.txt"},
			excludes: []string{"a.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			matcher, err := glob.Compile(tt.pattern)
			require.NoError(t, err)

			for _, path := range tt.matches {
				assert.True(t, matcher.Match(path), path)
			}

			for _, path := range tt.excludes {
				assert.False(t, matcher.Match(path), path)
			}
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{
			name:    "unclosed class",
			pattern: "[abc",
		},
		{
			name:    "unclosed class after globstar",
			pattern: "**/[a-",
		},
		{
			name:    "too many globstars",
			pattern: strings.Repeat("**/", glob.MaxGlobstars+1) + "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := glob.Compile(tt.pattern)
			require.ErrorIs(t, err, &glob.PatternError{})

			var patternErr *glob.PatternError

			require.ErrorAs(t, err, &patternErr)
			assert.Equal(t, tt.pattern, patternErr.Pattern)
			assert.Error(t, patternErr.Unwrap())
			assert.Contains(t, err.Error(), tt.pattern)
		})
	}
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() { glob.MustCompile("*") })
	assert.Panics(t, func() { glob.MustCompile("[") })
}

func TestAll(t *testing.T) {
	for _, path := range []string{"", "a", "a/b/c"} {
		assert.True(t, glob.All.Match(path), path)
	}
}
