// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"iter"
	"slices"

	"github.com/aibor/includedir/internal/glob"
)

// Globs lazily walks a directory's descendants in pre-order and yields the
// ones whose path matches a pattern. Each directory's files come before its
// sub-directories, both in their stored order.
//
// A Globs is single-pass. Once consumed, call [Dir.Find] again for a new
// walk. It must not be used by multiple goroutines at the same time, but any
// number of Globs may walk the same tree concurrently.
type Globs struct {
	matcher glob.Matcher
	// Entries still to be visited, the next one last.
	stack []DirEntry
}

func newGlobs(dir Dir, matcher glob.Matcher) *Globs {
	g := &Globs{matcher: matcher}
	g.push(dir)

	return g
}

// push adds the children of dir in reverse order, so they are popped in order.
func (g *Globs) push(dir Dir) {
	for _, child := range slices.Backward(dir.dirs) {
		g.stack = append(g.stack, DirEntryOf(child))
	}

	for _, child := range slices.Backward(dir.files) {
		g.stack = append(g.stack, FileEntry(child))
	}
}

// Next returns the next matching entry. It returns false once the walk is
// exhausted.
func (g *Globs) Next() (DirEntry, bool) {
	for len(g.stack) > 0 {
		last := len(g.stack) - 1
		entry := g.stack[last]
		g.stack[last] = DirEntry{}
		g.stack = g.stack[:last]

		if dir, isDir := entry.Dir(); isDir {
			g.push(dir)
		}

		if g.matcher.Match(entry.Path()) {
			return entry, true
		}
	}

	return DirEntry{}, false
}

// All returns an iterator over the remaining matching entries. It consumes
// the Globs.
func (g *Globs) All() iter.Seq[DirEntry] {
	return func(yield func(DirEntry) bool) {
		for {
			entry, ok := g.Next()
			if !ok || !yield(entry) {
				return
			}
		}
	}
}

// Find compiles the given glob pattern and returns a [Globs] over all
// descendants of the directory whose path relative to the tree's root
// matches. The directory itself is not a candidate. It returns a
// [*PatternError] if the pattern is invalid.
func (d Dir) Find(pattern string) (*Globs, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return newGlobs(d, matcher), nil
}

// Walk returns an iterator over all descendants of the directory in the same
// order as [Dir.Find] yields them. Each iteration starts a new walk.
func (d Dir) Walk() iter.Seq[DirEntry] {
	return func(yield func(DirEntry) bool) {
		for entry := range newGlobs(d, glob.All).All() {
			if !yield(entry) {
				return
			}
		}
	}
}
