// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package glob

import (
	"strings"

	"github.com/gobwas/glob"
)

const (
	// Separator is the path separator patterns are compiled for.
	Separator = '/'

	// MaxGlobstars limits the number of "**/" segments in a single pattern.
	// Each of them doubles the number of compiled alternatives.
	MaxGlobstars = 8

	globstar = "**/"
)

// Matcher reports whether a path matches a compiled pattern.
type Matcher interface {
	Match(path string) bool
}

// MatchFunc adapts a function to the [Matcher] interface.
type MatchFunc func(path string) bool

// Match implements [Matcher].
func (f MatchFunc) Match(path string) bool {
	return f(path)
}

// All is a [Matcher] that matches every path.
var All Matcher = MatchFunc(func(string) bool { return true })

// anyOf matches if any of its matchers matches.
type anyOf []glob.Glob

func (a anyOf) Match(path string) bool {
	for _, g := range a {
		if g.Match(path) {
			return true
		}
	}

	return false
}

// Compile compiles the given pattern. It returns a [*PatternError] if the
// pattern is invalid.
//
//nolint:ireturn
func Compile(pattern string) (Matcher, error) {
	variants, err := expandGlobstars(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	matchers := make(anyOf, 0, len(variants))

	for _, variant := range variants {
		g, err := glob.Compile(variant, Separator)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}

		matchers = append(matchers, g)
	}

	if len(matchers) == 1 {
		return matchers[0], nil
	}

	return matchers, nil
}

// MustCompile is like [Compile] but panics if the pattern is invalid.
//
//nolint:ireturn
func MustCompile(pattern string) Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}

	return m
}

// expandGlobstars returns all variants of the pattern with each unescaped
// "**/" segment either present or removed. The engine's "**" always consumes
// at least the following "/", so the variants without it cover the zero
// directories case.
func expandGlobstars(pattern string) ([]string, error) {
	positions := globstarPositions(pattern)
	if len(positions) > MaxGlobstars {
		return nil, ErrTooManyGlobstars
	}

	variants := make([]string, 0, 1<<len(positions))

	for mask := range 1 << len(positions) {
		var (
			builder strings.Builder
			last    int
		)

		for idx, pos := range positions {
			builder.WriteString(pattern[last:pos])

			if mask&(1<<idx) == 0 {
				builder.WriteString(globstar)
			}

			last = pos + len(globstar)
		}

		builder.WriteString(pattern[last:])
		variants = append(variants, builder.String())
	}

	return variants, nil
}

// globstarPositions returns the offsets of all unescaped "**/" segments. A
// segment starts at the beginning of the pattern, after a separator, after
// the "{" of an alternatives list and after a "," inside one. Character
// classes are skipped.
func globstarPositions(pattern string) []int {
	var (
		positions []int
		depth     int
		inClass   bool
		boundary  = true
	)

	for idx := 0; idx < len(pattern); idx++ {
		char := pattern[idx]

		switch {
		case char == '\\':
			idx++
			boundary = false

			continue
		case inClass:
			inClass = char != ']'
			boundary = false

			continue
		case boundary && strings.HasPrefix(pattern[idx:], globstar):
			positions = append(positions, idx)
			idx += len(globstar) - 1

			continue
		}

		switch char {
		case '[':
			inClass = true
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}

		boundary = char == Separator || char == '{' || (char == ',' && depth > 0)
	}

	return positions
}
