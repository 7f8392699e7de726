// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package glob compiles shell style glob patterns into matchers for slash
// separated relative paths.
//
// A "*" matches any run of characters except "/", "?" matches exactly one
// character except "/", "[...]" is a character class and "{a,b}" a list of
// alternatives. A "**" matches across separators and a "**/" segment also
// matches zero directories, so "**/*.txt" matches "a.txt" as well as
// "a/b/c.txt". This holds within alternatives, too: "{x,**/*.txt}" matches
// "a.txt".
package glob
