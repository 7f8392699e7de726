// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package snapshot provides an immutable in-memory snapshot of a directory
// tree. It is intended to be used to ship data alongside a program without
// depending on the original source tree at run time.
//
// A tree consists of [Dir] and [File] values. Both are small handles that can
// be copied freely; they share the underlying data. Once built, a tree is
// never modified, so all queries are safe for concurrent use.
//
// Entries can be looked up by their exact path ([Dir.GetFile], [Dir.GetDir],
// [Dir.Contains]) or searched with glob patterns ([Dir.Find]). A [Dir] can be
// written to a real file system with [Dir.Extract] or used as [io/fs.FS] with
// [Dir.FS].
package snapshot
