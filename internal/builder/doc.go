// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package builder constructs immutable [snapshot.Dir] trees. Nodes are
// collected in a mutable [Tree] first and converted with [Tree.Build] once
// complete. [FromFS] builds a tree from any [io/fs.FS].
package builder
