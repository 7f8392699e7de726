// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package builder

import (
	"errors"
	"path"
	"strings"

	"github.com/aibor/includedir/snapshot"
)

// Tree collects nodes for a new snapshot tree. The zero value is an empty
// tree ready to use.
type Tree struct {
	// Do not access directly! Always use [Tree.GetRoot] to access the root
	// node to ensure it exists.
	root *TreeNode
}

// GetRoot returns the root node of the tree.
func (t *Tree) GetRoot() *TreeNode {
	if t.root == nil {
		t.root = &TreeNode{isDir: true}
	}

	return t.root
}

// GetNode returns the node for the given path. Returns [ErrNodeNotExists] if
// the node does not exist.
func (t *Tree) GetNode(name string) (*TreeNode, error) {
	cleaned := clean(name)
	if cleaned == "" {
		return t.GetRoot(), nil
	}

	dir, base := path.Split(cleaned)

	parent, err := t.GetNode(dir)
	if err != nil {
		return nil, err
	}

	return parent.GetNode(base)
}

// Mkdir adds a directory node for the given path. Non existing parents are
// created recursively. If any of the parents exists but is not a directory
// [ErrNodeNotDir] is returned.
func (t *Tree) Mkdir(name string) (*TreeNode, error) {
	cleaned := clean(name)
	if cleaned == "" {
		return t.GetRoot(), nil
	}

	dir, base := path.Split(cleaned)

	parent, err := t.Mkdir(dir)
	if err != nil {
		return nil, err
	}

	node, err := parent.AddDirectory(base)
	if errors.Is(err, ErrNodeExists) {
		if !node.IsDir() {
			return nil, ErrNodeNotDir
		}

		err = nil
	}

	return node, err
}

// AddFile adds a regular file node with the given contents. Missing parents
// are created. The contents are not copied.
func (t *Tree) AddFile(name string, contents []byte) error {
	dir, base := path.Split(clean(name))

	parent, err := t.Mkdir(dir)
	if err != nil {
		return &PathError{Op: "add", Path: name, Err: err}
	}

	_, err = parent.AddFile(base, contents)
	if err != nil {
		return &PathError{Op: "add", Path: name, Err: err}
	}

	return nil
}

// clean normalizes the path relative to the tree's root. A leading separator
// is dropped.
func clean(name string) string {
	return strings.TrimLeft(snapshot.Clean(name), "/")
}

// Build returns the immutable snapshot of the tree. The [Tree] must not be
// modified afterwards, as file contents are shared.
func (t *Tree) Build() snapshot.Dir {
	return t.GetRoot().build("")
}
