// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package builder

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/aibor/includedir/snapshot"
)

// TreeNode is a single file tree node.
type TreeNode struct {
	// Contents of a regular file. Nil for directories.
	Contents []byte

	isDir    bool
	children map[string]*TreeNode
}

// String returns a string representation of the TreeNode.
func (n *TreeNode) String() string {
	if n.isDir {
		return fmt.Sprintf("directory (% s)", slices.Sorted(maps.Keys(n.children)))
	}

	return fmt.Sprintf("regular file (%d bytes)", len(n.Contents))
}

// IsDir returns true if the [TreeNode] is a directory.
func (n *TreeNode) IsDir() bool {
	return n.isDir
}

// AddFile adds a new regular file [TreeNode] child.
func (n *TreeNode) AddFile(name string, contents []byte) (*TreeNode, error) {
	return n.AddNode(name, &TreeNode{Contents: contents})
}

// AddDirectory adds a new directory [TreeNode] child.
func (n *TreeNode) AddDirectory(name string) (*TreeNode, error) {
	return n.AddNode(name, &TreeNode{isDir: true})
}

// AddNode adds an arbitrary [TreeNode] as child. If a child with the name
// exists already, it is returned along with [ErrNodeExists].
func (n *TreeNode) AddNode(name string, node *TreeNode) (*TreeNode, error) {
	if !n.isDir {
		return nil, ErrNodeNotDir
	}

	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return nil, ErrInvalidName
	}

	if existing, exists := n.children[name]; exists {
		return existing, ErrNodeExists
	}

	if n.children == nil {
		n.children = make(map[string]*TreeNode)
	}

	n.children[name] = node

	return node, nil
}

// GetNode gets the child [TreeNode] for the given name. Returns
// [ErrNodeNotExists] if it doesn't exist.
func (n *TreeNode) GetNode(name string) (*TreeNode, error) {
	if !n.isDir {
		return nil, ErrNodeNotDir
	}

	node, exists := n.children[name]
	if !exists {
		return nil, ErrNodeNotExists
	}

	return node, nil
}

// build converts the directory node and all its descendants. Children are
// ordered by name.
func (n *TreeNode) build(dirPath string) snapshot.Dir {
	var (
		files []snapshot.File
		dirs  []snapshot.Dir
	)

	for _, name := range slices.Sorted(maps.Keys(n.children)) {
		child := n.children[name]
		childPath := path.Join(dirPath, name)

		if child.isDir {
			dirs = append(dirs, child.build(childPath))
		} else {
			files = append(files, snapshot.NewFile(childPath, child.Contents))
		}
	}

	return snapshot.NewDir(dirPath, files, dirs)
}
