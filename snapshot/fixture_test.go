// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot_test

import (
	"github.com/aibor/includedir/snapshot"
)

// testTree returns the following tree:
//
//	README.md
//	notes.txt
//	src/
//	src/main.rs
//	src/util/
//	src/util/helper.rs
//	src/util/data.txt
//	docs/
//	docs/guide.txt
func testTree() snapshot.Dir {
	return snapshot.NewDir("",
		[]snapshot.File{
			snapshot.NewFile("README.md", []byte("hello")),
			snapshot.NewFile("notes.txt", []byte("some notes")),
		},
		[]snapshot.Dir{
			snapshot.NewDir("src",
				[]snapshot.File{
					snapshot.NewFile("src/main.rs", []byte("fn main(){}")),
				},
				[]snapshot.Dir{
					snapshot.NewDir("src/util",
						[]snapshot.File{
							snapshot.NewFile("src/util/helper.rs", []byte("pub fn help() {}")),
							snapshot.NewFile("src/util/data.txt", []byte("1,2,3")),
						},
						nil,
					),
				},
			),
			snapshot.NewDir("docs",
				[]snapshot.File{
					snapshot.NewFile("docs/guide.txt", []byte("read me")),
				},
				nil,
			),
		},
	)
}

func paths(entries []snapshot.DirEntry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Path())
	}

	return result
}
