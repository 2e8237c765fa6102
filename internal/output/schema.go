// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"sort"
)

// SchemaEntry describes one key a query command puts in its dataset.
type SchemaEntry struct {
	Key  string
	Desc string
}

// DumpSchema prints a sorted list of dataset keys for the named command.
func DumpSchema(name string, entries []SchemaEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	fmt.Println("Schema for", name, "--")

	width := 0
	for _, e := range entries {
		if len(e.Key) > width {
			width = len(e.Key)
		}
	}

	for _, e := range entries {
		fmt.Printf("%-*s  %s\n", width, e.Key, e.Desc)
	}

	fmt.Println("")
	fmt.Println("These keys are directly available to the --attrs, --filter and --sort flags.")
}
