package xmltree

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator builds the name comparator: case-insensitive, with numeric
// substrings compared by value so "file2" sorts before "file10".
// Collators carry internal buffers and are not safe for concurrent use, so
// each Builder owns its own instance.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
}

// SortEntries orders one directory's children for emission: directories
// first, then natural name order within each group. The ordering is applied
// per listing, never globally across the tree.
func SortEntries(entries []Entry, col *collate.Collator) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
}
