package xmltree

import (
	"os"
	"path/filepath"
)

// CountItems recursively counts every non-hidden file and folder under root.
// The root itself is not counted. Unreadable subdirectories are skipped
// rather than aborting, so the result is a best-effort count; it uses the
// same hidden-entry predicate as the walker so both agree on what an item is.
func CountItems(root string) int {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return 0
	}

	count := 0
	for _, d := range dirents {
		if IsHidden(d.Name()) {
			continue
		}
		count++
		if d.IsDir() {
			count += CountItems(filepath.Join(root, d.Name()))
		}
	}

	return count
}

// AggregateSize sums the sizes of all non-hidden files under root.
// Directories contribute 0. Like CountItems it skips unreadable sub-entries
// and never aborts.
func AggregateSize(root string) int64 {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return 0
	}

	var total int64
	for _, d := range dirents {
		if IsHidden(d.Name()) {
			continue
		}
		if d.IsDir() {
			total += AggregateSize(filepath.Join(root, d.Name()))
			continue
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
	}

	return total
}
