// Package xmltree walks a directory tree and serializes its structure into a
// well-formed, escaped XML document.
//
// The walk is depth-first and deterministic: hidden entries (names starting
// with ".") are excluded at every level, directories sort before files, and
// names within each group are ordered with case-insensitive natural
// comparison. Output is accumulated into a single string; either the complete
// document is produced or the build fails with a *ReadError.
package xmltree

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry describes one file or directory encountered during traversal.
type Entry struct {
	// Name is the final path component
	Name string

	// Path is the full path to the entry
	Path string

	// IsDir is resolved once at listing time and used consistently for both
	// sorting and tag emission
	IsDir bool

	// SizeBytes is the file size; always 0 for directories and for files
	// whose metadata could not be read
	SizeBytes int64

	// ModifiedAt is the modification time; zero when it could not be read,
	// in which case formatting substitutes a fallback instant
	ModifiedAt time.Time
}

// IsHidden reports whether name refers to a hidden entry.
// Hidden-ness is a simple leading-dot predicate, not a pattern filter.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ListChildren returns the immediate non-hidden children of dir.
// It fails with a *ReadError if dir cannot be opened or enumerated.
//
// When withMetadata is true, size and modification time are resolved for
// each file. Metadata resolution failures for individual entries never abort
// the listing; the affected fields stay at their zero values.
func ListChildren(dir string, withMetadata bool) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ReadError{Path: dir, Err: err}
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if IsHidden(name) {
			continue
		}

		entry := Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: d.IsDir(),
		}

		if withMetadata && !entry.IsDir {
			if info, err := d.Info(); err == nil {
				entry.SizeBytes = info.Size()
				entry.ModifiedAt = info.ModTime()
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
