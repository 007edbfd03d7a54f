package filesize

import (
	"cmp"
	"slices"
)

// NoLimit keeps every entry of a report.
const NoLimit = -1

// Entry is a single file path and size.
type Entry struct {
	// Path is the file path relative to the scan root.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// String renders the entry as "<path>, <size>".
func (e Entry) String() string {
	return e.Path + ", " + SizeOf(e.Size)
}

// Build sorts sizes by size, largest first unless asc is set, and keeps the
// first limit entries. Equal sizes are ordered by path.
// A negative limit keeps everything and a limit of zero keeps nothing.
func Build(sizes Sizes, asc bool, limit int) []Entry {
	entries := make([]Entry, 0, len(sizes))
	for path, size := range sizes {
		entries = append(entries, Entry{Path: path, Size: size})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		bySize := cmp.Compare(a.Size, b.Size)
		if !asc {
			bySize = -bySize
		}

		if bySize != 0 {
			return bySize
		}

		return cmp.Compare(a.Path, b.Path)
	})

	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	return entries
}

// Lines renders each entry via Entry.String.
func Lines(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}

	return lines
}
