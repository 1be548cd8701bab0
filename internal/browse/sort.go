package browse

import (
	"sort"
	"strings"
)

// SortEntries orders the slice by display name in a case-insensitive manner.
// Entries whose lowercased names compare equal keep their relative input
// order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

func sortedCopy(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	SortEntries(out)
	return out
}
