package browse

import "time"

// Entry is one item of a directory listing. Name is the display and sort
// key; the remaining fields are carried through untouched for rendering.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Listing is the browsing state for one path: its subdirectories and files
// as two separate, unordered collections.
type Listing struct {
	Path  string
	Dirs  []Entry
	Files []Entry
}

// Total returns the number of rows a merged view of the listing will have.
func (l Listing) Total() int {
	return len(l.Dirs) + len(l.Files)
}
