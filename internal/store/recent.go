package store

// Recent keeps the most recently opened file paths, newest first. Re-opening
// a path moves it to the front instead of duplicating it. The list lives in
// memory only and is capped at a fixed limit.
type Recent struct {
	limit int
	paths []string
}

// NewRecent returns a tracker holding at most limit paths. A non-positive
// limit falls back to 5.
func NewRecent(limit int) *Recent {
	if limit <= 0 {
		limit = 5
	}
	return &Recent{limit: limit}
}

// Add records path as the most recently opened file.
func (r *Recent) Add(path string) {
	for i, p := range r.paths {
		if p == path {
			r.paths = append(r.paths[:i], r.paths[i+1:]...)
			break
		}
	}
	r.paths = append([]string{path}, r.paths...)
	if len(r.paths) > r.limit {
		r.paths = r.paths[:r.limit]
	}
}

// Paths returns the tracked paths, newest first. The returned slice is a
// copy, safe for the caller to hold across updates.
func (r *Recent) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Len reports how many paths are tracked.
func (r *Recent) Len() int { return len(r.paths) }
