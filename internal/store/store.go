package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"filebrowse/internal/browse"
	"filebrowse/internal/infra/logx"
)

// Scanner reads single directory levels from the local file system and turns
// them into browse listings. It is the concrete state container behind the
// UI's ListingSource boundary.
type Scanner struct{}

// Scan reads the directory at path and returns its subdirectories and files
// as two unsorted groups. Dot-prefixed entries are skipped unless showHidden
// is set. Entries that cannot be stat'ed keep their name and lose the
// metadata; a failing ReadDir is returned as an error.
func (s Scanner) Scan(path string, showHidden bool) (browse.Listing, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return browse.Listing{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	dirents, err := os.ReadDir(abs)
	if err != nil {
		return browse.Listing{}, fmt.Errorf("read dir %s: %w", abs, err)
	}

	listing := browse.Listing{Path: abs}
	for _, de := range dirents {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entry := browse.Entry{Name: name}
		if info, err := de.Info(); err == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
		}
		if de.IsDir() {
			listing.Dirs = append(listing.Dirs, entry)
		} else {
			listing.Files = append(listing.Files, entry)
		}
	}

	logx.Debugf("scanned %s: %d dirs, %d files", abs, len(listing.Dirs), len(listing.Files))
	return listing, nil
}
