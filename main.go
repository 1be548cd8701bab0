package main

import (
	"fmt"
	"os"

	"filebrowse/internal/browse"
	"filebrowse/internal/store"
)

// One-shot lister: prints the merged, sorted listing of a directory the same
// way the panel orders it, directories first. Useful for scripting and for
// eyeballing the ordering without the TUI.
func main() {
	path := "."
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	listing, err := store.Scanner{}.Scan(path, false)
	if err != nil {
		fmt.Println("[lister]: error reading directory:", err)
		os.Exit(1)
	}

	rows := browse.NewRowSet(listing.Dirs, listing.Files)
	fmt.Printf("%s – %d entries\n", listing.Path, rows.Len())
	for i := 0; i < rows.Len(); i++ {
		row := rows.At(i)
		if row.Kind == browse.KindDir {
			fmt.Printf("  %s/\n", row.Entry.Name)
		} else {
			fmt.Printf("  %s\n", row.Entry.Name)
		}
	}
}
