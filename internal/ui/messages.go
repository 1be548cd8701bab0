package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"filebrowse/internal/browse"
)

// ---------- Messages / Cmds ----------
type listingMsg struct {
	listing browse.Listing
	err     error
}

func (m Model) loadListingCmd(path string) tea.Cmd {
	source := m.source
	showHidden := m.showHidden
	return func() tea.Msg {
		listing, err := source.Scan(path, showHidden)
		return listingMsg{listing: listing, err: err}
	}
}
