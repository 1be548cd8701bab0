package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"filebrowse/internal/browse"
	"filebrowse/internal/config"
	"filebrowse/internal/store"
)

// ListingSource reads the browsing state for a path. The concrete container
// (local scanner, remote client, test stub) stays behind this boundary.
type ListingSource interface {
	Scan(path string, showHidden bool) (browse.Listing, error)
}

// CancelFunc is the externally-owned cancel action. The panel fires it and
// does not interpret any result.
type CancelFunc func()

// --- Model / State ---
type state int

const (
	stateBrowse state = iota
	stateLoading
	stateQuit
)

type FilterState struct {
	filtering  bool
	input      textinput.Model
	query      string
	visibleIdx []int // Mapping: sichtbarer Index -> Row-Index; nil = ungefiltert
}

type Model struct {
	state         state
	cfg           config.Config
	source        ListingSource
	onCancel      CancelFunc
	recent        *store.Recent
	statusMsg     string
	width, height int

	// ready flips on the first WindowSizeMsg; viewport operations before
	// that are no-ops.
	ready    bool
	viewport viewport.Model

	// spinner for the loading state
	spinner spinner.Model

	// current listing, merged row view derived from it
	path      string
	rows      browse.RowSet
	listIndex int

	filter     FilterState
	filterCfg  browse.FilterConfig
	showHidden bool
}

// InitialModel wires the panel to its collaborators. onCancel may be nil.
func InitialModel(cfg config.Config, source ListingSource, onCancel CancelFunc) Model {
	m := Model{
		state:      stateLoading,
		cfg:        cfg,
		source:     source,
		onCancel:   onCancel,
		recent:     store.NewRecent(cfg.RecentLimit),
		path:       cfg.StartPath,
		showHidden: cfg.ShowHidden,
		filterCfg:  browse.DefaultFilterConfig(),
		statusMsg:  "Lade Verzeichnis…",
	}

	fi := textinput.New()
	fi.Placeholder = "Name filtern…"
	fi.CharLimit = 200
	fi.Width = 40
	m.filter.input = fi

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle
	m.spinner = sp

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadListingCmd(m.path))
}

// itemsLen returns the number of rows the list currently shows (after an
// active filter).
func (m Model) itemsLen() int {
	if m.filter.visibleIdx != nil {
		return len(m.filter.visibleIdx)
	}
	return m.rows.Len()
}

// rowAt maps a visible position to its combined-list row.
func (m Model) rowAt(i int) browse.Row {
	if m.filter.visibleIdx != nil {
		return m.rows.At(m.filter.visibleIdx[i])
	}
	return m.rows.At(i)
}

// applyFilter recomputes the visible index mapping from the current query.
func (m *Model) applyFilter() {
	if m.filter.query == "" {
		m.filter.visibleIdx = nil
		return
	}
	m.filter.visibleIdx = browse.Filter(m.rows, m.filter.query, m.filterCfg)
}
