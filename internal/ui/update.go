package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"filebrowse/internal/browse"
	"filebrowse/internal/infra/logx"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.recalcViewport()
		m.updateBrowseViewport()

	case listingMsg:
		if msg.err != nil {
			logx.Warnf("scan failed: %v", msg.err)
			m.statusMsg = "Scan-Fehler: " + msg.err.Error()
			m.state = stateBrowse
			return m, nil
		}
		m.path = msg.listing.Path
		m.rows = browse.NewRowSet(msg.listing.Dirs, msg.listing.Files)
		m.applyFilter()
		m.resetListTop()
		m.statusMsg = ""
		m.state = stateBrowse
		m.updateBrowseViewport()
		return m, nil

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// ---------- Handlers ----------

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if m.filter.filtering {
		return m.handleFilterKey(msg)
	}

	// global shortcuts: cancel the browsing flow
	switch key {
	case "ctrl+c", "q", "esc":
		return m.cancel()
	}

	if m.state == stateLoading {
		return m, nil
	}

	switch key {
	case "j", "down", "k", "up", "ctrl+d", "pgdown", "ctrl+u", "pgup", "g", "G":
		return m.handleCursorMovement(key)
	case "enter":
		return m.handleActivate()
	case "h", "backspace":
		parent := filepath.Dir(m.path)
		if parent == m.path {
			return m, nil
		}
		return m.navigateTo(parent)
	case "f":
		m.filter.filtering = true
		m.filter.input.SetValue(m.filter.query)
		m.filter.input.Focus()
		return m, nil
	case "F":
		m.filter.query = ""
		m.filter.input.SetValue("")
		m.applyFilter()
		m.resetListTop()
		m.updateBrowseViewport()
		return m, nil
	case ".":
		m.showHidden = !m.showHidden
		return m.navigateTo(m.path)
	case "r":
		return m.navigateTo(m.path)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter.input.Blur()
		if strings.TrimSpace(m.filter.input.Value()) == "" {
			m.filter.query = ""
		}
		m.filter.filtering = false
		m.applyFilter()
		m.resetListTop()
		m.updateBrowseViewport()
		return m, nil
	case "enter":
		m.filter.query = strings.TrimSpace(m.filter.input.Value())
		m.filter.filtering = false
		m.filter.input.Blur()
		m.applyFilter()
		m.resetListTop()
		m.updateBrowseViewport()
		return m, nil
	case "ctrl+c":
		return m.cancel()
	default:
		var cmd tea.Cmd
		m.filter.input, cmd = m.filter.input.Update(msg)
		return m, cmd
	}
}

func (m Model) handleCursorMovement(key string) (Model, tea.Cmd) {
	total := m.itemsLen()
	switch key {
	case "j", "down":
		if m.listIndex < total-1 {
			m.listIndex++
		}
	case "k", "up":
		if m.listIndex > 0 {
			m.listIndex--
		}
	case "ctrl+d", "pgdown":
		jump := m.viewport.Height
		if jump <= 0 {
			jump = 10
		}
		m.listIndex += jump
		if m.listIndex > total-1 {
			m.listIndex = total - 1
		}
	case "ctrl+u", "pgup":
		jump := m.viewport.Height
		if jump <= 0 {
			jump = 10
		}
		m.listIndex -= jump
		if m.listIndex < 0 {
			m.listIndex = 0
		}
	case "g":
		m.listIndex = 0
	case "G":
		m.listIndex = total - 1
	}
	if m.listIndex < 0 {
		m.listIndex = 0
	}
	m.ensureCursorVisible()
	m.updateBrowseViewport()
	return m, nil
}

// handleActivate opens the row under the cursor: directories navigate (and
// reset the viewport to the top), files land in the recent panel.
func (m Model) handleActivate() (Model, tea.Cmd) {
	if m.itemsLen() == 0 {
		return m, nil
	}
	row := m.rowAt(m.listIndex)
	full := filepath.Join(m.path, row.Entry.Name)

	switch row.Kind {
	case browse.KindDir:
		return m.navigateTo(full)
	case browse.KindFile:
		m.recent.Add(full)
		m.recalcViewport()
		m.updateBrowseViewport()
		m.statusMsg = "Geöffnet: " + row.Entry.Name
	}
	return m, nil
}

// navigateTo scrolls back to the first row before the new listing renders,
// then loads the listing asynchronously.
func (m Model) navigateTo(path string) (Model, tea.Cmd) {
	logx.Debugf("navigate to %s", path)
	m.resetListTop()
	m.state = stateLoading
	m.statusMsg = "Lade Verzeichnis…"
	return m, tea.Batch(m.spinner.Tick, m.loadListingCmd(path))
}

func (m Model) cancel() (Model, tea.Cmd) {
	if m.onCancel != nil {
		m.onCancel()
	}
	m.state = stateQuit
	return m, tea.Quit
}

// recalcViewport sizes the list to the space left by header, recent panel,
// path line, filter line and footer.
func (m *Model) recalcViewport() {
	if !m.ready {
		return
	}
	vh := m.height - m.chromeHeight()
	if vh < 3 {
		vh = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = vh
}

func (m Model) chromeHeight() int {
	recentLines := m.recent.Len()
	if recentLines == 0 {
		recentLines = 1
	}
	// title + divider, recent head + entries, path line, filter line,
	// footer status + two help lines
	return 2 + 1 + recentLines + 1 + 1 + 3
}
