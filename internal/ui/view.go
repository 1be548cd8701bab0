package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filebrowse/internal/browse"
)

func (m Model) View() string {
	if m.state == stateQuit {
		return ""
	}

	header := m.renderHeader()
	recent := m.renderRecentPanel()
	pathLine := m.renderPathLine()
	filterLine := m.renderFilterLine()
	content := m.renderContent()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, recent, pathLine, filterLine, content, footer)
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dateibrowser"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	return b.String()
}

func (m Model) renderRecentPanel() string {
	var b strings.Builder
	b.WriteString(recentHeadStyle.Render("Zuletzt geöffnet"))
	paths := m.recent.Paths()
	if len(paths) == 0 {
		b.WriteString("\n" + subtleStyle.Render("  (noch nichts geöffnet)"))
		return b.String()
	}
	for _, p := range paths {
		b.WriteString("\n  " + subtleStyle.Render(p))
	}
	return b.String()
}

func (m Model) renderPathLine() string {
	return pathStyle.Render(m.path) + subtleStyle.Render(fmt.Sprintf("  –  %d Ordner, %d Dateien",
		m.rows.DirCount(), m.rows.Len()-m.rows.DirCount()))
}

func (m Model) renderFilterLine() string {
	label := "Filter: "
	if m.filter.filtering {
		return label + m.filter.input.View()
	}
	if m.filter.query != "" {
		return label + m.filter.query + subtleStyle.Render(fmt.Sprintf("  (%d Treffer)", m.itemsLen()))
	}
	return subtleStyle.Render(label)
}

func (m Model) renderContent() string {
	if m.state == stateLoading {
		return m.spinner.View() + " " + subtleStyle.Render(m.statusMsg)
	}
	return m.viewport.View()
}

// updateBrowseViewport rebuilds the row content. It runs synchronously on
// every listing, filter or cursor change so the viewport never shows rows of
// a previous listing.
func (m *Model) updateBrowseViewport() {
	if !m.ready {
		return
	}
	total := m.itemsLen()
	if total == 0 {
		if m.filter.query != "" {
			m.viewport.SetContent(warnStyle.Render("Keine Einträge gefunden (Filter aktiv?)."))
		} else {
			m.viewport.SetContent(subtleStyle.Render("Leeres Verzeichnis."))
		}
		return
	}

	lines := make([]string, total)
	for i := 0; i < total; i++ {
		lines[i] = m.renderRow(i)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderRow renders the visible row at index i, dispatching on the row kind.
func (m Model) renderRow(i int) string {
	row := m.rowAt(i)

	var content string
	switch row.Kind {
	case browse.KindDir:
		content = renderDirRow(row.Entry)
	case browse.KindFile:
		content = renderFileRow(row.Entry)
	}

	cursorCell := " "
	if i == m.listIndex {
		cursorCell = cursorBarStyle.Render(" ")
		content = cursorLineStyle.Width(max(10, m.width-2)).Render(content)
	}
	return cursorCell + content
}

func renderDirRow(e browse.Entry) string {
	return fmt.Sprintf("%s %s/", symbolFolder, e.Name)
}

func renderFileRow(e browse.Entry) string {
	return fmt.Sprintf("%s %s  %s", symbolFile, e.Name, subtleStyle.Render(humanSize(e.Size)))
}

func (m Model) renderFooter() string {
	status := m.statusMsg
	if status == "" {
		status = fmt.Sprintf("Einträge: %d", m.itemsLen())
	}
	var b strings.Builder
	b.WriteString(subtleStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k bewegen  |  ctrl+d/ctrl+u blättern  |  Enter öffnen  |  h/backspace hoch  |  r neu laden"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("f filtern  |  F Filter löschen  |  . versteckte an/aus  |  q/Esc abbrechen"))
	return b.String()
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
