package ui

// ensureCursorVisible adjusts the viewport Y offset so the cursor row stays
// within the visible window with a scroll margin. Each row renders as exactly
// one line, so the cursor line equals the list index.
func (m *Model) ensureCursorVisible() {
	n := m.itemsLen()
	if n == 0 {
		m.listIndex = 0
		return
	}
	if m.listIndex < 0 {
		m.listIndex = 0
	}
	if m.listIndex > n-1 {
		m.listIndex = n - 1
	}

	cursorLine := m.listIndex
	topLine := m.viewport.YOffset
	bottomLine := topLine + m.viewport.Height - 1

	scrollMargin := 3
	if m.viewport.Height < 8 {
		scrollMargin = 1
	}

	if cursorLine < topLine+scrollMargin {
		target := cursorLine - scrollMargin
		if target < 0 {
			target = 0
		}
		m.viewport.SetYOffset(target)
		return
	}
	if cursorLine > bottomLine-scrollMargin {
		target := cursorLine - m.viewport.Height + scrollMargin + 1
		if target < 0 {
			target = 0
		}
		m.viewport.SetYOffset(target)
	}
}

// resetListTop scrolls the list back to the first row. Before the first
// WindowSizeMsg the viewport is not usable yet; the call is then a no-op so
// navigation never trips over an unmounted view.
func (m *Model) resetListTop() {
	m.listIndex = 0
	if !m.ready {
		return
	}
	m.viewport.GotoTop()
}
