package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case batchDoneMsg:
		return m.handleBatchDone(msg)
	case sheetFrameMsg:
		return m.handleSheetFrame()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleBatchDone applies one finished batch. Results for a superseded
// generation are dropped so a slow batch can never overwrite a newer one.
func (m Model) handleBatchDone(msg batchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || !m.loading {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		log.Printf("fetch batch failed: %v", msg.err)
		m.items = nil
		m.setError(fmt.Sprintf("Fetch failed: %v", msg.err))
		return m, nil
	}
	m.items = msg.items
	m.cursor = 0
	m.scroll = 0
	m.setStatus(fmt.Sprintf("Loaded %d images at %d×%d.", len(msg.items), m.filter.Width, m.filter.Height))
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlay precedence: palette above sheet above the gallery.
	if m.palette != nil {
		return m.updatePalette(msg)
	}
	if m.sheet.phase != sheetHidden {
		return m.updateSheet(msg)
	}

	keyName := normalizeKeyName(msg.String())
	switch {
	case m.keys.Matches(scopeGallery, actionQuit, keyName):
		return m, tea.Quit
	case m.keys.Matches(scopeGallery, actionOpenFilters, keyName):
		return m.openSheet()
	case m.keys.Matches(scopeGallery, actionOpenPalette, keyName):
		return m.openPalette()
	case m.keys.Matches(scopeGallery, actionRefresh, keyName):
		if m.loading {
			return m, nil
		}
		return m.startFetch()
	case keyName == "up" || keyName == "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorInWindow()
		}
		return m, nil
	case keyName == "down" || keyName == "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.ensureCursorInWindow()
		}
		return m, nil
	}
	return m, nil
}

// ensureCursorInWindow keeps the selected row inside the visible slice of
// the list.
func (m *Model) ensureCursorInWindow() {
	rows := m.listRows()
	if rows <= 0 {
		return
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+rows {
		m.scroll = m.cursor - rows + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
