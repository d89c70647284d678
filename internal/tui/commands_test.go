package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCommandMatchOrdering(t *testing.T) {
	r := NewCommandRegistry()

	tests := []struct {
		name      string
		query     string
		wantFirst string
	}{
		{name: "empty query lists all", query: "", wantFirst: "gallery:refresh"},
		{name: "prefix beats substring", query: "re", wantFirst: "gallery:refresh"},
		{name: "substring match", query: "greyscale", wantFirst: "filters:toggle-greyscale"},
		{name: "typo still matches", query: "refrsh gallery", wantFirst: "gallery:refresh"},
		{name: "quit", query: "quit", wantFirst: "app:quit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := r.Match(tt.query)
			if len(matches) == 0 {
				t.Fatalf("Match(%q) returned nothing", tt.query)
			}
			if got := matches[0].Command.ID; got != tt.wantFirst {
				t.Fatalf("Match(%q)[0] = %s, want %s", tt.query, got, tt.wantFirst)
			}
		})
	}
}

func TestCommandMatchRejectsGarbage(t *testing.T) {
	r := NewCommandRegistry()
	if matches := r.Match("zzzzzzzzzzzz"); len(matches) != 0 {
		t.Fatalf("garbage query matched %d commands", len(matches))
	}
}

func TestPaletteExecutesRefresh(t *testing.T) {
	m := newTestModel(t)
	genBefore := m.generation

	m, _ = m.openPalette()
	for _, r := range "refresh" {
		m, _ = m.updatePalette(runeKey(r))
	}
	m, cmd := m.updatePalette(tea.KeyMsg{Type: tea.KeyEnter})

	if m.palette != nil {
		t.Fatal("palette should close on execute")
	}
	if m.generation != genBefore+1 || !m.loading {
		t.Fatal("refresh command should launch a new batch")
	}
	if cmd == nil {
		t.Fatal("refresh command should produce a fetch command")
	}
}

func TestPaletteToggleGreyscaleCommitsAndRefetches(t *testing.T) {
	m := newTestModel(t)
	genBefore := m.generation

	m, _ = m.openPalette()
	for _, r := range "grey" {
		m, _ = m.updatePalette(runeKey(r))
	}
	m, cmd := m.updatePalette(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.filter.Grey {
		t.Fatal("toggle should flip greyscale on the committed filter")
	}
	if m.generation != genBefore+1 || cmd == nil {
		t.Fatal("filter change should refetch")
	}
}

func TestPaletteDismiss(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.openPalette()
	m, _ = m.updatePalette(tea.KeyMsg{Type: tea.KeyEsc})
	if m.palette != nil {
		t.Fatal("esc should close the palette")
	}
}
