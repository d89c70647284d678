package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/levizillow/lorempicsum/internal/gallery"
)

type Command struct {
	ID          string
	Label       string
	Description string
	Execute     func(m Model) (Model, tea.Cmd, error)
}

type CommandMatch struct {
	Command Command
	Score   int
}

type CommandRegistry struct {
	commands []Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: []Command{
		{
			ID:          "gallery:refresh",
			Label:       "Refresh Gallery",
			Description: "Fetch a new batch under the current filters",
			Execute: func(m Model) (Model, tea.Cmd, error) {
				m2, cmd := m.startFetch()
				return m2, cmd, nil
			},
		},
		{
			ID:          "filters:open",
			Label:       "Open Filters",
			Description: "Edit image dimensions, blur and greyscale",
			Execute: func(m Model) (Model, tea.Cmd, error) {
				m2, cmd := m.openSheet()
				return m2, cmd, nil
			},
		},
		{
			ID:          "filters:toggle-greyscale",
			Label:       "Toggle Greyscale",
			Description: "Flip greyscale on the committed filter and refetch",
			Execute: func(m Model) (Model, tea.Cmd, error) {
				m.filter.Grey = !m.filter.Grey
				m2, cmd := m.startFetch()
				return m2, cmd, nil
			},
		},
		{
			ID:          "filters:reset",
			Label:       "Reset Filters",
			Description: "Restore the configured default filters",
			Execute: func(m Model) (Model, tea.Cmd, error) {
				def := gallery.Filter{
					Width:  m.cfg.Gallery.Width,
					Height: m.cfg.Gallery.Height,
					Blur:   gallery.ClampBlur(m.cfg.Gallery.Blur),
					Grey:   m.cfg.Gallery.Greyscale,
				}
				if def == m.filter {
					m.setStatus("Filters already at defaults.")
					return m, nil, nil
				}
				m.filter = def
				m2, cmd := m.startFetch()
				return m2, cmd, nil
			},
		},
		{
			ID:          "app:quit",
			Label:       "Quit",
			Description: "Exit the application",
			Execute: func(m Model) (Model, tea.Cmd, error) {
				return m, tea.Quit, nil
			},
		},
	}}
}

// Match returns commands matching the query, best first. An empty query
// matches everything in registration order.
func (r *CommandRegistry) Match(query string) []CommandMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []CommandMatch
	for _, c := range r.commands {
		score, ok := fuzzyScore(q, c.Label)
		if !ok {
			continue
		}
		out = append(out, CommandMatch{Command: c, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// fuzzyScore ranks a label against a query: prefix beats substring beats
// edit-distance similarity. Labels below half similarity don't match.
func fuzzyScore(query, label string) (int, bool) {
	if query == "" {
		return 0, true
	}
	l := strings.ToLower(label)
	if strings.HasPrefix(l, query) {
		return 100, true
	}
	if strings.Contains(l, query) {
		return 80, true
	}
	longest := len(l)
	if len(query) > longest {
		longest = len(query)
	}
	if longest == 0 {
		return 0, false
	}
	sim := 1 - float64(levenshtein.ComputeDistance(query, l))/float64(longest)
	if sim < 0.5 {
		return 0, false
	}
	return int(sim * 60), true
}

// ---------------------------------------------------------------------------
// Palette overlay
// ---------------------------------------------------------------------------

type paletteState struct {
	query  string
	cursor int
}

func (m Model) openPalette() (Model, tea.Cmd) {
	m.palette = &paletteState{}
	return m, nil
}

func (m Model) updatePalette(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyName := normalizeKeyName(msg.String())
	matches := m.cmds.Match(m.palette.query)

	switch {
	case m.keys.Matches(scopePalette, actionClose, keyName):
		m.palette = nil
		return m, nil
	case m.keys.Matches(scopePalette, actionConfirm, keyName):
		if len(matches) == 0 {
			return m, nil
		}
		if m.palette.cursor >= len(matches) {
			m.palette.cursor = len(matches) - 1
		}
		cmd := matches[m.palette.cursor].Command
		m.palette = nil
		m2, teaCmd, err := cmd.Execute(m)
		if err != nil {
			m2.setError(err.Error())
			return m2, nil
		}
		return m2, teaCmd
	case keyName == "up" || keyName == "ctrl+p":
		if m.palette.cursor > 0 {
			m.palette.cursor--
		}
		return m, nil
	case keyName == "down" || keyName == "ctrl+n":
		if m.palette.cursor < len(matches)-1 {
			m.palette.cursor++
		}
		return m, nil
	case keyName == "backspace":
		if len(m.palette.query) > 0 {
			m.palette.query = m.palette.query[:len(m.palette.query)-1]
			m.palette.cursor = 0
		}
		return m, nil
	}
	if isPrintableASCIIKey(msg.String()) {
		m.palette.query += msg.String()
		m.palette.cursor = 0
	}
	return m, nil
}
