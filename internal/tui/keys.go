package tui

import "strings"

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

const (
	scopeGallery     = "gallery"
	scopeFilterSheet = "filter_sheet"
	scopePalette     = "palette"
)

const (
	actionQuit        Action = "quit"
	actionRefresh     Action = "refresh"
	actionOpenFilters Action = "open_filters"
	actionOpenPalette Action = "open_palette"
	actionNavigate    Action = "navigate"
	actionClose       Action = "close"
	actionConfirm     Action = "confirm"
	actionNextField   Action = "next_field"
	actionPrevField   Action = "prev_field"
	actionAdjust      Action = "adjust"
)

// KeyRegistry maps normalized key names to actions per scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: map[string][]*Binding{},
		indexByScope:    map[string]map[string]*Binding{},
	}
	defaults := []Binding{
		{Action: actionOpenFilters, Keys: []string{"f"}, Help: "filters", Scopes: []string{scopeGallery}},
		{Action: actionRefresh, Keys: []string{"r"}, Help: "refresh", Scopes: []string{scopeGallery}},
		{Action: actionOpenPalette, Keys: []string{"ctrl+k", ":"}, Help: "commands", Scopes: []string{scopeGallery}},
		{Action: actionNavigate, Keys: []string{"up", "down", "k", "j"}, Help: "navigate", Scopes: []string{scopeGallery}},
		{Action: actionQuit, Keys: []string{"q", "ctrl+c"}, Help: "quit", Scopes: []string{scopeGallery}},

		{Action: actionConfirm, Keys: []string{"enter"}, Help: "apply", Scopes: []string{scopeFilterSheet, scopePalette}},
		{Action: actionClose, Keys: []string{"esc"}, Help: "cancel", Scopes: []string{scopeFilterSheet, scopePalette}},
		{Action: actionNextField, Keys: []string{"tab", "down"}, Help: "next field", Scopes: []string{scopeFilterSheet}},
		{Action: actionPrevField, Keys: []string{"shift+tab", "up"}, Help: "prev field", Scopes: []string{scopeFilterSheet}},
		{Action: actionAdjust, Keys: []string{"left", "right"}, Help: "adjust", Scopes: []string{scopeFilterSheet}},
		{Action: actionNavigate, Keys: []string{"up", "down"}, Help: "navigate", Scopes: []string{scopePalette}},
	}
	for i := range defaults {
		r.register(&defaults[i])
	}
	return r
}

func (r *KeyRegistry) register(b *Binding) {
	for _, scope := range b.Scopes {
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], b)
		idx := r.indexByScope[scope]
		if idx == nil {
			idx = map[string]*Binding{}
			r.indexByScope[scope] = idx
		}
		for _, k := range b.Keys {
			n := normalizeKeyName(k)
			if n == "" {
				continue
			}
			// first registration wins within a scope
			if _, exists := idx[n]; !exists {
				idx[n] = b
			}
		}
	}
}

// Matches reports whether the key name triggers the action in the scope.
func (r *KeyRegistry) Matches(scope string, action Action, keyName string) bool {
	idx := r.indexByScope[scope]
	if idx == nil {
		return false
	}
	b := idx[normalizeKeyName(keyName)]
	return b != nil && b.Action == action
}

// ScopeBindings returns the bindings for a scope in registration order,
// used for footer hints.
func (r *KeyRegistry) ScopeBindings(scope string) []*Binding {
	return r.bindingsByScope[scope]
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
