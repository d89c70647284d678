package tui

import "testing"

func TestNormalizeKeyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" ", "space"},
		{"spacebar", "space"},
		{"Enter", "enter"},
		{"return", "enter"},
		{"control+k", "ctrl+k"},
		{"ctl+c", "ctrl+c"},
		{"ESC", "esc"},
		{"G", "G"},
		{"g", "g"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeKeyName(tt.in); got != tt.want {
			t.Errorf("normalizeKeyName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistryMatches(t *testing.T) {
	r := NewKeyRegistry()

	tests := []struct {
		scope  string
		action Action
		key    string
		want   bool
	}{
		{scopeGallery, actionQuit, "q", true},
		{scopeGallery, actionQuit, "ctrl+c", true},
		{scopeGallery, actionOpenFilters, "f", true},
		{scopeGallery, actionOpenFilters, "q", false},
		{scopeFilterSheet, actionConfirm, "enter", true},
		{scopeFilterSheet, actionClose, "esc", true},
		{scopeFilterSheet, actionQuit, "q", false}, // quit is not bound inside the sheet
		{scopePalette, actionClose, "esc", true},
	}
	for _, tt := range tests {
		if got := r.Matches(tt.scope, tt.action, tt.key); got != tt.want {
			t.Errorf("Matches(%s, %s, %q) = %v, want %v", tt.scope, tt.action, tt.key, got, tt.want)
		}
	}
}

func TestScopeBindingsForFooter(t *testing.T) {
	r := NewKeyRegistry()
	if len(r.ScopeBindings(scopeGallery)) == 0 {
		t.Fatal("gallery scope should expose footer bindings")
	}
	for _, b := range r.ScopeBindings(scopeFilterSheet) {
		if b.Help == "" {
			t.Errorf("binding %s has no help text", b.Action)
		}
	}
}
