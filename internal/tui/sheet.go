package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/levizillow/lorempicsum/internal/gallery"
)

// The filter sheet slides up from the bottom edge:
//
//	Hidden → Opening → Open → Closing → Hidden
//
// Opening/Closing advance one frame per tick; input is only accepted while
// Open. The sheet edits a draft of the committed filter and commits it
// atomically on confirm, or discards it on dismiss.
type sheetPhase int

const (
	sheetHidden sheetPhase = iota
	sheetOpening
	sheetOpen
	sheetClosing
)

const (
	sheetFrames        = 4
	sheetFrameInterval = 25 * time.Millisecond
)

type sheetField int

const (
	fieldWidth sheetField = iota
	fieldHeight
	fieldBlur
	fieldGrey
	fieldCount
)

type filterSheet struct {
	phase sheetPhase
	frame int
	focus sheetField

	widthInput  string
	widthCur    int
	heightInput string
	heightCur   int
	blur        int
	grey        bool

	widthErr  string
	heightErr string
}

type sheetFrameMsg struct{}

func sheetFrameTick() tea.Cmd {
	return tea.Tick(sheetFrameInterval, func(time.Time) tea.Msg {
		return sheetFrameMsg{}
	})
}

// newFilterSheet seeds a draft from the committed filter. Abandoned edits
// from earlier sessions never survive; only the committed value seeds.
func newFilterSheet(committed gallery.Filter) filterSheet {
	w := strconv.Itoa(committed.Width)
	h := strconv.Itoa(committed.Height)
	return filterSheet{
		phase:       sheetOpening,
		focus:       fieldWidth,
		widthInput:  w,
		widthCur:    len(w),
		heightInput: h,
		heightCur:   len(h),
		blur:        committed.Blur,
		grey:        committed.Grey,
	}
}

func (m Model) openSheet() (Model, tea.Cmd) {
	if m.sheet.phase != sheetHidden {
		return m, nil
	}
	m.sheet = newFilterSheet(m.filter)
	return m, sheetFrameTick()
}

// handleSheetFrame advances the slide animation one step.
func (m Model) handleSheetFrame() (Model, tea.Cmd) {
	switch m.sheet.phase {
	case sheetOpening:
		m.sheet.frame++
		if m.sheet.frame >= sheetFrames {
			m.sheet.frame = sheetFrames
			m.sheet.phase = sheetOpen
			return m, nil
		}
		return m, sheetFrameTick()
	case sheetClosing:
		m.sheet.frame--
		if m.sheet.frame <= 0 {
			m.sheet = filterSheet{}
			return m, nil
		}
		return m, sheetFrameTick()
	default:
		return m, nil
	}
}

// confirmSheet validates the draft and commits it. Invalid input blocks the
// commit and surfaces a field-level error; an unchanged draft closes the
// sheet without refetching.
func (m Model) confirmSheet() (Model, tea.Cmd) {
	width, werr := gallery.ParseDimension(m.sheet.widthInput)
	height, herr := gallery.ParseDimension(m.sheet.heightInput)
	if werr != nil || herr != nil {
		if werr != nil {
			m.sheet.widthErr = werr.Error()
		}
		if herr != nil {
			m.sheet.heightErr = herr.Error()
		}
		return m, nil
	}

	committed := gallery.Filter{
		Width:  width,
		Height: height,
		Blur:   gallery.ClampBlur(m.sheet.blur),
		Grey:   m.sheet.grey,
	}
	m.sheet.phase = sheetClosing
	m.sheet.frame = sheetFrames

	if committed == m.filter {
		m.setStatus("Filters unchanged.")
		return m, sheetFrameTick()
	}

	m.filter = committed
	m2, fetch := m.startFetch()
	return m2, tea.Batch(fetch, sheetFrameTick())
}

// dismissSheet closes the sheet, discarding the draft.
func (m Model) dismissSheet() (Model, tea.Cmd) {
	m.sheet.phase = sheetClosing
	m.sheet.frame = sheetFrames
	m.setStatus("Filter changes discarded.")
	return m, sheetFrameTick()
}

func (m Model) updateSheet(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.sheet.phase != sheetOpen {
		// Ignore input mid-animation, except cancel.
		if m.sheet.phase == sheetOpening && m.keys.Matches(scopeFilterSheet, actionClose, msg.String()) {
			return m.dismissSheet()
		}
		return m, nil
	}

	keyName := normalizeKeyName(msg.String())
	switch {
	case m.keys.Matches(scopeFilterSheet, actionClose, keyName):
		return m.dismissSheet()
	case m.keys.Matches(scopeFilterSheet, actionConfirm, keyName):
		return m.confirmSheet()
	case m.keys.Matches(scopeFilterSheet, actionNextField, keyName):
		m.sheet.focus = (m.sheet.focus + 1) % fieldCount
		return m, nil
	case m.keys.Matches(scopeFilterSheet, actionPrevField, keyName):
		m.sheet.focus = (m.sheet.focus - 1 + fieldCount) % fieldCount
		return m, nil
	}

	switch m.sheet.focus {
	case fieldBlur:
		switch keyName {
		case "left":
			m.sheet.blur = gallery.ClampBlur(m.sheet.blur - 1)
		case "right":
			m.sheet.blur = gallery.ClampBlur(m.sheet.blur + 1)
		}
		return m, nil
	case fieldGrey:
		if keyName == "space" || keyName == "left" || keyName == "right" {
			m.sheet.grey = !m.sheet.grey
		}
		return m, nil
	}

	// width/height text fields
	value, cursor, errField := m.sheet.focusedInput()
	switch keyName {
	case "left":
		moveInputCursorASCII(*value, cursor, -1)
		return m, nil
	case "right":
		moveInputCursorASCII(*value, cursor, 1)
		return m, nil
	case "backspace":
		if deleteASCIIByteBeforeCursor(value, cursor) {
			*errField = ""
		}
		return m, nil
	}
	if !isPrintableASCIIKey(msg.String()) {
		return m, nil
	}
	if insertPrintableASCIIAtCursor(value, cursor, msg.String()) {
		*errField = ""
	}
	return m, nil
}

// focusedInput returns the value, cursor and error slot for the focused
// text field. Callers must only use it when focus is width or height.
func (s *filterSheet) focusedInput() (value *string, cursor *int, errField *string) {
	if s.focus == fieldHeight {
		return &s.heightInput, &s.heightCur, &s.heightErr
	}
	return &s.widthInput, &s.widthCur, &s.widthErr
}

// visibleLines maps the animation frame to how many of the sheet's lines
// show above the bottom edge.
func (s filterSheet) visibleLines(total int) int {
	switch s.phase {
	case sheetHidden:
		return 0
	case sheetOpen:
		return total
	default:
		return total * s.frame / sheetFrames
	}
}

// ---------------------------------------------------------------------------
// ASCII input editing with cursor
// ---------------------------------------------------------------------------

func renderASCIIInputCursor(s string, cursor int) string {
	idx := clampInputCursorASCII(s, cursor)
	return s[:idx] + "_" + s[idx:]
}

func clampInputCursorASCII(s string, cursor int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > len(s) {
		return len(s)
	}
	return cursor
}

func moveInputCursorASCII(s string, cursor *int, delta int) bool {
	if cursor == nil {
		return false
	}
	before := clampInputCursorASCII(s, *cursor)
	after := before + delta
	if after < 0 {
		after = 0
	}
	if after > len(s) {
		after = len(s)
	}
	*cursor = after
	return before != after
}

func insertPrintableASCIIAtCursor(s *string, cursor *int, key string) bool {
	if s == nil || cursor == nil {
		return false
	}
	if len(key) != 1 || key[0] < 32 || key[0] >= 127 {
		return false
	}
	idx := clampInputCursorASCII(*s, *cursor)
	*s = (*s)[:idx] + key + (*s)[idx:]
	*cursor = idx + 1
	return true
}

func deleteASCIIByteBeforeCursor(s *string, cursor *int) bool {
	if s == nil || cursor == nil {
		return false
	}
	idx := clampInputCursorASCII(*s, *cursor)
	if idx == 0 {
		return false
	}
	*s = (*s)[:idx-1] + (*s)[idx:]
	*cursor = idx - 1
	return true
}
