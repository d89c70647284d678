package tui

import (
	"fmt"
	"strings"
)

// Fixed chrome: header, status bar, footer.
const chromeLines = 3

// listRows returns how many gallery entries fit in the viewport. Each entry
// renders as two lines.
func (m Model) listRows() int {
	return (m.height - chromeLines) / 2
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading…"
	}

	sections := []string{
		m.renderHeader(),
		m.renderGallery(),
		m.renderStatus(),
		m.renderFooter(),
	}
	base := strings.Join(sections, "\n")

	if m.sheet.phase != sheetHidden {
		sheet := m.renderSheet()
		visible := m.sheet.visibleLines(len(splitLines(sheet)))
		base = overlayBottomSheet(base, sheet, m.width, m.height, visible)
	}
	if m.palette != nil {
		base = overlayCenter(base, m.renderPalette(), m.width, m.height)
	}
	return base
}

func (m Model) renderHeader() string {
	summary := fmt.Sprintf("%d×%d", m.filter.Width, m.filter.Height)
	if m.filter.Blur > 0 {
		summary += fmt.Sprintf(" · blur %d", m.filter.Blur)
	}
	if m.filter.Grey {
		summary += " · greyscale"
	}
	left := headerAppStyle.Render(appName)
	right := headerFilterStyle.Render(summary)
	gap := m.width - 4 - lineWidth(left) - lineWidth(right)
	if gap < 1 {
		gap = 1
	}
	return headerBarStyle.Width(m.width).Render(truncate(left+strings.Repeat(" ", gap)+right, m.width-4))
}

func (m Model) renderGallery() string {
	bodyLines := m.height - chromeLines
	if bodyLines < 1 {
		bodyLines = 1
	}
	var lines []string

	switch {
	case m.loading:
		lines = append(lines, "", fmt.Sprintf("  %s Fetching %d images…", m.spin.View(), m.fetcher.BatchSize()))
	case len(m.items) == 0:
		lines = append(lines, "", metaStyle.Render("  No images. Press r to refresh or f to change filters."))
	default:
		rows := m.listRows()
		end := m.scroll + rows
		if end > len(m.items) {
			end = len(m.items)
		}
		for i := m.scroll; i < end; i++ {
			it := m.items[i]
			prefix := "  "
			titleSt := photographerStyle
			if i == m.cursor {
				prefix = cursorStyle.Render("> ")
				titleSt = selectedRowStyle
			}
			dw, dh := it.DisplaySize(m.width - 10)
			title := titleSt.Render(fmt.Sprintf("Photo by %s", it.Photographer))
			meta := metaStyle.Render(fmt.Sprintf("#%s · %d×%d", it.ID, dw, dh))
			lines = append(lines, truncate(fmt.Sprintf("%s%2d. %s", prefix, i+1, title), m.width))
			lines = append(lines, truncate("       "+meta, m.width))
		}
	}

	for len(lines) < bodyLines {
		lines = append(lines, "")
	}
	return strings.Join(lines[:bodyLines], "\n")
}

func (m Model) renderStatus() string {
	st := statusBarStyle
	text := m.status
	if m.statusErr {
		st = statusErrStyle
	}
	if m.loading {
		text = m.spin.View() + " loading…"
	}
	// truncate before styling so lipgloss never wraps the bar
	text = truncate(text, m.width-4)
	return st.Width(m.width).Render(text)
}

func (m Model) renderFooter() string {
	scope := scopeGallery
	if m.palette != nil {
		scope = scopePalette
	} else if m.sheet.phase != sheetHidden {
		scope = scopeFilterSheet
	}
	var parts []string
	for _, b := range m.keys.ScopeBindings(scope) {
		parts = append(parts, footerKeyStyle.Render(b.Keys[0])+" "+b.Help)
	}
	return footerStyle.Width(m.width).Render(truncate(strings.Join(parts, " · "), m.width-4))
}

// ---------------------------------------------------------------------------
// Filter sheet
// ---------------------------------------------------------------------------

func (m Model) renderSheet() string {
	s := m.sheet
	var b strings.Builder
	b.WriteString(titleStyle.Render("Filters"))
	b.WriteString("\n\n")

	b.WriteString(renderSheetInput("Width", s.widthInput, s.widthCur, s.focus == fieldWidth, s.widthErr))
	b.WriteString(renderSheetInput("Height", s.heightInput, s.heightCur, s.focus == fieldHeight, s.heightErr))

	b.WriteString(sheetFieldLabel("Blur", s.focus == fieldBlur))
	b.WriteString("  " + renderBlurSlider(s.blur) + "\n")

	b.WriteString(sheetFieldLabel("Greyscale", s.focus == fieldGrey))
	if s.grey {
		b.WriteString("  [x] on\n")
	} else {
		b.WriteString("  [ ] off\n")
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("enter apply · esc cancel · tab next field"))
	return sheetStyle.Render(b.String())
}

func sheetFieldLabel(label string, focused bool) string {
	st := sheetLabelStyle
	if focused {
		st = sheetFocusedLabelStyle
	}
	return st.Render(padRight(label, 10))
}

func renderSheetInput(label, value string, cursor int, focused bool, fieldErr string) string {
	shown := value
	if focused {
		shown = renderASCIIInputCursor(value, cursor)
	}
	line := sheetFieldLabel(label, focused) + "  [" + shown + "]\n"
	if fieldErr != "" {
		line += "  " + sheetErrStyle.Render("↳ "+fieldErr) + "\n"
	}
	return line
}

func renderBlurSlider(blur int) string {
	var cells strings.Builder
	for i := 1; i <= 10; i++ {
		if i <= blur {
			cells.WriteString(sliderFilledStyle.Render("▮"))
		} else {
			cells.WriteString(sliderEmptyStyle.Render("▯"))
		}
	}
	return fmt.Sprintf("◂ %s ▸  %d", cells.String(), blur)
}

// ---------------------------------------------------------------------------
// Command palette
// ---------------------------------------------------------------------------

const paletteMaxRows = 6

func (m Model) renderPalette() string {
	matches := m.cmds.Match(m.palette.query)
	var b strings.Builder
	b.WriteString(paletteQueryStyle.Render("> " + m.palette.query + "_"))
	b.WriteString("\n\n")
	if len(matches) == 0 {
		b.WriteString(metaStyle.Render("no matching commands"))
	}
	for i, match := range matches {
		if i >= paletteMaxRows {
			break
		}
		st := paletteItemStyle
		prefix := "  "
		if i == m.palette.cursor {
			st = paletteSelectedStyle
			prefix = "> "
		}
		b.WriteString(st.Render(prefix + padRight(match.Command.Label, 24)))
		b.WriteString(metaStyle.Render(" " + match.Command.Description))
		if i < len(matches)-1 && i < paletteMaxRows-1 {
			b.WriteString("\n")
		}
	}
	return paletteStyle.Render(b.String())
}

func lineWidth(s string) int {
	return maxLineWidth(splitLines(s))
}
