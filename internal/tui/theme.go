package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorBrand   = colorMauve
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorDim     = colorOverlay1
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerFilterStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Background(colorMantle)

	photographerStyle = lipgloss.NewStyle().Foreground(colorText)
	selectedRowStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	metaStyle         = lipgloss.NewStyle().Foreground(colorDim)
	cursorStyle       = lipgloss.NewStyle().Foreground(colorAccent)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	footerKeyStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)

	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBrand).
			Padding(0, 2)

	sheetLabelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	sheetFocusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	sheetErrStyle          = lipgloss.NewStyle().Foreground(colorError)
	sliderFilledStyle      = lipgloss.NewStyle().Foreground(colorSapphire)
	sliderEmptyStyle       = lipgloss.NewStyle().Foreground(colorSurface1)

	paletteStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	paletteQueryStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	paletteSelectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	paletteItemStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
)
