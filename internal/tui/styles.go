package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/cbamquest/internal/chart"
)

// Colors shared by every dashboard panel.
//
//nolint:gochecknoglobals // Style palette is read-only after init.
var (
	ColorHeader    = lipgloss.Color(chart.ColorCoralDeep)
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color(chart.ColorCoral)
	ColorHighlight = lipgloss.Color(chart.ColorCoralLight)
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorSpinner   = lipgloss.Color("39")
)

// Icons.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
	IconCursor     = "▶"
	IconChecked    = "[x]"
	IconUnchecked  = "[ ]"
	IconTrophy     = "🏆"
	IconLocked     = "🔒"
)

// Text styles.
//
//nolint:gochecknoglobals // Style palette is read-only after init.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	FocusStyle    = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
