package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — highlights
	colorSuccess     = lipgloss.Color("#00E676") // Green — confirmations
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Selection indicator prepended to the active picker row.
const selectionIndicator = "▎"

// Footer switches to key-only hints below this width.
const compactWidth = 72

// Status bar styles — solid background, dominant top line.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorMutedLight)
)

// Seed form styles.
var (
	styleFormLabel = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleFormLabelFocused = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleFormHint = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Result panel styles — rounded border, styled title.
var (
	styleResultBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleResultTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleResultDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleResultError = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDanger).
				Foreground(colorDanger).
				Padding(0, 1)
)

// Catalog picker styles.
var (
	stylePickerOverlay = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	stylePickerTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	stylePickerSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	stylePickerNormal = lipgloss.NewStyle().
				Foreground(colorMutedLight)

	stylePickerSeed = lipgloss.NewStyle().
			Foreground(colorMuted)

	// stylePickerIndicator styles the left-edge marker on the selected row.
	stylePickerIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Notice styles for transient one-line feedback.
var (
	styleNoticeInfo = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleNoticeError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)

// Footer styles — top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
