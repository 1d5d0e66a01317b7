package tui

import "github.com/charmbracelet/lipgloss"

// Logo style definitions for the TUI status bar logo.
var (
	styleLogoRay  = lipgloss.NewStyle().Foreground(colorMutedLight)
	styleLogoStar = lipgloss.NewStyle().Foreground(colorAccent)
	styleLogoWord = lipgloss.NewStyle().Foreground(colorMutedLight)
)

// Logo returns a styled single-line wordmark for the TUI status bar.
// The design evokes a star on the main sequence between its neighbors.
// Background is inherited from the parent status bar container.
func Logo() string {
	wing := styleLogoRay.Render("──") + styleLogoStar.Render("✦") + styleLogoRay.Render("──")
	sp := styleLogoRay.Render(" ")
	return wing + sp + styleLogoWord.Render("MAINSEQ") + sp + wing
}

// LogoPlain returns the unstyled logo text for use in README and plain contexts.
func LogoPlain() string {
	return "──✦── MAINSEQ ──✦──"
}
