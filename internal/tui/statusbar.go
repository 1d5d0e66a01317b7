package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar is the top line: logo, catalog source, and star count.
type StatusBar struct {
	CatalogPath string // empty means builtin only
	StarCount   int
	Width       int
}

// View renders the status bar across the full width.
func (sb StatusBar) View() string {
	source := "builtin"
	if sb.CatalogPath != "" {
		source = filepath.Base(sb.CatalogPath)
	}
	info := styleStatusValue.Render(fmt.Sprintf("catalog: %s (%d stars)", source, sb.StarCount))
	line := lipgloss.JoinHorizontal(lipgloss.Center, Logo(), "  ", info)
	return styleStatusBar.Width(sb.Width).Render(line)
}
