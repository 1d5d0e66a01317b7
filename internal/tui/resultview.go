package tui

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/mainseq/internal/star"
	"github.com/papapumpkin/mainseq/internal/ui"
)

// ResultView renders the outcome of the last resolution: the estimated
// properties on success, the failure message otherwise, and a placeholder
// before the first estimate.
type ResultView struct {
	Props    *star.StarProperties
	Kind     star.SeedKind
	SeedText string
	Err      string
	Width    int
}

// View renders the result panel.
func (v ResultView) View() string {
	if v.Err != "" {
		return styleResultError.Render(v.Err)
	}
	if v.Props == nil {
		return styleResultDim.Render("  fill a seed field and press enter")
	}

	var b strings.Builder
	b.WriteString(styleResultTitle.Render("estimated properties"))
	b.WriteString("\n")
	b.WriteString(styleResultDim.Render(fmt.Sprintf("seeded by %s %s", v.Kind, v.SeedText)))
	b.WriteString("\n\n")
	ui.WriteRecord(&b, *v.Props)

	panelWidth := 44
	if v.Width > 0 && v.Width < panelWidth+4 {
		panelWidth = v.Width - 4
	}
	return styleResultBorder.Width(panelWidth).Render(strings.TrimRight(b.String(), "\n"))
}
