package tui

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/mainseq/internal/catalog"
	"github.com/papapumpkin/mainseq/internal/ui"
)

// CatalogPicker is a navigable overlay listing catalog entries. Choosing an
// entry copies its seed measurements into the form.
type CatalogPicker struct {
	Entries []catalog.Entry
	Cursor  int
	Width   int
}

// NewCatalogPicker creates a picker over the given catalog.
func NewCatalogPicker(c catalog.Catalog) *CatalogPicker {
	return &CatalogPicker{Entries: c.Stars}
}

// SetEntries replaces the listed entries, clamping the cursor.
func (p *CatalogPicker) SetEntries(c catalog.Catalog) {
	p.Entries = c.Stars
	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// MoveUp moves the cursor up, wrapping at the top.
func (p *CatalogPicker) MoveUp() {
	if len(p.Entries) == 0 {
		return
	}
	p.Cursor--
	if p.Cursor < 0 {
		p.Cursor = len(p.Entries) - 1
	}
}

// MoveDown moves the cursor down, wrapping at the bottom.
func (p *CatalogPicker) MoveDown() {
	if len(p.Entries) == 0 {
		return
	}
	p.Cursor++
	if p.Cursor >= len(p.Entries) {
		p.Cursor = 0
	}
}

// Selected returns the entry under the cursor. ok is false when the list
// is empty.
func (p *CatalogPicker) Selected() (catalog.Entry, bool) {
	if len(p.Entries) == 0 {
		return catalog.Entry{}, false
	}
	return p.Entries[p.Cursor], true
}

// View renders the picker overlay: one row per star with its name and a
// short seed summary.
func (p CatalogPicker) View() string {
	var b strings.Builder
	b.WriteString(stylePickerTitle.Render(fmt.Sprintf("catalog (%d stars)", len(p.Entries))))
	b.WriteString("\n\n")

	if len(p.Entries) == 0 {
		b.WriteString(styleResultDim.Render("(empty catalog)"))
	}

	maxName := 0
	for _, e := range p.Entries {
		if len(e.Name) > maxName {
			maxName = len(e.Name)
		}
	}

	for i, e := range p.Entries {
		indicator := "  "
		nameStyle := stylePickerNormal
		if i == p.Cursor {
			indicator = stylePickerIndicator.Render(selectionIndicator) + " "
			nameStyle = stylePickerSelected
		}
		padded := e.Name + strings.Repeat(" ", maxName-len(e.Name))
		b.WriteString(indicator)
		b.WriteString(nameStyle.Render(padded))
		b.WriteString("  ")
		b.WriteString(stylePickerSeed.Render(ui.SeedSummary(e)))
		if i < len(p.Entries)-1 {
			b.WriteString("\n")
		}
	}

	overlayWidth := 56
	if p.Width > 0 && p.Width < overlayWidth+4 {
		overlayWidth = p.Width - 4
	}
	return stylePickerOverlay.Width(overlayWidth).Render(b.String())
}
