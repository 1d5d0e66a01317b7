package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < compactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// FormFooterBindings returns footer bindings while the seed form is active.
func FormFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Next, km.Resolve, km.Picker, km.Save, km.Reset, km.Quit}
}

// PickerFooterBindings returns footer bindings while the catalog picker is open.
func PickerFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Choose, km.Close}
}
