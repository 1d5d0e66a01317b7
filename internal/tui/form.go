package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/mainseq/internal/catalog"
	"github.com/papapumpkin/mainseq/internal/star"
)

// SeedField indexes one input row of the seed form.
type SeedField int

const (
	FieldMass SeedField = iota
	FieldTemperature
	FieldSpectralType
	FieldMetallicity
	fieldCount
)

// fieldLabels are the row labels, indexed by SeedField.
var fieldLabels = [fieldCount]string{
	"mass (M☉)",
	"temperature (K)",
	"spectral type",
	"metallicity (Z☉)",
}

// SeedForm holds the four seed inputs and tracks which one has focus.
// Fields may be filled in any combination; Seed converts whatever is
// present, and resolution precedence picks the winner.
type SeedForm struct {
	Inputs  []textinput.Model // indexed by SeedField
	Focused SeedField
}

// NewSeedForm creates a form with the mass field focused.
func NewSeedForm() SeedForm {
	placeholders := [fieldCount]string{
		"solar masses, e.g. 1.0",
		"kelvin, e.g. 5800",
		"e.g. G2",
		"blank for default",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "▸ "
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 24
		inputs[i] = ti
	}
	inputs[FieldMass].Focus()

	return SeedForm{Inputs: inputs}
}

// Update forwards a message to the focused input.
func (f *SeedForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Inputs[f.Focused], cmd = f.Inputs[f.Focused].Update(msg)
	return cmd
}

// Next moves focus to the following field, wrapping at the bottom.
func (f *SeedForm) Next() {
	f.setFocus((f.Focused + 1) % fieldCount)
}

// Prev moves focus to the preceding field, wrapping at the top.
func (f *SeedForm) Prev() {
	f.setFocus((f.Focused + fieldCount - 1) % fieldCount)
}

func (f *SeedForm) setFocus(field SeedField) {
	f.Inputs[f.Focused].Blur()
	f.Focused = field
	f.Inputs[f.Focused].Focus()
}

// Reset clears every input and returns focus to the mass field.
func (f *SeedForm) Reset() {
	for i := range f.Inputs {
		f.Inputs[i].SetValue("")
	}
	f.setFocus(FieldMass)
}

// SetFromEntry fills the form with a catalog entry's seed measurements,
// clearing fields the entry does not carry.
func (f *SeedForm) SetFromEntry(e catalog.Entry) {
	f.Inputs[FieldMass].SetValue(formatOptional(e.Mass))
	f.Inputs[FieldTemperature].SetValue(formatOptional(e.Temperature))
	f.Inputs[FieldSpectralType].SetValue(strings.TrimSpace(e.SpectralType))
	f.Inputs[FieldMetallicity].SetValue(formatOptional(e.Metallicity))
	f.setFocus(FieldMass)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// Seed parses the filled fields into a resolution seed. Numeric fields must
// parse as floats; a supplied metallicity must be positive. Blank fields are
// absent, and an all-blank form yields an empty seed (which resolution
// rejects with its own error).
func (f SeedForm) Seed() (star.Seed, error) {
	var seed star.Seed

	if v := strings.TrimSpace(f.Inputs[FieldMass].Value()); v != "" {
		mass, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return star.Seed{}, fmt.Errorf("mass %q is not a number", v)
		}
		seed.Mass = &mass
	}
	if v := strings.TrimSpace(f.Inputs[FieldTemperature].Value()); v != "" {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return star.Seed{}, fmt.Errorf("temperature %q is not a number", v)
		}
		seed.Temperature = &temp
	}
	seed.SpectralType = strings.ToUpper(strings.TrimSpace(f.Inputs[FieldSpectralType].Value()))
	if v := strings.TrimSpace(f.Inputs[FieldMetallicity].Value()); v != "" {
		met, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return star.Seed{}, fmt.Errorf("metallicity %q is not a number", v)
		}
		if met <= 0 {
			return star.Seed{}, fmt.Errorf("metallicity must be positive, got %g", met)
		}
		seed.Metallicity = &met
	}

	return seed, nil
}

// View renders the form as labeled input rows with the focused label
// highlighted.
func (f SeedForm) View() string {
	var b strings.Builder
	b.WriteString(styleFormHint.Render("  seed one measurement (extras are ignored by precedence: mass > temp > type)"))
	b.WriteString("\n\n")
	for i := range f.Inputs {
		label := fieldLabels[i]
		style := styleFormLabel
		if SeedField(i) == f.Focused {
			style = styleFormLabelFocused
		}
		b.WriteString(fmt.Sprintf("  %s\n  %s\n", style.Render(label), f.Inputs[i].View()))
	}
	return b.String()
}
