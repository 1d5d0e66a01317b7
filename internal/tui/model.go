package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/mainseq/internal/catalog"
	"github.com/papapumpkin/mainseq/internal/journal"
	"github.com/papapumpkin/mainseq/internal/star"
)

// Saver persists resolution records. *journal.SQLiteJournal satisfies it;
// a nil Saver disables the save binding.
type Saver interface {
	Append(ctx context.Context, rec journal.Record) (journal.Record, error)
}

// AppModel is the root BubbleTea model composing the seed form, the result
// panel, and the catalog picker overlay.
type AppModel struct {
	Catalog     catalog.Catalog
	CatalogPath string
	Journal     Saver
	Opts        star.Options

	Form      SeedForm
	Result    ResultView
	Picker    *CatalogPicker
	StatusBar StatusBar
	Keys      KeyMap

	Width  int
	Height int

	// Notice is a transient one-line message below the result panel.
	Notice    string
	NoticeErr bool
}

// NewAppModel creates a root model over the given catalog and journal.
func NewAppModel(opts Options) AppModel {
	m := AppModel{
		Catalog:     opts.Catalog,
		CatalogPath: opts.CatalogPath,
		Journal:     opts.Journal,
		Opts:        star.Options{DefaultMetallicity: opts.DefaultMetallicity},
		Form:        NewSeedForm(),
		Keys:        DefaultKeyMap(),
	}
	m.StatusBar.CatalogPath = opts.CatalogPath
	m.StatusBar.StarCount = len(opts.Catalog.Stars)
	return m
}

// Init starts the cursor blink.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Result.Width = msg.Width
		if m.Picker != nil {
			m.Picker.Width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgSaved:
		m.setNotice(false, "saved to journal as %s", msg.ID)
		return m, nil

	case MsgSaveError:
		m.setNotice(true, "save failed: %s", msg.Err)
		return m, nil

	case MsgCatalogReloaded:
		m.Catalog = msg.Catalog
		m.StatusBar.StarCount = len(msg.Catalog.Stars)
		if m.Picker != nil {
			m.Picker.SetEntries(msg.Catalog)
		}
		m.setNotice(false, "catalog reloaded (%d stars)", len(msg.Catalog.Stars))
		return m, nil

	case MsgCatalogReloadError:
		m.setNotice(true, "catalog reload failed: %s", msg.Err)
		return m, nil
	}

	// Everything else (cursor blinks and the like) feeds the focused input.
	cmd := m.Form.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Picker mode overrides form keys.
	if m.Picker != nil {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Next):
		m.Form.Next()

	case key.Matches(msg, m.Keys.Prev):
		m.Form.Prev()

	case key.Matches(msg, m.Keys.Resolve):
		m.resolve()

	case key.Matches(msg, m.Keys.Picker):
		m.openPicker()

	case key.Matches(msg, m.Keys.Save):
		if cmd := m.saveCmd(); cmd != nil {
			return m, cmd
		}

	case key.Matches(msg, m.Keys.Reset):
		m.Form.Reset()
		m.Result = ResultView{Width: m.Width}
		m.Notice = ""

	default:
		cmd := m.Form.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handlePickerKey processes keys while the catalog picker is open.
func (m AppModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Picker.MoveUp()

	case key.Matches(msg, m.Keys.Down):
		m.Picker.MoveDown()

	case key.Matches(msg, m.Keys.Choose):
		if e, ok := m.Picker.Selected(); ok {
			m.Form.SetFromEntry(e)
			m.setNotice(false, "loaded %s", e.Name)
		}
		m.Picker = nil

	case key.Matches(msg, m.Keys.Close):
		m.Picker = nil
	}
	return m, nil
}

// resolve runs the scaling relations over the parsed form seed and stores
// the outcome in the result view. Pure math, so it happens inline.
func (m *AppModel) resolve() {
	m.Notice = ""
	seed, err := m.Form.Seed()
	if err != nil {
		m.Result = ResultView{Err: err.Error(), Width: m.Width}
		return
	}
	props, err := star.Resolve(seed, m.Opts)
	if err != nil {
		m.Result = ResultView{Err: err.Error(), Width: m.Width}
		return
	}
	kind, _ := seed.Kind()
	m.Result = ResultView{
		Props:    &props,
		Kind:     kind,
		SeedText: seed.Value(),
		Width:    m.Width,
	}
}

// openPicker opens the catalog picker overlay.
func (m *AppModel) openPicker() {
	p := NewCatalogPicker(m.Catalog)
	p.Width = m.Width
	m.Picker = p
}

// saveCmd returns a command that appends the last resolution to the journal.
// The write happens off the UI goroutine; the outcome comes back as a
// MsgSaved or MsgSaveError.
func (m *AppModel) saveCmd() tea.Cmd {
	if m.Result.Props == nil {
		m.setNotice(true, "nothing to save: estimate first")
		return nil
	}
	if m.Journal == nil {
		m.setNotice(true, "journal disabled")
		return nil
	}

	rec := journal.Record{
		SeedKind:     string(m.Result.Kind),
		SeedValue:    m.Result.SeedText,
		Mass:         m.Result.Props.Mass,
		Temperature:  m.Result.Props.Temperature,
		Lifespan:     m.Result.Props.Lifespan,
		SpectralType: m.Result.Props.SpectralType,
		Metallicity:  m.Result.Props.Metallicity,
	}
	j := m.Journal
	return func() tea.Msg {
		stored, err := j.Append(context.Background(), rec)
		if err != nil {
			return MsgSaveError{Err: err}
		}
		return MsgSaved{ID: stored.ID}
	}
}

// setNotice sets the transient feedback line.
func (m *AppModel) setNotice(isErr bool, format string, args ...any) {
	m.Notice = fmt.Sprintf(format, args...)
	m.NoticeErr = isErr
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}

	var sections []string

	m.StatusBar.Width = m.Width
	sections = append(sections, m.StatusBar.View())

	// The picker replaces the form while open.
	if m.Picker != nil {
		sections = append(sections, m.Picker.View())
	} else {
		sections = append(sections, m.Form.View())
		sections = append(sections, m.Result.View())
	}

	if m.Notice != "" {
		style := styleNoticeInfo
		if m.NoticeErr {
			style = styleNoticeError
		}
		sections = append(sections, style.Render("  "+m.Notice))
	}

	sections = append(sections, m.buildFooter().View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// buildFooter creates the footer with the bindings for the active mode.
func (m AppModel) buildFooter() Footer {
	f := Footer{Width: m.Width}
	if m.Picker != nil {
		f.Bindings = PickerFooterBindings(m.Keys)
	} else {
		f.Bindings = FormFooterBindings(m.Keys)
	}
	return f
}
