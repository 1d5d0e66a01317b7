// Package tui is the interactive estimator: a seed form, a live result
// panel, a catalog picker, and a journal save binding, rendered with
// BubbleTea. The catalog file can be watched so edits show up without a
// restart.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/mainseq/internal/catalog"
)

// Options configures a TUI session.
type Options struct {
	// Catalog is the merged builtin+user catalog shown in the picker.
	Catalog catalog.Catalog
	// CatalogPath is the user catalog file, shown in the status bar and
	// watched for changes. Empty means builtin only.
	CatalogPath string
	// Journal receives saved resolutions. Nil disables saving.
	Journal Saver
	// DefaultMetallicity is stored when the metallicity field is blank.
	DefaultMetallicity float64
}

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for the given session options.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(opts Options, teaOpts ...tea.ProgramOption) *Program {
	model := NewAppModel(opts)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, teaOpts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
// When opts.CatalogPath is set, the catalog file is watched for the
// lifetime of the program.
func Run(opts Options) error {
	p := NewProgram(opts)

	if opts.CatalogPath != "" {
		stop, err := WatchCatalog(p, opts.CatalogPath)
		if err != nil {
			return fmt.Errorf("watch catalog: %w", err)
		}
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WatchCatalog reloads the catalog file whenever it changes and sends the
// merged result to the program. tea.Program.Send is goroutine-safe, so the
// watcher goroutine feeds the UI directly. The returned stop function shuts
// the watcher down.
func WatchCatalog(p *Program, path string) (stop func(), err error) {
	w, err := catalog.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}

	go func() {
		for range w.Changes {
			user, err := catalog.Load(path)
			if err != nil {
				p.Send(MsgCatalogReloadError{Err: err})
				continue
			}
			p.Send(MsgCatalogReloaded{Catalog: catalog.Builtin().Merge(user)})
		}
	}()

	return w.Stop, nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
