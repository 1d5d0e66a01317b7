package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/mainseq/internal/catalog"
	"github.com/papapumpkin/mainseq/internal/config"
	"github.com/papapumpkin/mainseq/internal/ui"
)

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// isStdinTTY reports whether stdin is attached to a terminal.
func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// loadConfig loads the viper config and applies the persistent flag
// overrides shared by every command.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	if nc, _ := cmd.Flags().GetBool("no-color"); nc {
		cfg.NoColor = true
	}
	return cfg, nil
}

// newPrinter builds the stderr printer. Color only applies on a terminal
// and when not suppressed.
func newPrinter(cfg config.Config) *ui.Printer {
	p := ui.New(!cfg.NoColor && isStderrTTY())
	p.Verbose = cfg.Verbose
	return p
}

// loadCatalog merges the configured user catalog over the builtin one.
// The returned path is the user file actually loaded, empty for builtin only.
func loadCatalog(cfg config.Config) (catalog.Catalog, string, error) {
	merged := catalog.Builtin()
	if cfg.CatalogPath == "" {
		return merged, "", nil
	}
	user, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return catalog.Catalog{}, "", fmt.Errorf("failed to load catalog %s: %w", cfg.CatalogPath, err)
	}
	return merged.Merge(user), cfg.CatalogPath, nil
}

// journalPath picks the journal location: flag, then config, then
// ~/.mainseq/history.db. The parent directory is created when missing.
func journalPath(flagPath string, cfg config.Config) (string, error) {
	path := flagPath
	if path == "" {
		path = cfg.JournalPath
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = filepath.Join(home, ".mainseq", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create journal directory: %w", err)
	}
	return path, nil
}
