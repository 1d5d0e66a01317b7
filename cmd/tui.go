package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mainseq/internal/journal"
	"github.com/papapumpkin/mainseq/internal/tui"
)

// tuiCmd launches the interactive estimator.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive estimator",
	Long: `Launch the interactive estimator: a seed form with live resolution, a
catalog picker, and a save-to-journal binding. When a user catalog file is
configured it is watched, so edits show up without a restart.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("db", "", "journal database path (default ~/.mainseq/history.db)")
	tuiCmd.Flags().Bool("no-journal", false, "disable saving to the journal")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("mainseq tui requires a TTY (terminal)")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cat, path, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Catalog:            cat,
		CatalogPath:        path,
		DefaultMetallicity: cfg.DefaultMetallicity,
	}

	if noJournal, _ := cmd.Flags().GetBool("no-journal"); !noJournal {
		dbFlag, _ := cmd.Flags().GetString("db")
		dbPath, err := journalPath(dbFlag, cfg)
		if err != nil {
			return err
		}
		j, err := journal.Open(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer j.Close()
		opts.Journal = j
	}

	return tui.Run(opts)
}
