package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mainseq/internal/journal"
	"github.com/papapumpkin/mainseq/internal/star"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved resolutions",
	Long: `History lists journal records, newest first. Records land in the journal
via 'resolve --save' or the save binding in the TUI.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved resolution",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().String("db", "", "journal database path (default ~/.mainseq/history.db)")
	historyCmd.Flags().Int("limit", 20, "maximum records to show")
	historyCmd.Flags().String("kind", "", "filter by seed kind (mass, temperature, spectral_type)")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := newPrinter(cfg)

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}
	kind, _ := cmd.Flags().GetString("kind")
	switch star.SeedKind(kind) {
	case "", star.SeedMass, star.SeedTemperature, star.SeedSpectralType:
	default:
		return fmt.Errorf("unknown seed kind %q (mass, temperature, spectral_type)", kind)
	}

	dbFlag, _ := cmd.Flags().GetString("db")
	path, err := journalPath(dbFlag, cfg)
	if err != nil {
		return err
	}
	printer.Debug("journal at " + path)
	j, err := journal.Open(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer j.Close()

	var recs []journal.Record
	if kind == "" {
		recs, err = j.Recent(cmd.Context(), limit)
	} else {
		recs, err = j.ByKind(cmd.Context(), kind, limit)
	}
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if len(recs) == 0 {
		printer.Info("journal is empty")
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-17s %-24s %-6s %9s %10s %11s %6s\n",
		"when", "seed", "type", "mass", "temp", "lifespan", "Z")
	for _, r := range recs {
		fmt.Fprintf(w, "%-17s %-24s %-6s %9.3f %10.2f %11.3f %6.2f\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.SeedKind+"="+r.SeedValue,
			r.SpectralType,
			r.Mass, r.Temperature, r.Lifespan, r.Metallicity)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := newPrinter(cfg)

	dbFlag, _ := cmd.Flags().GetString("db")
	path, err := journalPath(dbFlag, cfg)
	if err != nil {
		return err
	}
	j, err := journal.Open(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer j.Close()

	if err := j.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	printer.Info("journal cleared")
	return nil
}
