package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mainseq/internal/config"
	"github.com/papapumpkin/mainseq/internal/journal"
	"github.com/papapumpkin/mainseq/internal/star"
	"github.com/papapumpkin/mainseq/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Estimate stellar properties from a seed measurement",
	Long: `Resolve estimates mass, surface temperature, lifespan, and spectral type
from a single seed measurement. When several seeds are given, precedence
picks one: mass, then temperature, then spectral type.

Seeds come from flags, from a catalog entry (--star), or both, with
explicit flags overriding the entry's fields.`,
	Example: `  mainseq resolve --mass 1.0
  mainseq resolve --temperature 9602 --json
  mainseq resolve --type M5 --save
  mainseq resolve --star "Tau Ceti"`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Float64("mass", 0, "stellar mass in solar masses")
	resolveCmd.Flags().Float64("temperature", 0, "surface temperature in kelvin")
	resolveCmd.Flags().String("type", "", "spectral type, e.g. G2")
	resolveCmd.Flags().Float64("metallicity", 0, "metallicity in solar units")
	resolveCmd.Flags().String("star", "", "seed from a catalog entry by name")
	resolveCmd.Flags().Bool("json", false, "emit the rounded record as JSON on stdout")
	resolveCmd.Flags().Bool("save", false, "append the resolution to the journal")
	resolveCmd.Flags().String("db", "", "journal database path (default ~/.mainseq/history.db)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := newPrinter(cfg)

	seed, err := buildSeed(cmd, cfg)
	if err != nil {
		return err
	}
	if kind, err := seed.Kind(); err == nil {
		printer.Debug(fmt.Sprintf("resolving from %s seed %s", kind, seed.Value()))
	}

	jsonOut, _ := cmd.Flags().GetBool("json")

	opts := star.Options{DefaultMetallicity: cfg.DefaultMetallicity}
	// Only interactive plain-text sessions get the metallicity question.
	// Whether it is actually asked depends on the derivation path.
	if !jsonOut && isStdinTTY() && isStderrTTY() {
		opts.MetallicityPrompt = promptMetallicity
	}

	props, err := star.Resolve(seed, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(ui.Round(props)); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	} else {
		ui.WriteRecord(cmd.OutOrStdout(), props)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
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

		kind, _ := seed.Kind()
		stored, err := j.Append(cmd.Context(), journal.Record{
			SeedKind:     string(kind),
			SeedValue:    seed.Value(),
			Mass:         props.Mass,
			Temperature:  props.Temperature,
			Lifespan:     props.Lifespan,
			SpectralType: props.SpectralType,
			Metallicity:  props.Metallicity,
		})
		if err != nil {
			return fmt.Errorf("failed to save resolution: %w", err)
		}
		printer.Saved(stored.ID)
	}

	return nil
}

// buildSeed assembles the resolution seed: catalog entry first (when --star
// is given), then explicit seed flags on top. Changed() distinguishes a
// supplied zero from an absent flag so invalid values still reach the
// domain's own errors.
func buildSeed(cmd *cobra.Command, cfg config.Config) (star.Seed, error) {
	var seed star.Seed

	if name, _ := cmd.Flags().GetString("star"); name != "" {
		cat, _, err := loadCatalog(cfg)
		if err != nil {
			return star.Seed{}, err
		}
		entry, ok := cat.Lookup(name)
		if !ok {
			return star.Seed{}, fmt.Errorf("star %q not found in catalog", name)
		}
		seed = entry.Seed()
	}

	if cmd.Flags().Changed("mass") {
		v, _ := cmd.Flags().GetFloat64("mass")
		seed.Mass = &v
	}
	if cmd.Flags().Changed("temperature") {
		v, _ := cmd.Flags().GetFloat64("temperature")
		seed.Temperature = &v
	}
	if cmd.Flags().Changed("type") {
		v, _ := cmd.Flags().GetString("type")
		seed.SpectralType = strings.ToUpper(strings.TrimSpace(v))
	}
	if cmd.Flags().Changed("metallicity") {
		v, _ := cmd.Flags().GetFloat64("metallicity")
		if v <= 0 {
			return star.Seed{}, fmt.Errorf("metallicity must be positive, got %g", v)
		}
		seed.Metallicity = &v
	}

	return seed, nil
}

// promptMetallicity asks on stderr and reads one line from stdin. Blank,
// unparseable, or non-positive input declines, falling back to the default.
func promptMetallicity() (float64, bool) {
	fmt.Fprint(os.Stderr, "metallicity in solar units (blank for default): ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return 0, false
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v <= 0 {
		fmt.Fprintln(os.Stderr, "ignoring invalid metallicity, using default")
		return 0, false
	}
	return v, true
}
