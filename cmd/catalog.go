package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mainseq/internal/catalog"
	"github.com/papapumpkin/mainseq/internal/star"
	"github.com/papapumpkin/mainseq/internal/ui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the star catalog",
	Long: `Catalog lists the merged star catalog: the builtin table of nearby and
well-known main-sequence stars, overlaid by the user catalog file when one
is configured (catalog_path in .mainseq.yaml or MAINSEQ_CATALOG_PATH).`,
	Args: cobra.NoArgs,
	RunE: runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one catalog entry with a resolved preview",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a catalog file by resolving every entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogValidate,
}

func init() {
	catalogValidateCmd.Flags().Bool("watch", false, "re-validate whenever the file changes")
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := newPrinter(cfg)

	cat, path, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if path != "" {
		printer.Info(fmt.Sprintf("builtin catalog + %s", path))
	}

	w := cmd.OutOrStdout()
	for _, e := range cat.Stars {
		fmt.Fprintf(w, "%-20s %s\n", e.Name, ui.SeedSummary(e))
	}
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cat, _, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	entry, ok := cat.Lookup(args[0])
	if !ok {
		return fmt.Errorf("star %q not found in catalog", args[0])
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "name:          %s\n", entry.Name)
	if len(entry.Aliases) > 0 {
		fmt.Fprintf(w, "aliases:       %s\n", strings.Join(entry.Aliases, ", "))
	}
	fmt.Fprintf(w, "seed:          %s\n", ui.SeedSummary(entry))
	if entry.Notes != "" {
		fmt.Fprintf(w, "notes:         %s\n", entry.Notes)
	}
	fmt.Fprintln(w)

	props, err := star.Resolve(entry.Seed(), star.Options{DefaultMetallicity: cfg.DefaultMetallicity})
	if err != nil {
		return fmt.Errorf("entry does not resolve: %w", err)
	}
	ui.WriteRecord(w, props)
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	printer := newPrinter(cfg)
	path := args[0]

	watch, _ := cmd.Flags().GetBool("watch")

	starCount, errs, err := validateCatalogFile(path)
	if err != nil {
		if !watch {
			return err
		}
		printer.Error(err.Error())
	} else {
		printer.ValidateResult(path, starCount, errs)
	}

	if !watch {
		if err != nil || len(errs) > 0 {
			os.Exit(1)
		}
		return nil
	}

	w, err := catalog.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer w.Stop()

	printer.Watching(path)
	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			starCount, errs, err := validateCatalogFile(path)
			if err != nil {
				printer.Error(err.Error())
				continue
			}
			printer.ValidateResult(path, starCount, errs)
		}
	}
}

// validateCatalogFile loads one catalog file and resolves every entry.
func validateCatalogFile(path string) (int, []catalog.ValidationError, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return 0, nil, err
	}
	return len(c.Stars), catalog.Validate(c), nil
}

// setupSignalContext returns a context that is canceled on SIGINT or SIGTERM.
func setupSignalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		printer.Info("\nshutting down...")
		cancel()
	}()
	return ctx, cancel
}
