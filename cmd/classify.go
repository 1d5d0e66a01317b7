package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mainseq/internal/star"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [kelvin]",
	Short: "Classify a surface temperature into a spectral type",
	Long: `Classify maps a surface temperature in kelvin onto the spectral sequence
(Wolf-Rayet, O through T, substellar) and prints the resulting type.
Use --bands to print the classification table instead.`,
	Example: `  mainseq classify 5800
  mainseq classify 9602
  mainseq classify --bands`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Bool("bands", false, "print the classification band table")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if bands, _ := cmd.Flags().GetBool("bands"); bands {
		writeBands(cmd.OutOrStdout())
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a temperature in kelvin is required (or --bands)")
	}
	temp, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("temperature %q is not a number", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), star.Classify(temp).String())
	return nil
}

// writeBands prints the band table, hottest first. The Wolf-Rayet and
// substellar regions have no subclass divisor.
func writeBands(w io.Writer) {
	bs := star.Bands()
	fmt.Fprintf(w, "%-12s %10s %10s %9s\n", "class", "min K", "max K", "divisor")
	fmt.Fprintf(w, "%-12s %10.0f %10s %9s\n", "Wolf-Rayet", bs[0].Max, "", "")
	for _, b := range bs {
		fmt.Fprintf(w, "%-12s %10.0f %10.0f %9.0f\n", b.Class, b.Min, b.Max, b.Divisor)
	}
	fmt.Fprintf(w, "%-12s %10s %10.0f %9s\n", "substellar", "", bs[len(bs)-1].Min, "")
}
