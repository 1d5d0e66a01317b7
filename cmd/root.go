package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "mainseq",
	Short: "Main-sequence stellar property estimator",
	Long: `Mainseq estimates the observable properties of a main-sequence star
(mass, surface temperature, lifespan, spectral type) from a single seed
measurement, using empirical scaling relations anchored at the Sun.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .mainseq.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mainseq")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MAINSEQ")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault launches the interactive estimator when attached to a
// terminal. Otherwise (pipes, scripts) it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if !isStderrTTY() {
		return cmd.Help()
	}
	return runTUI(tuiCmd, nil)
}
