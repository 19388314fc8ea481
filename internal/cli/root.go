// Package cli implements the semmeta command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/semmeta"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "semmeta",
	Short: "Extract acquisition parameters from SEM image headers",
	Long: `semmeta reads the vendor header embedded in SEM images (.tif) recorded
with either the Zeiss SmartSEM or the Thermo Fisher Scientific xT
software, and prints or exports the acquisition parameters.

Both vendor formats are normalized into the same category scheme
(General, SEM, Beam, Scanning, Detector, Image, Stage), so images from
different microscopes can be compared side by side.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("semmeta v%s\n", semmeta.GetVersion())
		if verbose {
			info := semmeta.GetVersionInfo()
			fmt.Printf("  commit:  %s\n", info.GitCommit)
			fmt.Printf("  built:   %s\n", info.BuildTime)
			fmt.Printf("  go:      %s\n", info.GoVersion)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/semmeta/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	viper.SetDefault("color", true)
	viper.SetDefault("indent", 2)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "semmeta"))
		}
		viper.AddConfigPath(".")
	}

	// Read in environment variables that match SEMMETA_*
	viper.SetEnvPrefix("SEMMETA")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
