// Package cli provides the command-line interface for huemosaic.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/huemosaic/huemosaic/internal/version"
)

var (
	rootVerbose bool
	rootQuiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huemosaic",
		Short: "Build colour-sorted mosaics from album covers",
		Long: `Huemosaic arranges a folder of album-cover images into a single mosaic
in which covers progress smoothly around the colour wheel.

Each cover is reduced to its dominant colour, classified as colourful or
near-monochrome, and placed on a grid: colourful covers walk the hue
wheel while monochrome covers form their own dark-to-light block. The
same folder and settings always produce an identical mosaic.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
}

// newLogger builds the application logger from the global verbosity flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	if rootVerbose {
		level = hclog.Debug
	}
	if rootQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huemosaic",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
