// Package cmd provides the command-line interface for potgrid.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "potgrid",
	Short: "Potgrid evaluates composite gravitational potentials on " +
		"coordinate grids.",
	Long: `Potgrid evaluates composite gravitational potentials described ` +
		`by type codes and a flat parameter buffer, either on the outer ` +
		`product of two coordinate arrays or at paired coordinates. Results ` +
		`can be printed, recorded to SQLite, and watched through a ` +
		`monitoring server.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file may provide POTGRID_DB and POTGRID_MONITOR_PORT defaults.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
