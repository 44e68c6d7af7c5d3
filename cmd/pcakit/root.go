package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd is the base command for the pcakit CLI.
var rootCmd = &cobra.Command{
	Use:   "pcakit",
	Short: "Principal component analysis for ratings matrices",
	Long: `pcakit reduces a user-by-item ratings matrix to its principal
components: standardize columns, estimate the covariance matrix,
decompose it, and project every user onto the top components.

Use 'pcakit reduce' to run the full pipeline on a CSV ratings file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
