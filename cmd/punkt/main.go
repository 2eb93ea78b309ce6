package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time.
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "punkt",
		Short: "Train and run Punkt sentence boundary detection",
		Long: `punkt trains an unsupervised Kiss-Strunk sentence segmentation model
from plain text and uses it to split documents into sentences.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(segmentCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("punkt version: %s\n", Version)
		fmt.Printf("git commit: %s\n", GitCommit)
	},
}
