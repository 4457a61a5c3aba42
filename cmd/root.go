// Package cmd implements the CLI commands for coursepack using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursepack",
	Short: "coursepack — download a course as per-module PDF documents",
	Long: `coursepack resolves a course's structure from the catalog, fetches every
unit page, and assembles each module into a single offline PDF.

Usage:
  coursepack grab [course-url-or-slug] [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
