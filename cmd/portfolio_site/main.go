// Package main provides the entry point for the portfolio site builder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_site",
	Short: "Portfolio site builder",
	Long:  "Portfolio site builder renders a personal portfolio from a set of JSON resource documents into static HTML pages, with an optional PDF export of the printable CV.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
