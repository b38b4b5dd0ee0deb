package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "airtable-mcp",
	Short: "airtable-mcp — Airtable bases, tables, and records as MCP tools",
	Long:  "airtable-mcp exposes the Airtable Web API as a fixed set of tools over the Model Context Protocol.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
}
