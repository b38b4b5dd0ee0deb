package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayuer/airtable-mcp-go/internal/config"
	"github.com/dayuer/airtable-mcp-go/internal/credentials"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and credential status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	configPath := config.GetConfigPath()
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println("airtable-mcp Status")
	fmt.Println()
	fmt.Printf("Config: %s\n", configPath)

	// Credential status: report the source, never the key.
	switch {
	case cfg.Airtable.APIKey != "":
		fmt.Println("API key: config file")
	case cfg.Airtable.APIKeyEnv != "":
		fmt.Printf("API key: env %s\n", cfg.Airtable.APIKeyEnv)
	default:
		if name := credentials.SetEnvName(); name != "" {
			fmt.Printf("API key: env %s ✓\n", name)
		} else {
			fmt.Println("API key: not configured ✗")
		}
	}

	profiles, err := config.LoadProfiles(cfg.Serve.ProfilesFile)
	if err != nil {
		return err
	}
	if len(profiles) > 0 {
		fmt.Println("\nProfiles:")
		for _, p := range profiles {
			marker := ""
			if p.IsDefault {
				marker = " (default)"
			}
			fmt.Printf("  %s%s: %s\n", p.ID, marker, p.Description)
		}
	}

	return nil
}
