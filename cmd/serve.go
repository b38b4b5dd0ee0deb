package cmd

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dayuer/airtable-mcp-go/internal/config"
	"github.com/dayuer/airtable-mcp-go/internal/mcpserver"
	"github.com/dayuer/airtable-mcp-go/internal/tools"
)

var (
	serveProfile      string
	serveProfilesFile string
	serveConfigFile   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Airtable tools over MCP stdio",
	Long: `Serve the eleven Airtable tools (bases, tables, records, batch
operations) over the Model Context Protocol on stdin/stdout.

The API key is read from AIRTABLE_API_KEY (or an accepted alternative
spelling), a .env file, the config file, or the selected profile.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveProfile, "profile", "p", "", "Connection profile ID from profiles.yaml")
	serveCmd.Flags().StringVar(&serveProfilesFile, "profiles", "", "Path to profiles.yaml (default: ~/.airtable-mcp/profiles.yaml)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to config.json (default: ~/.airtable-mcp/config.json)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	profilesPath := serveProfilesFile
	if profilesPath == "" {
		profilesPath = cfg.Serve.ProfilesFile
	}
	profiles, err := config.LoadProfiles(profilesPath)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}

	profileID := serveProfile
	if profileID == "" {
		profileID = cfg.Serve.Profile
	}
	profile, err := config.SelectProfile(profiles, profileID)
	if err != nil {
		return err
	}
	if profile != nil {
		log.Printf("[MCP] using profile %q", profile.ID)
	}

	adapter, err := tools.NewAdapter(makeCredentials(cfg, profile), makeClientOptions(cfg, profile)...)
	if err != nil {
		return err
	}

	reg := tools.NewRegistry()
	tools.RegisterAll(reg, adapter)
	applyWhitelist(reg, cfg, profile)

	srv := mcpserver.New(reg, Version)
	log.Printf("[MCP] exposing %d tools", len(reg.All()))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx, srv)
}

// applyWhitelist rebuilds the registry with only the whitelisted tools
// when the profile or config names any.
func applyWhitelist(reg *tools.Registry, cfg config.Config, profile *config.Profile) {
	whitelist := cfg.Serve.Tools
	if profile != nil && len(profile.Tools) > 0 {
		whitelist = profile.Tools
	}
	if len(whitelist) == 0 {
		return
	}
	keep := make(map[string]bool, len(whitelist))
	for _, name := range whitelist {
		keep[name] = true
	}
	for _, t := range reg.All() {
		if !keep[t.Name()] {
			reg.Unregister(t.Name())
		}
	}
}
