// relaymeter pulls usage and billing telemetry from a relay management API
// into a local SQLite database and derives hourly per-channel summaries from
// the raw request log.
package main

import (
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/relaymeter/relaymeter/internal/config"
	"github.com/relaymeter/relaymeter/internal/schema"
	"github.com/relaymeter/relaymeter/internal/version"
)

type rootOptions struct {
	configPath string
	profile    string
	verbose    bool
}

func main() {
	opts := rootOptions{}

	root := cobra.Command{
		Use:     "relaymeter",
		Short:   "Import relay usage telemetry into SQLite and derive hourly summaries.",
		Version: version.String(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to databases.yaml")
	root.PersistentFlags().StringVar(&opts.profile, "profile", config.ActiveProfileName(), "database profile name")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newImportCommand(&opts))
	root.AddCommand(newAggregateCommand(&opts))
	root.AddCommand(newStatsCommand(&opts))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveProfile loads the configured profiles and picks the active one.
func resolveProfile(opts *rootOptions) (config.Profile, error) {
	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return config.Profile{}, err
	}
	return cfg.Profile(opts.profile)
}

// resolveRegistry returns the profile's schema file when one is configured,
// the built-in catalog otherwise.
func resolveRegistry(profile config.Profile) (schema.Registry, error) {
	if profile.SchemaPath == "" {
		return schema.DefaultRegistry(), nil
	}
	return schema.LoadFile(profile.SchemaPath, nil)
}
