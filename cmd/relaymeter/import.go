package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/relaymeter/relaymeter/internal/ingest"
	"github.com/relaymeter/relaymeter/internal/relayapi"
	"github.com/relaymeter/relaymeter/internal/store"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var (
		lastDays int
		session  string
		tables   string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Fetch all configured tables from the relay API into the database.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lastDays <= 0 {
				return fmt.Errorf("--lastdays is required and must be positive")
			}
			if strings.TrimSpace(session) == "" {
				return fmt.Errorf("--session is required for data import")
			}

			profile, err := resolveProfile(opts)
			if err != nil {
				return err
			}
			registry, err := resolveRegistry(profile)
			if err != nil {
				return err
			}

			if !strings.EqualFold(tables, "all") {
				selected, unknown := registry.Select(strings.Split(tables, ","))
				for _, name := range unknown {
					log.Warn("table not found in schema", "table", name)
				}
				if selected.Len() == 0 {
					return fmt.Errorf("no known tables selected")
				}
				registry = selected
			}

			// Refuse to pile a second import onto an existing database unless
			// asked; show what is in there instead.
			if _, statErr := os.Stat(profile.Path); statErr == nil && !force {
				fmt.Printf("Database %s already exists. Use --force to reimport.\n\n", profile.Path)
				return printDatabaseStats(cmd.Context(), profile.Path)
			}

			db, err := store.Open(profile.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			end := time.Now().Unix()
			start := end - int64(lastDays)*86400

			importer := ingest.Importer{
				Client:   relayapi.NewClient(profile.BaseURL, session),
				Store:    db,
				Registry: registry,
			}
			results := importer.Run(cmd.Context(), start, end)

			printImportSummary(results)
			if err := printDatabaseStats(cmd.Context(), profile.Path); err != nil {
				return err
			}

			if failed := lo.CountBy(results, func(r ingest.TableResult) bool { return r.Err != nil }); failed > 0 {
				return fmt.Errorf("%d of %d tables failed to import", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lastDays, "lastdays", 0, "import data for the last N days (required)")
	cmd.Flags().StringVar(&session, "session", "", "session cookie value (required)")
	cmd.Flags().StringVar(&tables, "tables", "all", `comma-separated list of tables to import, or "all"`)
	cmd.Flags().BoolVar(&force, "force", false, "import even if the database file already exists")

	return cmd
}

func printImportSummary(results []ingest.TableResult) {
	fmt.Println()
	fmt.Println("=== IMPORT SUMMARY ===")
	fmt.Printf("%-15s %-20s\n", "Table", "Records Imported")
	fmt.Println(strings.Repeat("-", 35))
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-15s %-20s\n", r.Table, "Error")
			continue
		}
		fmt.Printf("%-15s %-20d\n", r.Table, r.Rows)
	}
	fmt.Println(strings.Repeat("=", 35))

	total := lo.SumBy(results, func(r ingest.TableResult) int { return r.Rows })
	fmt.Printf("Total records successfully imported: %d\n", total)
}
