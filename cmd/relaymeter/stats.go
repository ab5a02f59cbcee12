package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/relaymeter/relaymeter/internal/store"
)

func newStatsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print row counts and timestamp ranges for every stored table.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := resolveProfile(opts)
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(profile.Path); statErr != nil {
				fmt.Printf("Database %s does not exist yet.\n", profile.Path)
				return nil
			}
			return printDatabaseStats(cmd.Context(), profile.Path)
		},
	}
	return cmd
}

func printDatabaseStats(ctx context.Context, path string) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.Stats(ctx)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("\nNo database statistics available yet.")
		return nil
	}

	fmt.Println("\n=== DATABASE STATISTICS ===")
	for _, st := range stats {
		fmt.Printf("\n%s:\n", st.Name)
		fmt.Println(strings.Repeat("-", len(st.Name)))
		fmt.Printf("  count: %d\n", st.Rows)
		if st.HasDateRange() {
			fmt.Printf("  date_range: %s\n", st.DateRange())
		}
		if st.UniqueModels > 0 {
			fmt.Printf("  unique_models: %d\n", st.UniqueModels)
		}
		if st.UniqueUsers > 0 {
			fmt.Printf("  unique_users: %d\n", st.UniqueUsers)
		}
	}

	total := lo.SumBy(stats, func(st store.TableStats) int64 { return st.Rows })
	fmt.Printf("\nTotal records across all tables: %d\n", total)
	return nil
}
