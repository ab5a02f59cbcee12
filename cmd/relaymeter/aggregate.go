package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relaymeter/relaymeter/internal/aggregate"
	"github.com/relaymeter/relaymeter/internal/store"
)

func newAggregateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Fill hourly channel and channel-model summary tables from the raw log.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := resolveProfile(opts)
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(profile.Path); statErr != nil {
				return fmt.Errorf("database %s does not exist yet, run import first", profile.Path)
			}

			db, err := store.Open(profile.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			var failures int
			for _, job := range aggregate.Jobs() {
				agg := aggregate.New(db.DB(), job)
				res, err := agg.Run(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Printf("%s: %d hour(s) summarized, %d row(s) inserted",
					job.SummaryTable, res.HoursProcessed, res.RowsInserted)
				if res.EmptyHours > 0 {
					fmt.Printf(", %d empty hour(s) skipped", res.EmptyHours)
				}
				if res.Halted {
					fmt.Print(", halted on already-summarized hour")
				}
				fmt.Println()

				failures += len(res.Failures)
			}

			if failures > 0 {
				return fmt.Errorf("%d hour(s) failed to summarize", failures)
			}
			return nil
		},
	}
	return cmd
}
