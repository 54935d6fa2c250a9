// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thefledgedhurricane/journal-quality/internal/results"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List stored analysis runs or show one run's result table",
	Long: `History reads the local run database written by analyze. Without an
argument it lists stored runs, newest first; with a run ID it prints
that run's full result table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := results.OpenStore(exportsDir(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		if len(args) == 1 {
			runID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run ID %q", args[0])
			}
			table, err := store.RunResults(cmd.Context(), runID)
			if err != nil {
				return err
			}
			results.FormatTable(table, os.Stdout)
			return nil
		}

		runs, err := store.ListRuns(cmd.Context())
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No stored runs.")
			return nil
		}

		fmt.Printf("%-5s  %-20s  %-10s  %-30s  %s\n", "ID", "When", "Mode", "Term", "Journals")
		for _, r := range runs {
			fmt.Printf("%-5d  %-20s  %-10s  %-30s  %d\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Mode, r.Term, r.Total)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("exports-dir", "", "directory holding the run history database (default: exports)")

	rootCmd.AddCommand(historyCmd)
}
