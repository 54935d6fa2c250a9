// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thefledgedhurricane/journal-quality/internal/predatory"
)

var checkCmd = &cobra.Command{
	Use:   "check [title]",
	Short: "Check a journal name against the predatory registries",
	Long: `Check tests a single journal title (and optionally its publisher via
--publisher) against the predatory registries. The match is exact after
trimming and lower-casing. This command is fully offline: no remote
service is contacted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		publisher, _ := cmd.Flags().GetString("publisher")

		ref, err := loadReference(datasetConfig(cmd))
		if err != nil {
			return err
		}

		journalMatch, publisherMatch := predatory.Check(title, publisher, ref.Registry)
		fmt.Printf("predatory journal:   %v\n", journalMatch)
		if publisher != "" {
			fmt.Printf("predatory publisher: %v\n", publisherMatch)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("publisher", "", "publisher name to check against the publisher registry")

	rootCmd.AddCommand(checkCmd)
}
