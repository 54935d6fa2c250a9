// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thefledgedhurricane/journal-quality/internal/dataset"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct category tags in the reference table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := loadReference(datasetConfig(cmd))
		if err != nil {
			return err
		}

		tags := dataset.Categories(ref.Journals)
		for _, tag := range tags {
			fmt.Println(tag)
		}
		fmt.Printf("\n%d categories\n", len(tags))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
