// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the journal-quality CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thefledgedhurricane/journal-quality/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when non-empty, otherwise the loaded
// secret for key, otherwise "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// configDefault returns the viper value for key when set, otherwise fallback.
func configDefault(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// rootCmd is the base command for the journal-quality CLI.
var rootCmd = &cobra.Command{
	Use:   "journal-quality",
	Short: "Assess academic journal quality from reference data and live lookups",
	Long: `journal-quality enriches journals from the SCImago reference table with
predatory-registry checks, Scopus index verification, and AI-extracted
attributes (APC, frequency, open-access and hybrid status).

Select candidates with analyze --category or analyze --journal; browse
the reference data with categories; check a single name offline with
check; revisit stored runs with history.

API keys are read per invocation from flags, .secrets/ files, or the
environment, and are never persisted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env next to the binary is a convenience for local use.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./journal-quality.yaml or ~/.config/journal-quality/config.yaml)")
	rootCmd.PersistentFlags().String("dataset", "", "SCImago journal table (default: data/scimago_journals.csv)")
	rootCmd.PersistentFlags().String("predatory-journals", "", "predatory journal list (default: data/predatory_journals.txt)")
	rootCmd.PersistentFlags().String("predatory-publishers", "", "predatory publisher list (default: data/predatory_publishers.txt)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("journal-quality")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "journal-quality"))
		}
	}

	viper.SetEnvPrefix("JOURNAL_QUALITY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
