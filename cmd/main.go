package main

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	configPath       string
	draftResultsPath string
	projectionsPath  string
)

var rootCmd = &cobra.Command{
	Use:   "dynastytrades",
	Short: "Dynasty league trade valuation engine",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/default.yaml", "path to league config")
	rootCmd.PersistentFlags().StringVar(&draftResultsPath, "draft-results", "data/rookie_draft_results.csv", "path to draft results csv")
	rootCmd.PersistentFlags().StringVar(&projectionsPath, "projections", "data/weekly_pick_projections.csv", "path to weekly pick projections csv")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
