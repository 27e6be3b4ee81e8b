package main

import (
	"context"
	"dynastytrades/internal/logger"
	"dynastytrades/internal/repository"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	assetsPath string
	outputPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Value every traded asset and write the enriched csv",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New()
		defer log.Sync()
		ctx := logger.AddToContext(context.Background(), log)

		h, err := initializeDependencies()
		if err != nil {
			return err
		}

		assetRepository := repository.NewAssetTransactionRepository(assetsPath)
		rows, err := assetRepository.List()
		if err != nil {
			return err
		}
		log.Infof("loaded %d asset transactions", len(rows))

		report, err := h.ValuationService.Run(ctx, rows)
		if err != nil {
			return err
		}

		if err := assetRepository.WriteRecords(outputPath, report.Records); err != nil {
			return err
		}

		log.Infof("run %s: wrote %d valuation records to %s", report.RunID, len(report.Records), outputPath)
		for _, s := range report.Summaries {
			log.Infof(
				"%s: count=%d avg at trade=%.0f avg current=%.0f avg change=%+.0f",
				s.AssetType, s.Count, s.MeanAtTrade, s.MeanCurrent, s.MeanChange,
			)
		}
		for _, p := range report.PickRounds {
			log.Infof(
				"round %d picks: count=%d avg at trade=%.0f avg current=%.0f",
				p.Round, p.Count, p.MeanAtTrade, p.MeanCurrent,
			)
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&assetsPath, "assets", "data/asset_transactions.csv", "path to extracted asset transactions csv")
	runCmd.Flags().StringVar(&outputPath, "out", "data/asset_values.csv", "path to write valuation records")
	if err := runCmd.MarkFlagFilename("assets", "csv"); err != nil {
		panic(fmt.Errorf("failed to configure run command: %w", err))
	}
}
