package main

import (
	"dynastytrades/internal/config"
	"dynastytrades/internal/domain"
	"dynastytrades/internal/repository"
	l1_service "dynastytrades/internal/service/l1"
	l2_service "dynastytrades/internal/service/l2"
	l3_service "dynastytrades/internal/service/l3"
	"fmt"
)

type handler struct {
	Config           *config.Config
	ValuationService l3_service.ValuationService
}

func initializeDependencies() (*handler, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	valuesRepository := repository.NewValuesRepository(cfg.Source)
	snapshotService := l1_service.NewSnapshotService(valuesRepository, cfg.Source.LookbackDays)

	draftResults, err := repository.NewDraftResultsRepository(draftResultsPath).List()
	if err != nil {
		return nil, err
	}
	pickOrigins := repository.NewPickOriginRepository(cfg.DraftOrder, cfg.League.DraftRounds)
	lineageService := l1_service.NewLineageService(pickOrigins, draftResults)

	projections, err := repository.NewProjectionRepository(projectionsPath, cfg.League.DraftYear+1).Load()
	if err != nil {
		return nil, err
	}

	playerValuator := l2_service.PlayerValuator{}
	valuationService := l3_service.NewValuationService(l3_service.ValuationServiceDeps{
		SnapshotService: snapshotService,
		FaabValuator: l2_service.FaabValuator{
			PerDollar: cfg.Valuations.FaabPerDollar,
		},
		PlayerValuator: playerValuator,
		CurrentYearValuator: l2_service.CurrentYearPickValuator{
			Lineage: lineageService,
			Player:  playerValuator,
			Tiers: domain.TierSchedule{
				EarlyFirst: cfg.Valuations.Tiers.EarlyFirst,
				MidFirst:   cfg.Valuations.Tiers.MidFirst,
				LateFirst:  cfg.Valuations.Tiers.LateFirst,
				LeagueSize: cfg.League.Size,
			},
			DraftCompletion: cfg.Valuations.DraftCompletionDate.Time,
		},
		FuturePickValuator: l2_service.FuturePickValuator{
			Projections: projections,
			SeasonStart: cfg.Valuations.SeasonStartDate.Time,
		},
		DraftYear:            cfg.League.DraftYear,
		MaxZeroValueFraction: cfg.Validation.MaxZeroValueFraction,
	})

	return &handler{
		Config:           cfg,
		ValuationService: valuationService,
	}, nil
}
