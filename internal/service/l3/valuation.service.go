package l3_service

import (
	"context"
	"dynastytrades/internal/domain"
	"dynastytrades/internal/logger"
	l1_service "dynastytrades/internal/service/l1"
	l2_service "dynastytrades/internal/service/l2"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// ErrQualityGate means too many assets resolved to zero value. That
// signals upstream data problems (stale projections, broken name matching)
// rather than legitimately worthless assets, so the run aborts before any
// output reaches downstream reporting.
var ErrQualityGate = errors.New("zero-value fraction exceeds threshold")

// ValuationService walks every extracted asset row, dispatches to the
// valuator for its kind, and resolves value-at-trade and value-now
// independently.
type ValuationService interface {
	Run(ctx context.Context, rows []domain.AssetTransaction) (*domain.ValuationReport, error)
}

type ValuationServiceDeps struct {
	SnapshotService      l1_service.SnapshotService
	FaabValuator         l2_service.FaabValuator
	PlayerValuator       l2_service.PlayerValuator
	CurrentYearValuator  l2_service.CurrentYearPickValuator
	FuturePickValuator   l2_service.FuturePickValuator
	DraftYear            int
	MaxZeroValueFraction float64
}

func NewValuationService(deps ValuationServiceDeps) ValuationService {
	return &valuationServiceHandler{deps: deps}
}

type valuationServiceHandler struct {
	deps ValuationServiceDeps
}

func (h *valuationServiceHandler) Run(ctx context.Context, rows []domain.AssetTransaction) (*domain.ValuationReport, error) {
	log := logger.FromContext(ctx)

	report := &domain.ValuationReport{
		RunID:   uuid.New(),
		Records: []domain.ValuationRecord{},
	}
	if len(rows) == 0 {
		return report, nil
	}

	current, err := h.deps.SnapshotService.Current(ctx)
	if err != nil {
		return nil, err
	}

	earliest := rows[0].TradeDate
	for _, row := range rows[1:] {
		if row.TradeDate.Before(earliest) {
			earliest = row.TradeDate
		}
	}
	if err := h.deps.SnapshotService.Prime(ctx, earliest); err != nil {
		log.Warnf("snapshot directory unavailable, valuing against current table only: %s", err.Error())
	}

	zeroCount := 0
	for i, row := range rows {
		record := h.valuateRow(ctx, row, current)
		if record.ValueAtTrade == 0 {
			zeroCount++
		}
		report.Records = append(report.Records, record)

		if (i+1)%50 == 0 {
			log.Infof("valued %d/%d assets", i+1, len(rows))
		}
	}

	report.ZeroValueCount = zeroCount
	report.ZeroValueFraction = float64(zeroCount) / float64(len(rows))
	if report.ZeroValueFraction > h.deps.MaxZeroValueFraction {
		return nil, fmt.Errorf(
			"%w: %d/%d assets (%.1f%% > %.1f%%)",
			ErrQualityGate,
			zeroCount,
			len(rows),
			report.ZeroValueFraction*100,
			h.deps.MaxZeroValueFraction*100,
		)
	}

	report.Summaries = summarize(report.Records)
	report.PickRounds = h.summarizePickRounds(report.Records)
	log.Infof("valued %d assets (%d zero, %.1f%%)", len(rows), zeroCount, report.ZeroValueFraction*100)

	return report, nil
}

func (h *valuationServiceHandler) valuateRow(ctx context.Context, row domain.AssetTransaction, current *domain.ValueTable) domain.ValuationRecord {
	var atTrade, currentVal domain.Valuation

	switch row.AssetType {
	case domain.AssetTypeFaab:
		atTrade = h.deps.FaabValuator.Valuate(row.AssetName)
		currentVal = atTrade
	case domain.AssetTypePlayer:
		tableAt := h.tableForTrade(ctx, row.TradeDate, current)
		atTrade = h.deps.PlayerValuator.Valuate(row.AssetName, tableAt)
		currentVal = h.deps.PlayerValuator.Valuate(row.AssetName, current)
	case domain.AssetTypePick:
		atTrade, currentVal = h.valuatePick(ctx, row, current)
	default:
		atTrade = domain.Valuation{Value: 0, Source: "Unknown asset type"}
		currentVal = atTrade
	}

	metadata := currentVal.Metadata
	if metadata == "" {
		metadata = atTrade.Metadata
	}

	return domain.ValuationRecord{
		AssetName:          row.AssetName,
		AssetType:          row.AssetType,
		TradeDate:          row.TradeDate,
		TradeID:            row.TradeID,
		ReceivingTeam:      row.ReceivingTeam,
		GivingTeam:         row.GivingTeam,
		OriginOwner:        row.OriginOwner,
		ValueAtTrade:       atTrade.Value,
		ValueCurrent:       currentVal.Value,
		ValueSourceAtTrade: atTrade.Source,
		ValueSourceCurrent: currentVal.Source,
		Metadata:           metadata,
	}
}

func (h *valuationServiceHandler) valuatePick(ctx context.Context, row domain.AssetTransaction, current *domain.ValueTable) (domain.Valuation, domain.Valuation) {
	label, err := domain.ParsePickLabel(row.AssetName)
	if err != nil {
		miss := domain.Valuation{Value: 0, Source: "Parse error", Metadata: row.AssetName}
		return miss, miss
	}
	if row.OriginOwner == "" {
		miss := domain.Valuation{Value: 0, Source: "Unknown pick", Metadata: row.AssetName}
		return miss, miss
	}

	tableAt := h.tableForTrade(ctx, row.TradeDate, current)

	switch {
	case label.Year == h.deps.DraftYear:
		atTrade := h.deps.CurrentYearValuator.Valuate(label, row.OriginOwner, row.TradeDate, tableAt, false)
		currentVal := h.deps.CurrentYearValuator.Valuate(label, row.OriginOwner, row.TradeDate, current, true)
		return atTrade, currentVal
	case label.Year > h.deps.DraftYear:
		atTrade := h.deps.FuturePickValuator.Valuate(label, row.OriginOwner, row.TradeDate, tableAt)
		currentVal := h.deps.FuturePickValuator.Valuate(label, row.OriginOwner, row.TradeDate, current)
		return atTrade, currentVal
	default:
		miss := domain.Valuation{Value: 0, Source: "Unknown pick", Metadata: row.AssetName}
		return miss, miss
	}
}

// tableForTrade resolves the historical table for a trade date, degrading
// to the current table when no snapshot is available.
func (h *valuationServiceHandler) tableForTrade(ctx context.Context, tradeDate time.Time, current *domain.ValueTable) *domain.ValueTable {
	hist, err := h.deps.SnapshotService.Historical(ctx, tradeDate)
	if err != nil || hist == nil {
		return current
	}
	return hist
}

// summarizePickRounds breaks current-season picks down by round; future
// picks are excluded since their rounds price off a different mechanism.
func (h *valuationServiceHandler) summarizePickRounds(records []domain.ValuationRecord) []domain.PickRoundSummary {
	atTradeByRound := map[int][]float64{}
	currentByRound := map[int][]float64{}
	for _, r := range records {
		if r.AssetType != domain.AssetTypePick {
			continue
		}
		label, err := domain.ParsePickLabel(r.AssetName)
		if err != nil || label.Year != h.deps.DraftYear {
			continue
		}
		atTradeByRound[label.Round] = append(atTradeByRound[label.Round], r.ValueAtTrade)
		currentByRound[label.Round] = append(currentByRound[label.Round], r.ValueCurrent)
	}

	rounds := make([]int, 0, len(atTradeByRound))
	for round := range atTradeByRound {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)

	summaries := make([]domain.PickRoundSummary, 0, len(rounds))
	for _, round := range rounds {
		meanAt, _ := stats.Mean(atTradeByRound[round])
		meanCurrent, _ := stats.Mean(currentByRound[round])
		summaries = append(summaries, domain.PickRoundSummary{
			Round:       round,
			Count:       len(atTradeByRound[round]),
			MeanAtTrade: meanAt,
			MeanCurrent: meanCurrent,
		})
	}

	return summaries
}

func summarize(records []domain.ValuationRecord) []domain.AssetTypeSummary {
	order := []domain.AssetType{domain.AssetTypePlayer, domain.AssetTypePick, domain.AssetTypeFaab}
	grouped := map[domain.AssetType][]domain.ValuationRecord{}
	for _, r := range records {
		grouped[r.AssetType] = append(grouped[r.AssetType], r)
	}

	summaries := []domain.AssetTypeSummary{}
	for _, assetType := range order {
		group := grouped[assetType]
		if len(group) == 0 {
			continue
		}
		atTrade := make([]float64, 0, len(group))
		currentVals := make([]float64, 0, len(group))
		for _, r := range group {
			atTrade = append(atTrade, r.ValueAtTrade)
			currentVals = append(currentVals, r.ValueCurrent)
		}
		meanAt, _ := stats.Mean(atTrade)
		meanCurrent, _ := stats.Mean(currentVals)
		summaries = append(summaries, domain.AssetTypeSummary{
			AssetType:   assetType,
			Count:       len(group),
			MeanAtTrade: meanAt,
			MeanCurrent: meanCurrent,
			MeanChange:  meanCurrent - meanAt,
		})
	}

	return summaries
}
