package repository

import (
	"dynastytrades/internal/domain"
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

type assetTransactionRow struct {
	TradeDate     string `csv:"trade_date"`
	TradeID       string `csv:"trade_id"`
	AssetType     string `csv:"asset_type"`
	AssetName     string `csv:"asset_name"`
	ReceivingTeam string `csv:"receiving_team"`
	GivingTeam    string `csv:"giving_team"`
	OriginOwner   string `csv:"origin_owner"`
}

type valuationRecordRow struct {
	AssetName          string  `csv:"asset_name"`
	AssetType          string  `csv:"asset_type"`
	TradeDate          string  `csv:"trade_date"`
	TradeID            string  `csv:"trade_id"`
	ReceivingTeam      string  `csv:"receiving_team"`
	GivingTeam         string  `csv:"giving_team"`
	OriginOwner        string  `csv:"origin_owner"`
	ValueAtTrade       float64 `csv:"value_at_trade"`
	ValueCurrent       float64 `csv:"value_current"`
	ValueSourceAtTrade string  `csv:"value_source_at_trade"`
	ValueSourceCurrent string  `csv:"value_source_current"`
	Metadata           string  `csv:"metadata"`
}

type AssetTransactionRepository interface {
	List() ([]domain.AssetTransaction, error)
	WriteRecords(path string, records []domain.ValuationRecord) error
}

func NewAssetTransactionRepository(path string) AssetTransactionRepository {
	return &assetTransactionRepositoryHandler{path: path}
}

type assetTransactionRepositoryHandler struct {
	path string
}

func (h *assetTransactionRepositoryHandler) List() ([]domain.AssetTransaction, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("could not open asset transactions: %w", err)
	}
	defer f.Close()

	rows := []assetTransactionRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse asset transactions: %w", err)
	}

	transactions := make([]domain.AssetTransaction, 0, len(rows))
	for _, row := range rows {
		tradeDate, err := time.Parse(time.DateOnly, row.TradeDate)
		if err != nil {
			return nil, fmt.Errorf("bad trade_date %q for trade %s: %w", row.TradeDate, row.TradeID, err)
		}
		transactions = append(transactions, domain.AssetTransaction{
			TradeDate:     tradeDate,
			TradeID:       row.TradeID,
			AssetType:     domain.AssetType(row.AssetType),
			AssetName:     row.AssetName,
			ReceivingTeam: row.ReceivingTeam,
			GivingTeam:    row.GivingTeam,
			OriginOwner:   row.OriginOwner,
		})
	}

	return transactions, nil
}

func (h *assetTransactionRepositoryHandler) WriteRecords(path string, records []domain.ValuationRecord) error {
	rows := make([]valuationRecordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, valuationRecordRow{
			AssetName:          r.AssetName,
			AssetType:          string(r.AssetType),
			TradeDate:          r.TradeDate.Format(time.DateOnly),
			TradeID:            r.TradeID,
			ReceivingTeam:      r.ReceivingTeam,
			GivingTeam:         r.GivingTeam,
			OriginOwner:        r.OriginOwner,
			ValueAtTrade:       r.ValueAtTrade,
			ValueCurrent:       r.ValueCurrent,
			ValueSourceAtTrade: r.ValueSourceAtTrade,
			ValueSourceCurrent: r.ValueSourceCurrent,
			Metadata:           r.Metadata,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write valuation records: %w", err)
	}

	return nil
}
