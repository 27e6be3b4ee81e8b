package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssetType string

const (
	AssetTypePlayer AssetType = "player"
	AssetTypePick   AssetType = "pick"
	AssetTypeFaab   AssetType = "faab"
)

// AssetTransaction is one traded asset from one trade, as produced by the
// extraction stage upstream. OriginOwner is only set for picks.
type AssetTransaction struct {
	TradeDate     time.Time
	TradeID       string
	AssetType     AssetType
	AssetName     string
	ReceivingTeam string
	GivingTeam    string
	OriginOwner   string
}

// Valuation is one resolved value plus where it came from. Metadata is a
// free-form diagnostic string, not meant for machine consumption.
type Valuation struct {
	Value    float64
	Source   string
	Metadata string
}

type ValuationRecord struct {
	AssetName          string
	AssetType          AssetType
	TradeDate          time.Time
	TradeID            string
	ReceivingTeam      string
	GivingTeam         string
	OriginOwner        string
	ValueAtTrade       float64
	ValueCurrent       float64
	ValueSourceAtTrade string
	ValueSourceCurrent string
	Metadata           string
}

type AssetTypeSummary struct {
	AssetType   AssetType
	Count       int
	MeanAtTrade float64
	MeanCurrent float64
	MeanChange  float64
}

// PickRoundSummary breaks current-season pick valuations down by round.
type PickRoundSummary struct {
	Round       int
	Count       int
	MeanAtTrade float64
	MeanCurrent float64
}

type ValuationReport struct {
	RunID             uuid.UUID
	Records           []ValuationRecord
	ZeroValueCount    int
	ZeroValueFraction float64
	Summaries         []AssetTypeSummary
	PickRounds        []PickRoundSummary
}
