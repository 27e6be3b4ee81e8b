package api

import (
	"dynastytrades/internal/domain"
	l3_service "dynastytrades/internal/service/l3"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type valuationAssetRequest struct {
	TradeDate     string `json:"tradeDate"`
	TradeID       string `json:"tradeId"`
	AssetType     string `json:"assetType"`
	AssetName     string `json:"assetName"`
	ReceivingTeam string `json:"receivingTeam"`
	GivingTeam    string `json:"givingTeam"`
	OriginOwner   string `json:"originOwner"`
}

type valuationsRequest struct {
	Assets []valuationAssetRequest `json:"assets"`
}

type valuationRecordResponse struct {
	AssetName          string  `json:"assetName"`
	AssetType          string  `json:"assetType"`
	TradeDate          string  `json:"tradeDate"`
	TradeID            string  `json:"tradeId"`
	ReceivingTeam      string  `json:"receivingTeam"`
	GivingTeam         string  `json:"givingTeam"`
	OriginOwner        string  `json:"originOwner"`
	ValueAtTrade       float64 `json:"valueAtTrade"`
	ValueCurrent       float64 `json:"valueCurrent"`
	ValueSourceAtTrade string  `json:"valueSourceAtTrade"`
	ValueSourceCurrent string  `json:"valueSourceCurrent"`
	Metadata           string  `json:"metadata"`
}

type assetTypeSummaryResponse struct {
	AssetType   string  `json:"assetType"`
	Count       int     `json:"count"`
	MeanAtTrade float64 `json:"meanAtTrade"`
	MeanCurrent float64 `json:"meanCurrent"`
	MeanChange  float64 `json:"meanChange"`
}

type pickRoundSummaryResponse struct {
	Round       int     `json:"round"`
	Count       int     `json:"count"`
	MeanAtTrade float64 `json:"meanAtTrade"`
	MeanCurrent float64 `json:"meanCurrent"`
}

type valuationsResponse struct {
	RunID             string                     `json:"runId"`
	Records           []valuationRecordResponse  `json:"records"`
	ZeroValueCount    int                        `json:"zeroValueCount"`
	ZeroValueFraction float64                    `json:"zeroValueFraction"`
	Summaries         []assetTypeSummaryResponse `json:"summaries"`
	PickRounds        []pickRoundSummaryResponse `json:"pickRounds"`
}

func (m ApiHandler) valuations(c *gin.Context) {
	var requestBody valuationsRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	rows := make([]domain.AssetTransaction, 0, len(requestBody.Assets))
	for _, a := range requestBody.Assets {
		tradeDate, err := time.Parse(time.DateOnly, a.TradeDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("bad tradeDate %q: %w", a.TradeDate, err), c, 400)
			return
		}
		rows = append(rows, domain.AssetTransaction{
			TradeDate:     tradeDate,
			TradeID:       a.TradeID,
			AssetType:     domain.AssetType(a.AssetType),
			AssetName:     a.AssetName,
			ReceivingTeam: a.ReceivingTeam,
			GivingTeam:    a.GivingTeam,
			OriginOwner:   a.OriginOwner,
		})
	}

	report, err := m.ValuationService.Run(c.Request.Context(), rows)
	if err != nil {
		if errors.Is(err, l3_service.ErrQualityGate) {
			returnErrorJsonCode(err, c, 422)
			return
		}
		returnErrorJson(err, c)
		return
	}

	records := make([]valuationRecordResponse, 0, len(report.Records))
	for _, r := range report.Records {
		records = append(records, valuationRecordResponse{
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

	summaries := make([]assetTypeSummaryResponse, 0, len(report.Summaries))
	for _, s := range report.Summaries {
		summaries = append(summaries, assetTypeSummaryResponse{
			AssetType:   string(s.AssetType),
			Count:       s.Count,
			MeanAtTrade: s.MeanAtTrade,
			MeanCurrent: s.MeanCurrent,
			MeanChange:  s.MeanChange,
		})
	}

	pickRounds := make([]pickRoundSummaryResponse, 0, len(report.PickRounds))
	for _, p := range report.PickRounds {
		pickRounds = append(pickRounds, pickRoundSummaryResponse{
			Round:       p.Round,
			Count:       p.Count,
			MeanAtTrade: p.MeanAtTrade,
			MeanCurrent: p.MeanCurrent,
		})
	}

	c.JSON(200, valuationsResponse{
		RunID:             report.RunID.String(),
		Records:           records,
		ZeroValueCount:    report.ZeroValueCount,
		ZeroValueFraction: report.ZeroValueFraction,
		Summaries:         summaries,
		PickRounds:        pickRounds,
	})
}
