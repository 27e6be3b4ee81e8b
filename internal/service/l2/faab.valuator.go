package l2_service

import (
	"dynastytrades/internal/domain"
	"fmt"
	"strconv"
	"strings"
)

// FaabValuator converts waiver-budget dollars to points at a flat rate.
// FAAB has no time-value drift in this model, so the same figure serves
// both the at-trade and current sides.
type FaabValuator struct {
	PerDollar float64
}

func (v FaabValuator) Valuate(assetName string) domain.Valuation {
	raw := strings.TrimSpace(assetName)
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.TrimSuffix(raw, " FAAB")

	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return domain.Valuation{Value: 0, Source: "Parse error", Metadata: assetName}
	}

	return domain.Valuation{
		Value:    float64(amount) * v.PerDollar,
		Source:   "FAAB",
		Metadata: fmt.Sprintf("$%d", amount),
	}
}
