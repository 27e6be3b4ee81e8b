package l2_service

import (
	"dynastytrades/internal/domain"
	l1_service "dynastytrades/internal/service/l1"
	"dynastytrades/internal/util"
	"fmt"
	"time"
)

// CurrentYearPickValuator prices picks from the league's current draft
// year. Once the draft has run, a pick is just the player taken with it.
// Before the draft, the at-trade side uses contemporaneous market pricing
// for the exact slot, falling back to tiers (round 1) or a generic round
// entry; the current side converges to the realized player immediately.
//
//	trade vs draft | side     | resolution
//	before         | at-trade | exact slot entry -> tier (r1) -> generic -> 0
//	before         | current  | drafted player in the live table
//	on/after       | either   | drafted player in the given table
//
// A trade dated exactly on the completion date counts as post-draft.
type CurrentYearPickValuator struct {
	Lineage         l1_service.LineageService
	Player          PlayerValuator
	Tiers           domain.TierSchedule
	DraftCompletion time.Time
}

func (v CurrentYearPickValuator) Valuate(
	label domain.PickLabel,
	originOwner string,
	tradeDate time.Time,
	table *domain.ValueTable,
	wantCurrent bool,
) domain.Valuation {
	entries, ok := v.Lineage.Resolve(originOwner, label.Round)
	if !ok {
		return domain.Valuation{Value: 0, Source: "No lineage", Metadata: originOwner}
	}

	// one owner can hold several picks in a round; take the earliest slot
	// and flag the ambiguity for downstream auditing
	lineage := entries[0]
	ambiguous := len(entries) > 1

	var result domain.Valuation
	postDraft := util.DateLte(v.DraftCompletion, tradeDate)
	switch {
	case postDraft:
		result = v.Player.ValuateAsPlayer(lineage.Player, table)
		if result.Value > 0 {
			result.Source += " (post-draft)"
		}
	case wantCurrent:
		result = v.Player.ValuateAsPlayer(lineage.Player, table)
	default:
		result = v.valuatePreDraftAtTrade(label, lineage, table)
	}

	if ambiguous {
		result.Metadata = appendMetadata(result.Metadata, fmt.Sprintf("ambiguous_lineage:%d", len(entries)))
	}
	return result
}

func (v CurrentYearPickValuator) valuatePreDraftAtTrade(
	label domain.PickLabel,
	lineage domain.PickLineageEntry,
	table *domain.ValueTable,
) domain.Valuation {
	position := fmt.Sprintf("%d.%02d", label.Round, lineage.Slot)

	if table != nil {
		slotName := label.SlotName(lineage.Slot)
		if value, ok := table.Lookup(slotName); ok {
			return domain.Valuation{
				Value:    value,
				Source:   fmt.Sprintf("%s:%s", table.Tag(), slotName),
				Metadata: position,
			}
		}
	}

	if label.Round == 1 {
		return domain.Valuation{
			Value:    v.Tiers.Value(lineage.Slot),
			Source:   fmt.Sprintf("Tier:%s 1st", v.Tiers.Name(lineage.Slot)),
			Metadata: position,
		}
	}

	// later rounds have no per-slot market entries; the nearest listed
	// generic is next year's round entry
	generic := domain.PickLabel{Year: label.Year + 1, Round: label.Round}.GenericName()
	if table != nil {
		if value, ok := table.Lookup(generic); ok {
			return domain.Valuation{
				Value:    value,
				Source:   fmt.Sprintf("Fallback:Generic %s", domain.RoundOrdinal(label.Round)),
				Metadata: position,
			}
		}
	}

	return domain.Valuation{Value: 0, Source: "Not found", Metadata: position}
}

func appendMetadata(existing, extra string) string {
	if existing == "" {
		return extra
	}
	return existing + " " + extra
}
