package l2_service

import (
	"dynastytrades/internal/domain"
	"dynastytrades/internal/util"
	"fmt"
	"time"
)

// FuturePickValuator prices picks from drafts that haven't happened yet
// using the team-specific weekly projection grid. The grid is sparse, so
// week selection cascades: exact week, else the latest week at or before
// the target (the freshest projection that isn't from the future), else the
// earliest available (pre-season trades). Years beyond the projection
// horizon reuse the latest available week as a proxy.
type FuturePickValuator struct {
	Projections *domain.ProjectionTable
	SeasonStart time.Time
}

func (v FuturePickValuator) Valuate(
	label domain.PickLabel,
	originOwner string,
	tradeDate time.Time,
	table *domain.ValueTable,
) domain.Valuation {
	ordinal := domain.RoundOrdinal(label.Round)

	if originOwner != "" && v.Projections != nil {
		if result, ok := v.valuateFromProjections(label, originOwner, tradeDate, ordinal); ok {
			return result
		}
	}

	// no projection data for the team - fall back to the league-wide
	// generic entry for that round
	generic := label.GenericName()
	if table != nil {
		if value, ok := table.Lookup(generic); ok {
			return domain.Valuation{
				Value:  value,
				Source: fmt.Sprintf("Fallback:Generic:%s", generic),
			}
		}
	}

	return domain.Valuation{Value: 0, Source: "Not found"}
}

func (v FuturePickValuator) valuateFromProjections(
	label domain.PickLabel,
	originOwner string,
	tradeDate time.Time,
	ordinal string,
) (domain.Valuation, bool) {
	weeks := v.Projections.Weeks(originOwner, ordinal)
	if len(weeks) == 0 {
		return domain.Valuation{}, false
	}

	projectionYear := v.Projections.Year()
	switch {
	case label.Year == projectionYear:
		target := v.targetWeek(tradeDate)
		selected := selectWeek(weeks, target)
		value, _ := v.Projections.Value(originOwner, ordinal, selected)
		return domain.Valuation{
			Value:    value,
			Source:   fmt.Sprintf("Projection:Week%d_%s", selected, ordinal),
			Metadata: fmt.Sprintf("target_week:%d selected_week:%d origin:%s", target, selected, originOwner),
		}, true
	case label.Year > projectionYear:
		// beyond the horizon: latest projection stands in for the
		// unknowable future year
		latest := weeks[len(weeks)-1]
		value, _ := v.Projections.Value(originOwner, ordinal, latest)
		return domain.Valuation{
			Value:    value,
			Source:   fmt.Sprintf("Projection:Week%d_%d_%s", latest, projectionYear, ordinal),
			Metadata: fmt.Sprintf("latest_week:%d origin:%s", latest, originOwner),
		}, true
	}

	return domain.Valuation{}, false
}

// targetWeek converts a trade date to a season week index, clamped to a
// minimum of week 2 and uncapped above.
func (v FuturePickValuator) targetWeek(tradeDate time.Time) int {
	days := util.DaysBetween(v.SeasonStart, tradeDate)
	week := days/7 + 1
	if week < 2 {
		week = 2
	}
	return week
}

// selectWeek picks the best available week for a target: exact match, else
// the latest week at or before the target, else the earliest available.
func selectWeek(weeks []int, target int) int {
	best := -1
	for _, w := range weeks {
		if w == target {
			return w
		}
		if w < target && w > best {
			best = w
		}
	}
	if best >= 0 {
		return best
	}
	return weeks[0]
}
