package l2_service

import (
	"dynastytrades/internal/domain"
	"dynastytrades/internal/repository"
	l1_service "dynastytrades/internal/service/l1"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func tableOf(pairs map[string]float64, names ...string) *domain.ValueTable {
	entries := []domain.ValueEntry{}
	for _, name := range names {
		entries = append(entries, domain.ValueEntry{
			Name:  name,
			Value: decimal.NewFromFloat(pairs[name]),
		})
	}
	return domain.NewValueTable(domain.SnapshotCurrent, "2025-06-01", entries)
}

func newTestValuator(t *testing.T) CurrentYearPickValuator {
	t.Helper()

	order := make([]string, 12)
	results := []repository.DraftResult{}
	for slot := 1; slot <= 12; slot++ {
		order[slot-1] = fmt.Sprintf("team%02d", slot)
		results = append(results, repository.DraftResult{
			Round:       1,
			Slot:        slot,
			OverallPick: slot,
			Owner:       order[slot-1],
			Player:      fmt.Sprintf("Rookie %02d", slot),
		})
	}
	// round 2 pick for the generic-fallback path
	results = append(results, repository.DraftResult{
		Round: 2, Slot: 5, OverallPick: 17, Owner: "team05", Player: "Late Rookie",
	})

	origins := repository.NewPickOriginRepository(order, 4)

	return CurrentYearPickValuator{
		Lineage: l1_service.NewLineageService(origins, results),
		Player:  PlayerValuator{},
		Tiers: domain.TierSchedule{
			EarlyFirst: 5430,
			MidFirst:   2558,
			LateFirst:  1232,
			LeagueSize: 12,
		},
		DraftCompletion: newDate(2025, 5, 5),
	}
}

func Test_CurrentYearPickValuator_preDraftAtTrade(t *testing.T) {
	v := newTestValuator(t)
	label := domain.PickLabel{Year: 2025, Round: 1}
	preDraft := newDate(2024, 11, 15)

	t.Run("exact slot entry wins", func(t *testing.T) {
		table := tableOf(map[string]float64{"2025 Pick 1.02": 4800}, "2025 Pick 1.02")

		result := v.Valuate(label, "team02", preDraft, table, false)
		require.Equal(t, 4800.0, result.Value)
		require.Contains(t, result.Source, "2025 Pick 1.02")
	})

	t.Run("tier fallback by slot", func(t *testing.T) {
		empty := tableOf(nil)
		cases := []struct {
			origin string
			value  float64
			tier   string
		}{
			{"team01", 5430, "Early"},
			{"team04", 5430, "Early"},
			{"team05", 2558, "Mid"},
			{"team08", 2558, "Mid"},
			{"team09", 1232, "Late"},
			{"team12", 1232, "Late"},
		}
		for _, tc := range cases {
			result := v.Valuate(label, tc.origin, preDraft, empty, false)
			require.Equal(t, tc.value, result.Value, "origin %s", tc.origin)
			require.Equal(t, fmt.Sprintf("Tier:%s 1st", tc.tier), result.Source)
		}
	})

	t.Run("later rounds fall back to next year's generic", func(t *testing.T) {
		table := tableOf(map[string]float64{"2026 2nd": 350}, "2026 2nd")
		round2 := domain.PickLabel{Year: 2025, Round: 2}

		result := v.Valuate(round2, "team05", preDraft, table, false)
		require.Equal(t, 350.0, result.Value)
		require.Equal(t, "Fallback:Generic 2nd", result.Source)
	})

	t.Run("nothing matches", func(t *testing.T) {
		round2 := domain.PickLabel{Year: 2025, Round: 2}

		result := v.Valuate(round2, "team05", preDraft, tableOf(nil), false)
		require.Equal(t, 0.0, result.Value)
		require.Equal(t, "Not found", result.Source)
	})
}

func Test_CurrentYearPickValuator_playerResolution(t *testing.T) {
	v := newTestValuator(t)
	label := domain.PickLabel{Year: 2025, Round: 1}
	table := tableOf(map[string]float64{"Rookie 02": 3500}, "Rookie 02")

	t.Run("pre-draft current side uses the drafted player", func(t *testing.T) {
		result := v.Valuate(label, "team02", newDate(2024, 11, 15), table, true)
		require.Equal(t, 3500.0, result.Value)
		require.Equal(t, "Player:Rookie 02", result.Source)
	})

	t.Run("post-draft both sides use the drafted player", func(t *testing.T) {
		postDraft := newDate(2025, 5, 6)

		atTrade := v.Valuate(label, "team02", postDraft, table, false)
		current := v.Valuate(label, "team02", postDraft, table, true)

		require.Equal(t, 3500.0, atTrade.Value)
		require.Equal(t, 3500.0, current.Value)
		require.Equal(t, atTrade.Value, current.Value)
		require.Contains(t, atTrade.Source, "post-draft")
	})

	t.Run("trade on the completion date is post-draft", func(t *testing.T) {
		result := v.Valuate(label, "team02", newDate(2025, 5, 5), table, false)
		require.Equal(t, 3500.0, result.Value)
		require.Contains(t, result.Source, "Player:Rookie 02")
	})

	t.Run("drafted player missing from table", func(t *testing.T) {
		result := v.Valuate(label, "team03", newDate(2025, 6, 1), table, false)
		require.Equal(t, 0.0, result.Value)
		require.Contains(t, result.Source, "Player not found")
	})
}

func Test_CurrentYearPickValuator_lineage(t *testing.T) {
	v := newTestValuator(t)

	t.Run("no lineage entry", func(t *testing.T) {
		label := domain.PickLabel{Year: 2025, Round: 3}

		result := v.Valuate(label, "team01", newDate(2025, 6, 1), tableOf(nil), false)
		require.Equal(t, 0.0, result.Value)
		require.Equal(t, "No lineage", result.Source)
	})

	t.Run("ambiguous lineage is flagged", func(t *testing.T) {
		origins := repository.NewPickOriginRepository([]string{"alpha", "alpha"}, 1)
		results := []repository.DraftResult{
			{Round: 1, Slot: 1, OverallPick: 1, Owner: "alpha", Player: "First"},
			{Round: 1, Slot: 2, OverallPick: 2, Owner: "bravo", Player: "Second"},
		}
		ambiguous := CurrentYearPickValuator{
			Lineage:         l1_service.NewLineageService(origins, results),
			Player:          PlayerValuator{},
			Tiers:           v.Tiers,
			DraftCompletion: v.DraftCompletion,
		}

		table := tableOf(map[string]float64{"First": 1000}, "First")
		result := ambiguous.Valuate(domain.PickLabel{Year: 2025, Round: 1}, "alpha", newDate(2025, 6, 1), table, false)

		// first slot wins, ambiguity recorded for auditing
		require.Equal(t, 1000.0, result.Value)
		require.Contains(t, result.Metadata, "ambiguous_lineage:2")
	})
}
