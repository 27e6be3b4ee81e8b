package l1_service

import (
	"dynastytrades/internal/domain"
	"dynastytrades/internal/repository"
	"fmt"
	"sort"
)

// LineageService resolves (origin owner, round) to the picks that roster
// slot produced in the completed draft. Built once per run from the static
// origin order joined against actual draft results, then read-only.
type LineageService interface {
	Resolve(originOwner string, round int) ([]domain.PickLineageEntry, bool)
	Size() int
}

type lineageKey struct {
	origin string
	round  int
}

type lineageServiceHandler struct {
	index map[lineageKey][]domain.PickLineageEntry
	size  int
}

func NewLineageService(origins repository.PickOriginRepository, results []repository.DraftResult) LineageService {
	index := map[lineageKey][]domain.PickLineageEntry{}
	size := 0

	for _, result := range results {
		origin, ok := origins.OriginOwner(result.Round, result.Slot)
		if !ok {
			// keep the pick reachable under a synthetic origin so the
			// lineage stays complete even with a bad origin table
			origin = fmt.Sprintf("UNKNOWN_R%dP%d", result.Round, result.Slot)
		}

		key := lineageKey{origin: origin, round: result.Round}
		index[key] = append(index[key], domain.PickLineageEntry{
			FinalOwner:  result.Owner,
			Slot:        result.Slot,
			Player:      result.Player,
			OverallPick: result.OverallPick,
		})
		size++
	}

	for key := range index {
		entries := index[key]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Slot < entries[j].Slot
		})
		index[key] = entries
	}

	return &lineageServiceHandler{index: index, size: size}
}

// Resolve returns all lineage entries for an origin/round, earliest slot
// first. A miss means the origin has no picks recorded for that round,
// which should not happen for a complete draft.
func (h *lineageServiceHandler) Resolve(originOwner string, round int) ([]domain.PickLineageEntry, bool) {
	entries, ok := h.index[lineageKey{origin: originOwner, round: round}]
	if !ok || len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

func (h *lineageServiceHandler) Size() int {
	return h.size
}
