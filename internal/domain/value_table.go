package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SnapshotID identifies one version of the values source. For historical
// tables it's a commit SHA; the live table uses SnapshotCurrent.
type SnapshotID string

const SnapshotCurrent SnapshotID = "current"

func (id SnapshotID) Short() string {
	if len(id) > 7 {
		return string(id[:7])
	}
	return string(id)
}

type ValueEntry struct {
	Name  string
	Value decimal.Decimal
}

// ValueTable maps asset display names to point values at one point in time.
// Lookups go through a normalized exact-match index first; the
// case-insensitive substring scan only runs as a fallback, since generic
// pick entries ("2026 2nd") are searched by fragment. Entry order is
// preserved so the fallback is deterministic.
type ValueTable struct {
	Snapshot   SnapshotID
	ScrapeDate string

	entries []ValueEntry
	byNorm  map[string]int
}

func NewValueTable(snapshot SnapshotID, scrapeDate string, entries []ValueEntry) *ValueTable {
	byNorm := make(map[string]int, len(entries))
	for i, e := range entries {
		key := NormalizeName(e.Name)
		if _, ok := byNorm[key]; !ok {
			byNorm[key] = i
		}
	}
	return &ValueTable{
		Snapshot:   snapshot,
		ScrapeDate: scrapeDate,
		entries:    entries,
		byNorm:     byNorm,
	}
}

// NormalizeName lowercases, trims, and collapses interior whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Lookup resolves a display name to a point value. Exact match on the
// normalized name wins; otherwise the first entry containing the query as a
// substring is used.
func (t *ValueTable) Lookup(name string) (float64, bool) {
	query := NormalizeName(name)
	if query == "" {
		return 0, false
	}
	if i, ok := t.byNorm[query]; ok {
		return t.entries[i].Value.InexactFloat64(), true
	}
	for _, e := range t.entries {
		if strings.Contains(NormalizeName(e.Name), query) {
			return e.Value.InexactFloat64(), true
		}
	}
	return 0, false
}

func (t *ValueTable) Len() int {
	return len(t.entries)
}

// Tag is the provenance label stamped onto valuation sources built from
// this table.
func (t *ValueTable) Tag() string {
	if t.Snapshot == SnapshotCurrent {
		return "Current"
	}
	return fmt.Sprintf("Snapshot:%s", t.Snapshot.Short())
}
