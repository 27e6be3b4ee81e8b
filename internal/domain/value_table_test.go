package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestTable(names ...string) *ValueTable {
	entries := make([]ValueEntry, 0, len(names))
	for i, name := range names {
		entries = append(entries, ValueEntry{
			Name:  name,
			Value: decimal.NewFromInt(int64((i + 1) * 100)),
		})
	}
	return NewValueTable(SnapshotCurrent, "2025-06-01", entries)
}

func Test_ValueTable_Lookup(t *testing.T) {
	t.Run("exact normalized match wins over substring", func(t *testing.T) {
		table := newTestTable("Josh Allen Jr", "Josh Allen")

		value, ok := table.Lookup("josh allen")
		require.True(t, ok)
		require.Equal(t, 200.0, value)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		table := newTestTable("Brock Bowers")

		value, ok := table.Lookup("  BROCK   bowers ")
		require.True(t, ok)
		require.Equal(t, 100.0, value)
	})

	t.Run("substring fallback uses first entry in table order", func(t *testing.T) {
		table := newTestTable("Keenan Allen", "Josh Allen")

		value, ok := table.Lookup("Allen")
		require.True(t, ok)
		require.Equal(t, 100.0, value)
	})

	t.Run("miss returns zero and false", func(t *testing.T) {
		table := newTestTable("Patrick Mahomes")

		value, ok := table.Lookup("Unknown Player")
		require.False(t, ok)
		require.Equal(t, 0.0, value)
	})

	t.Run("empty query never matches", func(t *testing.T) {
		table := newTestTable("Patrick Mahomes")

		_, ok := table.Lookup("   ")
		require.False(t, ok)
	})
}

func Test_ValueTable_Tag(t *testing.T) {
	require.Equal(t, "Current", newTestTable("a").Tag())

	historical := NewValueTable("0123456789abcdef", "2025-01-01", nil)
	require.Equal(t, "Snapshot:0123456", historical.Tag())
}
