package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProjections(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projections.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func Test_ProjectionRepository_Load(t *testing.T) {
	t.Run("discovers week columns from the header", func(t *testing.T) {
		csv := "Team,Week7_2026_1st,Week12_2026_1st,Week7_2026_2nd,Notes\n" +
			"teamA,1000,900,500,x\n" +
			"teamB,800,,400,y\n"

		table, err := NewProjectionRepository(writeProjections(t, csv), 2026).Load()
		require.NoError(t, err)

		require.Equal(t, 2026, table.Year())
		require.Equal(t, []int{7, 12}, table.Weeks("teamA", "1st"))
		require.Equal(t, []int{7}, table.Weeks("teamA", "2nd"))

		value, ok := table.Value("teamA", "1st", 12)
		require.True(t, ok)
		require.Equal(t, 900.0, value)

		// empty cell stays sparse
		require.Equal(t, []int{7}, table.Weeks("teamB", "1st"))
	})

	t.Run("ignores other years", func(t *testing.T) {
		csv := "Team,Week3_2025_1st,Week3_2026_1st\nteamA,111,222\n"

		table, err := NewProjectionRepository(writeProjections(t, csv), 2026).Load()
		require.NoError(t, err)

		value, ok := table.Value("teamA", "1st", 3)
		require.True(t, ok)
		require.Equal(t, 222.0, value)
	})

	t.Run("requires a Team column", func(t *testing.T) {
		csv := "Squad,Week3_2026_1st\nteamA,111\n"

		_, err := NewProjectionRepository(writeProjections(t, csv), 2026).Load()
		require.Error(t, err)
	})
}

func Test_PickOriginRepository(t *testing.T) {
	origins := NewPickOriginRepository([]string{"alpha", "bravo", "charlie"}, 4)

	t.Run("round one explicit order", func(t *testing.T) {
		owner, ok := origins.OriginOwner(1, 2)
		require.True(t, ok)
		require.Equal(t, "bravo", owner)
	})

	t.Run("later rounds repeat the order", func(t *testing.T) {
		for round := 2; round <= 4; round++ {
			owner, ok := origins.OriginOwner(round, 3)
			require.True(t, ok)
			require.Equal(t, "charlie", owner)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, ok := origins.OriginOwner(5, 1)
		require.False(t, ok)

		_, ok = origins.OriginOwner(1, 4)
		require.False(t, ok)

		_, ok = origins.OriginOwner(0, 1)
		require.False(t, ok)
	})
}
