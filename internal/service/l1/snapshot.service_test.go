package l1_service

import (
	"context"
	"dynastytrades/internal/domain"
	"dynastytrades/internal/logger"
	"dynastytrades/internal/util"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeValuesRepository struct {
	snapshots   map[string]domain.SnapshotID
	tables      map[domain.SnapshotID]*domain.ValueTable
	currentErr  error
	snapshotErr error

	currentCalls  int
	snapshotCalls int
}

func (f *fakeValuesRepository) Current(ctx context.Context) (*domain.ValueTable, error) {
	f.currentCalls++
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return domain.NewValueTable(domain.SnapshotCurrent, "2025-06-01", nil), nil
}

func (f *fakeValuesRepository) ListSnapshots(ctx context.Context, since time.Time) (map[string]domain.SnapshotID, error) {
	return f.snapshots, nil
}

func (f *fakeValuesRepository) GetSnapshot(ctx context.Context, id domain.SnapshotID) (*domain.ValueTable, error) {
	f.snapshotCalls++
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	table, ok := f.tables[id]
	if !ok {
		return nil, fmt.Errorf("no table for %s", id)
	}
	return table, nil
}

func testContext() context.Context {
	return logger.AddToContext(context.Background(), zap.NewNop().Sugar())
}

func primedService(t *testing.T, repo *fakeValuesRepository, lookbackDays int) SnapshotService {
	t.Helper()
	service := NewSnapshotService(repo, lookbackDays)
	require.NoError(t, service.Prime(testContext(), util.NewDate(2025, 1, 1)))
	return service
}

func Test_SnapshotService_Historical(t *testing.T) {
	shaA := domain.SnapshotID("aaaaaaa0000000000000000000000000000000aa")
	shaB := domain.SnapshotID("bbbbbbb0000000000000000000000000000000bb")

	newRepo := func() *fakeValuesRepository {
		return &fakeValuesRepository{
			snapshots: map[string]domain.SnapshotID{
				"2025-03-10": shaA,
				"2025-03-20": shaB,
			},
			tables: map[domain.SnapshotID]*domain.ValueTable{
				shaA: domain.NewValueTable(shaA, "2025-03-10", nil),
				shaB: domain.NewValueTable(shaB, "2025-03-20", nil),
			},
		}
	}

	t.Run("exact date match", func(t *testing.T) {
		service := primedService(t, newRepo(), 7)

		table, err := service.Historical(testContext(), util.NewDate(2025, 3, 10))
		require.NoError(t, err)
		require.NotNil(t, table)
		require.Equal(t, shaA, table.Snapshot)
	})

	t.Run("prefers earlier snapshot over nearer later one", func(t *testing.T) {
		service := primedService(t, newRepo(), 7)

		// March 16: shaA is 6 days back, shaB is 4 days ahead
		table, err := service.Historical(testContext(), util.NewDate(2025, 3, 16))
		require.NoError(t, err)
		require.NotNil(t, table)
		require.Equal(t, shaA, table.Snapshot)
	})

	t.Run("searches forward when nothing earlier", func(t *testing.T) {
		service := primedService(t, newRepo(), 7)

		table, err := service.Historical(testContext(), util.NewDate(2025, 3, 5))
		require.NoError(t, err)
		require.NotNil(t, table)
		require.Equal(t, shaA, table.Snapshot)
	})

	t.Run("nothing within window", func(t *testing.T) {
		service := primedService(t, newRepo(), 7)

		table, err := service.Historical(testContext(), util.NewDate(2025, 1, 15))
		require.NoError(t, err)
		require.Nil(t, table)
	})

	t.Run("memoizes loaded snapshots", func(t *testing.T) {
		repo := newRepo()
		service := primedService(t, repo, 7)

		for i := 0; i < 3; i++ {
			table, err := service.Historical(testContext(), util.NewDate(2025, 3, 10))
			require.NoError(t, err)
			require.NotNil(t, table)
		}
		require.Equal(t, 1, repo.snapshotCalls)
	})

	t.Run("fetch failure degrades to nil table", func(t *testing.T) {
		repo := newRepo()
		repo.snapshotErr = errors.New("boom")
		service := primedService(t, repo, 7)

		table, err := service.Historical(testContext(), util.NewDate(2025, 3, 10))
		require.NoError(t, err)
		require.Nil(t, table)
	})
}

func Test_SnapshotService_Current(t *testing.T) {
	t.Run("memoizes the live table", func(t *testing.T) {
		repo := &fakeValuesRepository{}
		service := NewSnapshotService(repo, 7)

		for i := 0; i < 3; i++ {
			table, err := service.Current(testContext())
			require.NoError(t, err)
			require.Equal(t, domain.SnapshotCurrent, table.Snapshot)
		}
		require.Equal(t, 1, repo.currentCalls)
	})

	t.Run("unreachable live table is fatal", func(t *testing.T) {
		repo := &fakeValuesRepository{currentErr: errors.New("connection refused")}
		service := NewSnapshotService(repo, 7)

		_, err := service.Current(testContext())
		require.Error(t, err)
		require.ErrorIs(t, err, ErrCurrentUnavailable)
	})
}
