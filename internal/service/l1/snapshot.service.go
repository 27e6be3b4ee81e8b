package l1_service

import (
	"context"
	"dynastytrades/internal/domain"
	"dynastytrades/internal/logger"
	"dynastytrades/internal/repository"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCurrentUnavailable means the live value table could not be loaded.
// Nothing can be valued without it, so callers abort the whole run.
var ErrCurrentUnavailable = errors.New("current value table unavailable")

// SnapshotService resolves value tables by date. Historical lookups search
// the snapshot directory for the exact day, then day-by-day backward within
// the lookback window (a past snapshot best represents value as of the
// trade), then forward the same distance for trades older than the earliest
// snapshot. Loaded tables are memoized; many assets in one run share the
// same nearest snapshot.
type SnapshotService interface {
	Prime(ctx context.Context, earliest time.Time) error
	Current(ctx context.Context) (*domain.ValueTable, error)
	Historical(ctx context.Context, date time.Time) (*domain.ValueTable, error)
}

func NewSnapshotService(valuesRepository repository.ValuesRepository, lookbackDays int) SnapshotService {
	return &snapshotServiceHandler{
		valuesRepository: valuesRepository,
		lookbackDays:     lookbackDays,
		snapshots:        map[string]domain.SnapshotID{},
		tables:           map[domain.SnapshotID]*domain.ValueTable{},
	}
}

type snapshotServiceHandler struct {
	valuesRepository repository.ValuesRepository
	lookbackDays     int

	mu        sync.RWMutex
	snapshots map[string]domain.SnapshotID
	tables    map[domain.SnapshotID]*domain.ValueTable
	current   *domain.ValueTable
}

// Prime loads the snapshot directory covering every trade in the run. The
// window extends lookbackDays before the earliest trade so backward search
// has room.
func (h *snapshotServiceHandler) Prime(ctx context.Context, earliest time.Time) error {
	log := logger.FromContext(ctx)

	since := earliest.AddDate(0, 0, -h.lookbackDays)
	snapshots, err := h.valuesRepository.ListSnapshots(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to prime snapshot directory: %w", err)
	}

	h.mu.Lock()
	h.snapshots = snapshots
	h.mu.Unlock()

	log.Infof("loaded %d value snapshots since %s", len(snapshots), since.Format(time.DateOnly))
	return nil
}

func (h *snapshotServiceHandler) Current(ctx context.Context) (*domain.ValueTable, error) {
	h.mu.RLock()
	current := h.current
	h.mu.RUnlock()
	if current != nil {
		return current, nil
	}

	table, err := h.valuesRepository.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCurrentUnavailable, err.Error())
	}

	h.mu.Lock()
	h.current = table
	h.mu.Unlock()

	logger.FromContext(ctx).Infof("current values loaded (%d entries, scraped %s)", table.Len(), table.ScrapeDate)
	return table, nil
}

// Historical returns the best-available snapshot table for a date, or nil
// when none exists within the window or the fetch fails. A nil table is not
// an error; the caller substitutes the current table for that asset.
func (h *snapshotServiceHandler) Historical(ctx context.Context, date time.Time) (*domain.ValueTable, error) {
	log := logger.FromContext(ctx)

	id, ok := h.nearestSnapshot(date)
	if !ok {
		return nil, nil
	}

	h.mu.RLock()
	table, cached := h.tables[id]
	h.mu.RUnlock()
	if cached {
		return table, nil
	}

	table, err := h.valuesRepository.GetSnapshot(ctx, id)
	if err != nil {
		log.Warnf("failed to load snapshot %s for %s: %s", id.Short(), date.Format(time.DateOnly), err.Error())
		return nil, nil
	}

	h.mu.Lock()
	h.tables[id] = table
	h.mu.Unlock()

	return table, nil
}

func (h *snapshotServiceHandler) nearestSnapshot(date time.Time) (domain.SnapshotID, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if id, ok := h.snapshots[date.Format(time.DateOnly)]; ok {
		return id, true
	}
	for delta := 1; delta <= h.lookbackDays; delta++ {
		before := date.AddDate(0, 0, -delta).Format(time.DateOnly)
		if id, ok := h.snapshots[before]; ok {
			return id, true
		}
	}
	for delta := 1; delta <= h.lookbackDays; delta++ {
		after := date.AddDate(0, 0, delta).Format(time.DateOnly)
		if id, ok := h.snapshots[after]; ok {
			return id, true
		}
	}
	return "", false
}
