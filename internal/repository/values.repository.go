package repository

import (
	"context"
	"dynastytrades/internal/config"
	"dynastytrades/internal/domain"
	"dynastytrades/internal/logger"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

// ValuesRepository talks to the external values source: the live CSV, the
// commit history that serves as the snapshot directory, and per-commit
// historical CSVs.
type ValuesRepository interface {
	Current(ctx context.Context) (*domain.ValueTable, error)
	ListSnapshots(ctx context.Context, since time.Time) (map[string]domain.SnapshotID, error)
	GetSnapshot(ctx context.Context, id domain.SnapshotID) (*domain.ValueTable, error)
}

func NewValuesRepository(cfg config.SourceConfig) ValuesRepository {
	settings := gobreaker.Settings{
		Name:    "values-source",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &valuesRepositoryHandler{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

type valuesRepositoryHandler struct {
	cfg     config.SourceConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

type valueRow struct {
	Player     string `csv:"player"`
	Value      string `csv:"value_2qb"`
	ScrapeDate string `csv:"scrape_date"`
}

func (h *valuesRepositoryHandler) Current(ctx context.Context) (*domain.ValueTable, error) {
	body, err := h.fetch(ctx, h.cfg.ValuesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load current values: %w", err)
	}
	return parseValueTable(domain.SnapshotCurrent, body)
}

// ListSnapshots maps snapshot dates (2006-01-02) to commit SHAs, using the
// source repo's commit history on the values file. When two commits land on
// the same day, the most recent listing wins.
func (h *valuesRepositoryHandler) ListSnapshots(ctx context.Context, since time.Time) (map[string]domain.SnapshotID, error) {
	log := logger.FromContext(ctx)
	url := fmt.Sprintf(
		"%s/repos/%s/commits?path=%s&since=%s&per_page=100",
		h.cfg.APIBaseURL,
		h.cfg.Repo,
		h.cfg.ValuesPath,
		since.UTC().Format("2006-01-02T00:00:00Z"),
	)

	body, err := h.fetch(ctx, url)
	if err != nil {
		// snapshots are best-effort; the caller degrades to the live table
		log.Warnf("failed to list value snapshots: %s", err.Error())
		return map[string]domain.SnapshotID{}, nil
	}

	type commitEntry struct {
		Sha    string `json:"sha"`
		Commit struct {
			Committer struct {
				Date string `json:"date"`
			} `json:"committer"`
		} `json:"commit"`
	}

	entries := []commitEntry{}
	if err := json.Unmarshal(body, &entries); err != nil {
		log.Warnf("failed to parse snapshot listing: %s", err.Error())
		return map[string]domain.SnapshotID{}, nil
	}

	snapshots := map[string]domain.SnapshotID{}
	for _, e := range entries {
		if len(e.Commit.Committer.Date) < 10 || e.Sha == "" {
			continue
		}
		day := e.Commit.Committer.Date[:10]
		if _, ok := snapshots[day]; !ok {
			snapshots[day] = domain.SnapshotID(e.Sha)
		}
	}

	return snapshots, nil
}

func (h *valuesRepositoryHandler) GetSnapshot(ctx context.Context, id domain.SnapshotID) (*domain.ValueTable, error) {
	url := fmt.Sprintf("%s/%s/%s/%s", h.cfg.RawBaseURL, h.cfg.Repo, id, h.cfg.ValuesPath)
	body, err := h.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load values snapshot %s: %w", id.Short(), err)
	}
	return parseValueTable(id, body)
}

// fetch runs a GET behind the circuit breaker with bounded retry and
// exponential backoff.
func (h *valuesRepositoryHandler) fetch(ctx context.Context, url string) ([]byte, error) {
	attempts := h.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		result, err := h.breaker.Execute(func() (interface{}, error) {
			return h.get(ctx, url)
		})
		if err == nil {
			return result.([]byte), nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%d attempts failed for %s: %w", attempts, url, lastErr)
}

func (h *valuesRepositoryHandler) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func parseValueTable(id domain.SnapshotID, body []byte) (*domain.ValueTable, error) {
	rows := []valueRow{}
	if err := gocsv.UnmarshalBytes(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse values csv: %w", err)
	}

	scrapeDate := ""
	entries := make([]domain.ValueEntry, 0, len(rows))
	for _, row := range rows {
		if scrapeDate == "" {
			scrapeDate = row.ScrapeDate
		}
		raw := strings.TrimSpace(row.Value)
		value := decimal.Zero
		if raw != "" {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				continue
			}
			value = parsed
		}
		entries = append(entries, domain.ValueEntry{
			Name:  row.Player,
			Value: value,
		})
	}

	return domain.NewValueTable(id, scrapeDate, entries), nil
}
