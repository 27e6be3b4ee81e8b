package repository

import (
	"dynastytrades/internal/domain"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// weekColumnPattern matches projection grid columns like "Week7_2026_2nd".
var weekColumnPattern = regexp.MustCompile(`^Week(\d+)_(\d{4})_([0-9A-Za-z]+)$`)

type ProjectionRepository interface {
	Load() (*domain.ProjectionTable, error)
}

// NewProjectionRepository reads the weekly pick projection grid. The week
// columns are data, not schema - which weeks exist changes as the file is
// regenerated - so the header is introspected instead of mapped to struct
// tags.
func NewProjectionRepository(path string, year int) ProjectionRepository {
	return &projectionRepositoryHandler{path: path, year: year}
}

type projectionRepositoryHandler struct {
	path string
	year int
}

func (h *projectionRepositoryHandler) Load() (*domain.ProjectionTable, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("could not open projections: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse projections: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("projections file is empty")
	}

	header := records[0]
	teamCol := -1
	type weekColumn struct {
		index   int
		week    int
		ordinal string
	}
	weekColumns := []weekColumn{}

	for i, name := range header {
		if name == "Team" {
			teamCol = i
			continue
		}
		m := weekColumnPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		week, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		colYear, err := strconv.Atoi(m[2])
		if err != nil || colYear != h.year {
			continue
		}
		weekColumns = append(weekColumns, weekColumn{
			index:   i,
			week:    week,
			ordinal: m[3],
		})
	}

	if teamCol < 0 {
		return nil, fmt.Errorf("projections file has no Team column")
	}

	table := domain.NewProjectionTable(h.year)
	for _, record := range records[1:] {
		if teamCol >= len(record) {
			continue
		}
		team := strings.TrimSpace(record[teamCol])
		if team == "" {
			continue
		}
		for _, col := range weekColumns {
			if col.index >= len(record) {
				continue
			}
			raw := strings.TrimSpace(record[col.index])
			if raw == "" {
				continue
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			table.Set(team, col.ordinal, col.week, value)
		}
	}

	return table, nil
}
