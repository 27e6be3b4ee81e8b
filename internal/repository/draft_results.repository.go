package repository

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// DraftResult is one completed selection from the rookie draft results
// export: which slot was used, who made the pick, and who was taken.
type DraftResult struct {
	Round       int    `csv:"Round"`
	Slot        int    `csv:"Pick in Round"`
	OverallPick int    `csv:"Pick"`
	Owner       string `csv:"Owner"`
	Player      string `csv:"Player"`
}

type DraftResultsRepository interface {
	List() ([]DraftResult, error)
}

func NewDraftResultsRepository(path string) DraftResultsRepository {
	return &draftResultsRepositoryHandler{path: path}
}

type draftResultsRepositoryHandler struct {
	path string
}

func (h *draftResultsRepositoryHandler) List() ([]DraftResult, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("could not open draft results: %w", err)
	}
	defer f.Close()

	results := []DraftResult{}
	if err := gocsv.UnmarshalFile(f, &results); err != nil {
		return nil, fmt.Errorf("failed to parse draft results: %w", err)
	}

	return results, nil
}
