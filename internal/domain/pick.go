package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PickLabel is the parsed form of a traded pick's display name, e.g.
// "2025 Round 1". String() reproduces the original label exactly.
type PickLabel struct {
	Year  int
	Round int
}

func ParsePickLabel(name string) (PickLabel, error) {
	parts := strings.Fields(name)
	if len(parts) != 3 || parts[1] != "Round" {
		return PickLabel{}, fmt.Errorf("malformed pick label %q", name)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return PickLabel{}, fmt.Errorf("malformed pick year in %q", name)
	}
	round, err := strconv.Atoi(parts[2])
	if err != nil || round < 1 {
		return PickLabel{}, fmt.Errorf("malformed pick round in %q", name)
	}
	return PickLabel{Year: year, Round: round}, nil
}

func (p PickLabel) String() string {
	return fmt.Sprintf("%d Round %d", p.Year, p.Round)
}

// SlotName is the exact per-slot entry format used by the values source,
// e.g. "2025 Pick 1.02".
func (p PickLabel) SlotName(slot int) string {
	return fmt.Sprintf("%d Pick %d.%02d", p.Year, p.Round, slot)
}

// GenericName is the league-wide generic entry format, e.g. "2026 2nd".
func (p PickLabel) GenericName() string {
	return fmt.Sprintf("%d %s", p.Year, RoundOrdinal(p.Round))
}

func RoundOrdinal(round int) string {
	switch round {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", round)
	}
}
