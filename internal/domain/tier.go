package domain

// TierSchedule buckets current-season 1st round pick slots into three
// coarse values, used pre-draft when no exact market entry exists. The
// boundaries split the league size into three segments (4/8/12 for a
// 12-team league), earlier segments absorbing any remainder, so every slot
// lands in exactly one tier.
type TierSchedule struct {
	EarlyFirst float64
	MidFirst   float64
	LateFirst  float64
	LeagueSize int
}

func (s TierSchedule) earlyMax() int {
	return (s.LeagueSize + 2) / 3
}

func (s TierSchedule) midMax() int {
	return (2*s.LeagueSize + 2) / 3
}

func (s TierSchedule) Value(slot int) float64 {
	switch {
	case slot <= s.earlyMax():
		return s.EarlyFirst
	case slot <= s.midMax():
		return s.MidFirst
	default:
		return s.LateFirst
	}
}

func (s TierSchedule) Name(slot int) string {
	switch {
	case slot <= s.earlyMax():
		return "Early"
	case slot <= s.midMax():
		return "Mid"
	default:
		return "Late"
	}
}
