package repository

// PickOriginRepository answers which roster a given draft slot originally
// belonged to. The league API conflates a pick's current holder with its
// origin, so the origin order is maintained by hand in config. The draft is
// linear: rounds 2..N repeat the round 1 order.
type PickOriginRepository interface {
	OriginOwner(round, slot int) (string, bool)
}

func NewPickOriginRepository(roundOneOrder []string, rounds int) PickOriginRepository {
	return &pickOriginRepositoryHandler{
		order:  roundOneOrder,
		rounds: rounds,
	}
}

type pickOriginRepositoryHandler struct {
	order  []string
	rounds int
}

func (h *pickOriginRepositoryHandler) OriginOwner(round, slot int) (string, bool) {
	if round < 1 || round > h.rounds {
		return "", false
	}
	if slot < 1 || slot > len(h.order) {
		return "", false
	}
	return h.order[slot-1], true
}
