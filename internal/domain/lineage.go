package domain

// PickLineageEntry connects one draft slot back to the player selected with
// it. An (origin owner, round) key can map to several entries when a team
// holds multiple picks in the same round.
type PickLineageEntry struct {
	FinalOwner  string
	Slot        int
	Player      string
	OverallPick int
}
