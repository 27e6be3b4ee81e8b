package l2_service

import (
	"dynastytrades/internal/domain"
	"fmt"
)

// PlayerValuator looks a player's display name up in a value table. A miss
// is a valid zero, not an error; the orchestrator tracks the miss rate.
type PlayerValuator struct{}

func (v PlayerValuator) Valuate(name string, table *domain.ValueTable) domain.Valuation {
	if table == nil {
		return domain.Valuation{Value: 0, Source: "No table"}
	}
	value, ok := table.Lookup(name)
	if !ok {
		return domain.Valuation{Value: 0, Source: "Not found"}
	}
	return domain.Valuation{
		Value:  value,
		Source: table.Tag(),
	}
}

// ValuateAsPlayer is the shared pick-to-player resolution: once a slot's
// draftee is known, the pick is worth whatever that player is worth.
func (v PlayerValuator) ValuateAsPlayer(player string, table *domain.ValueTable) domain.Valuation {
	if table == nil {
		return domain.Valuation{Value: 0, Source: fmt.Sprintf("Player not found:%s", player)}
	}
	value, ok := table.Lookup(player)
	if !ok {
		return domain.Valuation{Value: 0, Source: fmt.Sprintf("Player not found:%s", player)}
	}
	return domain.Valuation{
		Value:    value,
		Source:   fmt.Sprintf("Player:%s", player),
		Metadata: player,
	}
}
