package agent

import "github.com/jeanmidevacc/scoundrel/engine"

// Cautious plays to survive. It avoids rooms at critical health,
// grabs potions when injured, keeps a weapon equipped, prefers
// monsters the weapon can still kill, and otherwise eats the cheapest
// barehanded hit.
type Cautious struct {
	// AvoidBelow is the health at or under which a room is avoided.
	AvoidBelow int
	// HealBelow is the health under which potions take priority.
	HealBelow int
}

// NewCautious returns a Cautious agent with the stock thresholds.
func NewCautious() *Cautious {
	return &Cautious{AvoidBelow: 8, HealBelow: 15}
}

func (c *Cautious) DecideAvoidRoom(state *engine.GameState) bool {
	return state.Player.Health <= c.AvoidBelow
}

func (c *Cautious) ChooseCard(state *engine.GameState, available []engine.Card) (int, CombatMethod) {
	player := state.Player

	if player.Health < c.HealBelow {
		for i, card := range available {
			if card.Kind == engine.KindPotion {
				return i, MethodAuto
			}
		}
	}

	if !player.HasWeapon() {
		for i, card := range available {
			if card.Kind == engine.KindWeapon {
				return i, MethodAuto
			}
		}
	}

	if w := player.Weapon; w != nil {
		for i, card := range available {
			if card.Kind != engine.KindMonster {
				continue
			}
			if ok, _ := w.CanKill(card); ok {
				return i, MethodWeapon
			}
		}
	}

	// Nothing better left: pick any non-monster, else the smallest
	// monster barehanded.
	bestIdx, bestDamage := 0, int(^uint(0)>>1)
	for i, card := range available {
		if card.Kind != engine.KindMonster {
			return i, MethodAuto
		}
		if card.Value < bestDamage {
			bestDamage = card.Value
			bestIdx = i
		}
	}
	return bestIdx, MethodBarehanded
}
