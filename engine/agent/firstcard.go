package agent

import "github.com/jeanmidevacc/scoundrel/engine"

// FirstCard is the simplest possible policy: never avoid, always face
// the first available card, use the weapon whenever it can kill.
type FirstCard struct{}

func (FirstCard) DecideAvoidRoom(*engine.GameState) bool { return false }

func (FirstCard) ChooseCard(state *engine.GameState, available []engine.Card) (int, CombatMethod) {
	card := available[0]
	if card.Kind != engine.KindMonster {
		return 0, MethodAuto
	}
	if w := state.Player.Weapon; w != nil {
		if ok, _ := w.CanKill(card); ok {
			return 0, MethodWeapon
		}
	}
	return 0, MethodBarehanded
}
