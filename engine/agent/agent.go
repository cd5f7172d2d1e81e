// Package agent defines the decision interface for automated players
// and ships two built-in strategies. Agents are pure policies: they
// read game state and pick actions, while a driver performs the
// actual engine calls.
package agent

import (
	"fmt"

	"github.com/jeanmidevacc/scoundrel/engine"
)

// CombatMethod says how a chosen monster should be fought. Auto is
// the only valid method for weapons and potions.
type CombatMethod uint8

const (
	MethodAuto CombatMethod = iota
	MethodBarehanded
	MethodWeapon
)

func (m CombatMethod) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodBarehanded:
		return "barehanded"
	case MethodWeapon:
		return "weapon"
	default:
		return "unknown"
	}
}

// Agent chooses actions for one game.
type Agent interface {
	// DecideAvoidRoom is asked once per freshly drawn room, only when
	// the avoid cooldown permits it.
	DecideAvoidRoom(state *engine.GameState) bool

	// ChooseCard picks from the not-yet-faced cards of the current
	// room. The returned index is into available, not a room slot.
	ChooseCard(state *engine.GameState, available []engine.Card) (int, CombatMethod)
}

// Lookup resolves a built-in agent by name.
func Lookup(name string) (Agent, error) {
	switch name {
	case "first":
		return FirstCard{}, nil
	case "cautious":
		return NewCautious(), nil
	default:
		return nil, fmt.Errorf("unknown agent %q (want first or cautious)", name)
	}
}
