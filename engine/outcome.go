package engine

import "fmt"

// Outcome is the structured result of one engine operation. A rejected
// action (Success=false) means the state was not mutated at all and
// the caller may immediately try a different legal action.
//
// Detail carries the action-specific payload as a typed variant
// instead of an open-ended map, so consumers know at compile time
// which fields exist for which action.
type Outcome struct {
	Success      bool
	Message      string
	DamageTaken  int
	HealthGained int
	Detail       Detail
}

// IsFatal reports whether this outcome killed the player.
func (o Outcome) IsFatal() bool {
	if d, ok := o.Detail.(CombatResolved); ok {
		return d.Fatal
	}
	return false
}

func (o Outcome) String() string {
	s := o.Message
	if o.DamageTaken > 0 {
		s += fmt.Sprintf(" (-%d HP)", o.DamageTaken)
	}
	if o.HealthGained > 0 {
		s += fmt.Sprintf(" (+%d HP)", o.HealthGained)
	}
	return s
}

// Detail is the closed set of per-action outcome payloads.
type Detail interface{ outcomeDetail() }

// RoomDrawn reports a freshly installed room.
type RoomDrawn struct {
	Room *Room
}

// RoomAvoided reports a room returned to the bottom of the deck.
type RoomAvoided struct {
	Returned []Card
}

// MonsterEncountered defers combat: the player faced a monster and
// must now pick barehanded or weapon. CanUseWeapon is precomputed from
// the equipped weapon's kill threshold.
type MonsterEncountered struct {
	Monster      Card
	CanUseWeapon bool
}

// WeaponEquipped reports a weapon pickup. Discarded holds the previous
// weapon card plus its slain monsters, if any were replaced.
type WeaponEquipped struct {
	Weapon    *Weapon
	Discarded []Card
}

// PotionDrunk reports a potion heal.
type PotionDrunk struct {
	Potion Card
}

// PotionWasted reports a potion discarded by the one-per-turn cap.
type PotionWasted struct {
	Potion Card
}

// CombatResolved reports a finished fight.
type CombatResolved struct {
	Monster    Card
	Barehanded bool
	Fatal      bool
}

// GameEnded reports a terminal transition.
type GameEnded struct {
	Victory bool
	Score   int
}

func (RoomDrawn) outcomeDetail()          {}
func (RoomAvoided) outcomeDetail()        {}
func (MonsterEncountered) outcomeDetail() {}
func (WeaponEquipped) outcomeDetail()     {}
func (PotionDrunk) outcomeDetail()        {}
func (PotionWasted) outcomeDetail()       {}
func (CombatResolved) outcomeDetail()     {}
func (GameEnded) outcomeDetail()          {}

// rejected builds a no-mutation failure outcome.
func rejected(format string, args ...any) Outcome {
	return Outcome{Success: false, Message: fmt.Sprintf(format, args...)}
}

// accepted builds a success outcome with a plain message.
func accepted(format string, args ...any) Outcome {
	return Outcome{Success: true, Message: fmt.Sprintf(format, args...)}
}
