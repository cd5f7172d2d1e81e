// Package engine implements the Scoundrel card game rules.
//
// The package is a pure, synchronous rules processor: every operation
// either fully applies to the game state or is rejected with zero
// mutation. It performs no I/O and holds no process-wide state, so
// independent games can run side by side.
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind classifies a card.
type Kind uint8

const (
	KindMonster Kind = iota
	KindWeapon
	KindPotion
)

func (k Kind) String() string {
	switch k {
	case KindMonster:
		return "monster"
	case KindWeapon:
		return "weapon"
	case KindPotion:
		return "health_potion"
	default:
		return "unknown"
	}
}

// ParseKind converts a configuration kind string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "monster":
		return KindMonster, nil
	case "weapon":
		return KindWeapon, nil
	case "health_potion":
		return KindPotion, nil
	default:
		return 0, fmt.Errorf("unknown card kind %q", s)
	}
}

// Definition is one entry of a dungeon card pool: a card template plus
// how many copies of it the deck receives.
type Definition struct {
	ID          string
	Name        string
	Kind        Kind
	Value       int
	Count       int
	Description string
}

// Card is a single card instance in play. The descriptive fields come
// from the pool definition; UID is a per-instance handle assigned when
// the deck is built. Two instances of the same definition are
// field-identical but never UID-identical, so membership checks
// (faced, discarded) always use UID.
type Card struct {
	UID   uuid.UUID
	DefID string
	Kind  Kind
	Value int
	Name  string
}

// NewCard instantiates one copy of a pool definition with a fresh UID.
func NewCard(def Definition) Card {
	return Card{
		UID:   uuid.New(),
		DefID: def.ID,
		Kind:  def.Kind,
		Value: def.Value,
		Name:  def.Name,
	}
}

// Same reports whether two cards are the same instance.
func (c Card) Same(other Card) bool { return c.UID == other.UID }

func (c Card) String() string { return c.Name }
