package engine

import "fmt"

// Weapon wraps an equipped weapon card together with the monsters it
// has slain, in encounter order.
//
// Weapons degrade: once used on a monster, a weapon can only be used
// on monsters of equal or lower value than the last monster it killed.
type Weapon struct {
	Card  Card
	Slain []Card
}

// NewWeapon wraps a weapon card. Returns ErrNotWeapon for any other kind.
func NewWeapon(card Card) (*Weapon, error) {
	if card.Kind != KindWeapon {
		return nil, fmt.Errorf("%w: %s", ErrNotWeapon, card.Name)
	}
	return &Weapon{Card: card}, nil
}

// Damage returns the weapon's damage value.
func (w *Weapon) Damage() int { return w.Card.Value }

// IsUsed reports whether the weapon has killed at least one monster.
func (w *Weapon) IsUsed() bool { return len(w.Slain) > 0 }

// LastKillValue returns the value of the most recent kill. The second
// return is false for an unused weapon, which has no threshold yet.
func (w *Weapon) LastKillValue() (int, bool) {
	if len(w.Slain) == 0 {
		return 0, false
	}
	return w.Slain[len(w.Slain)-1].Value, true
}

// CanKill reports whether the weapon may be used against the monster.
// An unused weapon can kill anything; a used weapon only monsters of
// value at most its last kill. Returns ErrNotMonster for non-monsters.
func (w *Weapon) CanKill(monster Card) (bool, error) {
	if monster.Kind != KindMonster {
		return false, fmt.Errorf("%w: %s", ErrNotMonster, monster.Name)
	}
	last, used := w.LastKillValue()
	if !used {
		return true, nil
	}
	return monster.Value <= last, nil
}

// Attack uses the weapon against the monster, records the kill, and
// returns the damage the player takes: max(0, monster - weapon).
// Returns ErrWeaponExhausted if CanKill would be false; call sites
// that can anticipate the condition should check first.
func (w *Weapon) Attack(monster Card) (int, error) {
	ok, err := w.CanKill(monster)
	if err != nil {
		return 0, err
	}
	if !ok {
		last, _ := w.LastKillValue()
		return 0, fmt.Errorf("%w: %s (last kill: %d)", ErrWeaponExhausted, monster.Name, last)
	}

	damage := monster.Value - w.Card.Value
	if damage < 0 {
		damage = 0
	}
	w.Slain = append(w.Slain, monster)
	return damage, nil
}

func (w *Weapon) String() string {
	if last, used := w.LastKillValue(); used {
		return fmt.Sprintf("%s (max kill: %d)", w.Card.Name, last)
	}
	return fmt.Sprintf("%s (unused)", w.Card.Name)
}
