package engine

import "fmt"

// DefaultMaxHealth is the standard Scoundrel starting health.
const DefaultMaxHealth = 20

// MaxPotionsPerTurn caps potion heals per turn; extra potions faced in
// the same turn are discarded with no effect.
const MaxPotionsPerTurn = 1

// Player holds the adventurer's mutable state: health, equipped
// weapon, and the per-turn potion counter.
type Player struct {
	Health              int
	MaxHealth           int
	Weapon              *Weapon
	PotionsUsedThisTurn int
}

// NewPlayer creates a player at full health.
func NewPlayer(maxHealth int) *Player {
	return &Player{Health: maxHealth, MaxHealth: maxHealth}
}

// TakeDamage reduces health, clamped at 0.
func (p *Player) TakeDamage(damage int) {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal raises health, clamped at MaxHealth, and returns the amount
// actually gained.
func (p *Player) Heal(amount int) int {
	old := p.Health
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return p.Health - old
}

// EquipWeapon equips a new weapon and returns the previous one (nil if
// the player was unarmed). The caller decides what happens to the old
// weapon and its slain monsters.
func (p *Player) EquipWeapon(w *Weapon) *Weapon {
	old := p.Weapon
	p.Weapon = w
	return old
}

// ResetTurnState clears per-turn counters at the start of a new turn.
func (p *Player) ResetTurnState() { p.PotionsUsedThisTurn = 0 }

// IsAlive reports whether the player has health left.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// IsDead reports whether the player's health reached zero.
func (p *Player) IsDead() bool { return p.Health <= 0 }

// HasWeapon reports whether a weapon is equipped.
func (p *Player) HasWeapon() bool { return p.Weapon != nil }

func (p *Player) String() string {
	weapon := "none"
	if p.HasWeapon() {
		weapon = p.Weapon.String()
	}
	return fmt.Sprintf("HP: %d/%d | Weapon: %s", p.Health, p.MaxHealth, weapon)
}
