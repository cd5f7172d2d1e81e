package engine

import "testing"

func TestTakeDamageClampsAtZero(t *testing.T) {
	p := NewPlayer(20)
	p.TakeDamage(5)
	if p.Health != 15 {
		t.Errorf("Health = %d, want 15", p.Health)
	}
	p.TakeDamage(100)
	if p.Health != 0 {
		t.Errorf("Health = %d, want 0", p.Health)
	}
	if !p.IsDead() || p.IsAlive() {
		t.Error("player at 0 health must be dead")
	}
}

func TestHealClampsAtMax(t *testing.T) {
	p := NewPlayer(20)
	p.TakeDamage(15) // 5 left

	gained := p.Heal(6)
	if gained != 6 || p.Health != 11 {
		t.Errorf("Heal(6) = %d, health %d; want 6, 11", gained, p.Health)
	}

	gained = p.Heal(100)
	if gained != 9 || p.Health != 20 {
		t.Errorf("Heal(100) = %d, health %d; want 9, 20", gained, p.Health)
	}

	gained = p.Heal(5)
	if gained != 0 {
		t.Errorf("Heal at full health = %d, want 0", gained)
	}
}

func TestEquipWeaponReturnsOld(t *testing.T) {
	p := NewPlayer(20)
	if p.HasWeapon() {
		t.Fatal("fresh player should be unarmed")
	}

	first, _ := NewWeapon(weaponCard(3))
	if old := p.EquipWeapon(first); old != nil {
		t.Errorf("first equip returned %v, want nil", old)
	}

	second, _ := NewWeapon(weaponCard(8))
	old := p.EquipWeapon(second)
	if old != first {
		t.Error("second equip should return the first weapon")
	}
	if p.Weapon != second {
		t.Error("second weapon should be equipped")
	}
}

func TestResetTurnState(t *testing.T) {
	p := NewPlayer(20)
	p.PotionsUsedThisTurn = 1
	p.ResetTurnState()
	if p.PotionsUsedThisTurn != 0 {
		t.Errorf("PotionsUsedThisTurn = %d, want 0", p.PotionsUsedThisTurn)
	}
}
