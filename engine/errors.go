package engine

import "errors"

// Domain errors for invalid arguments. Illegal transitions (wrong
// phase, avoid cooldown, room quota) are never errors — they come back
// as rejected Outcomes instead.
var (
	// ErrNotWeapon indicates a non-weapon card was wrapped as a weapon.
	ErrNotWeapon = errors.New("card is not a weapon")

	// ErrNotMonster indicates a non-monster card was passed to a combat check.
	ErrNotMonster = errors.New("card is not a monster")

	// ErrWeaponExhausted indicates an attack on a monster above the weapon's
	// current kill threshold. Call CanKill first.
	ErrWeaponExhausted = errors.New("weapon cannot kill this monster")

	// ErrRoomFull indicates an attempt to add a fifth card to a room.
	ErrRoomFull = errors.New("room already has 4 cards")

	// ErrRoomQuota indicates an attempt to face a fourth card in a room.
	ErrRoomQuota = errors.New("cannot face more than 3 cards per room")

	// ErrAlreadyFaced indicates the card at the given slot was already faced.
	ErrAlreadyFaced = errors.New("card has already been faced")

	// ErrBadIndex indicates a card index outside the room's slot range.
	ErrBadIndex = errors.New("card index out of range")
)
