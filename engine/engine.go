package engine

// Engine validates and executes player actions against a GameState.
// Every exported method is one atomic transition: it either fully
// applies or returns a rejected Outcome with no state change.
type Engine struct {
	State *GameState
}

// New builds an engine with a fresh deck from the given pool
// definitions and seed, and a player at default health.
func New(defs []Definition, seed int64) *Engine {
	deck := NewDeck(defs, seed)
	player := NewPlayer(DefaultMaxHealth)
	return &Engine{State: NewGameState(player, deck)}
}

// NewWithState continues from an existing state, e.g. one built by a
// test or restored by a driver.
func NewWithState(state *GameState) *Engine {
	return &Engine{State: state}
}

// StartGame transitions Setup → DrawRoom. Always succeeds.
func (e *Engine) StartGame() Outcome {
	e.State.Phase = PhaseDrawRoom
	return accepted("Game started! Draw your first room.")
}

// DrawRoom assembles the next 4-card room. The previous room's
// leftover card, if any, becomes the first slot; the rest are drawn
// from the deck. If the deck runs out before the room fills, the
// dungeon is cleared and the game ends in victory.
func (e *Engine) DrawRoom() Outcome {
	s := e.State
	if s.Phase != PhaseDrawRoom && s.Phase != PhaseTurnComplete {
		return rejected("cannot draw room in phase %s", s.Phase)
	}

	room := NewRoom()
	if s.CurrentRoom != nil && s.CurrentRoom.IsComplete() {
		if leftover, ok := s.CurrentRoom.RemainingCard(); ok {
			_ = room.AddCard(leftover)
		}
	}
	for _, card := range s.Deck.DrawMultiple(RoomSize - len(room.cards)) {
		_ = room.AddCard(card)
	}

	if !room.IsFull() {
		s.checkGameOver()
		return Outcome{
			Success: true,
			Message: "Dungeon complete! You survived!",
			Detail:  GameEnded{Victory: true, Score: s.Score()},
		}
	}

	s.CurrentRoom = room
	s.startNewTurn()
	s.Phase = PhaseDecideAvoid

	return Outcome{
		Success: true,
		Message: room.String(),
		Detail:  RoomDrawn{Room: room},
	}
}

// AvoidRoom sends all 4 room cards to the bottom of the deck. Legal
// only before any card in the room is faced, and never twice in a row.
func (e *Engine) AvoidRoom() Outcome {
	s := e.State
	if s.Phase != PhaseDecideAvoid {
		return rejected("cannot avoid room in phase %s", s.Phase)
	}
	if !s.CanAvoidRoom() {
		return rejected("cannot avoid two rooms in a row")
	}
	if s.CurrentRoom == nil || !s.CurrentRoom.IsFull() {
		return rejected("no complete room to avoid")
	}

	returned := s.CurrentRoom.Cards()
	s.Deck.AddToBottom(returned)
	s.RoomsAvoidedInRow++
	s.CurrentRoom = nil
	s.Phase = PhaseDrawRoom

	return Outcome{
		Success: true,
		Message: "Room avoided. Cards placed at bottom of dungeon.",
		Detail:  RoomAvoided{Returned: returned},
	}
}

// FaceCard resolves the room slot at index. Weapons equip, potions
// heal (subject to the one-per-turn cap), monsters defer to a combat
// call. Room errors (quota, bounds, double-face) come back as rejected
// outcomes with no state change.
func (e *Engine) FaceCard(index int) Outcome {
	s := e.State
	if s.Phase != PhaseDecideAvoid && s.Phase != PhaseFaceCards {
		return rejected("cannot face card in phase %s", s.Phase)
	}
	if s.CurrentRoom == nil {
		return rejected("no room available")
	}

	// Facing any card forfeits avoidance for this room.
	if s.Phase == PhaseDecideAvoid {
		s.Phase = PhaseFaceCards
		s.RoomsAvoidedInRow = 0
	}

	card, err := s.CurrentRoom.FaceCard(index)
	if err != nil {
		return rejected("%v", err)
	}

	switch card.Kind {
	case KindWeapon:
		return e.equipWeapon(card)
	case KindPotion:
		return e.drinkPotion(card)
	case KindMonster:
		return e.encounterMonster(card)
	default:
		return rejected("unknown card kind %d", card.Kind)
	}
}

// FightMonsterBarehanded resolves a deferred monster encounter without
// a weapon: the player takes the monster's full value as damage.
func (e *Engine) FightMonsterBarehanded(monster Card) Outcome {
	s := e.State
	damage := monster.Value
	s.Player.TakeDamage(damage)
	s.Discard([]Card{monster})

	over := s.checkGameOver()
	e.checkTurnComplete()

	return Outcome{
		Success:     true,
		Message:     "Fought " + monster.Name + " barehanded!",
		DamageTaken: damage,
		Detail: CombatResolved{
			Monster:    monster,
			Barehanded: true,
			Fatal:      over && !s.Victory,
		},
	}
}

// FightMonsterWithWeapon resolves a deferred monster encounter using
// the equipped weapon. Rejected if unarmed or the weapon's degradation
// threshold forbids this monster.
func (e *Engine) FightMonsterWithWeapon(monster Card) Outcome {
	s := e.State
	weapon := s.Player.Weapon
	if weapon == nil {
		return rejected("no weapon equipped")
	}
	if ok, err := weapon.CanKill(monster); err != nil {
		return rejected("%v", err)
	} else if !ok {
		last, _ := weapon.LastKillValue()
		return rejected("weapon cannot kill %s (last kill: %d)", monster.Name, last)
	}

	damage, err := weapon.Attack(monster)
	if err != nil {
		return rejected("%v", err)
	}
	s.Player.TakeDamage(damage)

	over := s.checkGameOver()
	e.checkTurnComplete()

	msg := "Used " + weapon.Card.Name + " against " + monster.Name + "!"
	if damage == 0 {
		msg += " No damage taken!"
	}
	return Outcome{
		Success:     true,
		Message:     msg,
		DamageTaken: damage,
		Detail: CombatResolved{
			Monster:    monster,
			Barehanded: false,
			Fatal:      over && !s.Victory,
		},
	}
}

// Quit ends the game immediately with loss semantics, bypassing the
// normal terminal checks.
func (e *Engine) Quit() Outcome {
	e.State.MarkQuit()
	return Outcome{
		Success: true,
		Message: "You flee the dungeon.",
		Detail:  GameEnded{Victory: false, Score: e.State.Score()},
	}
}

// IsGameOver reports whether a terminal state was reached.
func (e *Engine) IsGameOver() bool { return e.State.GameOver }

// Score returns the current score (0 until the game is over).
func (e *Engine) Score() int { return e.State.Score() }

func (e *Engine) equipWeapon(card Card) Outcome {
	s := e.State
	weapon, err := NewWeapon(card)
	if err != nil {
		// Unreachable for a KindWeapon card; surface it anyway.
		return rejected("%v", err)
	}

	var discarded []Card
	msg := "Equipped " + card.Name + "!"
	if old := s.Player.EquipWeapon(weapon); old != nil {
		discarded = append([]Card{old.Card}, old.Slain...)
		s.Discard(discarded)
		msg += " Discarded old weapon."
	}

	e.checkTurnComplete()
	return Outcome{
		Success: true,
		Message: msg,
		Detail:  WeaponEquipped{Weapon: weapon, Discarded: discarded},
	}
}

func (e *Engine) drinkPotion(card Card) Outcome {
	s := e.State
	if s.Player.PotionsUsedThisTurn >= MaxPotionsPerTurn {
		s.Discard([]Card{card})
		e.checkTurnComplete()
		return Outcome{
			Success: true,
			Message: "Discarded " + card.Name + " (already used a potion this turn).",
			Detail:  PotionWasted{Potion: card},
		}
	}

	gained := s.Player.Heal(card.Value)
	s.Player.PotionsUsedThisTurn++
	s.LastCardWasPotion = true
	s.Discard([]Card{card})

	e.checkTurnComplete()
	return Outcome{
		Success:      true,
		Message:      "Used " + card.Name + "!",
		HealthGained: gained,
		Detail:       PotionDrunk{Potion: card},
	}
}

func (e *Engine) encounterMonster(card Card) Outcome {
	s := e.State
	weapon := s.Player.Weapon
	canUseWeapon := false
	if weapon != nil {
		canUseWeapon, _ = weapon.CanKill(card)
	}

	msg := "Encountered " + card.Name + "!"
	switch {
	case canUseWeapon:
		msg += " (Weapon available)"
	case weapon != nil:
		msg += " (Weapon cannot be used - must fight barehanded)"
	default:
		msg += " (No weapon - must fight barehanded)"
	}

	return Outcome{
		Success: true,
		Message: msg,
		Detail:  MonsterEncountered{Monster: card, CanUseWeapon: canUseWeapon},
	}
}

// checkTurnComplete moves to TurnComplete once 3 cards are faced.
func (e *Engine) checkTurnComplete() {
	if e.State.GameOver {
		return
	}
	if e.State.CurrentRoom != nil && e.State.CurrentRoom.IsComplete() {
		e.State.endTurn()
	}
}
