package engine

// Snapshot is the serialization view of a GameState for event logging
// and drivers. It is a plain data copy: mutating it never touches the
// live state.
type Snapshot struct {
	Player  PlayerSnapshot `json:"player"`
	Dungeon PileSnapshot   `json:"dungeon"`
	Discard PileSnapshot   `json:"discard"`
	Room    *RoomSnapshot  `json:"room,omitempty"`
	Phase   string         `json:"phase"`
	Turn    int            `json:"turn"`
}

// PlayerSnapshot captures health and equipment.
type PlayerSnapshot struct {
	Health    int             `json:"health"`
	MaxHealth int             `json:"max_health"`
	Weapon    *WeaponSnapshot `json:"weapon"`
}

// WeaponSnapshot captures the equipped weapon and its kill history.
type WeaponSnapshot struct {
	Card     string `json:"card"`
	Value    int    `json:"value"`
	Kills    []int  `json:"kills"`
	LastKill *int   `json:"last_kill"`
}

// PileSnapshot captures an ordered card pile by display name.
type PileSnapshot struct {
	Count int      `json:"count"`
	Cards []string `json:"cards"`
}

// RoomSnapshot captures the current room split into faced and
// remaining cards.
type RoomSnapshot struct {
	Cards     []string `json:"cards"`
	Faced     []string `json:"faced"`
	Remaining []string `json:"remaining"`
}

// TakeSnapshot serializes the state for logging.
func (s *GameState) TakeSnapshot() Snapshot {
	snap := Snapshot{
		Player: PlayerSnapshot{
			Health:    s.Player.Health,
			MaxHealth: s.Player.MaxHealth,
		},
		Dungeon: pileSnapshot(s.Deck.Cards()),
		Discard: pileSnapshot(s.DiscardPile),
		Phase:   s.Phase.String(),
		Turn:    s.TurnNumber,
	}

	if w := s.Player.Weapon; w != nil {
		ws := &WeaponSnapshot{
			Card:  w.Card.Name,
			Value: w.Card.Value,
			Kills: make([]int, 0, len(w.Slain)),
		}
		for _, m := range w.Slain {
			ws.Kills = append(ws.Kills, m.Value)
		}
		if last, used := w.LastKillValue(); used {
			v := last
			ws.LastKill = &v
		}
		snap.Player.Weapon = ws
	}

	if r := s.CurrentRoom; r != nil {
		snap.Room = &RoomSnapshot{
			Cards:     cardNames(r.Cards()),
			Faced:     cardNames(r.Faced()),
			Remaining: cardNames(r.AvailableCards()),
		}
	}

	return snap
}

func pileSnapshot(cards []Card) PileSnapshot {
	return PileSnapshot{Count: len(cards), Cards: cardNames(cards)}
}

func cardNames(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}
