package engine

import "fmt"

// Phase tags where the state machine is between actions.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseDrawRoom
	PhaseDecideAvoid
	PhaseFaceCards
	PhaseTurnComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseDrawRoom:
		return "draw_room"
	case PhaseDecideAvoid:
		return "decide_avoid"
	case PhaseFaceCards:
		return "face_cards"
	case PhaseTurnComplete:
		return "turn_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MaxAvoidsInARow caps consecutive room avoids.
const MaxAvoidsInARow = 1

// GameState is the complete snapshot of one Scoundrel game.
type GameState struct {
	Player            *Player
	Deck              *Deck
	CurrentRoom       *Room
	DiscardPile       []Card
	Phase             Phase
	TurnNumber        int
	RoomsAvoidedInRow int
	LastCardWasPotion bool
	GameOver          bool
	Victory           bool
}

// NewGameState builds the initial state for a fresh game.
func NewGameState(player *Player, deck *Deck) *GameState {
	return &GameState{Player: player, Deck: deck, Phase: PhaseSetup}
}

// CanAvoidRoom reports whether the avoid cooldown permits avoiding.
func (s *GameState) CanAvoidRoom() bool {
	return s.RoomsAvoidedInRow < MaxAvoidsInARow
}

// Discard moves cards permanently out of play.
func (s *GameState) Discard(cards []Card) {
	s.DiscardPile = append(s.DiscardPile, cards...)
}

// Score computes the terminal score. While the game is running the
// score is 0. On victory it is the player's remaining health; on loss
// it is the negated sum of monster values still in the deck.
func (s *GameState) Score() int {
	if !s.GameOver {
		return 0
	}
	if s.Victory {
		return s.Player.Health
	}
	remaining := 0
	for _, c := range s.Deck.Cards() {
		if c.Kind == KindMonster {
			remaining += c.Value
		}
	}
	return -remaining
}

// startNewTurn increments the turn counter and clears per-turn state.
func (s *GameState) startNewTurn() {
	s.TurnNumber++
	s.Player.ResetTurnState()
	s.LastCardWasPotion = false
	s.Phase = PhaseDrawRoom
}

// endTurn marks the current room as fully faced.
func (s *GameState) endTurn() { s.Phase = PhaseTurnComplete }

// MarkQuit ends the game immediately with loss semantics.
func (s *GameState) MarkQuit() {
	s.GameOver = true
	s.Victory = false
	s.Phase = PhaseGameOver
}

// checkGameOver applies the terminal conditions: dead player is a
// loss, exhausted deck a victory. Returns true if the game ended.
func (s *GameState) checkGameOver() bool {
	if s.Player.IsDead() {
		s.GameOver = true
		s.Victory = false
		s.Phase = PhaseGameOver
		return true
	}
	if s.Deck.IsEmpty() {
		s.GameOver = true
		s.Victory = true
		s.Phase = PhaseGameOver
		return true
	}
	return false
}

func (s *GameState) String() string {
	return fmt.Sprintf("Turn %d | %s | Deck: %d | Phase: %s",
		s.TurnNumber, s.Player, s.Deck.Remaining(), s.Phase)
}
