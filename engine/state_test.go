package engine

import "testing"

func newTestState(defs []Definition, seed int64) *GameState {
	return NewGameState(NewPlayer(DefaultMaxHealth), NewDeck(defs, seed))
}

func TestScoreZeroWhileRunning(t *testing.T) {
	s := newTestState(testDefs(), 1)
	if s.Score() != 0 {
		t.Errorf("Score() mid-game = %d, want 0", s.Score())
	}
}

func TestScoreOnVictory(t *testing.T) {
	s := newTestState(testDefs(), 1)
	s.Player.Health = 14
	s.GameOver = true
	s.Victory = true
	if s.Score() != 14 {
		t.Errorf("victory Score() = %d, want 14", s.Score())
	}
}

// TestScoreOnLoss verifies the loss score is the negative sum of
// monster values still in the deck; weapons and potions never count.
func TestScoreOnLoss(t *testing.T) {
	defs := []Definition{
		{ID: "ogre", Name: "Ogre", Kind: KindMonster, Value: 7, Count: 1},
		{ID: "sword", Name: "Sword", Kind: KindWeapon, Value: 9, Count: 1},
		{ID: "elixir", Name: "Elixir", Kind: KindPotion, Value: 10, Count: 1},
	}
	s := newTestState(defs, 1)
	s.GameOver = true
	s.Victory = false
	if s.Score() != -7 {
		t.Errorf("loss Score() = %d, want -7", s.Score())
	}
}

func TestStartNewTurnResets(t *testing.T) {
	s := newTestState(testDefs(), 1)
	s.Player.PotionsUsedThisTurn = 1
	s.LastCardWasPotion = true
	turn := s.TurnNumber

	s.startNewTurn()
	if s.TurnNumber != turn+1 {
		t.Errorf("TurnNumber = %d, want %d", s.TurnNumber, turn+1)
	}
	if s.Player.PotionsUsedThisTurn != 0 {
		t.Error("potion counter not reset")
	}
	if s.LastCardWasPotion {
		t.Error("last-card-was-potion flag not cleared")
	}
}

func TestCheckGameOverDeath(t *testing.T) {
	s := newTestState(testDefs(), 1)
	s.Player.Health = 0
	if !s.checkGameOver() {
		t.Fatal("checkGameOver() with dead player should be true")
	}
	if !s.GameOver || s.Victory {
		t.Error("dead player must end the game as a loss")
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("Phase = %s, want game_over", s.Phase)
	}
}

func TestCheckGameOverDeckExhausted(t *testing.T) {
	s := newTestState(testDefs(), 1)
	s.Deck.DrawMultiple(s.Deck.Remaining())
	if !s.checkGameOver() {
		t.Fatal("checkGameOver() with empty deck should be true")
	}
	if !s.Victory {
		t.Error("empty deck must end the game as a victory")
	}
}

func TestMarkQuit(t *testing.T) {
	s := newTestState(testDefs(), 1)
	s.MarkQuit()
	if !s.GameOver || s.Victory {
		t.Error("quit must be a loss")
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("Phase = %s, want game_over", s.Phase)
	}
}

func TestCanAvoidRoomCooldown(t *testing.T) {
	s := newTestState(testDefs(), 1)
	if !s.CanAvoidRoom() {
		t.Error("fresh state should allow avoiding")
	}
	s.RoomsAvoidedInRow = 1
	if s.CanAvoidRoom() {
		t.Error("avoid must be blocked after one consecutive avoid")
	}
}
