package engine

import (
	"fmt"
	"testing"
)

// standardDefs builds the classic 44-card dungeon: clubs and spades
// 2-14 as monsters, diamonds 2-10 as weapons, hearts 2-10 as potions.
func standardDefs() []Definition {
	var defs []Definition
	for _, suit := range []string{"clubs", "spades"} {
		for v := 2; v <= 14; v++ {
			defs = append(defs, Definition{
				ID:    fmt.Sprintf("%s_%d", suit, v),
				Name:  fmt.Sprintf("%d of %s", v, suit),
				Kind:  KindMonster,
				Value: v,
				Count: 1,
			})
		}
	}
	for v := 2; v <= 10; v++ {
		defs = append(defs, Definition{
			ID: fmt.Sprintf("diamonds_%d", v), Name: fmt.Sprintf("%d of diamonds", v),
			Kind: KindWeapon, Value: v, Count: 1,
		})
		defs = append(defs, Definition{
			ID: fmt.Sprintf("hearts_%d", v), Name: fmt.Sprintf("%d of hearts", v),
			Kind: KindPotion, Value: v, Count: 1,
		})
	}
	return defs
}

// playBareknuckle drives a full game with a fixed policy: never avoid,
// face slots 0..2 in order, fight every monster barehanded. Returns
// the engine in its terminal state.
func playBareknuckle(t *testing.T, seed int64) *Engine {
	t.Helper()
	e := New(standardDefs(), seed)
	e.StartGame()

	for turn := 0; turn < 100; turn++ {
		out := e.DrawRoom()
		if !out.Success {
			t.Fatalf("turn %d: DrawRoom rejected: %s", turn, out.Message)
		}
		if _, ended := out.Detail.(GameEnded); ended {
			return e
		}
		for i := 0; i < CardsFacedPerRoom && !e.IsGameOver(); i++ {
			out = e.FaceCard(i)
			if !out.Success {
				t.Fatalf("turn %d: FaceCard(%d) rejected: %s", turn, i, out.Message)
			}
			if mo, ok := out.Detail.(MonsterEncountered); ok {
				out = e.FightMonsterBarehanded(mo.Monster)
				if !out.Success {
					t.Fatalf("turn %d: barehanded fight rejected: %s", turn, out.Message)
				}
			}
		}
		if e.IsGameOver() {
			return e
		}
	}
	t.Fatal("game did not terminate within 100 turns")
	return nil
}

func TestStandardPoolComposition(t *testing.T) {
	defs := standardDefs()
	total, monsters, weapons, potions := 0, 0, 0, 0
	for _, d := range defs {
		total += d.Count
		switch d.Kind {
		case KindMonster:
			monsters += d.Count
		case KindWeapon:
			weapons += d.Count
		case KindPotion:
			potions += d.Count
		}
	}
	if total != 44 || monsters != 26 || weapons != 9 || potions != 9 {
		t.Errorf("pool = %d total (%d/%d/%d), want 44 (26/9/9)",
			total, monsters, weapons, potions)
	}
}

func TestFullGameTerminates(t *testing.T) {
	e := playBareknuckle(t, 42)
	if !e.IsGameOver() {
		t.Fatal("game did not reach a terminal state")
	}
	if e.State.Phase != PhaseGameOver {
		t.Errorf("terminal phase = %s, want game_over", e.State.Phase)
	}
	score := e.Score()
	if e.State.Victory && score != e.State.Player.Health {
		t.Errorf("victory score = %d, want health %d", score, e.State.Player.Health)
	}
	if !e.State.Victory && score > 0 {
		t.Errorf("loss score = %d, want <= 0", score)
	}
}

// TestSameSeedSameGame: the seed plus a fixed decision sequence fully
// determines the run.
func TestSameSeedSameGame(t *testing.T) {
	a := playBareknuckle(t, 1234)
	b := playBareknuckle(t, 1234)

	if a.State.Victory != b.State.Victory {
		t.Errorf("victory differs: %v vs %v", a.State.Victory, b.State.Victory)
	}
	if a.State.Player.Health != b.State.Player.Health {
		t.Errorf("final health differs: %d vs %d", a.State.Player.Health, b.State.Player.Health)
	}
	if a.State.TurnNumber != b.State.TurnNumber {
		t.Errorf("turn count differs: %d vs %d", a.State.TurnNumber, b.State.TurnNumber)
	}
	if a.Score() != b.Score() {
		t.Errorf("score differs: %d vs %d", a.Score(), b.Score())
	}
}

// TestCardConservation: at every turn boundary, every card instance is
// in exactly one zone.
func TestCardConservation(t *testing.T) {
	e := New(standardDefs(), 99)
	e.StartGame()

	countZones := func() int {
		s := e.State
		n := s.Deck.Remaining() + len(s.DiscardPile)
		if s.CurrentRoom != nil {
			n += s.CurrentRoom.NumRemaining()
		}
		if s.Player.Weapon != nil {
			n += 1 + len(s.Player.Weapon.Slain)
		}
		return n
	}

	for turn := 0; turn < 100; turn++ {
		out := e.DrawRoom()
		if _, ended := out.Detail.(GameEnded); ended {
			return
		}
		for i := 0; i < CardsFacedPerRoom && !e.IsGameOver(); i++ {
			out = e.FaceCard(i)
			if mo, ok := out.Detail.(MonsterEncountered); ok {
				e.FightMonsterBarehanded(mo.Monster)
			}
		}
		if e.IsGameOver() {
			return
		}
		if got := countZones(); got != 44 {
			t.Fatalf("turn %d: %d cards accounted for, want 44", turn, got)
		}
	}
}
