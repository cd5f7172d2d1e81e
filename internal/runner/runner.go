// Package runner drives a full game with an agent making every
// decision. It is the headless counterpart of the interactive TUI:
// same engine calls, no rendering, every action logged.
package runner

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jeanmidevacc/scoundrel/engine"
	"github.com/jeanmidevacc/scoundrel/engine/agent"
	"github.com/jeanmidevacc/scoundrel/internal/gamelog"
)

// maxActions caps the run as a guard against a stuck agent.
const maxActions = 10000

// Runner executes one game to completion.
type Runner struct {
	Engine *engine.Engine
	Agent  agent.Agent
	Log    *gamelog.Logger

	// Seed is recorded in the game_started event.
	Seed int64
}

// Result summarizes a finished game.
type Result struct {
	Victory     bool
	Score       int
	FinalHealth int
	Turns       int
}

// Run plays the game until a terminal state and returns the result.
func (r *Runner) Run() (Result, error) {
	e := r.Engine
	s := e.State

	e.StartGame()
	r.Log.EventWithState(gamelog.EventGameStarted, logrus.Fields{
		"seed":  r.Seed,
		"cards": s.Deck.Remaining(),
	}, s.TakeSnapshot())

	for i := 0; i < maxActions && !e.IsGameOver(); i++ {
		var err error
		switch s.Phase {
		case engine.PhaseDrawRoom, engine.PhaseTurnComplete:
			err = r.drawRoom()
		case engine.PhaseDecideAvoid:
			err = r.decideAvoid()
		case engine.PhaseFaceCards:
			err = r.faceOne()
		default:
			err = fmt.Errorf("unexpected phase %s", s.Phase)
		}
		if err != nil {
			return Result{}, err
		}
	}

	if !e.IsGameOver() {
		return Result{}, fmt.Errorf("game made no progress after %d actions", maxActions)
	}

	result := Result{
		Victory:     s.Victory,
		Score:       e.Score(),
		FinalHealth: s.Player.Health,
		Turns:       s.TurnNumber,
	}
	r.Log.EventWithState(gamelog.EventGameOver, logrus.Fields{
		"victory":      result.Victory,
		"score":        result.Score,
		"final_health": result.FinalHealth,
		"turns":        result.Turns,
	}, s.TakeSnapshot())

	return result, nil
}

func (r *Runner) drawRoom() error {
	out := r.Engine.DrawRoom()
	if !out.Success {
		return fmt.Errorf("draw room: %s", out.Message)
	}
	if _, ended := out.Detail.(engine.GameEnded); ended {
		return nil
	}
	r.Log.EventWithState(gamelog.EventRoomDrawn, logrus.Fields{
		"turn": r.Engine.State.TurnNumber,
	}, r.Engine.State.TakeSnapshot())
	return nil
}

func (r *Runner) decideAvoid() error {
	s := r.Engine.State
	if r.Agent.DecideAvoidRoom(s) && s.CanAvoidRoom() {
		out := r.Engine.AvoidRoom()
		if !out.Success {
			return fmt.Errorf("avoid room: %s", out.Message)
		}
		r.Log.EventWithState(gamelog.EventRoomAvoided, logrus.Fields{
			"turn": s.TurnNumber,
		}, s.TakeSnapshot())
		return nil
	}
	return r.faceOne()
}

// faceOne asks the agent for one card and resolves it, including any
// deferred monster combat.
func (r *Runner) faceOne() error {
	s := r.Engine.State
	available := s.CurrentRoom.AvailableCards()
	if len(available) == 0 {
		return fmt.Errorf("no cards available in phase %s", s.Phase)
	}

	choice, method := r.Agent.ChooseCard(s, available)
	if choice < 0 || choice >= len(available) {
		return fmt.Errorf("agent chose card %d of %d available", choice, len(available))
	}
	slot, err := roomSlot(s.CurrentRoom, available[choice])
	if err != nil {
		return err
	}

	out := r.Engine.FaceCard(slot)
	if !out.Success {
		return fmt.Errorf("face card %d: %s", slot, out.Message)
	}
	r.Log.Event(gamelog.EventCardFaced, logrus.Fields{
		"card": available[choice].Name,
		"kind": available[choice].Kind.String(),
	})

	if mo, ok := out.Detail.(engine.MonsterEncountered); ok {
		if err := r.fight(mo, method); err != nil {
			return err
		}
	}

	if s.Phase == engine.PhaseTurnComplete {
		r.Log.EventWithState(gamelog.EventTurnComplete, logrus.Fields{
			"turn": s.TurnNumber,
		}, s.TakeSnapshot())
	}
	return nil
}

// fight resolves a deferred encounter. A weapon request that the
// degradation rule forbids falls back to barehanded instead of
// stalling the run.
func (r *Runner) fight(mo engine.MonsterEncountered, method agent.CombatMethod) error {
	useWeapon := false
	switch method {
	case agent.MethodWeapon, agent.MethodAuto:
		useWeapon = mo.CanUseWeapon
	case agent.MethodBarehanded:
	}

	var out engine.Outcome
	if useWeapon {
		out = r.Engine.FightMonsterWithWeapon(mo.Monster)
	} else {
		out = r.Engine.FightMonsterBarehanded(mo.Monster)
	}
	if !out.Success {
		return fmt.Errorf("fight %s: %s", mo.Monster.Name, out.Message)
	}

	r.Log.Event(gamelog.EventCombat, logrus.Fields{
		"monster": mo.Monster.Name,
		"value":   mo.Monster.Value,
		"weapon":  useWeapon,
		"damage":  out.DamageTaken,
		"fatal":   out.IsFatal(),
		"health":  r.Engine.State.Player.Health,
	})
	return nil
}

// roomSlot maps a card instance back to its slot in the room.
func roomSlot(room *engine.Room, card engine.Card) (int, error) {
	for i, c := range room.Cards() {
		if c.Same(card) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("card %s is not in the current room", card.Name)
}
