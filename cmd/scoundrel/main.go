// Command scoundrel plays the Scoundrel dungeon crawl in the
// terminal, either interactively or headless with an agent.
package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jeanmidevacc/scoundrel/engine"
	"github.com/jeanmidevacc/scoundrel/engine/agent"
	"github.com/jeanmidevacc/scoundrel/internal/config"
	"github.com/jeanmidevacc/scoundrel/internal/dungeon"
	"github.com/jeanmidevacc/scoundrel/internal/gamelog"
	"github.com/jeanmidevacc/scoundrel/internal/runner"
	"github.com/jeanmidevacc/scoundrel/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible games (0 = random)")
	flag.StringVar(&cfg.DungeonPath, "dungeon", cfg.DungeonPath, "path to custom dungeon YAML")
	flag.StringVar(&cfg.AgentName, "agent", cfg.AgentName, "built-in agent for automated play (first, cautious)")
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run without UI (requires -agent)")
	flag.BoolVar(&cfg.NoTitle, "no-title", cfg.NoTitle, "skip the title screen")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write a JSONL event log to this file")
	flag.BoolVar(&cfg.LogConsole, "log-console", cfg.LogConsole, "echo events to stdout")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	pool, err := loadDungeon(cfg.DungeonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = newSeed()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}

	deck := engine.NewDeck(pool.Cards, seed)
	player := engine.NewPlayer(cfg.StartingHealth)
	eng := engine.NewWithState(engine.NewGameState(player, deck))

	if cfg.AgentName != "" {
		return runAgent(cfg, eng, seed)
	}
	if err := tui.Run(eng, !cfg.NoTitle); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// loadDungeon resolves the card pool and refuses invalid ones.
func loadDungeon(path string) (*dungeon.Dungeon, error) {
	var (
		pool *dungeon.Dungeon
		err  error
	)
	if path != "" {
		pool, err = dungeon.Load(path)
	} else {
		pool, err = dungeon.Default()
	}
	if err != nil {
		return nil, err
	}

	if problems := pool.Validate(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "dungeon: %s\n", p)
		}
		return nil, fmt.Errorf("invalid dungeon configuration")
	}
	return pool, nil
}

func runAgent(cfg *config.Config, eng *engine.Engine, seed int64) int {
	a, err := agent.Lookup(cfg.AgentName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	log, err := gamelog.New(cfg.LogFile, cfg.LogConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer log.Close()

	r := &runner.Runner{Engine: eng, Agent: a, Log: log, Seed: seed}
	result, err := r.Run()
	if err != nil {
		logrus.WithError(err).Error("game run failed")
		return 1
	}

	outcome := "Defeat"
	if result.Victory {
		outcome = "Victory"
	}
	fmt.Printf("Game Over - %s\n", outcome)
	fmt.Printf("Score: %d\n", result.Score)
	fmt.Printf("Final Health: %d\n", result.FinalHealth)
	fmt.Printf("Turns: %d\n", result.Turns)
	return 0
}

// newSeed draws a non-reproducible seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
