// Package dungeon loads card pool configurations. A dungeon file
// describes every card that can appear in a game, not the shuffled
// deck itself; the engine expands counts and shuffles at game start.
package dungeon

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jeanmidevacc/scoundrel/engine"
)

//go:embed default_dungeon.yaml
var defaultDungeonYAML []byte

// MinRecommendedCards is the pool size under which Validate warns.
const MinRecommendedCards = 20

type cardEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Value       int    `yaml:"value"`
	Count       int    `yaml:"count"`
	Description string `yaml:"description,omitempty"`
}

type dungeonFile struct {
	Version string      `yaml:"version"`
	Cards   []cardEntry `yaml:"cards"`
}

// Dungeon is a parsed card pool.
type Dungeon struct {
	Version string
	Cards   []engine.Definition
}

// Default returns the embedded standard 44-card dungeon.
func Default() (*Dungeon, error) {
	return parse(defaultDungeonYAML)
}

// Load reads a dungeon from a YAML file.
func Load(path string) (*Dungeon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dungeon config: %w", err)
	}
	d, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

func parse(data []byte) (*Dungeon, error) {
	var file dungeonFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.Version == "" {
		file.Version = "1.0"
	}

	d := &Dungeon{Version: file.Version}
	for _, entry := range file.Cards {
		kind, err := engine.ParseKind(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.ID, err)
		}
		d.Cards = append(d.Cards, engine.Definition{
			ID:          entry.ID,
			Name:        entry.Name,
			Kind:        kind,
			Value:       entry.Value,
			Count:       entry.Count,
			Description: entry.Description,
		})
	}
	return d, nil
}

// TotalCards sums the counts of all definitions.
func (d *Dungeon) TotalCards() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Count
	}
	return total
}

// ByKind returns the definitions of one kind.
func (d *Dungeon) ByKind(kind engine.Kind) []engine.Definition {
	var out []engine.Definition
	for _, c := range d.Cards {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// ByID returns the definition with the given id, if present.
func (d *Dungeon) ByID(id string) (engine.Definition, bool) {
	for _, c := range d.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return engine.Definition{}, false
}

// Validate checks the pool for configuration mistakes and returns one
// message per problem. An empty slice means the pool is usable.
func (d *Dungeon) Validate() []string {
	var problems []string

	seen := map[string]bool{}
	for _, c := range d.Cards {
		if seen[c.ID] {
			problems = append(problems, fmt.Sprintf("duplicate card id %q", c.ID))
		}
		seen[c.ID] = true

		if c.Value <= 0 {
			problems = append(problems, fmt.Sprintf("card %q has non-positive value %d", c.ID, c.Value))
		}
		if c.Count <= 0 {
			problems = append(problems, fmt.Sprintf("card %q has non-positive count %d", c.ID, c.Count))
		}
	}

	if total := d.TotalCards(); total < MinRecommendedCards {
		problems = append(problems, fmt.Sprintf("dungeon has too few cards: %d (minimum %d recommended)", total, MinRecommendedCards))
	}
	return problems
}

func (d *Dungeon) String() string {
	return fmt.Sprintf("Dungeon(definitions=%d, total=%d)", len(d.Cards), d.TotalCards())
}
