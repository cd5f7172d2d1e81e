// Package tui renders the interactive terminal game. It is a thin
// front-end: every rule lives in the engine, the model only builds
// menus from the current phase and forwards the chosen action.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanmidevacc/scoundrel/engine"
)

type sessionState int

const (
	stateTitle sessionState = iota
	statePlaying
	stateGameOver
)

// menuItem is one numbered choice. Avoid items return the room to the
// deck; face items resolve one card, fighting monsters with the
// pre-selected method.
type menuItem struct {
	label     string
	avoid     bool
	slot      int
	useWeapon bool
}

type model struct {
	state     sessionState
	engine    *engine.Engine
	textInput textinput.Model
	menu      []menuItem
	messages  []string
	err       string
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	healthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	monsterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	weaponStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#55AAFF"))

	potionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#55FF55"))

	facedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Strikethrough(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// NewModel builds the TUI around an engine. showTitle false skips the
// title screen and drops straight into the first room.
func NewModel(eng *engine.Engine, showTitle bool) model {
	ti := textinput.New()
	ti.Placeholder = "choice"
	ti.Focus()
	ti.CharLimit = 3
	ti.Width = 6

	m := model{state: stateTitle, engine: eng, textInput: ti}
	if !showTitle {
		m.begin()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// begin starts the game and advances to the first decision point.
func (m *model) begin() {
	m.state = statePlaying
	m.engine.StartGame()
	m.advance()
}

// advance draws rooms until the engine needs a decision or the game
// ends, then rebuilds the menu.
func (m *model) advance() {
	s := m.engine.State
	for !m.engine.IsGameOver() &&
		(s.Phase == engine.PhaseDrawRoom || s.Phase == engine.PhaseTurnComplete) {
		out := m.engine.DrawRoom()
		m.push(out.String())
	}
	if m.engine.IsGameOver() {
		m.state = stateGameOver
		m.menu = nil
		return
	}
	m.buildMenu()
}

// buildMenu numbers the legal actions for the current phase, in the
// same order the cards sit in the room.
func (m *model) buildMenu() {
	s := m.engine.State
	m.menu = nil

	if s.Phase == engine.PhaseDecideAvoid && s.CanAvoidRoom() {
		m.menu = append(m.menu, menuItem{label: "Avoid room (return all cards to the deck)", avoid: true})
	}

	room := s.CurrentRoom
	if room == nil {
		return
	}
	for slot, card := range room.Cards() {
		available := false
		for _, a := range room.AvailableCards() {
			if a.Same(card) {
				available = true
				break
			}
		}
		if !available {
			continue
		}

		if card.Kind != engine.KindMonster {
			verb := "Equip"
			if card.Kind == engine.KindPotion {
				verb = "Drink"
			}
			m.menu = append(m.menu, menuItem{
				label: fmt.Sprintf("%s %s (%d)", verb, card.Name, card.Value),
				slot:  slot,
			})
			continue
		}

		m.menu = append(m.menu, menuItem{
			label: fmt.Sprintf("Fight %s (%d) barehanded", card.Name, card.Value),
			slot:  slot,
		})
		if w := s.Player.Weapon; w != nil {
			if ok, _ := w.CanKill(card); ok {
				m.menu = append(m.menu, menuItem{
					label:     fmt.Sprintf("Fight %s (%d) with %s", card.Name, card.Value, w.Card.Name),
					slot:      slot,
					useWeapon: true,
				})
			}
		}
	}
}

// push keeps the last few outcome messages for display.
func (m *model) push(msg string) {
	m.messages = append(m.messages, msg)
	if len(m.messages) > 5 {
		m.messages = m.messages[len(m.messages)-5:]
	}
}

func (m *model) choose(item menuItem) {
	m.err = ""

	if item.avoid {
		out := m.engine.AvoidRoom()
		m.push(out.String())
		m.advance()
		return
	}

	out := m.engine.FaceCard(item.slot)
	if !out.Success {
		m.err = out.Message
		return
	}
	m.push(out.String())

	if mo, ok := out.Detail.(engine.MonsterEncountered); ok {
		var combat engine.Outcome
		if item.useWeapon {
			combat = m.engine.FightMonsterWithWeapon(mo.Monster)
		} else {
			combat = m.engine.FightMonsterBarehanded(mo.Monster)
		}
		m.push(combat.String())
	}

	m.advance()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.state == statePlaying {
				m.engine.Quit()
			}
			return m, tea.Quit

		case tea.KeyEnter:
			switch m.state {
			case stateTitle:
				m.begin()
				return m, nil

			case statePlaying:
				input := strings.TrimSpace(m.textInput.Value())
				m.textInput.Reset()
				if input == "" {
					return m, nil
				}
				if input == "q" || input == "0" {
					m.engine.Quit()
					m.state = stateGameOver
					return m, nil
				}
				n, err := strconv.Atoi(input)
				if err != nil || n < 1 || n > len(m.menu) {
					m.err = fmt.Sprintf("enter a number between 1 and %d, or 0 to quit", len(m.menu))
					return m, nil
				}
				m.choose(m.menu[n-1])
				return m, nil

			case stateGameOver:
				return m, tea.Quit
			}
		}
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	switch m.state {
	case stateTitle:
		return m.viewTitle()
	case statePlaying:
		return m.viewPlaying()
	case stateGameOver:
		return m.viewGameOver()
	}
	return ""
}

func (m model) viewTitle() string {
	title := titleStyle.Render("S C O U N D R E L")
	sub := messageStyle.Render("A solo dungeon crawl with a deck of cards.")
	rules := helpStyle.Render(strings.Join([]string{
		"Each room holds 4 cards. Face 3, carry the last one forward.",
		"Monsters hit for their value. Weapons block, but degrade:",
		"after a kill they only work on equal or weaker monsters.",
		"One potion per turn. Empty the deck to win.",
	}, "\n"))
	return fmt.Sprintf("\n  %s\n\n  %s\n\n%s\n\n  %s\n",
		title, sub, indent(rules, 2), helpStyle.Render("Press Enter to play, Esc to quit."))
}

func (m model) viewPlaying() string {
	var b strings.Builder
	s := m.engine.State

	fmt.Fprintf(&b, "\n  %s   Turn %d   Deck: %d   Discard: %d\n",
		healthStyle.Render(fmt.Sprintf("HP %d/%d", s.Player.Health, s.Player.MaxHealth)),
		s.TurnNumber, s.Deck.Remaining(), len(s.DiscardPile))

	if w := s.Player.Weapon; w != nil {
		fmt.Fprintf(&b, "  Weapon: %s\n", weaponStyle.Render(w.String()))
	} else {
		b.WriteString("  Weapon: none\n")
	}

	if room := s.CurrentRoom; room != nil {
		b.WriteString("\n  Room:\n")
		for _, card := range room.Cards() {
			faced := true
			for _, a := range room.AvailableCards() {
				if a.Same(card) {
					faced = false
					break
				}
			}
			line := fmt.Sprintf("%s (%d)", card.Name, card.Value)
			if faced {
				b.WriteString("    " + facedStyle.Render(line) + "\n")
			} else {
				b.WriteString("    " + cardStyle(card).Render(line) + "\n")
			}
		}
	}

	if len(m.messages) > 0 {
		b.WriteString("\n")
		for _, msg := range m.messages {
			b.WriteString("  " + messageStyle.Render(msg) + "\n")
		}
	}

	b.WriteString("\n")
	for i, item := range m.menu {
		fmt.Fprintf(&b, "  [%d] %s\n", i+1, item.label)
	}
	b.WriteString("  [0] Quit\n")

	if m.err != "" {
		b.WriteString("\n  " + errorStyle.Render(m.err) + "\n")
	}

	b.WriteString("\n  " + m.textInput.View() + "\n")
	return b.String()
}

func (m model) viewGameOver() string {
	s := m.engine.State
	headline := "DEFEAT"
	style := monsterStyle
	if s.Victory {
		headline = "VICTORY"
		style = potionStyle
	}
	return fmt.Sprintf("\n  %s\n\n  Score: %d\n  Final health: %d\n  Turns: %d\n\n  %s\n",
		style.Bold(true).Render(headline), m.engine.Score(), s.Player.Health, s.TurnNumber,
		helpStyle.Render("Press Enter to exit."))
}

func cardStyle(card engine.Card) lipgloss.Style {
	switch card.Kind {
	case engine.KindMonster:
		return monsterStyle
	case engine.KindWeapon:
		return weaponStyle
	default:
		return potionStyle
	}
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

// Run starts the interactive game and blocks until it exits.
func Run(eng *engine.Engine, showTitle bool) error {
	p := tea.NewProgram(NewModel(eng, showTitle), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
