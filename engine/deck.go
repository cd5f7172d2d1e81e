package engine

import "math/rand"

// Deck is the dungeon draw pile: an ordered sequence of card
// instances, front = next drawn, back = where avoided rooms return.
//
// The deck owns its own rand.Rand built from the supplied seed, so the
// shuffle never touches the global source and two decks built from the
// same seed and definitions produce byte-identical orders.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck expands every definition into Count card instances and
// shuffles them. The seed fully determines the resulting order;
// callers wanting a non-reproducible game supply a random seed.
func NewDeck(defs []Definition, seed int64) *Deck {
	d := &Deck{rng: rand.New(rand.NewSource(seed))}
	for _, def := range defs {
		for i := 0; i < def.Count; i++ {
			d.cards = append(d.cards, NewCard(def))
		}
	}
	d.Shuffle()
	return d
}

// Shuffle permutes the remaining cards using the deck's own stream.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. The second return is false
// when the deck is empty; an empty deck is not an error.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// DrawMultiple draws up to n cards, stopping early if the deck runs
// out. The returned slice may be shorter than n.
func (d *Deck) DrawMultiple(n int) []Card {
	var drawn []Card
	for i := 0; i < n; i++ {
		c, ok := d.Draw()
		if !ok {
			break
		}
		drawn = append(drawn, c)
	}
	return drawn
}

// AddToBottom appends cards to the back of the deck in the given
// order. Used when a room is avoided.
func (d *Deck) AddToBottom(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Peek returns a copy of the first n cards without drawing them.
func (d *Deck) Peek(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	return out
}

// Cards returns a copy of all remaining cards in draw order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int { return len(d.cards) }

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool { return len(d.cards) == 0 }
