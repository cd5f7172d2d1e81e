package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// RoomSize is the number of slots in a room.
	RoomSize = 4
	// CardsFacedPerRoom is how many slots must be resolved before the
	// room is complete; the one leftover carries into the next room.
	CardsFacedPerRoom = 3
)

// Room is the 4-card working set for one turn. Facing resolves a slot;
// after 3 slots are faced the room is complete and the remaining card
// seeds the next room.
//
// Faced-membership is tracked by card UID, so two field-identical
// copies of the same definition in one room are never confused.
type Room struct {
	cards []Card
	faced []Card
}

// NewRoom returns an empty room.
func NewRoom() *Room { return &Room{} }

// AddCard places a card into the next free slot. Returns ErrRoomFull
// once all 4 slots are occupied.
func (r *Room) AddCard(card Card) error {
	if len(r.cards) >= RoomSize {
		return ErrRoomFull
	}
	r.cards = append(r.cards, card)
	return nil
}

// FaceCard resolves the slot at index and returns its card. Fails with
// ErrRoomQuota once 3 cards are faced, ErrBadIndex for an out-of-range
// slot, and ErrAlreadyFaced if that slot was resolved before.
func (r *Room) FaceCard(index int) (Card, error) {
	if len(r.faced) >= CardsFacedPerRoom {
		return Card{}, ErrRoomQuota
	}
	if index < 0 || index >= len(r.cards) {
		return Card{}, fmt.Errorf("%w: %d", ErrBadIndex, index)
	}
	card := r.cards[index]
	if r.isFaced(card.UID) {
		return Card{}, fmt.Errorf("%w: slot %d (%s)", ErrAlreadyFaced, index, card.Name)
	}
	r.faced = append(r.faced, card)
	return card, nil
}

// RemainingCard returns the one slot card not yet faced. Defined only
// once exactly 3 cards are faced; the false return covers the
// defensive case where the sets do not resolve to a single card.
func (r *Room) RemainingCard() (Card, bool) {
	if len(r.faced) != CardsFacedPerRoom {
		return Card{}, false
	}
	for _, c := range r.cards {
		if !r.isFaced(c.UID) {
			return c, true
		}
	}
	return Card{}, false
}

// AvailableCards returns the unfaced slot cards in slot order.
func (r *Room) AvailableCards() []Card {
	var out []Card
	for _, c := range r.cards {
		if !r.isFaced(c.UID) {
			out = append(out, c)
		}
	}
	return out
}

// Cards returns a copy of all slot cards in slot order.
func (r *Room) Cards() []Card {
	out := make([]Card, len(r.cards))
	copy(out, r.cards)
	return out
}

// Faced returns a copy of the faced cards in facing order.
func (r *Room) Faced() []Card {
	out := make([]Card, len(r.faced))
	copy(out, r.faced)
	return out
}

// IsFull reports whether all 4 slots are occupied.
func (r *Room) IsFull() bool { return len(r.cards) == RoomSize }

// IsComplete reports whether 3 cards have been faced.
func (r *Room) IsComplete() bool { return len(r.faced) == CardsFacedPerRoom }

// NumRemaining returns the number of unfaced slot cards.
func (r *Room) NumRemaining() int { return len(r.cards) - len(r.faced) }

func (r *Room) isFaced(uid uuid.UUID) bool {
	for _, f := range r.faced {
		if f.UID == uid {
			return true
		}
	}
	return false
}

func (r *Room) String() string {
	parts := make([]string, 0, len(r.cards))
	for _, c := range r.cards {
		if r.isFaced(c.UID) {
			parts = append(parts, "["+c.Name+"]")
		} else {
			parts = append(parts, c.Name)
		}
	}
	return "Room: " + strings.Join(parts, " ")
}
