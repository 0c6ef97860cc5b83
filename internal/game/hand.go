package game

import (
	"fmt"
	"strings"

	"github.com/lox/spanish21/internal/deck"
)

// Hand is the accumulating set of cards for one participant, either a
// player seat or the dealer. Hands are created empty at the start of a
// round and discarded when the round settles.
type Hand struct {
	Cards       []deck.Card
	Bet         float64
	Surrendered bool
	Blackjack   bool // natural two-card 21, set during resolution
}

// NewHand creates an empty hand with the given wager.
func NewHand(bet float64) *Hand {
	return &Hand{Bet: bet}
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(card deck.Card) {
	h.Cards = append(h.Cards, card)
}

// Value returns the best total for the hand: the raw point sum with
// aces counted as 11, reduced by 10 per ace while the total busts and
// an 11-ace remains. If every ace is already hard the bust total is
// returned as-is.
func (h *Hand) Value() int {
	total, _ := h.reduced()
	return total
}

// IsHard reports whether no ace is counted as 11 after reduction.
// Hands without aces are always hard.
func (h *Hand) IsHard() bool {
	_, softAces := h.reduced()
	return softAces == 0
}

// IsSoft reports whether an ace is still usable as 11 without busting.
func (h *Hand) IsSoft() bool {
	_, softAces := h.reduced()
	return softAces > 0
}

// IsBust reports whether the hand's best total exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// Is21 reports whether the hand's best total is exactly 21.
func (h *Hand) Is21() bool {
	return h.Value() == 21
}

// IsNatural reports whether the hand is a two-card 21.
func (h *Hand) IsNatural() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// CardCount returns the number of cards in the hand.
func (h *Hand) CardCount() int {
	return len(h.Cards)
}

// reduced returns the best total together with the number of aces
// still counted as 11 after maximal reduction.
func (h *Hand) reduced() (total, softAces int) {
	for _, c := range h.Cards {
		total += c.PointValue()
		if c.IsAce() {
			softAces++
		}
	}
	for total > 21 && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}

// String renders the hand like "A♠ 6♥ (soft 17)".
func (h *Hand) String() string {
	cards := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = c.String()
	}
	kind := ""
	if h.IsSoft() {
		kind = "soft "
	}
	return fmt.Sprintf("%s (%s%d)", strings.Join(cards, " "), kind, h.Value())
}
