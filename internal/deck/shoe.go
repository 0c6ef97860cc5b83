package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a single Spanish 21 deck
// (4 suits x 12 ranks, no tens).
const DeckSize = 48

// reshuffleThreshold is the remaining-card count at or below which the
// shoe is rebuilt and reshuffled before the next deal. This mirrors the
// house procedure being simulated; it is deliberately not scaled with
// the deck count.
const reshuffleThreshold = 50

// Shoe is a shuffled multi-deck supply of cards. It is the sole source
// of randomness for a simulation run and persists across rounds,
// accumulating depletion until the reshuffle threshold is reached.
type Shoe struct {
	numDecks int
	cards    []Card
	rng      *rand.Rand
}

// NewShoe creates a shuffled shoe of numDecks Spanish 21 decks.
// numDecks must be at least 2 so a freshly built shoe always clears
// the reshuffle threshold; otherwise Deal could reshuffle forever.
func NewShoe(rng *rand.Rand, numDecks int) (*Shoe, error) {
	if numDecks*DeckSize <= reshuffleThreshold {
		return nil, fmt.Errorf("shoe needs more than %d cards, got %d decks (%d cards)",
			reshuffleThreshold, numDecks, numDecks*DeckSize)
	}
	s := &Shoe{
		numDecks: numDecks,
		cards:    make([]Card, 0, numDecks*DeckSize),
		rng:      rng,
	}
	s.Reshuffle()
	return s, nil
}

// Reshuffle discards whatever remains and rebuilds the shoe from full
// decks, then shuffles it.
func (s *Shoe) Reshuffle() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for _, rank := range Ranks {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Deal removes and returns the next card. If the shoe has run down to
// the reshuffle threshold it is rebuilt first, so Deal never fails.
func (s *Shoe) Deal() Card {
	if len(s.cards) <= reshuffleThreshold {
		s.Reshuffle()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// CardsRemaining returns the number of cards left before the next
// reshuffle. Informational only.
func (s *Shoe) CardsRemaining() int {
	return len(s.cards)
}

// NumDecks returns the number of decks the shoe was built from.
func (s *Shoe) NumDecks() int {
	return s.numDecks
}
