package game

import "github.com/lox/spanish21/internal/deck"

// MatchCount tallies how many of a player's cards share a designated
// dealer card's rank, split by whether the suit also matches.
type MatchCount struct {
	Suited    int
	Nonsuited int
}

// EvaluateMatch counts rank matches between the player's cards and one
// dealer card (the upcard for the top bet, the hole card for the
// bottom bet).
func EvaluateMatch(cards []deck.Card, dealerCard deck.Card) MatchCount {
	var m MatchCount
	for _, c := range cards {
		if c.Rank != dealerCard.Rank {
			continue
		}
		if c.Suit == dealerCard.Suit {
			m.Suited++
		} else {
			m.Nonsuited++
		}
	}
	return m
}

// MatchOutcome is the paying category of a match side bet. Categories
// are mutually exclusive; classification checks the highest-paying
// combination first.
type MatchOutcome int

const (
	MatchNone MatchOutcome = iota
	OneNonsuited
	TwoNonsuited
	OneSuited
	OneSuitedOneNonsuited
	TwoSuited
)

// Classify maps a match count to its payout category.
func (m MatchCount) Classify() MatchOutcome {
	switch {
	case m.Suited == 2:
		return TwoSuited
	case m.Suited == 1 && m.Nonsuited == 1:
		return OneSuitedOneNonsuited
	case m.Suited == 1:
		return OneSuited
	case m.Nonsuited == 2:
		return TwoNonsuited
	case m.Nonsuited == 1:
		return OneNonsuited
	default:
		return MatchNone
	}
}

// Payout returns the payout multiplier for the outcome. The bet
// returns multiplier x stake in total; zero means the stake is lost.
func (o MatchOutcome) Payout() float64 {
	switch o {
	case TwoSuited:
		return 24
	case OneSuitedOneNonsuited:
		return 15
	case OneSuited:
		return 12
	case TwoNonsuited:
		return 6
	case OneNonsuited:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of a match outcome
func (o MatchOutcome) String() string {
	switch o {
	case TwoSuited:
		return "2 suited"
	case OneSuitedOneNonsuited:
		return "1 suited + 1 non-suited"
	case OneSuited:
		return "1 suited"
	case TwoNonsuited:
		return "2 non-suited"
	case OneNonsuited:
		return "1 non-suited"
	default:
		return "no match"
	}
}
