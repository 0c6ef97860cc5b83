package game

import "github.com/lox/spanish21/internal/deck"

// Action is a basic-strategy decision for a player hand.
type Action int

const (
	Hit Action = iota
	Stand
	Surrender
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Surrender:
		return "surrender"
	default:
		return "?"
	}
}

// StrategyInput carries the context a strategy decision depends on
// beyond the hand itself.
type StrategyInput struct {
	DealerUpcard deck.Card
	// AutoSurrender enables the late-surrender line for hard 13-16
	// against a strong upcard.
	AutoSurrender bool
	// TopMatched reports whether this hand hit a paying top-card match;
	// the surrender line only triggers on matched hands.
	TopMatched bool
}

// surrenderUpcards are the dealer upcard ranks against which a matched
// hard 13-16 surrenders.
var surrenderUpcards = map[deck.Rank]bool{
	deck.Seven: true,
	deck.Eight: true,
	deck.Nine:  true,
	deck.Jack:  true,
	deck.Queen: true,
	deck.King:  true,
	deck.Ace:   true,
}

// BasicStrategy decides the next action for a player hand under fixed
// Spanish 21 basic strategy. It is a pure function: the caller loops,
// drawing one card per Hit, until Stand, Surrender or a bust.
func BasicStrategy(hand *Hand, in StrategyInput) Action {
	playerValue := hand.Value()
	dealerValue := in.DealerUpcard.PointValue()

	// Surrender is only available on the initial two cards, and only
	// when the top-card side bet already paid.
	if in.AutoSurrender && hand.CardCount() == 2 && in.TopMatched {
		if hand.IsHard() && playerValue >= 13 && playerValue <= 16 && surrenderUpcards[in.DealerUpcard.Rank] {
			return Surrender
		}
	}

	if hand.IsSoft() {
		return softStrategy(playerValue, dealerValue)
	}
	return hardStrategy(playerValue, dealerValue)
}

func softStrategy(playerValue, dealerValue int) Action {
	switch {
	case playerValue <= 17:
		return Hit
	case playerValue == 18:
		if dealerValue >= 9 {
			return Hit
		}
		return Stand
	default: // 19+
		return Stand
	}
}

func hardStrategy(playerValue, dealerValue int) Action {
	switch {
	case playerValue <= 11:
		return Hit
	case playerValue == 12:
		if dealerValue >= 4 && dealerValue <= 6 {
			return Stand
		}
		return Hit
	case playerValue <= 16: // 13-16
		if dealerValue <= 6 {
			return Stand
		}
		return Hit
	default: // 17+
		return Stand
	}
}

// DealerShouldHit implements the house drawing rule: hit below 17 and
// hit soft 17, stand otherwise.
func DealerShouldHit(hand *Hand) bool {
	v := hand.Value()
	return v < 17 || (v == 17 && hand.IsSoft())
}
