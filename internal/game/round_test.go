package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/spanish21/internal/deck"
	"github.com/lox/spanish21/internal/randutil"
	"github.com/lox/spanish21/internal/statistics"
)

// scriptedShoe deals a fixed sequence of cards, letting round tests
// pin down exact deals.
type scriptedShoe struct {
	cards []deck.Card
}

func (s *scriptedShoe) Deal() deck.Card {
	if len(s.cards) == 0 {
		panic("scripted shoe exhausted")
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c
}

func (s *scriptedShoe) CardsRemaining() int {
	return len(s.cards)
}

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}

// newScriptedEngine builds an engine over a scripted deal sequence.
// Order for one player hand: player card 1, dealer upcard, player
// card 2, dealer hole card, then any hit/draw cards.
func newScriptedEngine(cards ...deck.Card) (*Engine, *statistics.Statistics) {
	stats := statistics.New()
	return NewEngine(&scriptedShoe{cards: cards}, stats, nil), stats
}

func TestPlayRoundRejectsZeroHands(t *testing.T) {
	engine, _ := newScriptedEngine()
	_, err := engine.PlayRound(RoundConfig{NumHands: 0, RegularBet: 10})
	require.Error(t, err)
}

func TestPlayRoundPlayerNaturalWins(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.Ace),   // player
		card(deck.Hearts, deck.King),  // dealer upcard
		card(deck.Spades, deck.Jack),  // player: natural 21
		card(deck.Hearts, deck.Queen), // dealer hole: 20, no blackjack
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)

	// Natural pays 3:2, counted as a win rather than a push.
	assert.Equal(t, 25.0, payout)
	assert.Equal(t, 1, stats.HandsWon)
	assert.Equal(t, 0, stats.HandsPushed)
	assert.Equal(t, 10.0, stats.RegularWagered)
	assert.Equal(t, 25.0, stats.RegularPaid)
}

func TestPlayRoundDealerBlackjackPushesPlayerNatural(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.Ace),  // player
		card(deck.Hearts, deck.Ace),  // dealer upcard
		card(deck.Spades, deck.King), // player: natural
		card(deck.Hearts, deck.King), // dealer hole: blackjack
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)

	// Blackjack against blackjack returns the full bet, not 2.5x.
	assert.Equal(t, 10.0, payout)
	assert.Equal(t, 1, stats.HandsPushed)
	assert.Equal(t, 0, stats.HandsWon)
}

func TestPlayRoundDealerBlackjackBeatsTwenty(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.King),  // player
		card(deck.Hearts, deck.Ace),   // dealer upcard
		card(deck.Spades, deck.Queen), // player: 20
		card(deck.Hearts, deck.King),  // dealer hole: blackjack
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)

	assert.Equal(t, 0.0, payout)
	assert.Equal(t, 1, stats.HandsLost)
	// Dealer blackjack skips all player drawing.
	assert.Equal(t, 0.0, stats.RegularPaid)
}

func TestPlayRoundSurrenderOnMatchedHard16(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.King), // player: matches upcard rank
		card(deck.Hearts, deck.King), // dealer upcard
		card(deck.Spades, deck.Six),  // player: hard 16
		card(deck.Hearts, deck.Nine), // dealer hole: 19
	)

	payout, err := engine.PlayRound(RoundConfig{
		NumHands:      1,
		RegularBet:    10,
		TopBet:        2,
		AutoSurrender: true,
	})
	require.NoError(t, err)

	// Top bet: one nonsuited match pays 3x. Regular: half the bet back.
	assert.Equal(t, 6.0+5.0, payout)
	assert.Equal(t, 1, stats.HandsSurrendered)
	assert.Equal(t, 0, stats.HandsLost)
	assert.Equal(t, 1, stats.TopBetsHit)
	assert.Equal(t, 1, stats.TopMatches.OneNonsuited)
	assert.Equal(t, 2.0, stats.TopWagered)
	assert.Equal(t, 6.0, stats.TopPaid)
	assert.Equal(t, 5.0, stats.RegularPaid)
}

func TestPlayRoundFiveCard21PaysBonus(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.Two),     // player
		card(deck.Hearts, deck.Seven),   // dealer upcard
		card(deck.Spades, deck.Three),   // player: 5
		card(deck.Hearts, deck.King),    // dealer hole: hard 17
		card(deck.Spades, deck.Four),    // hit: 9
		card(deck.Hearts, deck.Five),    // hit: 14
		card(deck.Diamonds, deck.Seven), // hit: 21 with five cards
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)

	assert.Equal(t, 25.0, payout)
	assert.Equal(t, 1, stats.HandsWon)
}

func TestPlayRoundSixCard21PaysTwoToOne(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.Two),    // player
		card(deck.Hearts, deck.Seven),  // dealer upcard
		card(deck.Diamonds, deck.Two),  // player: 4
		card(deck.Hearts, deck.King),   // dealer hole: hard 17
		card(deck.Spades, deck.Three),  // hit: 7
		card(deck.Spades, deck.Four),   // hit: 11
		card(deck.Hearts, deck.Five),   // hit: 16
		card(deck.Diamonds, deck.Five), // hit: 21 with six cards
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)

	assert.Equal(t, 30.0, payout)
	assert.Equal(t, 1, stats.HandsWon)
}

func TestPlayRoundDealerBustPays(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.King),  // player
		card(deck.Hearts, deck.Six),   // dealer upcard
		card(deck.Spades, deck.Queen), // player: 20, stands
		card(deck.Hearts, deck.King),  // dealer hole: 16, must hit
		card(deck.Spades, deck.Nine),  // dealer draws: 25, bust
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)

	assert.Equal(t, 20.0, payout)
	assert.Equal(t, 1, stats.HandsWon)
}

func TestPlayRoundPushOnEqualTotals(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.King), // player
		card(deck.Hearts, deck.King), // dealer upcard
		card(deck.Spades, deck.Nine), // player: 19, stands
		card(deck.Hearts, deck.Nine), // dealer hole: 19, stands
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)

	assert.Equal(t, 10.0, payout)
	assert.Equal(t, 1, stats.HandsPushed)
}

func TestPlayRoundBottomBetMatchesHoleCard(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Hearts, deck.Seven),   // player: matches hole rank
		card(deck.Spades, deck.King),    // dealer upcard
		card(deck.Hearts, deck.King),    // player: 17, stands
		card(deck.Diamonds, deck.Seven), // dealer hole: 17, stands
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10, BottomBet: 2})
	require.NoError(t, err)

	// Bottom: 7♥ against 7♦ is one nonsuited match, 3x the 2 stake.
	// Regular: 17 vs 17 pushes.
	assert.Equal(t, 6.0+10.0, payout)
	assert.Equal(t, 1, stats.BottomBetsHit)
	assert.Equal(t, 1, stats.BottomMatches.OneNonsuited)
	assert.Equal(t, 0, stats.TopBetsHit)
	assert.Equal(t, 2.0, stats.BottomWagered)
	assert.Equal(t, 6.0, stats.BottomPaid)
}

func TestPlayRoundMultipleHands(t *testing.T) {
	engine, stats := newScriptedEngine(
		card(deck.Spades, deck.King),   // hand 1
		card(deck.Diamonds, deck.King), // hand 2
		card(deck.Hearts, deck.Eight),  // dealer upcard
		card(deck.Spades, deck.Queen),  // hand 1: 20
		card(deck.Diamonds, deck.Five), // hand 2: 15, hits vs 8
		card(deck.Hearts, deck.King),   // dealer hole: 18
		card(deck.Diamonds, deck.King), // hand 2 draws: 25, bust
	)

	payout, err := engine.PlayRound(RoundConfig{NumHands: 2, RegularBet: 10})
	require.NoError(t, err)

	// Hand 1 beats the dealer's 18, hand 2 busted.
	assert.Equal(t, 20.0, payout)
	assert.Equal(t, 2, stats.HandsPlayed)
	assert.Equal(t, 1, stats.HandsWon)
	assert.Equal(t, 1, stats.HandsLost)
	assert.Equal(t, 20.0, stats.RegularWagered)
	require.NoError(t, stats.Validate())
}

func TestPlayRoundDealerStandsWhenAllPlayersDone(t *testing.T) {
	engine, _ := newScriptedEngine(
		card(deck.Spades, deck.King),   // player
		card(deck.Hearts, deck.King),   // dealer upcard
		card(deck.Spades, deck.Five),   // player: 15, hits vs 10
		card(deck.Hearts, deck.Six),    // dealer hole: 16 (would have to hit)
		card(deck.Diamonds, deck.King), // player draws: 25, bust
	)

	// The scripted shoe has no cards left for the dealer; the round
	// only completes because the dealer never draws once every player
	// hand has busted.
	payout, err := engine.PlayRound(RoundConfig{NumHands: 1, RegularBet: 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, payout)
}

func TestPlayRoundSeededShoeLongRun(t *testing.T) {
	shoe, err := deck.NewShoe(randutil.New(42), 8)
	require.NoError(t, err)
	stats := statistics.New()
	engine := NewEngine(shoe, stats, nil)

	cfg := RoundConfig{NumHands: 2, RegularBet: 10, TopBet: 2, BottomBet: 2, AutoSurrender: true}
	for i := 0; i < 5000; i++ {
		_, err := engine.PlayRound(cfg)
		require.NoError(t, err)
	}

	assert.Equal(t, 10000, stats.HandsPlayed)
	assert.Equal(t, 10000,
		stats.HandsWon+stats.HandsLost+stats.HandsPushed+stats.HandsSurrendered)
	require.NoError(t, stats.Validate())
	assert.Equal(t, 100000.0, stats.RegularWagered)
	assert.Equal(t, 20000.0, stats.TopWagered)
	assert.Equal(t, 20000.0, stats.BottomWagered)
}
