package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/spanish21/internal/deck"
	"github.com/lox/spanish21/internal/statistics"
)

// RoundConfig holds the per-round betting parameters. The same config
// is normally replayed for every round of a run.
type RoundConfig struct {
	NumHands      int     // simultaneous player hands, >= 1
	RegularBet    float64 // wager per hand
	TopBet        float64 // match-the-upcard side bet, 0 to skip
	BottomBet     float64 // match-the-hole-card side bet, 0 to skip
	AutoSurrender bool    // surrender matched hard 13-16 vs 7-A
}

// CardSource supplies cards for the engine to deal. *deck.Shoe is the
// production implementation; tests substitute scripted sequences.
type CardSource interface {
	Deal() deck.Card
	CardsRemaining() int
}

// Engine plays full Spanish 21 rounds: deal, side bets, basic-strategy
// play, dealer play and settlement. It owns the shoe for the lifetime
// of a run and accumulates into a single Statistics value.
type Engine struct {
	shoe   CardSource
	stats  *statistics.Statistics
	logger *log.Logger
}

// NewEngine creates a round engine over the given shoe and stats
// accumulator. A nil logger disables round tracing.
func NewEngine(shoe CardSource, stats *statistics.Statistics, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{shoe: shoe, stats: stats, logger: logger}
}

// Stats returns the accumulator the engine writes into.
func (e *Engine) Stats() *statistics.Statistics {
	return e.stats
}

// PlayRound simulates one full round of cfg.NumHands player hands
// against a single dealer hand and returns the total amount paid back
// to the player across regular and side bets. The caller is expected
// to have already deducted the round's wagers from its bankroll.
func (e *Engine) PlayRound(cfg RoundConfig) (float64, error) {
	if cfg.NumHands < 1 {
		return 0, fmt.Errorf("round needs at least one hand, got %d", cfg.NumHands)
	}

	hands := make([]*Hand, cfg.NumHands)
	for i := range hands {
		hands[i] = NewHand(cfg.RegularBet)
	}
	dealer := NewHand(0)

	// Deal order matters: first card to every player, then the dealer
	// upcard, then second cards, then the hole card. Side-bet
	// evaluation keys off which physical card landed where.
	for _, h := range hands {
		h.AddCard(e.shoe.Deal())
	}
	dealer.AddCard(e.shoe.Deal())
	for _, h := range hands {
		h.AddCard(e.shoe.Deal())
	}
	dealer.AddCard(e.shoe.Deal())

	upcard, holeCard := dealer.Cards[0], dealer.Cards[1]
	dealerBlackjack := dealer.IsNatural()

	e.logger.Debug("dealt round", "hands", cfg.NumHands, "dealer_upcard", upcard,
		"shoe_remaining", e.shoe.CardsRemaining())

	var totalPayout float64

	// Side bets settle immediately off the initial deal, dealer
	// blackjack or not.
	topMatched := make([]bool, len(hands))
	for i, h := range hands {
		if cfg.TopBet > 0 {
			payout, hit := e.settleSideBet(h, upcard, cfg.TopBet, &e.stats.TopMatches)
			if hit {
				e.stats.TopBetsHit++
				e.stats.TopPaid += payout
				topMatched[i] = true
			}
			e.stats.TopWagered += cfg.TopBet
			totalPayout += payout
		}
		if cfg.BottomBet > 0 {
			payout, hit := e.settleSideBet(h, holeCard, cfg.BottomBet, &e.stats.BottomMatches)
			if hit {
				e.stats.BottomBetsHit++
				e.stats.BottomPaid += payout
			}
			e.stats.BottomWagered += cfg.BottomBet
			totalPayout += payout
		}
	}

	if !dealerBlackjack {
		for i, h := range hands {
			if h.IsNatural() {
				h.Blackjack = true
				continue
			}
			e.playHand(h, StrategyInput{
				DealerUpcard:  upcard,
				AutoSurrender: cfg.AutoSurrender,
				TopMatched:    topMatched[i],
			})
		}

		// The dealer only draws out when a comparison can still matter.
		if anyLive(hands) {
			e.playDealer(dealer)
		}
	}

	for _, h := range hands {
		e.stats.RegularWagered += cfg.RegularBet
		var payout float64
		if dealerBlackjack {
			payout = e.settleAgainstDealerBlackjack(h)
		} else {
			payout = cfg.RegularBet * e.determineWinner(h, dealer)
		}
		totalPayout += payout
		e.stats.RegularPaid += payout
	}
	e.stats.HandsPlayed += cfg.NumHands

	e.logger.Debug("round settled", "dealer", dealer, "payout", totalPayout)
	return totalPayout, nil
}

// settleSideBet evaluates one match side bet for a hand and returns
// the amount paid plus whether the bet hit. Paying outcomes also bump
// the per-category breakdown.
func (e *Engine) settleSideBet(h *Hand, dealerCard deck.Card, bet float64, breakdown *statistics.MatchBreakdown) (float64, bool) {
	outcome := EvaluateMatch(h.Cards, dealerCard).Classify()
	mult := outcome.Payout()
	if mult == 0 {
		return 0, false
	}
	recordMatch(outcome, breakdown)
	e.logger.Debug("side bet hit", "outcome", outcome, "dealer_card", dealerCard, "payout", bet*mult)
	return bet * mult, true
}

func recordMatch(outcome MatchOutcome, breakdown *statistics.MatchBreakdown) {
	switch outcome {
	case TwoSuited:
		breakdown.TwoSuited++
	case OneSuitedOneNonsuited:
		breakdown.OneSuitedOneNonsuited++
	case OneSuited:
		breakdown.OneSuited++
	case TwoNonsuited:
		breakdown.TwoNonsuited++
	case OneNonsuited:
		breakdown.OneNonsuited++
	}
}

// playHand runs the basic-strategy loop for one player hand until it
// stands, surrenders or busts.
func (e *Engine) playHand(h *Hand, in StrategyInput) {
	for {
		switch BasicStrategy(h, in) {
		case Surrender:
			h.Surrendered = true
			return
		case Stand:
			return
		case Hit:
			h.AddCard(e.shoe.Deal())
			if h.IsBust() {
				return
			}
		}
	}
}

// playDealer draws for the dealer: hit below 17 and on soft 17.
func (e *Engine) playDealer(dealer *Hand) {
	for DealerShouldHit(dealer) {
		dealer.AddCard(e.shoe.Deal())
	}
}

func anyLive(hands []*Hand) bool {
	for _, h := range hands {
		if !h.IsBust() && !h.Surrendered {
			return true
		}
	}
	return false
}

// Payout multipliers applied to the regular bet. The returned amount
// includes the original stake, so a push pays 1x and a loss 0x.
const (
	payoutLoss      = 0
	payoutSurrender = 0.5
	payoutPush      = 1
	payoutWin       = 2
	payoutBonus32   = 2.5 // natural 21 and five-card 21 pay 3:2
	payoutBonus21   = 3   // six-card 21 pays 2:1
)

// determineWinner settles one non-dealer-blackjack hand, increments
// exactly one outcome counter and returns the payout multiplier.
// Precedence: surrender, bust, multi-card 21 bonus tiers, dealer bust,
// then total comparison.
func (e *Engine) determineWinner(player, dealer *Hand) float64 {
	switch {
	case player.Surrendered:
		e.stats.HandsSurrendered++
		return payoutSurrender
	case player.IsBust():
		e.stats.HandsLost++
		return payoutLoss
	case player.IsNatural():
		e.stats.HandsWon++
		return payoutBonus32
	case player.Is21() && player.CardCount() == 5:
		e.stats.HandsWon++
		return payoutBonus32
	case player.Is21() && player.CardCount() == 6:
		e.stats.HandsWon++
		return payoutBonus21
	case player.Is21():
		e.stats.HandsWon++
		return payoutWin
	case dealer.IsBust():
		e.stats.HandsWon++
		return payoutWin
	case player.Value() > dealer.Value():
		e.stats.HandsWon++
		return payoutWin
	case player.Value() == dealer.Value():
		e.stats.HandsPushed++
		return payoutPush
	default:
		e.stats.HandsLost++
		return payoutLoss
	}
}

// settleAgainstDealerBlackjack resolves the dealer-blackjack branch:
// a player natural pushes its full bet back, everything else loses
// outright regardless of total or card count.
func (e *Engine) settleAgainstDealerBlackjack(h *Hand) float64 {
	if h.IsNatural() {
		e.stats.HandsPushed++
		return h.Bet * payoutPush
	}
	e.stats.HandsLost++
	return h.Bet * payoutLoss
}
