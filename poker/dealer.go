package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

type Dealer struct {
	rng *rand.Rand
}

// NewDealer returns a dealer that shuffles with rng. The dealer must not be
// shared between goroutines unless rng is.
func NewDealer(rng *rand.Rand) *Dealer {
	if rng == nil {
		rng = NewRand(NewSeed())
	}
	return &Dealer{rng: rng}
}

// Deal shuffles a fresh deck, hands five cards to each player in order,
// evaluates every hand and flags the winners.
func (d *Dealer) Deal(players []*Player) ([]*Player, error) {
	if len(players) == 0 {
		return []*Player{}, nil
	}
	if len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: %d players requested, at most %d can be dealt", ErrInsufficientDeck, len(players), MaxPlayers)
	}
	return Assign(players, BuildDeck(d.rng))
}

// Assign deals from an already ordered deck: player i receives
// deck[i*5:i*5+5]. Hands are attached only once every one of them has been
// evaluated, so on error no player is left holding a partial result.
func Assign(players []*Player, deck Deck) ([]*Player, error) {
	if len(players) == 0 {
		return []*Player{}, nil
	}
	if len(players)*HandSize > len(deck) {
		return nil, fmt.Errorf("%w: %d players need %d cards, deck has %d", ErrInsufficientDeck, len(players), len(players)*HandSize, len(deck))
	}

	hands := make([]*Hand, len(players))
	var errs []error
	for i, p := range players {
		if p == nil {
			errs = append(errs, fmt.Errorf("seat %d: %w: missing player", i, ErrInvalidPlayerName))
			continue
		}
		cards, err := deck.Hand(i)
		if err != nil {
			errs = append(errs, fmt.Errorf("player %s: %w", p.Name, err))
			continue
		}
		hand := &Hand{Cards: cards}
		if err := EvaluateHand(hand); err != nil {
			errs = append(errs, fmt.Errorf("player %s: %w", p.Name, err))
			continue
		}
		hands[i] = hand
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	for i, p := range players {
		p.Hand = hands[i]
	}
	return ResolveWinners(players), nil
}
