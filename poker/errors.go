package poker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandSize   = errors.New("hand must contain exactly 5 cards")
	ErrInsufficientDeck  = errors.New("not enough cards in the deck for every player")
	ErrEmptyPlayerList   = errors.New("no players to deal to")
	ErrInvalidCard       = errors.New("invalid card")
	ErrInvalidPlayerName = errors.New("invalid player name")
)

type InvalidHandSizeError struct {
	Got int
}

func (e *InvalidHandSizeError) Error() string {
	return fmt.Sprintf("%s, got %d", ErrInvalidHandSize, e.Got)
}

func (e *InvalidHandSizeError) Unwrap() error { return ErrInvalidHandSize }

type InvalidCardError struct {
	Card   Card
	Reason string
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("%s {suit:%d value:%d}: %s", ErrInvalidCard, int(e.Card.Suit), int(e.Card.Value), e.Reason)
}

func (e *InvalidCardError) Unwrap() error { return ErrInvalidCard }
