package poker

import (
	"fmt"
	"strings"
)

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "INVALID"
	}
}

func (s Suit) Unicode() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

func (s Suit) letter() byte {
	if !s.valid() {
		return '?'
	}
	return "cdhs"[s]
}

func (s Suit) valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	for _, candidate := range suits {
		if strings.EqualFold(candidate.String(), string(b)) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", b)
}

// CardValue is the rank of a single card. Ace is always high.
type CardValue int

const (
	Two CardValue = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var cardValues = []CardValue{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (v CardValue) String() string {
	switch v {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "INVALID"
	}
}

// Symbol is the single character used in short card notation.
func (v CardValue) Symbol() string {
	switch v {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(v))
	}
}

func (v CardValue) valid() bool {
	return v >= Two && v <= Ace
}

func (v CardValue) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, fmt.Errorf("invalid card value %d", int(v))
	}
	return []byte(v.String()), nil
}

func (v *CardValue) UnmarshalText(b []byte) error {
	for _, candidate := range cardValues {
		if strings.EqualFold(candidate.String(), string(b)) {
			*v = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown card value %q", b)
}

type Card struct {
	Suit  Suit      `json:"suit"`
	Value CardValue `json:"value"`
}

func NewCard(suit Suit, value CardValue) (Card, error) {
	c := Card{Suit: suit, Value: value}
	if err := c.validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (c Card) validate() error {
	if !c.Suit.valid() {
		return &InvalidCardError{Card: c, Reason: fmt.Sprintf("suit %d out of range", int(c.Suit))}
	}
	if !c.Value.valid() {
		return &InvalidCardError{Card: c, Reason: fmt.Sprintf("value %d out of range", int(c.Value))}
	}
	return nil
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s %s", c.Value, c.Suit, c.Suit.Unicode())
}

// Short renders the card in two or three character notation, e.g. "As", "Td".
func (c Card) Short() string {
	return c.Value.Symbol() + string(c.Suit.letter())
}

// ParseCard reads short notation: a value symbol (2-9, T or 10, J, Q, K, A)
// followed by a suit letter (c, d, h, s). Matching is case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q is not in short notation", ErrInvalidCard, s)
	}
	valuePart, suitPart := strings.ToUpper(s[:len(s)-1]), strings.ToLower(s[len(s)-1:])

	var value CardValue
	switch valuePart {
	case "T", "10":
		value = Ten
	case "J":
		value = Jack
	case "Q":
		value = Queen
	case "K":
		value = King
	case "A":
		value = Ace
	default:
		if len(valuePart) != 1 || valuePart[0] < '2' || valuePart[0] > '9' {
			return Card{}, fmt.Errorf("%w: unknown value %q in %q", ErrInvalidCard, valuePart, s)
		}
		value = CardValue(valuePart[0] - '0')
	}

	idx := strings.Index("cdhs", suitPart)
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit %q in %q", ErrInvalidCard, suitPart, s)
	}
	return Card{Suit: Suit(idx), Value: value}, nil
}

func ParseCards(ss []string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
