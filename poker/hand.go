package poker

import (
	"fmt"
	"strings"
)

type HandRank int

const (
	None HandRank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var handRanks = []HandRank{None, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}

func (r HandRank) String() string {
	switch r {
	case None:
		return "None"
	case Pair:
		return "Pair"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	default:
		return "INVALID"
	}
}

func (r HandRank) MarshalText() ([]byte, error) {
	if r < None || r > StraightFlush {
		return nil, fmt.Errorf("invalid hand rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *HandRank) UnmarshalText(b []byte) error {
	for _, candidate := range handRanks {
		if strings.EqualFold(candidate.String(), string(b)) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown hand rank %q", b)
}

type Hand struct {
	Cards     []Card      `json:"cards"`
	Rank      HandRank    `json:"handValue"`
	HighCards []CardValue `json:"highCards"`
	IsWinner  bool        `json:"isWinner"`
	// Score is the library strength of the hand, 1 being a royal flush.
	Score       int32  `json:"score,omitempty"`
	Description string `json:"description,omitempty"`
}

type Player struct {
	Name string `json:"name"`
	Hand *Hand  `json:"hand"`
}

func NewPlayer(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidPlayerName)
	}
	return &Player{Name: name}, nil
}

func (p *Player) IsWinner() bool {
	return p.Hand != nil && p.Hand.IsWinner
}
