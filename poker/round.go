package poker

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Round is a single deal for a table of players. It lives for one request.
type Round struct {
	ID      uuid.UUID `json:"id"`
	Seed    uint64    `json:"seed"`
	Players []*Player `json:"players"`
}

type roundConfig struct {
	seed       uint64
	seeded     bool
	maxPlayers int
}

type RoundOption func(*roundConfig)

// WithSeed makes the shuffle reproducible.
func WithSeed(seed uint64) RoundOption {
	return func(c *roundConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithMaxPlayers lowers the table limit. Values outside 1..MaxPlayers are
// ignored.
func WithMaxPlayers(n int) RoundOption {
	return func(c *roundConfig) {
		if n > 0 && n <= MaxPlayers {
			c.maxPlayers = n
		}
	}
}

// NewRound seats the named players, deals, evaluates and resolves the
// winners. Any failure aborts the whole round.
func NewRound(names []string, opts ...RoundOption) (*Round, error) {
	cfg := roundConfig{maxPlayers: MaxPlayers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = NewSeed()
	}

	if len(names) == 0 {
		return nil, ErrEmptyPlayerList
	}
	if len(names) > cfg.maxPlayers {
		return nil, fmt.Errorf("%w: %d players requested, at most %d can be dealt", ErrInsufficientDeck, len(names), cfg.maxPlayers)
	}

	players := make([]*Player, 0, len(names))
	for i, name := range names {
		p, err := NewPlayer(name)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}
		players = append(players, p)
	}

	round := &Round{
		ID:   uuid.New(),
		Seed: cfg.seed,
	}
	dealt, err := NewDealer(NewRand(cfg.seed)).Deal(players)
	if err != nil {
		return nil, fmt.Errorf("round %s: %w", round.ID, err)
	}
	round.Players = dealt

	logrus.WithFields(logrus.Fields{
		"round":   round.ID,
		"seed":    round.Seed,
		"players": len(round.Players),
		"winners": round.WinnerNames(),
	}).Debug("round resolved")

	return round, nil
}

func (r *Round) Winners() []*Player {
	return Winners(r.Players)
}

func (r *Round) WinnerNames() []string {
	winners := r.Winners()
	names := make([]string, len(winners))
	for i, p := range winners {
		names[i] = p.Name
	}
	return names
}
