package poker

import "math/rand/v2"

const (
	DeckSize = 52
	HandSize = 5
	// MaxPlayers is how many full hands a single deck can supply.
	MaxPlayers = DeckSize / HandSize
)

type Deck []Card

// NewRand returns a generator owned by a single round. The same seed
// always produces the same shuffle.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed draws a seed from the runtime's concurrency-safe source.
func NewSeed() uint64 {
	return rand.Uint64()
}

func newOrderedDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, suit := range suits {
		for _, value := range cardValues {
			deck = append(deck, Card{Suit: suit, Value: value})
		}
	}
	return deck
}

// BuildDeck returns all 52 cards in a Fisher-Yates permutation drawn from
// rng. A nil rng gets a freshly seeded generator of its own.
func BuildDeck(rng *rand.Rand) Deck {
	if rng == nil {
		rng = NewRand(NewSeed())
	}
	deck := newOrderedDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Hand returns the five cards dealt to the player at index i.
func (d Deck) Hand(i int) ([]Card, error) {
	start, end := i*HandSize, (i+1)*HandSize
	if i < 0 || end > len(d) {
		return nil, ErrInsufficientDeck
	}
	cards := make([]Card, HandSize)
	copy(cards, d[start:end])
	return cards, nil
}
