package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeckHasEveryCardOnce(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		deck := BuildDeck(NewRand(seed))
		require.Len(t, deck, DeckSize)

		seen := make(map[Card]bool, DeckSize)
		for _, c := range deck {
			require.NoError(t, c.validate())
			assert.False(t, seen[c], "duplicate card %s", c)
			seen[c] = true
		}
		for _, s := range suits {
			for _, v := range cardValues {
				assert.True(t, seen[Card{Suit: s, Value: v}], "missing %s of %s", v, s)
			}
		}
	}
}

func TestBuildDeckIsReproducibleBySeed(t *testing.T) {
	assert.Equal(t, BuildDeck(NewRand(42)), BuildDeck(NewRand(42)))
	assert.NotEqual(t, BuildDeck(NewRand(42)), BuildDeck(NewRand(43)))
	assert.NotEqual(t, newOrderedDeck(), BuildDeck(NewRand(42)))
}

func TestBuildDeckWithoutGenerator(t *testing.T) {
	assert.Len(t, BuildDeck(nil), DeckSize)
}

func TestDeckHand(t *testing.T) {
	deck := newOrderedDeck()

	cards, err := deck.Hand(1)
	require.NoError(t, err)
	assert.Equal(t, []Card(deck[5:10]), cards)

	cards[0] = Card{Suit: Spades, Value: Ace}
	assert.NotEqual(t, cards[0], deck[5], "hand must not alias the deck")

	_, err = deck.Hand(MaxPlayers)
	assert.ErrorIs(t, err, ErrInsufficientDeck)
	_, err = deck.Hand(-1)
	assert.ErrorIs(t, err, ErrInsufficientDeck)
}
