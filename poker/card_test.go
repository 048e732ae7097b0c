package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"As", Card{Suit: Spades, Value: Ace}},
		{"td", Card{Suit: Diamonds, Value: Ten}},
		{"10h", Card{Suit: Hearts, Value: Ten}},
		{"2C", Card{Suit: Clubs, Value: Two}},
		{" Kh ", Card{Suit: Hearts, Value: King}},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "A", "1s", "Ax", "11h", "Zs", "Asd"} {
		_, err := ParseCard(bad)
		assert.ErrorIs(t, err, ErrInvalidCard, bad)
	}
}

func TestCardShortRoundTrips(t *testing.T) {
	for _, c := range newOrderedDeck() {
		parsed, err := ParseCard(c.Short())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestEnumsEncodeAsNames(t *testing.T) {
	hand := Hand{
		Cards:     []Card{{Suit: Clubs, Value: Ace}},
		Rank:      FullHouse,
		HighCards: []CardValue{Jack},
	}
	b, err := json.Marshal(hand)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"cards": [{"suit": "Clubs", "value": "Ace"}],
		"handValue": "FullHouse",
		"highCards": ["Jack"],
		"isWinner": false
	}`, string(b))

	var decoded Hand
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, hand, decoded)
}

func TestNewCardValidates(t *testing.T) {
	_, err := NewCard(Hearts, Queen)
	assert.NoError(t, err)
	_, err = NewCard(Suit(4), Queen)
	assert.ErrorIs(t, err, ErrInvalidCard)
	_, err = NewCard(Hearts, CardValue(15))
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer("  alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Name)
	assert.False(t, p.IsWinner())

	_, err = NewPlayer(" ")
	assert.ErrorIs(t, err, ErrInvalidPlayerName)
}
