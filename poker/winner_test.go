package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluatedPlayer(t *testing.T, name string, short ...string) *Player {
	t.Helper()
	hand := &Hand{Cards: mustCards(t, short...)}
	require.NoError(t, EvaluateHand(hand))
	return &Player{Name: name, Hand: hand}
}

func TestCompareHighCards(t *testing.T) {
	assert.Equal(t, 0, CompareHighCards([]CardValue{Ace, King}, []CardValue{Ace, King}))
	assert.Equal(t, 1, CompareHighCards([]CardValue{Ace, King}, []CardValue{Ace, Queen}))
	assert.Equal(t, -1, CompareHighCards([]CardValue{King, Ace}, []CardValue{Ace, Two}))
	assert.Equal(t, 1, CompareHighCards([]CardValue{Ace, King}, []CardValue{Ace}))
	assert.Equal(t, -1, CompareHighCards(nil, []CardValue{Two}))
	assert.Equal(t, 0, CompareHighCards(nil, nil))
}

func TestResolveWinnersRespectsRankOrder(t *testing.T) {
	hands := [][]string{
		{"Ac", "2d", "Jh", "8s", "Tc"}, // None
		{"Ac", "Ad", "Jh", "8s", "Tc"}, // Pair
		{"Ac", "Ad", "Jh", "Js", "Tc"}, // TwoPair
		{"Ac", "Ad", "Ah", "Js", "Tc"}, // ThreeOfAKind
		{"5c", "6d", "7h", "8s", "9c"}, // Straight
		{"Ac", "Jc", "4c", "Kc", "Qc"}, // Flush
		{"Ac", "Ad", "Ah", "Js", "Jc"}, // FullHouse
		{"Ac", "Ad", "Ah", "As", "Tc"}, // FourOfAKind
		{"Ac", "Kc", "Qc", "Jc", "Tc"}, // StraightFlush
	}
	for lo := range hands {
		for hi := lo + 1; hi < len(hands); hi++ {
			weak := evaluatedPlayer(t, "weak", hands[lo]...)
			strong := evaluatedPlayer(t, "strong", hands[hi]...)
			require.Greater(t, strong.Hand.Rank, weak.Hand.Rank)

			ResolveWinners([]*Player{weak, strong})
			assert.True(t, strong.IsWinner(), "%s should beat %s", strong.Hand.Rank, weak.Hand.Rank)
			assert.False(t, weak.IsWinner(), "%s should lose to %s", weak.Hand.Rank, strong.Hand.Rank)

			ResolveWinners([]*Player{strong, weak})
			assert.True(t, strong.IsWinner())
			assert.False(t, weak.IsWinner())
		}
	}
}

func TestResolveWinnersBreaksTiesOnHighCards(t *testing.T) {
	alice := evaluatedPlayer(t, "alice", "Kc", "Kd", "2h", "3s", "4c")
	bob := evaluatedPlayer(t, "bob", "Ah", "As", "2c", "3d", "5h")
	carol := evaluatedPlayer(t, "carol", "Qc", "Qd", "Jh", "Ts", "9c")

	players := ResolveWinners([]*Player{alice, bob, carol})
	require.Len(t, players, 3)
	assert.Equal(t, []*Player{bob}, Winners(players))
}

func TestResolveWinnersSplitsPot(t *testing.T) {
	alice := evaluatedPlayer(t, "alice", "Ac", "Kc", "9c", "7c", "3c")
	bob := evaluatedPlayer(t, "bob", "Ad", "Kd", "9d", "7d", "3d")
	carol := evaluatedPlayer(t, "carol", "Ah", "Kh", "9h", "7h", "2h")

	ResolveWinners([]*Player{alice, bob, carol})
	assert.True(t, alice.IsWinner())
	assert.True(t, bob.IsWinner())
	assert.False(t, carol.IsWinner())
}

// Pair high cards carry only the pair, so kickers never split two equal pairs.
func TestResolveWinnersIgnoresKickersOutsideHighCards(t *testing.T) {
	alice := evaluatedPlayer(t, "alice", "9c", "9d", "Ah", "Ks", "Qc")
	bob := evaluatedPlayer(t, "bob", "9h", "9s", "2c", "3d", "4h")

	ResolveWinners([]*Player{alice, bob})
	assert.True(t, alice.IsWinner())
	assert.True(t, bob.IsWinner())
}

func TestResolveWinnersFullHouseComparesPairFirst(t *testing.T) {
	alice := evaluatedPlayer(t, "alice", "Kc", "Kd", "2h", "2s", "2c")
	bob := evaluatedPlayer(t, "bob", "Qh", "Qs", "Ac", "Ad", "Ah")

	ResolveWinners([]*Player{alice, bob})
	assert.True(t, alice.IsWinner())
	assert.False(t, bob.IsWinner())
}

func TestResolveWinnersEdgeCases(t *testing.T) {
	assert.Empty(t, ResolveWinners(nil))
	assert.NotNil(t, ResolveWinners(nil))

	solo := evaluatedPlayer(t, "solo", "Ac", "2d", "Jh", "8s", "Tc")
	ResolveWinners([]*Player{solo})
	assert.True(t, solo.IsWinner())

	undealt := &Player{Name: "undealt"}
	ResolveWinners([]*Player{undealt, solo})
	assert.False(t, undealt.IsWinner())
	assert.True(t, solo.IsWinner())
}

func TestResolveWinnersClearsStaleFlags(t *testing.T) {
	weak := evaluatedPlayer(t, "weak", "Ac", "2d", "Jh", "8s", "Tc")
	weak.Hand.IsWinner = true
	strong := evaluatedPlayer(t, "strong", "Ac", "Ad", "Jh", "8s", "Tc")

	ResolveWinners([]*Player{weak, strong})
	assert.False(t, weak.IsWinner())
	assert.True(t, strong.IsWinner())
}

func TestCompareHands(t *testing.T) {
	pair := evaluatedPlayer(t, "a", "Ac", "Ad", "Jh", "8s", "Tc").Hand
	trips := evaluatedPlayer(t, "b", "2c", "2d", "2h", "8s", "Tc").Hand
	assert.Equal(t, 1, CompareHands(trips, pair))
	assert.Equal(t, -1, CompareHands(pair, trips))
	assert.Equal(t, 0, CompareHands(pair, pair))
}
