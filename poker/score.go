package poker

import (
	holdem "github.com/chehsunliu/poker"
)

// Score rates cards with the lookup-table evaluator from chehsunliu/poker.
// Lower is stronger: 1 is a royal flush, 7462 the worst high card. The
// library counts A-2-3-4-5 as a straight, so the score is informational and
// plays no part in picking winners.
func Score(cards []Card) (int32, string) {
	if len(cards) < HandSize || len(cards) > 7 {
		return 0, ""
	}
	libCards := make([]holdem.Card, len(cards))
	for i, c := range cards {
		libCards[i] = toLibCard(c)
	}
	rank := holdem.Evaluate(libCards)
	return rank, holdem.RankString(rank)
}

// ScoreClass maps a library score onto its class, 1 (straight flush)
// through 9 (high card).
func ScoreClass(score int32) int32 {
	return holdem.RankClass(score)
}

func toLibCard(c Card) holdem.Card {
	return holdem.NewCard(c.Short())
}
