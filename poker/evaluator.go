package poker

import (
	"slices"
)

// Evaluate classifies exactly five cards into a HandRank and the
// rank-specific tie-break key. Ranks are tested strongest first and the
// first match wins.
func Evaluate(cards []Card) (HandRank, []CardValue, error) {
	if err := validateHand(cards); err != nil {
		return None, nil, err
	}

	ascending := sortedValues(cards)
	descending := slices.Clone(ascending)
	slices.Reverse(descending)

	groups := groupByValue(cards)
	flush := isFlush(cards)
	straight := isStraight(ascending)

	if flush && straight {
		return StraightFlush, descending, nil
	}
	if quads := groups.withCount(4); len(quads) == 1 {
		return FourOfAKind, repeat(quads, 4), nil
	}
	trips, pairs := groups.withCount(3), groups.withCount(2)
	if len(trips) == 1 && len(pairs) == 1 {
		return FullHouse, append(repeat(pairs, 2), repeat(trips, 3)...), nil
	}
	if flush {
		return Flush, descending, nil
	}
	if straight {
		return Straight, descending, nil
	}
	if len(trips) == 1 {
		return ThreeOfAKind, repeat(trips, 3), nil
	}
	if len(pairs) == 2 {
		return TwoPair, repeat(pairs, 2), nil
	}
	if len(pairs) == 1 {
		return Pair, repeat(pairs, 2), nil
	}
	return None, descending, nil
}

// EvaluateHand fills in the rank and high cards of h. On error h is left
// untouched.
func EvaluateHand(h *Hand) error {
	if h == nil {
		return &InvalidHandSizeError{Got: 0}
	}
	rank, highCards, err := Evaluate(h.Cards)
	if err != nil {
		return err
	}
	h.Rank = rank
	h.HighCards = highCards
	h.Score, h.Description = Score(h.Cards)
	return nil
}

func validateHand(cards []Card) error {
	if len(cards) != HandSize {
		return &InvalidHandSizeError{Got: len(cards)}
	}
	seen := make(map[Card]struct{}, HandSize)
	for _, c := range cards {
		if err := c.validate(); err != nil {
			return err
		}
		if _, dup := seen[c]; dup {
			return &InvalidCardError{Card: c, Reason: "duplicate card in hand"}
		}
		seen[c] = struct{}{}
	}
	return nil
}

func sortedValues(cards []Card) []CardValue {
	values := make([]CardValue, len(cards))
	for i, c := range cards {
		values[i] = c.Value
	}
	slices.Sort(values)
	return values
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isStraight expects values sorted ascending. Ace only counts high.
func isStraight(ascending []CardValue) bool {
	for i := 0; i < len(ascending)-1; i++ {
		if ascending[i+1] != ascending[i]+1 {
			return false
		}
	}
	return true
}

type valueGroups map[CardValue]int

func groupByValue(cards []Card) valueGroups {
	groups := make(valueGroups, len(cards))
	for _, c := range cards {
		groups[c.Value]++
	}
	return groups
}

// withCount returns the values seen exactly n times, highest first.
func (g valueGroups) withCount(n int) []CardValue {
	var values []CardValue
	for v, count := range g {
		if count == n {
			values = append(values, v)
		}
	}
	slices.Sort(values)
	slices.Reverse(values)
	return values
}

func repeat(values []CardValue, n int) []CardValue {
	out := make([]CardValue, 0, len(values)*n)
	for _, v := range values {
		for range n {
			out = append(out, v)
		}
	}
	return out
}
