package poker

// CompareHighCards compares two tie-break keys element by element, highest
// first. A key that runs out first while equal so far ranks lower.
// It returns -1, 0 or +1.
func CompareHighCards(a, b []CardValue) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return 0
}

// CompareHands orders two evaluated hands by rank, then by high cards.
func CompareHands(a, b *Hand) int {
	switch {
	case a.Rank > b.Rank:
		return 1
	case a.Rank < b.Rank:
		return -1
	}
	return CompareHighCards(a.HighCards, b.HighCards)
}

// ResolveWinners flags every player holding the best hand. Several players
// are flagged when their hands tie on both rank and high cards. Players
// without a hand are never contenders.
func ResolveWinners(players []*Player) []*Player {
	if len(players) == 0 {
		return []*Player{}
	}

	var contenders []*Player
	for _, p := range players {
		if p == nil || p.Hand == nil {
			continue
		}
		p.Hand.IsWinner = false
		switch {
		case len(contenders) == 0:
			contenders = append(contenders, p)
		case p.Hand.Rank > contenders[0].Hand.Rank:
			contenders = []*Player{p}
		case p.Hand.Rank == contenders[0].Hand.Rank:
			contenders = append(contenders, p)
		}
	}
	if len(contenders) == 0 {
		return players
	}

	best := contenders[0]
	for _, p := range contenders[1:] {
		if CompareHighCards(p.Hand.HighCards, best.Hand.HighCards) > 0 {
			best = p
		}
	}
	for _, p := range contenders {
		if CompareHighCards(p.Hand.HighCards, best.Hand.HighCards) == 0 {
			p.Hand.IsWinner = true
		}
	}
	return players
}

func Winners(players []*Player) []*Player {
	var winners []*Player
	for _, p := range players {
		if p != nil && p.IsWinner() {
			winners = append(winners, p)
		}
	}
	return winners
}
