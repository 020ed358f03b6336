package game

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "player_win"
	case ResultDealerWin:
		return "dealer_win"
	case ResultDraw:
		return "draw"
	default:
		return "no_result"
	}
}

// DetermineResult compares the two hands. It may be called at any point of
// the round; callers decide whether the answer is meaningful yet.
func DetermineResult(s State) Result {
	playerBJ := IsBlackjack(s.PlayerHand)
	dealerBJ := IsBlackjack(s.DealerHand)

	switch {
	case playerBJ && dealerBJ:
		return ResultDraw
	case playerBJ:
		return ResultPlayerWin
	case dealerBJ:
		return ResultDealerWin
	}

	playerScore := CalculateScore(s.PlayerHand)
	dealerScore := CalculateScore(s.DealerHand)

	// player bust is checked before dealer bust, equal scores before either
	switch {
	case playerScore == dealerScore:
		return ResultDraw
	case playerScore > 21:
		return ResultDealerWin
	case dealerScore > 21:
		return ResultPlayerWin
	case dealerScore > playerScore:
		return ResultDealerWin
	case playerScore > dealerScore:
		return ResultPlayerWin
	}

	return ResultNone
}
