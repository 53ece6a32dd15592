package mahjong

import (
	"fmt"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

// Result is the best scoring reading of a winning hand.
type Result struct {
	WinType WinType
	Score   HanFuScore
	Hand    Decomposition
	Dora    int // dora han, ura dora included
	Points  int // collected by the winner, riichi deposits excluded
}

// Desc lists the scored patterns with their han.
func (r *Result) Desc() []string {
	closed := NewScoringCtx(nil, r.Hand.Open).IsClosed

	var desc []string
	for _, y := range r.WinType.Yakuman {
		desc = append(desc, y.String())
	}
	for _, y := range r.WinType.Yaku {
		desc = append(desc, fmt.Sprintf("%s %d", y, y.Han(closed)))
	}
	if r.Dora > 0 {
		desc = append(desc, fmt.Sprintf("dora %d", r.Dora))
	}
	return desc
}

// ScoreHand finds the highest scoring reading of the winning hand in env.
// Ties keep the reading with more patterns, then the earlier one.
func ScoreHand(env *HandEnvironment) (*Result, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	if !env.IsSelfDraw && IsFuriten(env) {
		return nil, errors.Wrapf(errutil.ErrFuriten, "ron on %v", env.LastTile)
	}

	candidates := Decompose(env)
	if len(candidates) == 0 {
		return nil, errors.Wrapf(errutil.ErrIllegalHandShape, "%v + %v open=%v", env.ConcealedTiles(), env.LastTile, env.OpenMelds)
	}

	var best *Result
	for i := range candidates {
		res := evaluate(env, &candidates[i])
		if res == nil {
			continue
		}
		if best == nil || res.Points > best.Points ||
			(res.Points == best.Points && res.WinType.Count() > best.WinType.Count()) {
			best = res
		}
	}

	if best == nil {
		return nil, errors.Wrapf(errutil.ErrNoYaku, "%v + %v", env.ConcealedTiles(), env.LastTile)
	}
	return best, nil
}

func evaluate(env *HandEnvironment, hand *Decomposition) *Result {
	wt := Classify(env, hand)
	if wt.Kind == NoYaku {
		return nil
	}

	score := HanFuScore{BonusCount: env.BonusCount, IsDealer: env.IsDealer()}
	res := &Result{WinType: wt, Hand: *hand}
	if wt.Kind == YakumanWin {
		score.YakumanCount = len(wt.Yakuman)
	} else {
		res.Dora = CountDora(hand.Tiles, env.DoraIndicators)
		if env.IsRiichi || env.IsDoubleRiichi {
			res.Dora += CountDora(hand.Tiles, env.UraDoraIndicators)
		}
		score.Han = wt.Han(env.IsClosed()) + res.Dora
		score.Fu = Fu(env, hand, wt.Has(Pinfu))
	}

	res.Score = score
	res.Points = score.Total(env.IsSelfDraw)
	return res
}

// CountDora counts hand tiles matching the tiles the indicators point at.
func CountDora(hand, indicators Tiles) int {
	n := 0
	for _, ind := range indicators {
		n += hand.Count(ind.Next())
	}
	return n
}

// IsFuriten reports whether a ron is forbidden: the table flagged the
// player, or one of the hand's waits lies in their own discards.
func IsFuriten(env *HandEnvironment) bool {
	if env.IsFuriten {
		return true
	}
	for _, w := range Waits(env.ConcealedTiles(), env.OpenMelds) {
		if env.Discards.Contains(w) {
			return true
		}
	}
	return false
}
