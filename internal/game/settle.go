package game

import (
	"time"

	"github.com/lonng/riichi/internal/async"
	"github.com/lonng/riichi/internal/game/mahjong"
)

// RoundResult is the settlement of one hand.
type RoundResult struct {
	GameID      string          `json:"game_id"`
	Round       int             `json:"round"`
	RoundWind   mahjong.Wind    `json:"round_wind"`
	Dealer      int             `json:"dealer"`
	Honba       int             `json:"honba"`
	Winner      int             `json:"winner"` // -1 on a draw
	Loser       int             `json:"loser"`  // -1 on tsumo or draw
	Drawn       bool            `json:"drawn"`
	DealerKeeps bool            `json:"dealer_keeps"`
	Tenpai      [numSeats]bool  `json:"tenpai"`
	Nagashi     []int           `json:"nagashi,omitempty"`
	WinningTile *mahjong.Tile   `json:"winning_tile,omitempty"`
	Hand        mahjong.Tiles   `json:"hand,omitempty"`
	Melds       []mahjong.Meld  `json:"melds,omitempty"`
	Result      *mahjong.Result `json:"result,omitempty"`
	Changes     [numSeats]int   `json:"changes"`
	Scores      [numSeats]int   `json:"scores"`
	BeginAt     int64           `json:"begin_at"`
	EndAt       int64           `json:"end_at"`
}

// Recorder persists settled hands.
type Recorder interface {
	Record(r *RoundResult) error
}

func (g *Game) newResult() *RoundResult {
	return &RoundResult{
		GameID:    g.id,
		Round:     g.round,
		RoundWind: g.roundWind,
		Dealer:    g.dealer,
		Honba:     g.honba,
		Winner:    noSeat,
		Loser:     noSeat,
		BeginAt:   g.beginAt,
		EndAt:     time.Now().Unix(),
	}
}

// payTsumo splits score between the other seats, the dealer paying double.
func (g *Game) payTsumo(changes *[numSeats]int, winner int, score mahjong.HanFuScore) {
	dealerPay, otherPay := score.TsumoScore()
	for seat := range g.players {
		if seat == winner {
			continue
		}
		pay := otherPay
		if seat == g.dealer {
			pay = dealerPay
		}
		changes[seat] -= pay
		changes[winner] += pay
	}
}

func (g *Game) settleWin(p *Player, loser int, tile mahjong.Tile, res *mahjong.Result) *RoundResult {
	r := g.newResult()
	r.Winner = p.seat
	r.Loser = loser
	r.DealerKeeps = p.seat == g.dealer
	r.WinningTile = &tile
	r.Hand = p.hand.Clone()
	r.Melds = append([]mahjong.Meld(nil), p.melds...)
	r.Result = res

	if loser == noSeat {
		g.payTsumo(&r.Changes, p.seat, res.Score)
	} else {
		ron := res.Score.RonScore()
		r.Changes[loser] -= ron
		r.Changes[p.seat] += ron
	}
	r.Changes[p.seat] += g.deposits * riichiDeposit
	g.deposits = 0

	p.logger.Infof("Won %d points: %s", res.Points, res.WinType)
	g.finish(r)
	return r
}

func (g *Game) settleDraw() *RoundResult {
	r := g.newResult()
	r.Drawn = true

	for _, p := range g.players {
		r.Tenpai[p.seat] = len(p.waits()) > 0
		if p.nagashi() {
			r.Nagashi = append(r.Nagashi, p.seat)
		}
	}
	r.DealerKeeps = r.Tenpai[g.dealer]

	if len(r.Nagashi) > 0 {
		for _, seat := range r.Nagashi {
			g.payTsumo(&r.Changes, seat, mahjong.HanFuScore{
				Han:        5,
				BonusCount: g.honba,
				IsDealer:   seat == g.dealer,
			})
		}
	} else {
		tenpai := 0
		for _, ok := range r.Tenpai {
			if ok {
				tenpai++
			}
		}
		if tenpai > 0 && tenpai < numSeats {
			gain, loss := notenPenalty/tenpai, notenPenalty/(numSeats-tenpai)
			for seat, ok := range r.Tenpai {
				if ok {
					r.Changes[seat] += gain
				} else {
					r.Changes[seat] -= loss
				}
			}
		}
	}

	g.logger.Infof("Exhaustive draw, tenpai=%v nagashi=%v", r.Tenpai, r.Nagashi)
	g.finish(r)
	return r
}

func (g *Game) finish(r *RoundResult) {
	for seat, p := range g.players {
		p.score += r.Changes[seat]
		r.Scores[seat] = p.score
	}
	g.status = StatusFinished
	g.discard = nil
	g.last = r

	if rec := g.recorder; rec != nil {
		async.Run(func() {
			if err := rec.Record(r); err != nil {
				g.logger.Errorf("Record round %d failed: %v", r.Round, err)
			}
		})
	}
}
