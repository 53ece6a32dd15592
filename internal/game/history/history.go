// Package history persists settled hands and summarizes them per seat.
package history

import (
	"encoding/json"
	"strings"

	"github.com/lonng/riichi/db"
	"github.com/lonng/riichi/db/model"
	"github.com/lonng/riichi/internal/game"
)

// Recorder writes every settled hand to the history table and keeps the
// game row current.
type Recorder struct{}

func (Recorder) Record(r *game.RoundResult) error {
	h, err := FromResult(r)
	if err != nil {
		return err
	}
	if err := db.InsertHistory(h); err != nil {
		return err
	}

	return db.SaveGame(&model.Game{
		Uuid:      r.GameID,
		Round:     r.Round,
		RoundWind: int(r.RoundWind),
		Dealer:    r.Dealer,
		Honba:     r.Honba,
		Score0:    r.Scores[0],
		Score1:    r.Scores[1],
		Score2:    r.Scores[2],
		Score3:    r.Scores[3],
		UpdatedAt: r.EndAt,
	})
}

// FromResult flattens a settlement into a history row.
func FromResult(r *game.RoundResult) (*model.History, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	h := &model.History{
		GameUuid:     r.GameID,
		Round:        r.Round,
		RoundWind:    int(r.RoundWind),
		Dealer:       r.Dealer,
		Honba:        r.Honba,
		Winner:       r.Winner,
		Loser:        r.Loser,
		BeginAt:      r.BeginAt,
		EndAt:        r.EndAt,
		ScoreChange0: r.Changes[0],
		ScoreChange1: r.Changes[1],
		ScoreChange2: r.Changes[2],
		ScoreChange3: r.Changes[3],
		Snapshot:     string(data),
	}
	if res := r.Result; res != nil {
		h.Han = res.Score.Han
		h.Fu = res.Score.Fu
		h.Points = res.Points
		h.Yaku = strings.Join(res.WinType.Names(), ",")
	}
	return h, nil
}

// Record counts what one seat did over a game.
type Record struct {
	Tsumo      int `json:"tsumo"`
	Ron        int `json:"ron"`
	DealIn     int `json:"deal_in"`
	Draws      int `json:"draws"`
	TotalScore int `json:"total_score"`
}

// Summarize folds the hands of a game into one record per seat.
func Summarize(hs []model.History) [4]Record {
	var ret [4]Record
	for _, h := range hs {
		changes := [4]int{h.ScoreChange0, h.ScoreChange1, h.ScoreChange2, h.ScoreChange3}
		for seat, c := range changes {
			ret[seat].TotalScore += c
		}

		switch {
		case h.Winner < 0:
			for seat := range ret {
				ret[seat].Draws++
			}
		case h.Loser < 0:
			ret[h.Winner].Tsumo++
		default:
			ret[h.Winner].Ron++
			ret[h.Loser].DealIn++
		}
	}
	return ret
}
