package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/riichi/db"
	"github.com/lonng/riichi/db/model"
	"github.com/lonng/riichi/internal/game/history"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/protocol"
)

const (
	format = "01-02 15:04:05"
)

func MakeHistoryService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/history/lite/{game_id}", nex.Handler(historyList)).Methods("GET") // hands of a game, snapshot omitted
	router.Handle("/v1/history/{id}", nex.Handler(historyByID)).Methods("GET")           // one hand with its snapshot
	return router
}

func historyLite(p *model.History) protocol.HistoryLite {
	return protocol.HistoryLite{
		Id:           p.Id,
		GameId:       p.GameUuid,
		Round:        p.Round,
		RoundWind:    p.RoundWind,
		Dealer:       p.Dealer,
		Honba:        p.Honba,
		Winner:       p.Winner,
		Loser:        p.Loser,
		Han:          p.Han,
		Fu:           p.Fu,
		Points:       p.Points,
		Yaku:         p.Yaku,
		BeginAt:      p.BeginAt,
		BeginAtStr:   time.Unix(p.BeginAt, 0).Format(format),
		EndAt:        p.EndAt,
		ScoreChange0: p.ScoreChange0,
		ScoreChange1: p.ScoreChange1,
		ScoreChange2: p.ScoreChange2,
		ScoreChange3: p.ScoreChange3,
	}
}

func HistoryByID(id int64) (*protocol.History, error) {
	p, err := db.QueryHistory(id)
	if err != nil {
		return nil, err
	}
	return &protocol.History{
		HistoryLite: historyLite(p),
		Snapshot:    p.Snapshot,
	}, nil
}

func HistoryLiteList(gameID string) (*protocol.HistoryLiteListResponse, error) {
	ps, total, err := db.QueryHistoriesByGameID(gameID)
	if err != nil {
		return nil, err
	}
	list := make([]protocol.HistoryLite, total)
	for i := range ps {
		list[i] = historyLite(&ps[i])
	}
	return &protocol.HistoryLiteListResponse{
		Data:  list,
		Total: int64(total),
		Stats: history.Summarize(ps),
	}, nil
}

func historyList(r *http.Request) (*protocol.HistoryLiteListResponse, error) {
	id, ok := mux.Vars(r)["game_id"]
	if !ok || id == "" {
		return nil, errutil.ErrInvalidParameter
	}
	return HistoryLiteList(id)
}

func historyByID(r *http.Request) (*protocol.HistoryByIDResponse, error) {
	idStr, ok := mux.Vars(r)["id"]
	if !ok || idStr == "" {
		return nil, errutil.ErrInvalidParameter
	}

	id, err := strconv.ParseInt(idStr, 10, 0)
	if err != nil {
		return nil, errutil.ErrInvalidParameter
	}

	h, err := HistoryByID(id)
	if err != nil {
		return nil, err
	}
	return &protocol.HistoryByIDResponse{Data: h}, nil
}
