package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/riichi/db"
	"github.com/lonng/riichi/internal/game"
	"github.com/lonng/riichi/internal/game/mahjong"
	"github.com/lonng/riichi/internal/whitelist"
	"github.com/lonng/riichi/pkg/algoutil"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/protocol"
	"github.com/pkg/errors"
)

const (
	defaultCount = 20
	maxCount     = 100
)

var manager *game.Manager

func MakeGameService(m *game.Manager) http.Handler {
	manager = m

	router := mux.NewRouter()
	router.Handle("/v1/game", nex.Handler(createGame)).Methods("POST")             // open a table
	router.Handle("/v1/game", nex.Handler(listGames)).Methods("GET")               // live table ids
	router.Handle("/v1/game/{id}", nex.Handler(gameByID)).Methods("GET")           // table state
	router.Handle("/v1/game/{id}", nex.Handler(removeGame)).Methods("DELETE")      // close a table, whitelisted only
	router.Handle("/v1/game/{id}/action", nex.Handler(gameAction)).Methods("POST") // play a move
	return router
}

func createGame(req *protocol.CreateGameRequest) (*protocol.CommonResponse, error) {
	g, err := manager.Create(req.Seed)
	if err != nil {
		return nil, err
	}
	return &protocol.CommonResponse{Data: g.State()}, nil
}

func listGames(r *http.Request) (*protocol.GameListResponse, error) {
	offset, count := algoutil.QueryRange(r.URL.Query(), defaultCount, maxCount)
	return &protocol.GameListResponse{
		Total: manager.Len(),
		Data:  manager.List(offset, count),
	}, nil
}

func removeGame(r *http.Request) (*protocol.StringResponse, error) {
	if !whitelist.Allow(r) {
		return nil, errors.Wrapf(errutil.ErrPermissionDenied, "remote %s", r.RemoteAddr)
	}

	id := mux.Vars(r)["id"]
	if _, err := manager.Game(id); err != nil {
		return nil, err
	}
	manager.Remove(id)
	logger.Infof("Game removed, ID=%s", id)
	return &protocol.SuccessResponse, nil
}

// gameByID serves a live table, falling back to the stored summary once
// the table is gone from memory.
func gameByID(r *http.Request) (*protocol.CommonResponse, error) {
	id := mux.Vars(r)["id"]
	if id == "" {
		return nil, errutil.ErrInvalidParameter
	}

	if g, err := manager.Game(id); err == nil {
		return &protocol.CommonResponse{Data: g.State()}, nil
	}

	record, err := db.QueryGame(id)
	if err != nil {
		return nil, err
	}
	return &protocol.CommonResponse{Data: record}, nil
}

func gameAction(r *http.Request, req *protocol.GameActionRequest) (*protocol.GameActionResponse, error) {
	g, err := manager.Game(mux.Vars(r)["id"])
	if err != nil {
		return nil, err
	}
	return ApplyAction(g, req)
}

// ApplyAction plays one move and returns the table afterwards.
func ApplyAction(g *game.Game, req *protocol.GameActionRequest) (*protocol.GameActionResponse, error) {
	var (
		resp   = &protocol.GameActionResponse{}
		result *game.RoundResult
		err    error
	)

	tile := func() (mahjong.Tile, error) { return mahjong.ParseTile(req.Tile) }

	switch strings.ToLower(req.Action) {
	case "draw":
		var t mahjong.Tile
		if t, err = g.Draw(req.Seat); err == nil {
			resp.Tile = t.String()
		}

	case "discard", "riichi", "ankan":
		var t mahjong.Tile
		if t, err = tile(); err != nil {
			return nil, err
		}
		switch strings.ToLower(req.Action) {
		case "discard":
			err = g.Discard(req.Seat, t)
		case "riichi":
			err = g.DeclareRiichi(req.Seat, t)
		default:
			err = g.ClosedKan(req.Seat, t)
		}

	case "chi":
		tiles, perr := mahjong.ParseTiles(req.Tiles)
		if perr != nil {
			return nil, perr
		}
		if len(tiles) != 2 {
			return nil, errors.Wrapf(errutil.ErrInvalidParameter, "chi needs two tiles, got %q", req.Tiles)
		}
		err = g.Chi(req.Seat, tiles[0], tiles[1])

	case "pon":
		err = g.Pon(req.Seat)
	case "kan":
		err = g.OpenKan(req.Seat)
	case "tsumo":
		result, err = g.Tsumo(req.Seat)
	case "ron":
		result, err = g.Ron(req.Seat)
	case "draw_game":
		result, err = g.ExhaustiveDraw()
	case "next":
		err = g.NextRound()

	default:
		return nil, errors.Wrapf(errutil.ErrInvalidParameter, "action %q", req.Action)
	}

	if err != nil {
		return nil, err
	}
	if result != nil {
		resp.Result = result
	}
	resp.State = g.State()
	return resp, nil
}
