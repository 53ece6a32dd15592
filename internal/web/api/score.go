package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/riichi/internal/cache"
	"github.com/lonng/riichi/internal/game/mahjong"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/protocol"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const cacheNamespace = "score"

var logger = log.WithField("component", "api")

func MakeScoreService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/score", nex.Handler(ScoreHand)).Methods("POST") // score a winning hand
	return router
}

var seats = map[string]mahjong.RelativeSeat{
	"":         mahjong.Kamicha,
	"kamicha":  mahjong.Kamicha,
	"left":     mahjong.Kamicha,
	"toimen":   mahjong.Toimen,
	"across":   mahjong.Toimen,
	"shimocha": mahjong.Shimocha,
	"right":    mahjong.Shimocha,
}

func parseSeat(s string) (mahjong.RelativeSeat, error) {
	seat, ok := seats[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.Wrapf(errutil.ErrInvalidParameter, "seat %q", s)
	}
	return seat, nil
}

// parseWind reads the first letter, so "S" and "south" both work. Empty is east.
func parseWind(s string) (mahjong.Wind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return mahjong.East, nil
	}
	w, ok := mahjong.ParseWind(strings.ToUpper(s[:1]))
	if !ok {
		return 0, errors.Wrapf(errutil.ErrInvalidParameter, "wind %q", s)
	}
	return w, nil
}

func sameTiles(tiles mahjong.Tiles, n int) bool {
	if len(tiles) != n {
		return false
	}
	for _, t := range tiles {
		if t != tiles[0] {
			return false
		}
	}
	return true
}

func parseMeld(info protocol.MeldInfo) (mahjong.Meld, error) {
	tiles, err := mahjong.ParseTiles(info.Tiles)
	if err != nil {
		return mahjong.Meld{}, err
	}
	kind := strings.ToLower(strings.TrimSpace(info.Kind))

	var from mahjong.RelativeSeat
	if kind != "ankan" {
		if from, err = parseSeat(info.From); err != nil {
			return mahjong.Meld{}, err
		}
	}

	var m mahjong.Meld
	switch {
	case kind == "chi" && len(tiles) == 3:
		m = mahjong.NewChi(tiles[0], tiles[1], tiles[2]).Claimed(from)
	case kind == "pon" && sameTiles(tiles, 3):
		m = mahjong.NewPon(from, tiles[0])
	case kind == "kan" && sameTiles(tiles, 4):
		m = mahjong.NewOpenKan(from, tiles[0])
	case kind == "ankan" && sameTiles(tiles, 4):
		m = mahjong.NewClosedKan(tiles[0])
	default:
		return mahjong.Meld{}, errors.Wrapf(errutil.ErrIllegalMeld, "%s %s", info.Kind, info.Tiles)
	}
	return m, m.Validate()
}

// BuildEnvironment turns a request into the engine's description of a win.
func BuildEnvironment(req *protocol.ScoreRequest) (*mahjong.HandEnvironment, error) {
	if req == nil {
		return nil, errutil.ErrIllegalParameter
	}

	if req.Deposits < 0 || req.Deposits > mahjong.MaxBonusCount {
		return nil, errors.Wrapf(errutil.ErrInvalidParameter, "deposits %d", req.Deposits)
	}

	env := &mahjong.HandEnvironment{
		IsSelfDraw:      req.Tsumo,
		IsRiichi:        req.Riichi || req.DoubleRiichi,
		IsDoubleRiichi:  req.DoubleRiichi,
		IsIppatsu:       req.Ippatsu,
		IsRinshan:       req.Rinshan,
		IsChankan:       req.Chankan,
		IsLastTile:      req.LastTile,
		IsFirstTurn:     req.FirstTurn,
		IsFuriten:       req.Furiten,
		BonusCount:      req.Honba,
		BonusPoints:     req.Deposits * 1000,
		DealerWinStreak: req.DealerStreak,
	}

	var err error
	if env.RoundWind, err = parseWind(req.RoundWind); err != nil {
		return nil, err
	}
	if env.SeatWind, err = parseWind(req.SeatWind); err != nil {
		return nil, err
	}
	if env.Concealed, err = mahjong.ParseTiles(req.Hand); err != nil {
		return nil, err
	}
	if env.LastTile, err = mahjong.ParseTile(req.WinTile); err != nil {
		return nil, err
	}
	if env.DoraIndicators, err = mahjong.ParseTiles(req.Dora); err != nil {
		return nil, err
	}
	if env.UraDoraIndicators, err = mahjong.ParseTiles(req.UraDora); err != nil {
		return nil, err
	}
	if env.Discards, err = mahjong.ParseTiles(req.Discards); err != nil {
		return nil, err
	}

	if req.Tsumo {
		env.DiscardedFrom = mahjong.Self
	} else if env.DiscardedFrom, err = parseSeat(req.From); err != nil {
		return nil, err
	}

	for _, info := range req.Melds {
		m, err := parseMeld(info)
		if err != nil {
			return nil, err
		}
		env.OpenMelds = append(env.OpenMelds, m)
	}
	return env, nil
}

func describeHand(d *mahjong.Decomposition) string {
	if d.Shape == mahjong.ThirteenOrphans {
		return d.Tiles.String()
	}
	melds := d.Melds()
	parts := make([]string, len(melds))
	for i, m := range melds {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func scoreResponse(env *mahjong.HandEnvironment, res *mahjong.Result) *protocol.ScoreResponse {
	resp := &protocol.ScoreResponse{
		Han:     res.Score.Han,
		Fu:      res.Score.Fu,
		Yakuman: res.Score.YakumanCount,
		Dora:    res.Dora,
		Limit:   res.Score.Limit(),
		Points:  res.Points,
		Yaku:    res.Desc(),
		Hand:    describeHand(&res.Hand),
		Wait:    res.Hand.Wait.String(),
	}
	if env.IsSelfDraw {
		resp.Dealer, resp.NonDealer = res.Score.TsumoScore()
	}
	return resp
}

// ScoreHand scores the hand in req. Responses are cached by request when
// the cache is enabled.
func ScoreHand(req *protocol.ScoreRequest) (*protocol.ScoreResponse, error) {
	var key string
	if cache.Enabled() {
		var err error
		if key, err = cache.Key(cacheNamespace, req); err == nil {
			resp := &protocol.ScoreResponse{}
			if err := cache.Struct(key, resp); err == nil {
				return resp, nil
			}
		}
	}

	env, err := BuildEnvironment(req)
	if err != nil {
		return nil, err
	}
	res, err := mahjong.ScoreHand(env)
	if err != nil {
		return nil, err
	}

	resp := scoreResponse(env, res)
	if key != "" {
		if err := cache.SetStruct(key, resp); err != nil {
			logger.Warnf("Cache score response failed: %v", err)
		}
	}
	return resp, nil
}
