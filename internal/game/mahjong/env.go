package mahjong

import (
	"fmt"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

// Upper bounds on the bonus sticks a hand may carry.
const (
	MaxBonusCount  = 1000
	MaxBonusPoints = MaxBonusCount * 1000
)

// HandEnvironment is the read-only description of a winning claim. The
// round collaborator builds a fresh value per claim; the engine never
// mutates it.
type HandEnvironment struct {
	RoundWind    Wind
	SeatWind     Wind
	DiscardRound int
	BonusCount   int // honba sticks
	BonusPoints  int // riichi deposits on the table

	// ClosedMelds is an optional grouping of part of the concealed hand.
	// The search regroups these tiles freely.
	ClosedMelds []Meld
	Concealed   Tiles // concealed tiles outside ClosedMelds, winning tile excluded
	OpenMelds   []Meld

	LastTile      Tile
	IsSelfDraw    bool
	DiscardedFrom RelativeSeat // seat of the discarder on a ron

	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool
	IsRinshan      bool
	IsChankan      bool
	IsLastTile     bool // no live tile left: haitei on tsumo, houtei on ron
	IsFirstTurn    bool // first uninterrupted go-around of the winner

	Discards  Tiles // own discards, for furiten
	IsFuriten bool  // temporary or riichi furiten flagged by the table

	DoraIndicators    Tiles
	UraDoraIndicators Tiles

	DealerWinStreak int // consecutive dealer wins before this hand
}

func (env *HandEnvironment) IsDealer() bool { return env.SeatWind == East }

// IsClosed reports a hand without called melds; closed kans keep it closed.
func (env *HandEnvironment) IsClosed() bool {
	for _, m := range env.OpenMelds {
		if m.Kind != ClosedKan {
			return false
		}
	}
	return true
}

// ConcealedTiles returns every concealed tile except the winning one.
func (env *HandEnvironment) ConcealedTiles() Tiles {
	tiles := append(env.Concealed.Clone(), flatten(env.ClosedMelds)...)
	tiles.Sort()
	return tiles
}

// AllTiles returns the complete hand including the winning tile and every
// called tile, kans counted as four.
func (env *HandEnvironment) AllTiles() Tiles {
	tiles := append(env.ConcealedTiles(), env.LastTile)
	tiles = append(tiles, flatten(env.OpenMelds)...)
	tiles.Sort()
	return tiles
}

func (env *HandEnvironment) Validate() error {
	if !env.RoundWind.Valid() || !env.SeatWind.Valid() {
		return errors.Wrapf(errutil.ErrInvalidParameter, "winds round=%d seat=%d", env.RoundWind, env.SeatWind)
	}
	if env.BonusCount < 0 || env.BonusCount > MaxBonusCount || env.BonusPoints < 0 || env.BonusPoints > MaxBonusPoints {
		return errors.Wrapf(errutil.ErrInvalidParameter, "bonus count=%d points=%d", env.BonusCount, env.BonusPoints)
	}
	if !env.LastTile.Valid() {
		return errors.Wrapf(errutil.ErrIllegalTile, "winning tile %v", env.LastTile)
	}
	if !env.IsSelfDraw && env.DiscardedFrom == Self {
		return errors.Wrap(errutil.ErrInvalidParameter, "ron without a discarder")
	}
	if len(env.OpenMelds) > 4 {
		return errors.Wrapf(errutil.ErrIllegalMeld, "%d called melds", len(env.OpenMelds))
	}

	for _, m := range env.OpenMelds {
		if err := m.Validate(); err != nil {
			return err
		}
		switch m.Kind {
		case Chi, Pon, OpenKan:
			if m.From == Self {
				return errors.Wrapf(errutil.ErrIllegalMeld, "called %s without a discarder", m.Kind)
			}
		case ClosedKan:
		default:
			return errors.Wrapf(errutil.ErrIllegalMeld, "%s can not be called", m.Kind)
		}
	}
	for _, m := range env.ClosedMelds {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, t := range env.Concealed {
		if !t.Valid() {
			return errors.Wrapf(errutil.ErrIllegalTile, "concealed tile %v", t)
		}
	}

	concealed := env.ConcealedTiles()
	if want := 13 - 3*len(env.OpenMelds); len(concealed) != want {
		return errors.Wrapf(errutil.ErrDismatchTileNum, "%d concealed tiles beside %d melds, want %d", len(concealed), len(env.OpenMelds), want)
	}

	stats := NewStats(env.AllTiles())
	for i, c := range stats {
		if c > 4 {
			return errors.Wrapf(errutil.ErrDismatchTileNum, "%d copies of %v", c, TileFromIndex(i))
		}
	}
	return nil
}

func (env *HandEnvironment) String() string {
	return fmt.Sprintf("Round=%v Seat=%v Hand=%v Open=%v Win=%v Tsumo=%t Riichi=%t",
		env.RoundWind, env.SeatWind, env.ConcealedTiles(), env.OpenMelds, env.LastTile, env.IsSelfDraw, env.IsRiichi)
}
