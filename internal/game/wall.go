package game

import (
	"math/rand"

	"github.com/lonng/riichi/internal/game/mahjong"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

const (
	deadWallSize      = 14
	replacementTiles  = 4
	maxDoraIndicators = 5
)

// Wall is the shuffled set split into the live wall and the dead wall.
// The dead wall holds the replacement tiles, then the dora indicators,
// then the ura dora indicators.
type Wall struct {
	live     mahjong.Tiles
	dead     mahjong.Tiles
	revealed int
	replaced int
}

// NewWall shuffles a full set with rng, so a seeded rng gives a
// reproducible wall.
func NewWall(rng *rand.Rand) *Wall {
	tiles := mahjong.AllTiles()
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })

	split := len(tiles) - deadWallSize
	return &Wall{
		live:     tiles[:split],
		dead:     tiles[split:],
		revealed: 1,
	}
}

// Draw takes the next live tile.
func (w *Wall) Draw() (mahjong.Tile, error) {
	if len(w.live) == 0 {
		return mahjong.Tile{}, errutil.ErrWallExhausted
	}
	t := w.live[0]
	w.live = w.live[1:]
	return t, nil
}

// DrawReplacement takes a dead wall tile after a kan and reveals the next
// dora indicator. The last live tile moves over to keep the dead wall full.
func (w *Wall) DrawReplacement() (mahjong.Tile, error) {
	if w.replaced >= replacementTiles || len(w.live) == 0 {
		return mahjong.Tile{}, errors.Wrap(errutil.ErrWallExhausted, "no replacement tile")
	}
	t := w.dead[w.replaced]
	w.replaced++
	w.live = w.live[:len(w.live)-1]
	if w.revealed < maxDoraIndicators {
		w.revealed++
	}
	return t, nil
}

func (w *Wall) Remaining() int { return len(w.live) }

func (w *Wall) DoraIndicators() mahjong.Tiles {
	start := replacementTiles
	return w.dead[start : start+w.revealed].Clone()
}

func (w *Wall) UraDoraIndicators() mahjong.Tiles {
	start := replacementTiles + maxDoraIndicators
	return w.dead[start : start+w.revealed].Clone()
}
