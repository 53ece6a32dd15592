package mahjong

import (
	"strings"
	"unicode"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

const honorLetters = "ESWNPFC"

// ParseTiles reads mpsz notation ("123m406p789s1155z") mixed with honor
// letters (E S W N for winds, P F C for white, green and red dragons).
// A 0 reads as a five. Full-width input is folded first.
func ParseTiles(s string) (Tiles, error) {
	var (
		tiles   Tiles
		pending []int8
	)

	for _, r := range width.Fold.String(s) {
		switch {
		case r >= '0' && r <= '9':
			pending = append(pending, int8(r-'0'))

		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(pending) == 0 {
				return nil, errors.Wrapf(errutil.ErrIllegalTile, "%q: suit %q without ranks", s, r)
			}
			for _, rank := range pending {
				t, ok := mpszTile(r, rank)
				if !ok {
					return nil, errors.Wrapf(errutil.ErrIllegalTile, "%q: %d%c", s, rank, r)
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]

		case strings.ContainsRune(honorLetters, r):
			if len(pending) > 0 {
				return nil, errors.Wrapf(errutil.ErrIllegalTile, "%q: dangling ranks before %q", s, r)
			}
			tiles = append(tiles, honorTile(r))

		case unicode.IsSpace(r) || r == ',':

		default:
			return nil, errors.Wrapf(errutil.ErrIllegalTile, "%q: unexpected %q", s, r)
		}
	}

	if len(pending) > 0 {
		return nil, errors.Wrapf(errutil.ErrIllegalTile, "%q: ranks without suit", s)
	}
	return tiles, nil
}

// ParseTile reads exactly one tile.
func ParseTile(s string) (Tile, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return Tile{}, err
	}
	if len(tiles) != 1 {
		return Tile{}, errors.Wrapf(errutil.ErrIllegalTile, "%q: want one tile, got %d", s, len(tiles))
	}
	return tiles[0], nil
}

// MustParseTiles panics on malformed input, for literals.
func MustParseTiles(s string) Tiles {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

func mpszTile(suit rune, rank int8) (Tile, bool) {
	var t Tile
	if rank == 0 {
		// red five, number suits only
		if suit == 'z' {
			return t, false
		}
		rank = 5
	}
	switch suit {
	case 'm':
		t = Tile{Suit: SuitMan, Rank: rank}
	case 'p':
		t = Tile{Suit: SuitPin, Rank: rank}
	case 's':
		t = Tile{Suit: SuitSou, Rank: rank}
	case 'z':
		if rank <= 4 {
			t = Tile{Suit: SuitWind, Rank: rank}
		} else {
			t = Tile{Suit: SuitDragon, Rank: rank - 4}
		}
	}
	return t, t.Valid()
}

func honorTile(r rune) Tile {
	idx := strings.IndexRune(honorLetters, r)
	if idx < 4 {
		return Tile{Suit: SuitWind, Rank: int8(idx + 1)}
	}
	return Tile{Suit: SuitDragon, Rank: int8(idx - 3)}
}

// MarshalText encodes a tile in the same notation ParseTile reads.
func (t Tile) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.Wrapf(errutil.ErrIllegalTile, "marshal %s", t)
	}
	return []byte(t.String()), nil
}

func (t *Tile) UnmarshalText(text []byte) error {
	v, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
