package mahjong

import (
	"bytes"
	"fmt"
	"sort"
)

const (
	NumKinds = 34           // distinct tile kinds
	NumTiles = NumKinds * 4 // tiles in a full set
)

// Suit of a tile, declared in sort order.
type Suit int8

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitWind
	SuitDragon
)

var suitNames = [...]string{
	SuitMan:    "man",
	SuitPin:    "pin",
	SuitSou:    "sou",
	SuitWind:   "wind",
	SuitDragon: "dragon",
}

func (s Suit) String() string {
	if s < SuitMan || s > SuitDragon {
		return fmt.Sprintf("suit(%d)", int8(s))
	}
	return suitNames[s]
}

func (s Suit) IsHonor() bool { return s == SuitWind || s == SuitDragon }

// Wind doubles as seat wind, round wind and wind tile rank.
type Wind int8

const (
	East Wind = iota + 1
	South
	West
	North
)

var windLetters = [...]string{East: "E", South: "S", West: "W", North: "N"}

func (w Wind) Valid() bool { return w >= East && w <= North }

func (w Wind) String() string {
	if !w.Valid() {
		return fmt.Sprintf("wind(%d)", int8(w))
	}
	return windLetters[w]
}

// Next returns the following wind, North wraps to East.
func (w Wind) Next() Wind { return w%North + 1 }

func (w Wind) Tile() Tile { return Tile{Suit: SuitWind, Rank: int8(w)} }

// ParseWind accepts a wind letter (E/S/W/N).
func ParseWind(s string) (Wind, bool) {
	for w := East; w <= North; w++ {
		if windLetters[w] == s {
			return w, true
		}
	}
	return 0, false
}

type Dragon int8

const (
	White Dragon = iota + 1
	Green
	Red
)

// haku, hatsu, chun
var dragonLetters = [...]string{White: "P", Green: "F", Red: "C"}

func (d Dragon) Tile() Tile { return Tile{Suit: SuitDragon, Rank: int8(d)} }

// Tile is a single tile kind. Rank runs 1-9 for numbered suits, 1-4 for
// winds (East..North) and 1-3 for dragons (white, green, red).
type Tile struct {
	Suit Suit
	Rank int8
}

func ManTile(rank int) Tile { return Tile{Suit: SuitMan, Rank: int8(rank)} }
func PinTile(rank int) Tile { return Tile{Suit: SuitPin, Rank: int8(rank)} }
func SouTile(rank int) Tile { return Tile{Suit: SuitSou, Rank: int8(rank)} }

// TileFromIndex is the inverse of Tile.Index.
func TileFromIndex(idx int) Tile {
	switch {
	case idx < 27:
		return Tile{Suit: Suit(idx / 9), Rank: int8(idx%9 + 1)}
	case idx < 31:
		return Tile{Suit: SuitWind, Rank: int8(idx - 27 + 1)}
	default:
		return Tile{Suit: SuitDragon, Rank: int8(idx - 31 + 1)}
	}
}

// Index maps the tile onto 0..33 following the tile order.
func (t Tile) Index() int {
	if t.Suit == SuitDragon {
		return 31 + int(t.Rank) - 1
	}
	return int(t.Suit)*9 + int(t.Rank) - 1
}

func (t Tile) Valid() bool {
	switch t.Suit {
	case SuitMan, SuitPin, SuitSou:
		return t.Rank >= 1 && t.Rank <= 9
	case SuitWind:
		return t.Rank >= 1 && t.Rank <= 4
	case SuitDragon:
		return t.Rank >= 1 && t.Rank <= 3
	}
	return false
}

func (t Tile) Less(o Tile) bool {
	if t.Suit != o.Suit {
		return t.Suit < o.Suit
	}
	return t.Rank < o.Rank
}

func (t Tile) IsHonor() bool  { return t.Suit.IsHonor() }
func (t Tile) IsWind() bool   { return t.Suit == SuitWind }
func (t Tile) IsDragon() bool { return t.Suit == SuitDragon }

// IsTerminal reports a numbered 1 or 9; honors are not terminals.
func (t Tile) IsTerminal() bool {
	return !t.IsHonor() && (t.Rank == 1 || t.Rank == 9)
}

// IsYaochu reports a terminal or an honor.
func (t Tile) IsYaochu() bool { return t.IsHonor() || t.IsTerminal() }

func (t Tile) IsSimple() bool { return !t.IsYaochu() }

// IsGreen reports the tiles allowed in ryuuiisou.
func (t Tile) IsGreen() bool {
	if t.Suit == SuitDragon {
		return Dragon(t.Rank) == Green
	}
	if t.Suit != SuitSou {
		return false
	}
	switch t.Rank {
	case 2, 3, 4, 6, 8:
		return true
	}
	return false
}

// Next is the dora indicated by t.
func (t Tile) Next() Tile {
	switch t.Suit {
	case SuitWind:
		return Wind(t.Rank).Next().Tile()
	case SuitDragon:
		return Tile{Suit: SuitDragon, Rank: t.Rank%3 + 1}
	default:
		return Tile{Suit: t.Suit, Rank: t.Rank%9 + 1}
	}
}

func (t Tile) String() string {
	switch t.Suit {
	case SuitMan:
		return fmt.Sprintf("%dm", t.Rank)
	case SuitPin:
		return fmt.Sprintf("%dp", t.Rank)
	case SuitSou:
		return fmt.Sprintf("%ds", t.Rank)
	case SuitWind:
		if Wind(t.Rank).Valid() {
			return windLetters[t.Rank]
		}
	case SuitDragon:
		if t.Rank >= 1 && t.Rank <= 3 {
			return dragonLetters[t.Rank]
		}
	}
	return fmt.Sprintf("?%d%d", t.Suit, t.Rank)
}

// Tiles is an ordered collection of tiles, duplicates allowed.
type Tiles []Tile

func (ts Tiles) Len() int           { return len(ts) }
func (ts Tiles) Less(i, j int) bool { return ts[i].Less(ts[j]) }
func (ts Tiles) Swap(i, j int)      { ts[i], ts[j] = ts[j], ts[i] }

func (ts Tiles) Sort() { sort.Sort(ts) }

func (ts Tiles) Clone() Tiles {
	if ts == nil {
		return nil
	}
	return append(Tiles(nil), ts...)
}

func (ts Tiles) Count(t Tile) int {
	n := 0
	for _, x := range ts {
		if x == t {
			n++
		}
	}
	return n
}

func (ts Tiles) Contains(t Tile) bool { return ts.Count(t) > 0 }

// Remove drops the first copy of t in place.
func (ts Tiles) Remove(t Tile) (Tiles, bool) {
	for i, x := range ts {
		if x == t {
			return append(ts[:i], ts[i+1:]...), true
		}
	}
	return ts, false
}

// String renders the tiles in compact notation, e.g. "123m55pEE".
func (ts Tiles) String() string {
	buf := &bytes.Buffer{}
	for i, t := range ts {
		if t.IsHonor() || !t.Valid() {
			buf.WriteString(t.String())
			continue
		}
		fmt.Fprintf(buf, "%d", t.Rank)
		if i+1 == len(ts) || ts[i+1].Suit != t.Suit {
			buf.WriteString(t.String()[1:])
		}
	}
	return buf.String()
}

// AllTiles returns the 136 tiles of a set in tile order.
func AllTiles() Tiles {
	tiles := make(Tiles, 0, NumTiles)
	for i := 0; i < NumKinds; i++ {
		t := TileFromIndex(i)
		tiles = append(tiles, t, t, t, t)
	}
	return tiles
}

// Stats counts tiles per kind.
type Stats [NumKinds]byte

func NewStats(tiles ...Tiles) Stats {
	var s Stats
	s.From(tiles...)
	return s
}

func (s *Stats) From(tiles ...Tiles) {
	for _, ts := range tiles {
		for _, t := range ts {
			s[t.Index()]++
		}
	}
}

func (s *Stats) Total() int {
	n := 0
	for _, c := range s {
		n += int(c)
	}
	return n
}

// first returns the lowest kind with a non-zero count, or -1.
func (s *Stats) first() int {
	for i, c := range s {
		if c > 0 {
			return i
		}
	}
	return -1
}

func (s *Stats) String() string {
	buf := &bytes.Buffer{}
	for i, count := range s {
		if count == 0 {
			continue
		}
		fmt.Fprintf(buf, "%s:%d ", TileFromIndex(i), count)
	}
	return buf.String()
}
