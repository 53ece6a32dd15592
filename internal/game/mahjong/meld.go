package mahjong

import (
	"fmt"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

type MeldKind int8

const (
	SingleTile MeldKind = iota // transient, never part of a finished grouping
	Pair
	Chi
	Pon
	OpenKan
	ClosedKan
)

var meldKindNames = [...]string{
	SingleTile: "single",
	Pair:       "pair",
	Chi:        "chi",
	Pon:        "pon",
	OpenKan:    "openkan",
	ClosedKan:  "closedkan",
}

func (k MeldKind) String() string {
	if k < SingleTile || k > ClosedKan {
		return fmt.Sprintf("meld(%d)", int8(k))
	}
	return meldKindNames[k]
}

// RelativeSeat locates the player a tile was claimed from, seen from the
// claiming player. Self marks concealed groups.
type RelativeSeat int8

const (
	Self     RelativeSeat = iota
	Kamicha               // left, plays before us
	Toimen                // across
	Shimocha              // right, plays after us
)

var seatNames = [...]string{Self: "self", Kamicha: "kamicha", Toimen: "toimen", Shimocha: "shimocha"}

func (s RelativeSeat) String() string {
	if s < Self || s > Shimocha {
		return fmt.Sprintf("seat(%d)", int8(s))
	}
	return seatNames[s]
}

// RelativeTo returns where seat from sits as seen from seat to, both
// absolute seats 0..3 in turn order.
func RelativeTo(from, to int) RelativeSeat {
	return RelativeSeat((to - from + 4) % 4)
}

// Meld is a tile group. Chi keeps its three tiles ascending; the other
// kinds repeat one tile in every slot. Shapes are not validated on
// construction, see Validate.
type Meld struct {
	Kind  MeldKind
	Tiles [3]Tile
	From  RelativeSeat
}

func NewSingle(t Tile) Meld { return Meld{Kind: SingleTile, Tiles: [3]Tile{t, t, t}} }
func NewPair(t Tile) Meld   { return Meld{Kind: Pair, Tiles: [3]Tile{t, t, t}} }

// NewChi builds a concealed run; use Claimed for a called one.
func NewChi(a, b, c Tile) Meld {
	ts := Tiles{a, b, c}
	ts.Sort()
	return Meld{Kind: Chi, Tiles: [3]Tile{ts[0], ts[1], ts[2]}}
}

// NewPon builds a triplet; from is Self for a concealed one.
func NewPon(from RelativeSeat, t Tile) Meld {
	return Meld{Kind: Pon, Tiles: [3]Tile{t, t, t}, From: from}
}

func NewOpenKan(from RelativeSeat, t Tile) Meld {
	return Meld{Kind: OpenKan, Tiles: [3]Tile{t, t, t}, From: from}
}

func NewClosedKan(t Tile) Meld {
	return Meld{Kind: ClosedKan, Tiles: [3]Tile{t, t, t}}
}

// Claimed returns a copy marked as called from seat.
func (m Meld) Claimed(from RelativeSeat) Meld {
	m.From = from
	return m
}

// Tile is the lowest tile of the meld.
func (m Meld) Tile() Tile { return m.Tiles[0] }

// Members lists every physical tile of the meld.
func (m Meld) Members() Tiles {
	t := m.Tiles[0]
	switch m.Kind {
	case SingleTile:
		return Tiles{t}
	case Pair:
		return Tiles{t, t}
	case Chi:
		return Tiles{m.Tiles[0], m.Tiles[1], m.Tiles[2]}
	case Pon:
		return Tiles{t, t, t}
	default:
		return Tiles{t, t, t, t}
	}
}

func (m Meld) Contains(t Tile) bool {
	if m.Kind == Chi {
		return m.Tiles[0] == t || m.Tiles[1] == t || m.Tiles[2] == t
	}
	return m.Tiles[0] == t
}

func (m Meld) IsKan() bool { return m.Kind == OpenKan || m.Kind == ClosedKan }

// IsTriplet includes kans.
func (m Meld) IsTriplet() bool { return m.Kind == Pon || m.IsKan() }

// IsOpen reports a group completed with another player's tile.
func (m Meld) IsOpen() bool {
	return m.Kind != ClosedKan && m.From != Self
}

// HasYaochu reports whether any tile of the meld is a terminal or honor.
func (m Meld) HasYaochu() bool {
	if m.Kind == Chi {
		return m.Tiles[0].IsYaochu() || m.Tiles[2].IsYaochu()
	}
	return m.Tiles[0].IsYaochu()
}

func (m Meld) HasTerminal() bool {
	if m.Kind == Chi {
		return m.Tiles[0].IsTerminal() || m.Tiles[2].IsTerminal()
	}
	return m.Tiles[0].IsTerminal()
}

func (m Meld) Validate() error {
	for _, t := range m.Tiles {
		if !t.Valid() {
			return errors.Wrapf(errutil.ErrIllegalTile, "meld %v", m)
		}
	}
	switch m.Kind {
	case Chi:
		a, b, c := m.Tiles[0], m.Tiles[1], m.Tiles[2]
		if a.IsHonor() || a.Suit != b.Suit || b.Suit != c.Suit || b.Rank != a.Rank+1 || c.Rank != b.Rank+1 {
			return errors.Wrapf(errutil.ErrIllegalMeld, "chi %s", m.Members())
		}
	case SingleTile, Pair, Pon, OpenKan, ClosedKan:
		if m.Tiles[1] != m.Tiles[0] || m.Tiles[2] != m.Tiles[0] {
			return errors.Wrapf(errutil.ErrIllegalMeld, "%s of mixed tiles", m.Kind)
		}
	default:
		return errors.Wrapf(errutil.ErrIllegalMeld, "kind %d", m.Kind)
	}
	if m.From < Self || m.From > Shimocha {
		return errors.Wrapf(errutil.ErrIllegalMeld, "claimed from %d", m.From)
	}
	return nil
}

func (m Meld) String() string {
	s := m.Members().String()
	switch {
	case m.Kind == ClosedKan:
		return "[" + s + "]"
	case m.IsOpen():
		return "(" + s + ")"
	}
	return s
}

func flatten(melds []Meld) Tiles {
	var tiles Tiles
	for _, m := range melds {
		tiles = append(tiles, m.Members()...)
	}
	return tiles
}
