package mahjong

import "fmt"

// Shape of a complete hand.
type Shape int8

const (
	Standard        Shape = iota // four groups and a pair
	SevenPairs                   // chiitoitsu
	ThirteenOrphans              // kokushi musou
)

func (s Shape) String() string {
	switch s {
	case Standard:
		return "standard"
	case SevenPairs:
		return "sevenpairs"
	case ThirteenOrphans:
		return "thirteenorphans"
	}
	return fmt.Sprintf("shape(%d)", int8(s))
}

// Wait is the shape the winning tile completed.
type Wait int8

const (
	Ryanmen Wait = iota // two-sided
	Kanchan             // closed
	Penchan             // edge
	Shanpon             // dual pair
	Tanki               // pair
)

var waitNames = [...]string{Ryanmen: "ryanmen", Kanchan: "kanchan", Penchan: "penchan", Shanpon: "shanpon", Tanki: "tanki"}

func (w Wait) String() string {
	if w < Ryanmen || w > Tanki {
		return fmt.Sprintf("wait(%d)", int8(w))
	}
	return waitNames[w]
}

// Decomposition is one reading of a complete hand. Closed holds the
// concealed groups, pair included; the winning tile sits in
// Closed[WinIndex]. For thirteen orphans Closed holds only the pair.
type Decomposition struct {
	Shape       Shape
	Closed      []Meld
	Open        []Meld
	WinIndex    int
	Wait        Wait
	WinningTile Tile
	Tiles       Tiles // every tile of the hand, sorted
}

// Pair returns the pair of a standard or thirteen orphans reading.
func (d *Decomposition) Pair() (Meld, bool) {
	for _, m := range d.Closed {
		if m.Kind == Pair {
			return m, true
		}
	}
	return Meld{}, false
}

// Melds returns closed and open groups together.
func (d *Decomposition) Melds() []Meld {
	melds := make([]Meld, 0, len(d.Closed)+len(d.Open))
	melds = append(melds, d.Closed...)
	return append(melds, d.Open...)
}

func (d *Decomposition) String() string {
	return fmt.Sprintf("%v %v open=%v win=%v(%v)", d.Shape, d.Closed, d.Open, d.WinningTile, d.Wait)
}

// Decompose enumerates every reading of the hand described by env: each
// standard grouping once per distinct group the winning tile can complete,
// then seven pairs, then thirteen orphans. The order is deterministic.
// A nil result means the tiles do not form a complete hand.
func Decompose(env *HandEnvironment) []Decomposition {
	concealed := env.ConcealedTiles()
	counts := NewStats(concealed, Tiles{env.LastTile})
	all := env.AllTiles()

	from := Self
	if !env.IsSelfDraw {
		from = env.DiscardedFrom
	}

	var result []Decomposition
	for _, grouping := range groupings(counts, 4-len(env.OpenMelds)) {
		result = append(result, placeWinningTile(grouping, env.LastTile, from)...)
	}

	base := Decomposition{
		Open:        append([]Meld(nil), env.OpenMelds...),
		WinningTile: env.LastTile,
		Tiles:       all,
		Wait:        Tanki,
	}
	if len(env.OpenMelds) == 0 {
		if pairs, ok := sevenPairs(&counts); ok {
			d := base
			d.Shape = SevenPairs
			d.Closed = pairs
			for i, m := range pairs {
				if m.Tile() == env.LastTile {
					d.WinIndex = i
				}
			}
			result = append(result, d)
		}
		if pair, ok := thirteenOrphans(&counts); ok {
			d := base
			d.Shape = ThirteenOrphans
			d.Closed = []Meld{NewPair(pair)}
			result = append(result, d)
		}
	}

	for i := range result {
		if result[i].Shape == Standard {
			result[i].Open = base.Open
			result[i].WinningTile = env.LastTile
			result[i].Tiles = all
		}
	}
	return result
}

// groupings lists every way to split counts into one pair and need groups.
func groupings(counts Stats, need int) [][]Meld {
	var out [][]Meld
	if need < 0 || counts.Total() != need*3+2 {
		return nil
	}
	for i := 0; i < NumKinds; i++ {
		if counts[i] < 2 {
			continue
		}
		counts[i] -= 2
		searchGroups(&counts, []Meld{NewPair(TileFromIndex(i))}, &out)
		counts[i] += 2
	}
	return out
}

// searchGroups takes the lowest remaining tile either as a triplet or as
// the head of a run, so every grouping is produced exactly once.
func searchGroups(counts *Stats, acc []Meld, out *[][]Meld) {
	i := counts.first()
	if i < 0 {
		*out = append(*out, append([]Meld(nil), acc...))
		return
	}

	if counts[i] >= 3 {
		counts[i] -= 3
		searchGroups(counts, append(acc, NewPon(Self, TileFromIndex(i))), out)
		counts[i] += 3
	}

	t := TileFromIndex(i)
	if !t.IsHonor() && t.Rank <= 7 && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		searchGroups(counts, append(acc, NewChi(t, TileFromIndex(i+1), TileFromIndex(i+2))), out)
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}
}

// placeWinningTile yields one reading per distinct group holding the
// winning tile. A triplet finished by a discard counts as called.
func placeWinningTile(grouping []Meld, win Tile, from RelativeSeat) []Decomposition {
	var out []Decomposition
	for i, m := range grouping {
		if !m.Contains(win) || seenBefore(grouping, i) {
			continue
		}

		closed := append([]Meld(nil), grouping...)
		d := Decomposition{Shape: Standard, WinIndex: i}
		switch m.Kind {
		case Pair:
			d.Wait = Tanki
		case Pon:
			d.Wait = Shanpon
			closed[i] = m.Claimed(from)
		case Chi:
			d.Wait = chiWait(m, win)
		}
		d.Closed = closed
		out = append(out, d)
	}
	return out
}

func seenBefore(melds []Meld, i int) bool {
	for j := 0; j < i; j++ {
		if melds[j] == melds[i] {
			return true
		}
	}
	return false
}

func chiWait(m Meld, win Tile) Wait {
	switch win.Rank - m.Tiles[0].Rank {
	case 1:
		return Kanchan
	case 0:
		if m.Tiles[2].Rank == 9 {
			return Penchan
		}
	default:
		if m.Tiles[0].Rank == 1 {
			return Penchan
		}
	}
	return Ryanmen
}

func sevenPairs(counts *Stats) ([]Meld, bool) {
	var pairs []Meld
	for i, c := range counts {
		switch c {
		case 0:
		case 2:
			pairs = append(pairs, NewPair(TileFromIndex(i)))
		default:
			return nil, false
		}
	}
	return pairs, len(pairs) == 7
}

var orphans = func() []int {
	var idx []int
	for i := 0; i < NumKinds; i++ {
		if TileFromIndex(i).IsYaochu() {
			idx = append(idx, i)
		}
	}
	return idx
}()

func thirteenOrphans(counts *Stats) (Tile, bool) {
	if counts.Total() != 14 {
		return Tile{}, false
	}
	pair := -1
	for _, i := range orphans {
		switch counts[i] {
		case 1:
		case 2:
			pair = i
		default:
			return Tile{}, false
		}
	}
	if pair < 0 {
		return Tile{}, false
	}
	return TileFromIndex(pair), true
}

// Waits lists the tile kinds that would complete concealed plus open.
// A kind already held four times is not a wait.
func Waits(concealed Tiles, open []Meld) Tiles {
	counts := NewStats(concealed)
	need := 4 - len(open)
	var waits Tiles
	for i := 0; i < NumKinds; i++ {
		if counts[i] >= 4 {
			continue
		}
		counts[i]++
		if len(groupings(counts, need)) > 0 || (len(open) == 0 && isSpecialShape(&counts)) {
			waits = append(waits, TileFromIndex(i))
		}
		counts[i]--
	}
	return waits
}

func isSpecialShape(counts *Stats) bool {
	if _, ok := sevenPairs(counts); ok {
		return true
	}
	_, ok := thirteenOrphans(counts)
	return ok
}
