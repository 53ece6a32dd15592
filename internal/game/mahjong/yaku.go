package mahjong

import (
	"fmt"
	"strings"
)

type Yaku int8

const (
	Riichi Yaku = iota
	MenzenTsumo
	Ippatsu
	Haitei
	Houtei
	Rinshan
	Chankan
	DoubleRiichi
	Pinfu
	Iipeikou
	SanshokuDoujun
	Ittsuu
	Ryanpeikou
	Toitoi
	Sanankou
	SanshokuDoukou
	Sankantsu
	Tanyao
	YakuhaiSeatWind
	YakuhaiRoundWind
	YakuhaiHaku
	YakuhaiHatsu
	YakuhaiChun
	Chanta
	Junchan
	Honroutou
	Shousangen
	Honitsu
	Chinitsu
	Chiitoitsu
	NagashiMangan
)

// han when closed and when open, 0 = not available open
var yakuTable = [...]struct {
	name         string
	closed, open int
}{
	Riichi:           {"riichi", 1, 0},
	MenzenTsumo:      {"menzen tsumo", 1, 0},
	Ippatsu:          {"ippatsu", 1, 0},
	Haitei:           {"haitei raoyue", 1, 1},
	Houtei:           {"houtei raoyui", 1, 1},
	Rinshan:          {"rinshan kaihou", 1, 1},
	Chankan:          {"chankan", 1, 1},
	DoubleRiichi:     {"double riichi", 2, 0},
	Pinfu:            {"pinfu", 1, 0},
	Iipeikou:         {"iipeikou", 1, 0},
	SanshokuDoujun:   {"sanshoku doujun", 2, 1},
	Ittsuu:           {"ittsuu", 2, 1},
	Ryanpeikou:       {"ryanpeikou", 3, 0},
	Toitoi:           {"toitoi", 2, 2},
	Sanankou:         {"sanankou", 2, 2},
	SanshokuDoukou:   {"sanshoku doukou", 2, 2},
	Sankantsu:        {"sankantsu", 2, 2},
	Tanyao:           {"tanyao", 1, 1},
	YakuhaiSeatWind:  {"yakuhai seat wind", 1, 1},
	YakuhaiRoundWind: {"yakuhai round wind", 1, 1},
	YakuhaiHaku:      {"yakuhai haku", 1, 1},
	YakuhaiHatsu:     {"yakuhai hatsu", 1, 1},
	YakuhaiChun:      {"yakuhai chun", 1, 1},
	Chanta:           {"chanta", 2, 1},
	Junchan:          {"junchan", 3, 2},
	Honroutou:        {"honroutou", 2, 2},
	Shousangen:       {"shousangen", 2, 2},
	Honitsu:          {"honitsu", 3, 2},
	Chinitsu:         {"chinitsu", 6, 5},
	Chiitoitsu:       {"chiitoitsu", 2, 0},
	NagashiMangan:    {"nagashi mangan", 5, 5},
}

func (y Yaku) String() string {
	if y < 0 || int(y) >= len(yakuTable) {
		return fmt.Sprintf("yaku(%d)", int8(y))
	}
	return yakuTable[y].name
}

// Han of the yaku for a closed or open hand.
func (y Yaku) Han(closed bool) int {
	if closed {
		return yakuTable[y].closed
	}
	return yakuTable[y].open
}

type Yakuman int8

const (
	Kokushi Yakuman = iota
	Suuankou
	Daisangen
	Shousuushii
	Daisuushii
	Tsuuiisou
	Chinroutou
	Ryuuiisou
	ChuurenPoutou
	Suukantsu
	Tenhou
	Chihou
	Renhou
	Daichisei
	Parenchan
)

var yakumanNames = [...]string{
	Kokushi:       "kokushi musou",
	Suuankou:      "suuankou",
	Daisangen:     "daisangen",
	Shousuushii:   "shousuushii",
	Daisuushii:    "daisuushii",
	Tsuuiisou:     "tsuuiisou",
	Chinroutou:    "chinroutou",
	Ryuuiisou:     "ryuuiisou",
	ChuurenPoutou: "chuuren poutou",
	Suukantsu:     "suukantsu",
	Tenhou:        "tenhou",
	Chihou:        "chihou",
	Renhou:        "renhou",
	Daichisei:     "daichisei",
	Parenchan:     "parenchan",
}

func (y Yakuman) String() string {
	if y < 0 || int(y) >= len(yakumanNames) {
		return fmt.Sprintf("yakuman(%d)", int8(y))
	}
	return yakumanNames[y]
}

type WinKind int8

const (
	NoYaku WinKind = iota
	YakuWin
	YakumanWin
)

// WinType is the outcome of classification. Only the slice matching Kind
// is populated, in declaration order.
type WinType struct {
	Kind    WinKind
	Yaku    []Yaku
	Yakuman []Yakuman
}

func (w WinType) Has(y Yaku) bool {
	for _, x := range w.Yaku {
		if x == y {
			return true
		}
	}
	return false
}

// Han sums the yaku han, dora excluded.
func (w WinType) Han(closed bool) int {
	han := 0
	for _, y := range w.Yaku {
		han += y.Han(closed)
	}
	return han
}

// Count is the number of patterns scored.
func (w WinType) Count() int { return len(w.Yaku) + len(w.Yakuman) }

func (w WinType) Names() []string {
	var names []string
	for _, y := range w.Yakuman {
		names = append(names, y.String())
	}
	for _, y := range w.Yaku {
		names = append(names, y.String())
	}
	return names
}

func (w WinType) String() string {
	switch w.Kind {
	case YakuWin:
		return "yaku(" + strings.Join(w.Names(), ", ") + ")"
	case YakumanWin:
		return "yakuman(" + strings.Join(w.Names(), ", ") + ")"
	}
	return "noyaku"
}

// handView caches what the checks read off one reading of the hand.
type handView struct {
	env    *HandEnvironment
	hand   *Decomposition
	stats  ScoringCtx
	counts Stats
	closed bool
}

func newHandView(env *HandEnvironment, hand *Decomposition) *handView {
	v := &handView{
		env:    env,
		hand:   hand,
		counts: NewStats(hand.Tiles),
		closed: env.IsClosed(),
	}
	if hand.Shape == Standard {
		v.stats = NewScoringCtx(hand.Closed, hand.Open)
	}
	return v
}

func (v *handView) standard() bool { return v.hand.Shape == Standard }

func (v *handView) all(pred func(Tile) bool) bool {
	for _, t := range v.hand.Tiles {
		if !pred(t) {
			return false
		}
	}
	return true
}

func (v *handView) any(pred func(Tile) bool) bool {
	for _, t := range v.hand.Tiles {
		if pred(t) {
			return true
		}
	}
	return false
}

func (v *handView) eachMeld(pred func(Meld) bool) bool {
	for _, m := range v.hand.Melds() {
		if !pred(m) {
			return false
		}
	}
	return true
}

// triplets counts pons and kans matching pred.
func (v *handView) triplets(pred func(Tile) bool) int {
	n := 0
	for _, m := range v.hand.Melds() {
		if m.IsTriplet() && pred(m.Tile()) {
			n++
		}
	}
	return n
}

func (v *handView) pairIs(pred func(Tile) bool) bool {
	p, ok := v.hand.Pair()
	return ok && pred(p.Tile())
}

func (v *handView) numberSuits() int {
	seen := [3]bool{}
	n := 0
	for _, t := range v.hand.Tiles {
		if !t.IsHonor() && !seen[t.Suit] {
			seen[t.Suit] = true
			n++
		}
	}
	return n
}

// isValueTile reports whether a pair of t is worth fu: dragons and the seat or round wind.
func (v *handView) isValueTile(t Tile) bool {
	return t.IsDragon() || t == v.env.SeatWind.Tile() || t == v.env.RoundWind.Tile()
}

// identicalRuns counts pairs of identical chi in the concealed groups.
func (v *handView) identicalRuns() int {
	runs := map[Tile]int{}
	for _, m := range v.hand.Closed {
		if m.Kind == Chi {
			runs[m.Tile()]++
		}
	}
	n := 0
	for _, c := range runs {
		n += c / 2
	}
	return n
}

func (v *handView) hasRun(t Tile) bool {
	for _, m := range v.hand.Melds() {
		if m.Kind == Chi && m.Tile() == t {
			return true
		}
	}
	return false
}

func (v *handView) hasTriplet(t Tile) bool {
	for _, m := range v.hand.Melds() {
		if m.IsTriplet() && m.Tile() == t {
			return true
		}
	}
	return false
}

type checker struct {
	yaku  Yaku
	check func(v *handView) bool
}

type yakumanChecker struct {
	yakuman Yakuman
	check   func(v *handView) bool
}

var yakumanCheckers = []yakumanChecker{
	{Kokushi, func(v *handView) bool { return v.hand.Shape == ThirteenOrphans }},
	{Suuankou, func(v *handView) bool { return v.standard() && v.stats.NumConcealedKou == 4 }},
	{Daisangen, func(v *handView) bool { return v.triplets(Tile.IsDragon) == 3 }},
	{Shousuushii, func(v *handView) bool {
		return v.standard() && v.triplets(Tile.IsWind) == 3 && v.pairIs(Tile.IsWind)
	}},
	{Daisuushii, func(v *handView) bool { return v.triplets(Tile.IsWind) == 4 }},
	{Tsuuiisou, func(v *handView) bool { return v.all(Tile.IsHonor) }},
	{Chinroutou, func(v *handView) bool { return v.all(Tile.IsTerminal) }},
	{Ryuuiisou, func(v *handView) bool { return v.all(Tile.IsGreen) }},
	{ChuurenPoutou, isChuuren},
	{Suukantsu, func(v *handView) bool { return v.standard() && v.stats.NumKan == 4 }},
	{Tenhou, func(v *handView) bool { return v.env.IsFirstTurn && v.env.IsDealer() && v.env.IsSelfDraw }},
	{Chihou, func(v *handView) bool { return v.env.IsFirstTurn && !v.env.IsDealer() && v.env.IsSelfDraw }},
	{Renhou, func(v *handView) bool { return v.env.IsFirstTurn && !v.env.IsDealer() && !v.env.IsSelfDraw }},
	{Daichisei, func(v *handView) bool { return v.hand.Shape == SevenPairs && v.all(Tile.IsHonor) }},
	{Parenchan, func(v *handView) bool { return v.env.IsDealer() && v.env.DealerWinStreak >= 7 }},
}

var checkers = []checker{
	{Riichi, func(v *handView) bool { return v.closed && v.env.IsRiichi && !v.env.IsDoubleRiichi }},
	{MenzenTsumo, func(v *handView) bool { return v.closed && v.env.IsSelfDraw }},
	{Ippatsu, func(v *handView) bool { return v.closed && v.env.IsIppatsu && (v.env.IsRiichi || v.env.IsDoubleRiichi) }},
	{Haitei, func(v *handView) bool { return v.env.IsLastTile && v.env.IsSelfDraw && !v.env.IsRinshan }},
	{Houtei, func(v *handView) bool { return v.env.IsLastTile && !v.env.IsSelfDraw }},
	{Rinshan, func(v *handView) bool { return v.env.IsRinshan && v.env.IsSelfDraw }},
	{Chankan, func(v *handView) bool { return v.env.IsChankan && !v.env.IsSelfDraw }},
	{DoubleRiichi, func(v *handView) bool { return v.closed && v.env.IsDoubleRiichi }},
	{Pinfu, isPinfu},
	{Iipeikou, func(v *handView) bool { return v.standard() && v.closed && v.identicalRuns() == 1 }},
	{SanshokuDoujun, func(v *handView) bool {
		for rank := 1; rank <= 7; rank++ {
			if v.hasRun(ManTile(rank)) && v.hasRun(PinTile(rank)) && v.hasRun(SouTile(rank)) {
				return true
			}
		}
		return false
	}},
	{Ittsuu, func(v *handView) bool {
		for _, s := range []Suit{SuitMan, SuitPin, SuitSou} {
			if v.hasRun(Tile{s, 1}) && v.hasRun(Tile{s, 4}) && v.hasRun(Tile{s, 7}) {
				return true
			}
		}
		return false
	}},
	{Ryanpeikou, func(v *handView) bool { return v.standard() && v.closed && v.identicalRuns() == 2 }},
	{Toitoi, func(v *handView) bool { return v.standard() && v.stats.NumTriplets() == 4 }},
	{Sanankou, func(v *handView) bool { return v.standard() && v.stats.NumConcealedKou == 3 }},
	{SanshokuDoukou, func(v *handView) bool {
		for rank := 1; rank <= 9; rank++ {
			if v.hasTriplet(ManTile(rank)) && v.hasTriplet(PinTile(rank)) && v.hasTriplet(SouTile(rank)) {
				return true
			}
		}
		return false
	}},
	{Sankantsu, func(v *handView) bool { return v.standard() && v.stats.NumKan == 3 }},
	{Tanyao, func(v *handView) bool { return v.all(Tile.IsSimple) }},
	{YakuhaiSeatWind, func(v *handView) bool { return v.hasTriplet(v.env.SeatWind.Tile()) }},
	{YakuhaiRoundWind, func(v *handView) bool { return v.hasTriplet(v.env.RoundWind.Tile()) }},
	{YakuhaiHaku, func(v *handView) bool { return v.hasTriplet(White.Tile()) }},
	{YakuhaiHatsu, func(v *handView) bool { return v.hasTriplet(Green.Tile()) }},
	{YakuhaiChun, func(v *handView) bool { return v.hasTriplet(Red.Tile()) }},
	{Chanta, func(v *handView) bool {
		return v.standard() && v.stats.NumShun > 0 && v.any(Tile.IsHonor) && v.eachMeld(Meld.HasYaochu)
	}},
	{Junchan, func(v *handView) bool {
		return v.standard() && v.stats.NumShun > 0 && !v.any(Tile.IsHonor) && v.eachMeld(Meld.HasTerminal)
	}},
	{Honroutou, func(v *handView) bool {
		return v.all(Tile.IsYaochu) && v.any(Tile.IsHonor) && v.any(Tile.IsTerminal)
	}},
	{Shousangen, func(v *handView) bool {
		return v.standard() && v.triplets(Tile.IsDragon) == 2 && v.pairIs(Tile.IsDragon)
	}},
	{Honitsu, func(v *handView) bool { return v.numberSuits() == 1 && v.any(Tile.IsHonor) }},
	{Chinitsu, func(v *handView) bool { return v.numberSuits() == 1 && !v.any(Tile.IsHonor) }},
	{Chiitoitsu, func(v *handView) bool { return v.hand.Shape == SevenPairs }},
}

func isPinfu(v *handView) bool {
	if !v.standard() || !v.closed || v.stats.NumShun != 4 || v.hand.Wait != Ryanmen {
		return false
	}
	return !v.pairIs(v.isValueTile)
}

// isChuuren looks for 1112345678999 plus one tile of the same suit.
func isChuuren(v *handView) bool {
	if !v.standard() || len(v.hand.Open) > 0 || v.numberSuits() != 1 || v.any(Tile.IsHonor) {
		return false
	}
	suit := v.hand.Tiles[0].Suit
	base := Tile{Suit: suit, Rank: 1}.Index()
	for r := 0; r < 9; r++ {
		need := byte(1)
		if r == 0 || r == 8 {
			need = 3
		}
		if v.counts[base+r] < need {
			return false
		}
	}
	return true
}

// Classify scores one reading of the hand. Yakuman are checked first and
// stack; ordinary yaku are only looked at when no yakuman applies.
func Classify(env *HandEnvironment, hand *Decomposition) WinType {
	v := newHandView(env, hand)

	var yakuman []Yakuman
	for _, c := range yakumanCheckers {
		if c.check(v) {
			yakuman = append(yakuman, c.yakuman)
		}
	}
	if len(yakuman) > 0 {
		return WinType{Kind: YakumanWin, Yakuman: yakuman}
	}

	var yaku []Yaku
	for _, c := range checkers {
		if c.check(v) && c.yaku.Han(v.closed) > 0 {
			yaku = append(yaku, c.yaku)
		}
	}
	if len(yaku) == 0 {
		return WinType{Kind: NoYaku}
	}
	return WinType{Kind: YakuWin, Yaku: yaku}
}
