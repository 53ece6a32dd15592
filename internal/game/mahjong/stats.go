package mahjong

// ScoringCtx holds the counters the yaku checks read off a standard
// grouping. It is never built for seven pairs or thirteen orphans.
type ScoringCtx struct {
	NumKou   int // pon
	NumShun  int // chi
	NumKan   int
	NumPair  int
	NumSpare int

	NumSuits    int // distinct suits touched, winds and dragons counted separately
	NumHonor    int
	NumTerminal int // melds holding a numbered 1 or 9

	NumConcealedKou int // concealed triplets, closed kans included

	// SuitUsage counts contributions per suit; a chi adds one per tile,
	// every other meld adds one.
	SuitUsage [5]int

	IsClosed bool
}

// NewScoringCtx folds closed and open melds into counters. The hand is
// closed unless an open meld other than a closed kan is present.
func NewScoringCtx(closed, open []Meld) ScoringCtx {
	ctx := ScoringCtx{IsClosed: true}
	for _, m := range open {
		if m.Kind != ClosedKan {
			ctx.IsClosed = false
		}
	}

	for _, m := range closed {
		ctx.add(m)
	}
	for _, m := range open {
		ctx.add(m)
	}

	for _, n := range ctx.SuitUsage {
		if n > 0 {
			ctx.NumSuits++
		}
	}
	ctx.NumHonor = ctx.SuitUsage[SuitWind] + ctx.SuitUsage[SuitDragon]
	return ctx
}

func (ctx *ScoringCtx) add(m Meld) {
	switch m.Kind {
	case SingleTile:
		ctx.NumSpare++
	case Pair:
		ctx.NumPair++
	case Chi:
		ctx.NumShun++
	case Pon:
		ctx.NumKou++
	case OpenKan, ClosedKan:
		ctx.NumKan++
	}

	if m.IsTriplet() && !m.IsOpen() {
		ctx.NumConcealedKou++
	}

	if m.Kind == Chi {
		for _, t := range m.Tiles {
			ctx.SuitUsage[t.Suit]++
		}
	} else {
		ctx.SuitUsage[m.Tile().Suit]++
	}
	if m.HasTerminal() {
		ctx.NumTerminal++
	}
}

// NumNumberSuits counts the man, pin and sou suits in use.
func (ctx *ScoringCtx) NumNumberSuits() int {
	n := 0
	for _, s := range []Suit{SuitMan, SuitPin, SuitSou} {
		if ctx.SuitUsage[s] > 0 {
			n++
		}
	}
	return n
}

// NumTriplets counts pons and kans.
func (ctx *ScoringCtx) NumTriplets() int { return ctx.NumKou + ctx.NumKan }
