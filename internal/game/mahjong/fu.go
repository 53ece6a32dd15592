package mahjong

const (
	fuBase       = 20
	fuClosedRon  = 10
	fuTsumo      = 2
	fuWait       = 2
	fuValuePair  = 2
	fuChiitoitsu = 25
	fuPinfuRon   = 30
	fuOpenMin    = 30
)

// Fu counts minipoints for one reading of the hand. Yakuman readings do
// not need fu and are not passed here.
func Fu(env *HandEnvironment, hand *Decomposition, pinfu bool) int {
	switch hand.Shape {
	case SevenPairs:
		return fuChiitoitsu
	case ThirteenOrphans:
		return fuPinfuRon
	}

	if pinfu {
		if env.IsSelfDraw {
			return fuBase
		}
		return fuPinfuRon
	}

	closed := env.IsClosed()
	fu := fuBase
	if env.IsSelfDraw {
		fu += fuTsumo
	} else if closed {
		fu += fuClosedRon
	}

	for _, m := range hand.Melds() {
		switch {
		case m.IsTriplet():
			fu += tripletFu(m)
		case m.Kind == Pair:
			fu += pairFu(env, m.Tile())
		}
	}

	switch hand.Wait {
	case Kanchan, Penchan, Tanki:
		fu += fuWait
	}

	fu = (fu + 9) / 10 * 10
	if !closed && fu == fuBase {
		fu = fuOpenMin
	}
	return fu
}

// tripletFu: 2 for an open simple pon, doubled for yaochu, times four for
// a kan, doubled again when concealed.
func tripletFu(m Meld) int {
	fu := 2
	if m.Tile().IsYaochu() {
		fu *= 2
	}
	if m.IsKan() {
		fu *= 4
	}
	if !m.IsOpen() {
		fu *= 2
	}
	return fu
}

func pairFu(env *HandEnvironment, t Tile) int {
	fu := 0
	if t.IsDragon() {
		fu += fuValuePair
	}
	if t == env.SeatWind.Tile() {
		fu += fuValuePair
	}
	if t == env.RoundWind.Tile() {
		fu += fuValuePair
	}
	return fu
}
