package mahjong

import "fmt"

const (
	manganBasic   = 2000
	hanemanBasic  = 3000
	baimanBasic   = 4000
	sanbaimanBase = 6000
	yakumanBasic  = 8000

	bonusPerStick = 100
)

// HanFuScore turns han and fu into payments. Every accessor is a pure
// function of the fields.
type HanFuScore struct {
	Han          int
	Fu           int
	YakumanCount int
	BonusCount   int // honba sticks, each adding 100 per payment
	IsDealer     bool
}

// BasicPoints is the base value every payment is derived from. It panics
// on han below zero, and on a non-positive fu where fu matters.
func (s HanFuScore) BasicPoints() int {
	if s.Han < 0 {
		panic(fmt.Sprintf("mahjong: basic points of negative han %d", s.Han))
	}
	if s.YakumanCount > 0 {
		return s.YakumanCount * yakumanBasic
	}

	switch {
	case s.Han <= 4:
		if s.Fu <= 0 {
			panic(fmt.Sprintf("mahjong: basic points of %d han with fu %d", s.Han, s.Fu))
		}
		basic := s.Fu << uint(2+s.Han)
		if basic > manganBasic {
			return manganBasic
		}
		return basic
	case s.Han == 5:
		return manganBasic
	case s.Han <= 7:
		return hanemanBasic
	case s.Han <= 10:
		return baimanBasic
	case s.Han <= 12:
		return sanbaimanBase
	default:
		return yakumanBasic
	}
}

func (s HanFuScore) perPerson(factor int) int {
	return RoundUp100(factor*s.BasicPoints() + bonusPerStick*s.BonusCount)
}

// TsumoScore returns what the dealer and what each non-dealer pays on a
// self draw. A dealer winner collects nonDealer from all three.
func (s HanFuScore) TsumoScore() (dealer, nonDealer int) {
	if s.IsDealer {
		return 0, s.perPerson(2)
	}
	return s.perPerson(2), s.perPerson(1)
}

// RonScore is paid by the discarder alone.
func (s HanFuScore) RonScore() int {
	if s.IsDealer {
		return s.perPerson(6)
	}
	return s.perPerson(4)
}

// Total is what the winner collects, riichi deposits excluded.
func (s HanFuScore) Total(selfDraw bool) int {
	if !selfDraw {
		return s.RonScore()
	}
	dealer, nonDealer := s.TsumoScore()
	if s.IsDealer {
		return 3 * nonDealer
	}
	return dealer + 2*nonDealer
}

// Limit names the limit hand reached, empty below mangan.
func (s HanFuScore) Limit() string {
	switch basic := s.BasicPoints(); {
	case s.YakumanCount > 1:
		return fmt.Sprintf("%dx yakuman", s.YakumanCount)
	case basic >= yakumanBasic:
		return "yakuman"
	case basic >= sanbaimanBase:
		return "sanbaiman"
	case basic >= baimanBasic:
		return "baiman"
	case basic >= hanemanBasic:
		return "haneman"
	case basic >= manganBasic:
		return "mangan"
	}
	return ""
}

func (s HanFuScore) String() string {
	if s.YakumanCount > 0 {
		return fmt.Sprintf("%d yakuman", s.YakumanCount)
	}
	return fmt.Sprintf("%d han %d fu", s.Han, s.Fu)
}

// RoundUp100 rounds a non-negative amount up to the next multiple of 100.
func RoundUp100(v int) int {
	return (v + 99) / 100 * 100
}
