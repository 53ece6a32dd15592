package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicPoints(t *testing.T) {
	cases := []struct {
		han, fu, yakuman int
		basic            int
	}{
		{1, 30, 0, 240},
		{2, 25, 0, 400},
		{4, 30, 0, 1920},
		{3, 70, 0, 2000},
		{4, 40, 0, 2000},
		{5, 0, 0, 2000},
		{6, 0, 0, 3000},
		{7, 30, 0, 3000},
		{8, 0, 0, 4000},
		{10, 0, 0, 4000},
		{11, 0, 0, 6000},
		{12, 0, 0, 6000},
		{13, 0, 0, 8000},
		{26, 0, 0, 8000},
		{0, 0, 1, 8000},
		{0, 0, 2, 16000},
	}

	for _, c := range cases {
		s := HanFuScore{Han: c.han, Fu: c.fu, YakumanCount: c.yakuman}
		if got := s.BasicPoints(); got != c.basic {
			t.Fatalf("%v: expect: %d, got: %d", s, c.basic, got)
		}
	}
}

func TestBasicPointsPreconditions(t *testing.T) {
	assert.Panics(t, func() { HanFuScore{Han: -1, Fu: 30}.BasicPoints() })
	assert.Panics(t, func() { HanFuScore{Han: 2}.BasicPoints() })
	assert.Panics(t, func() { HanFuScore{Han: 0, Fu: -10}.BasicPoints() })
	assert.NotPanics(t, func() { HanFuScore{Han: 5}.BasicPoints() })
}

func TestRoundUp100(t *testing.T) {
	cases := map[int]int{0: 0, 1: 100, 50: 100, 99: 100, 100: 100, 101: 200, 960: 1000, 7680: 7700}
	for in, want := range cases {
		assert.Equal(t, want, RoundUp100(in), "RoundUp100(%d)", in)
	}

	for v := 0; v <= 5000; v++ {
		r := RoundUp100(v)
		if r%100 != 0 || r < v || r > v+99 {
			t.Fatalf("RoundUp100(%d) = %d", v, r)
		}
		if RoundUp100(r) != r {
			t.Fatalf("RoundUp100 not idempotent at %d", r)
		}
	}
}

func TestPayments(t *testing.T) {
	cases := []struct {
		score          HanFuScore
		dealer, others int
		ron            int
		tsumoTotal     int
	}{
		// 1 han 30 fu
		{HanFuScore{Han: 1, Fu: 30}, 500, 300, 1000, 1100},
		{HanFuScore{Han: 1, Fu: 30, IsDealer: true}, 0, 500, 1500, 1500},
		// 2 han 25 fu
		{HanFuScore{Han: 2, Fu: 25}, 800, 400, 1600, 1600},
		// mangan
		{HanFuScore{Han: 5}, 4000, 2000, 8000, 8000},
		{HanFuScore{Han: 5, IsDealer: true}, 0, 4000, 12000, 12000},
		// honba adds 100 per payment
		{HanFuScore{Han: 1, Fu: 30, BonusCount: 2}, 700, 500, 1200, 1700},
		// double yakuman
		{HanFuScore{YakumanCount: 2}, 32000, 16000, 64000, 64000},
	}

	for _, c := range cases {
		dealer, others := c.score.TsumoScore()
		assert.Equal(t, c.dealer, dealer, "%v dealer share", c.score)
		assert.Equal(t, c.others, others, "%v non-dealer share", c.score)
		assert.Equal(t, c.ron, c.score.RonScore(), "%v ron", c.score)
		assert.Equal(t, c.ron, c.score.Total(false))
		assert.Equal(t, c.tsumoTotal, c.score.Total(true), "%v tsumo total", c.score)
	}
}

func TestLimit(t *testing.T) {
	assert.Equal(t, "", HanFuScore{Han: 3, Fu: 40}.Limit())
	assert.Equal(t, "mangan", HanFuScore{Han: 4, Fu: 40}.Limit())
	assert.Equal(t, "haneman", HanFuScore{Han: 6}.Limit())
	assert.Equal(t, "yakuman", HanFuScore{Han: 13}.Limit())
	assert.Equal(t, "2x yakuman", HanFuScore{YakumanCount: 2}.Limit())
}
