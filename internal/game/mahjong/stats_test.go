package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoringCtx(t *testing.T) {
	closed := []Meld{
		NewPair(SouTile(9)),
		chi("123m"),
		chi("456m"),
		chi("789p"),
		chi("234s"),
	}
	ctx := NewScoringCtx(closed, nil)

	assert.Equal(t, 4, ctx.NumShun)
	assert.Equal(t, 1, ctx.NumPair)
	assert.Equal(t, 0, ctx.NumKou+ctx.NumKan+ctx.NumSpare)
	assert.Equal(t, 3, ctx.NumSuits)
	assert.Equal(t, 3, ctx.NumNumberSuits())
	assert.Equal(t, 0, ctx.NumHonor)
	assert.Equal(t, 3, ctx.NumTerminal)
	assert.Equal(t, [5]int{6, 3, 4, 0, 0}, ctx.SuitUsage)
	assert.True(t, ctx.IsClosed)
}

func TestScoringCtxOpen(t *testing.T) {
	closed := []Meld{NewPair(ManTile(5)), chi("345p"), NewPon(Self, SouTile(1))}
	open := []Meld{NewPon(Toimen, East.Tile()), NewClosedKan(White.Tile())}
	ctx := NewScoringCtx(closed, open)

	assert.False(t, ctx.IsClosed)
	assert.Equal(t, 2, ctx.NumKou)
	assert.Equal(t, 1, ctx.NumKan)
	assert.Equal(t, 3, ctx.NumTriplets())
	assert.Equal(t, 2, ctx.NumConcealedKou)
	assert.Equal(t, 2, ctx.NumHonor)
	assert.Equal(t, 5, ctx.NumSuits)
	assert.Equal(t, 1, ctx.NumTerminal)

	kanOnly := NewScoringCtx(closed, []Meld{NewClosedKan(White.Tile())})
	assert.True(t, kanOnly.IsClosed)
}

func TestSingleTileIsSpare(t *testing.T) {
	ctx := NewScoringCtx([]Meld{NewSingle(East.Tile()), NewSingle(ManTile(9))}, nil)
	assert.Equal(t, 2, ctx.NumSpare)
	assert.Equal(t, 1, ctx.NumHonor)
	assert.Equal(t, 1, ctx.NumTerminal)
}

func TestFu(t *testing.T) {
	cases := []struct {
		name string
		env  *HandEnvironment
		fu   int
	}{
		{"closed ron tanki", ronEnv("123m456m789p234s9s", "9s"), 40},
		{"open ron no extras", ronEnv("234m678m34s66s", "5s", NewPon(Toimen, PinTile(5))), 30},
		{"tsumo kanchan", tsumoEnv("123m456m789p24s99s", "3s"), 30},
		{"value pair", ronEnv("123m456m789p234sP", "P"), 40},
		{"double wind pair", with(ronEnv("123m456m789p234sE", "E"), func(env *HandEnvironment) {
			env.SeatWind = East
		}), 40},
	}

	for _, c := range cases {
		ds := Decompose(c.env)
		if len(ds) == 0 {
			t.Fatalf("%s: no reading", c.name)
		}
		assert.Equal(t, c.fu, Fu(c.env, &ds[0], false), c.name)
	}

	sevenPairs := ronEnv("1133m5577p99sEEP", "P")
	ds := Decompose(sevenPairs)
	assert.Equal(t, 25, Fu(sevenPairs, &ds[0], false))

	pinfu := ronEnv(pinfuHand, "4s")
	ds = Decompose(pinfu)
	assert.Equal(t, 30, Fu(pinfu, &ds[0], true))
	pinfu.IsSelfDraw = true
	assert.Equal(t, 20, Fu(pinfu, &ds[0], true))
}
