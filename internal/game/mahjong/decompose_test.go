package mahjong

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ronEnv(hand, win string, open ...Meld) *HandEnvironment {
	return &HandEnvironment{
		RoundWind:     East,
		SeatWind:      South,
		Concealed:     MustParseTiles(hand),
		OpenMelds:     open,
		LastTile:      MustParseTiles(win)[0],
		DiscardedFrom: Kamicha,
	}
}

func tsumoEnv(hand, win string, open ...Meld) *HandEnvironment {
	env := ronEnv(hand, win, open...)
	env.IsSelfDraw = true
	env.DiscardedFrom = Self
	return env
}

func chi(s string) Meld {
	ts := MustParseTiles(s)
	return NewChi(ts[0], ts[1], ts[2])
}

func tile(s string) Tile { return MustParseTiles(s)[0] }

func TestDecomposeUnique(t *testing.T) {
	ds := Decompose(ronEnv("123m456m789p234s9s", "9s"))
	require.Len(t, ds, 1)

	want := []Meld{
		NewPair(tile("9s")),
		chi("123m"),
		chi("456m"),
		chi("789p"),
		chi("234s"),
	}
	if diff := cmp.Diff(want, ds[0].Closed); diff != "" {
		t.Fatalf("closed melds mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Standard, ds[0].Shape)
	assert.Equal(t, Tanki, ds[0].Wait)
	assert.Equal(t, 0, ds[0].WinIndex)
	assert.Len(t, ds[0].Tiles, 14)
}

func TestDecomposeAmbiguous(t *testing.T) {
	ds := Decompose(ronEnv("111222333m456p7p", "7p"))
	require.Len(t, ds, 2)

	triplets := []Meld{
		NewPair(tile("7p")),
		NewPon(Self, tile("1m")),
		NewPon(Self, tile("2m")),
		NewPon(Self, tile("3m")),
		chi("456p"),
	}
	runs := []Meld{
		NewPair(tile("7p")),
		chi("123m"),
		chi("123m"),
		chi("123m"),
		chi("456p"),
	}
	if diff := cmp.Diff(triplets, ds[0].Closed); diff != "" {
		t.Fatalf("first reading (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(runs, ds[1].Closed); diff != "" {
		t.Fatalf("second reading (-want +got):\n%s", diff)
	}
}

func TestDecomposeWaits(t *testing.T) {
	cases := []struct {
		hand  string
		win   string
		waits []Wait
	}{
		{"123m456m789p23s99s", "4s", []Wait{Ryanmen}},
		{"123m456m789p23s99s", "1s", []Wait{Ryanmen}},
		{"123m456m789p12s99s", "3s", []Wait{Penchan}},
		{"123m456m789p24s99s", "3s", []Wait{Kanchan}},
		{"123m456m789p89s99m", "7s", []Wait{Penchan}},
		{"123m456m789p78s99m", "9s", []Wait{Ryanmen}},
		{"23345m789p234s99s", "4m", []Wait{Ryanmen, Kanchan}},
		{"123m456m789p55s99s", "9s", []Wait{Shanpon}},
	}

	for _, c := range cases {
		ds := Decompose(ronEnv(c.hand, c.win))
		var got []Wait
		for _, d := range ds {
			got = append(got, d.Wait)
		}
		assert.Equal(t, c.waits, got, "%s + %s", c.hand, c.win)
	}
}

func TestDecomposeRonTriplet(t *testing.T) {
	ds := Decompose(ronEnv("123m456m789p55s99s", "9s"))
	require.Len(t, ds, 1)
	m := ds[0].Closed[ds[0].WinIndex]
	assert.Equal(t, Pon, m.Kind)
	assert.Equal(t, Kamicha, m.From)
	assert.True(t, m.IsOpen())

	ds = Decompose(tsumoEnv("123m456m789p55s99s", "9s"))
	require.Len(t, ds, 1)
	assert.False(t, ds[0].Closed[ds[0].WinIndex].IsOpen())
}

func TestDecomposeSevenPairs(t *testing.T) {
	ds := Decompose(ronEnv("1133m5577p99sEEP", "P"))
	require.Len(t, ds, 1)
	assert.Equal(t, SevenPairs, ds[0].Shape)
	assert.Len(t, ds[0].Closed, 7)
	assert.Equal(t, 6, ds[0].WinIndex)
	assert.Equal(t, Tanki, ds[0].Wait)

	// two identical runs twice reads both ways
	ds = Decompose(ronEnv("112233m556677p9s", "9s"))
	require.Len(t, ds, 2)
	assert.Equal(t, Standard, ds[0].Shape)
	assert.Equal(t, SevenPairs, ds[1].Shape)
}

func TestDecomposeThirteenOrphans(t *testing.T) {
	ds := Decompose(tsumoEnv("19m19p19sESWNPFC", "1m"))
	require.Len(t, ds, 1)
	assert.Equal(t, ThirteenOrphans, ds[0].Shape)
	pair, ok := ds[0].Pair()
	assert.True(t, ok)
	assert.Equal(t, tile("1m"), pair.Tile())
}

func TestDecomposeOpen(t *testing.T) {
	env := ronEnv("123m456p789s5s", "5s", NewPon(Toimen, White.Tile()))
	ds := Decompose(env)
	require.Len(t, ds, 1)
	assert.Len(t, ds[0].Closed, 4)
	assert.Len(t, ds[0].Open, 1)
	assert.Len(t, ds[0].Tiles, 14)
}

func TestDecomposeIncomplete(t *testing.T) {
	assert.Empty(t, Decompose(ronEnv("123m456m789p23s9s", "1p")))
	assert.Empty(t, Decompose(ronEnv("1133m5577p99sEEP", "F")))
}

func TestDecomposeDeterministic(t *testing.T) {
	env := ronEnv("2223334445556m", "6m")
	first := Decompose(env)
	require.NotEmpty(t, first)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, Decompose(env)); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}

func TestWaits(t *testing.T) {
	cases := []struct {
		hand  string
		waits string
	}{
		{"23m456p789sEEE99s", "14m"},
		{"1133m5577p99sEEP", "P"},
		{"19m19p19sESWNPFC", "19m19p19sESWNPFC"},
		{"1112345678999m", "123456789m"},
		{"123m456p789s1357s", ""},
	}

	for _, c := range cases {
		got := Waits(MustParseTiles(c.hand), nil)
		assert.Equal(t, c.waits, got.String(), c.hand)
	}

	open := []Meld{NewPon(Toimen, East.Tile())}
	assert.Equal(t, "5s", Waits(MustParseTiles("123m456p789s5s"), open).String())
}
