package mahjong

import (
	"testing"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 123m 456m 789p 23s 99s waiting on 1s-4s
const pinfuHand = "123m456m789p23s99s"

func with(env *HandEnvironment, fn func(env *HandEnvironment)) *HandEnvironment {
	fn(env)
	return env
}

func TestScoreHandYaku(t *testing.T) {
	cases := []struct {
		name   string
		env    *HandEnvironment
		yaku   []Yaku
		han    int
		fu     int
		points int
	}{
		{"pinfu ron", ronEnv(pinfuHand, "4s"), []Yaku{Pinfu}, 1, 30, 1000},
		{"pinfu tsumo", tsumoEnv(pinfuHand, "4s"), []Yaku{MenzenTsumo, Pinfu}, 2, 20, 1500},
		{"chiitoitsu", ronEnv("1133m5577p99sEEP", "P"), []Yaku{Chiitoitsu}, 2, 25, 1600},
		{"riichi ippatsu haitei", with(tsumoEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.IsRiichi = true
			env.IsIppatsu = true
			env.IsLastTile = true
		}), []Yaku{Riichi, MenzenTsumo, Ippatsu, Haitei, Pinfu}, 5, 20, 8000},
		{"double riichi", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.IsRiichi = true
			env.IsDoubleRiichi = true
		}), []Yaku{DoubleRiichi, Pinfu}, 3, 30, 3900},
		{"riichi dora ura", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.IsRiichi = true
			env.DoraIndicators = MustParseTiles("3s")
			env.UraDoraIndicators = MustParseTiles("8p")
		}), []Yaku{Riichi, Pinfu}, 4, 30, 7700},
		{"ura needs riichi", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.DoraIndicators = MustParseTiles("3s")
			env.UraDoraIndicators = MustParseTiles("8p")
		}), []Yaku{Pinfu}, 2, 30, 2000},
		{"iipeikou tanyao", ronEnv("223344m567p56s88s", "7s"), []Yaku{Pinfu, Iipeikou, Tanyao}, 3, 30, 3900},
		{"ittsuu", ronEnv("123456789m23p55s", "4p"), []Yaku{Pinfu, Ittsuu}, 3, 30, 3900},
		{"sanshoku", ronEnv("123m123p12s789s55p", "3s"), []Yaku{SanshokuDoujun}, 2, 40, 2600},
		{"honitsu haku", ronEnv("123m567m99mPPP44m", "4m"), []Yaku{YakuhaiHaku, Honitsu}, 4, 40, 8000},
		{"junchan", ronEnv("123m789p111s89s99m", "7s"), []Yaku{Junchan}, 3, 40, 5200},
		{"chanta", ronEnv("123m789pEEE99s12s", "3s"), []Yaku{YakuhaiRoundWind, Chanta}, 3, 40, 5200},
		{"toitoi doukou", ronEnv("222m222p222sEE55p", "E"), []Yaku{Toitoi, Sanankou, SanshokuDoukou, YakuhaiRoundWind}, 7, 50, 12000},
		{"shousangen", ronEnv("PPPFFFC123m456p", "C"), []Yaku{YakuhaiHaku, YakuhaiHatsu, Shousangen}, 4, 50, 8000},
		{"open tanyao", ronEnv("234m678m34s66s", "5s", NewPon(Toimen, PinTile(5))), []Yaku{Tanyao}, 1, 30, 1000},
		{"closed kan fu", ronEnv("234m567p34s11s", "5s", NewClosedKan(White.Tile())), []Yaku{YakuhaiHaku}, 1, 70, 2300},
		{"rinshan", with(tsumoEnv("123m456m23s99s", "4s", NewClosedKan(PinTile(9))), func(env *HandEnvironment) {
			env.IsRinshan = true
		}), []Yaku{MenzenTsumo, Rinshan}, 2, 60, 4000},
		{"sanankou on ron", ronEnv("222m444p666s88sEE", "E"), []Yaku{Toitoi, Sanankou, YakuhaiRoundWind}, 5, 50, 8000},
		{"ryanpeikou over chiitoitsu", ronEnv("112233m556677p9s", "9s"), []Yaku{Ryanpeikou}, 3, 40, 5200},
		{"triplets over runs", ronEnv("111222333m456p7p", "7p"), []Yaku{Sanankou}, 2, 50, 3200},
		{"honba", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.BonusCount = 2
		}), []Yaku{Pinfu}, 1, 30, 1200},
	}

	for _, c := range cases {
		res, err := ScoreHand(c.env)
		require.NoError(t, err, c.name)
		assert.Equal(t, YakuWin, res.WinType.Kind, c.name)
		assert.Equal(t, c.yaku, res.WinType.Yaku, c.name)
		assert.Equal(t, c.han, res.Score.Han, c.name)
		assert.Equal(t, c.fu, res.Score.Fu, c.name)
		assert.Equal(t, c.points, res.Points, c.name)
	}
}

func TestScoreHandYakuman(t *testing.T) {
	cases := []struct {
		name    string
		env     *HandEnvironment
		yakuman []Yakuman
		points  int
	}{
		{"kokushi dealer tsumo", with(tsumoEnv("19m19p19sESWNPFC", "1m"), func(env *HandEnvironment) {
			env.SeatWind = East
		}), []Yakuman{Kokushi}, 48000},
		{"stacked", ronEnv("PPPFFFCCCEEES", "S"), []Yakuman{Suuankou, Daisangen, Tsuuiisou}, 96000},
		{"suuankou tsumo", tsumoEnv("222m444p666s88sEE", "E"), []Yakuman{Suuankou}, 32000},
		{"chuuren", tsumoEnv("1112345678999m", "5m"), []Yakuman{ChuurenPoutou}, 32000},
		{"daisuushii", ronEnv("EEESSSWWWNNN1m", "1m"), []Yakuman{Suuankou, Daisuushii}, 64000},
		{"ryuuiisou", ronEnv("223344s666s88sFF", "F"), []Yakuman{Ryuuiisou}, 32000},
		{"tenhou", with(tsumoEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.SeatWind = East
			env.IsFirstTurn = true
		}), []Yakuman{Tenhou}, 48000},
		{"renhou", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.IsFirstTurn = true
		}), []Yakuman{Renhou}, 32000},
	}

	for _, c := range cases {
		res, err := ScoreHand(c.env)
		require.NoError(t, err, c.name)
		assert.Equal(t, YakumanWin, res.WinType.Kind, c.name)
		assert.Equal(t, c.yakuman, res.WinType.Yakuman, c.name)
		assert.Empty(t, res.WinType.Yaku, c.name)
		assert.Equal(t, len(c.yakuman), res.Score.YakumanCount, c.name)
		assert.Equal(t, c.points, res.Points, c.name)
	}
}

func TestScoreHandErrors(t *testing.T) {
	cases := []struct {
		name string
		env  *HandEnvironment
		err  error
	}{
		{"no yaku", ronEnv("456p789s23s99s", "4s", chi("123m").Claimed(Kamicha)), errutil.ErrNoYaku},
		{"incomplete", ronEnv("123m456m789p23s9s", "1p"), errutil.ErrIllegalHandShape},
		{"short hand", ronEnv("123m456m789p23s", "4s"), errutil.ErrDismatchTileNum},
		{"fifth copy", ronEnv("1111m234m567m789p", "1m"), errutil.ErrDismatchTileNum},
		{"discard furiten", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.Discards = MustParseTiles("9m1s")
		}), errutil.ErrFuriten},
		{"flagged furiten", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.IsFuriten = true
		}), errutil.ErrFuriten},
		{"ron without discarder", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.DiscardedFrom = Self
		}), errutil.ErrInvalidParameter},
		{"pair called", ronEnv("123m456p789s5s", "5s", NewPair(East.Tile()).Claimed(Toimen)), errutil.ErrIllegalMeld},
		{"honba overflow", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.BonusCount = MaxBonusCount + 1
		}), errutil.ErrInvalidParameter},
		{"deposit overflow", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.BonusPoints = 1 << 62
		}), errutil.ErrInvalidParameter},
		{"bad wind", with(ronEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
			env.RoundWind = 0
		}), errutil.ErrInvalidParameter},
	}

	for _, c := range cases {
		res, err := ScoreHand(c.env)
		assert.Nil(t, res, c.name)
		assert.Equal(t, c.err, errors.Cause(err), c.name)
	}

	env := with(tsumoEnv(pinfuHand, "4s"), func(env *HandEnvironment) {
		env.BonusCount = MaxBonusCount
		env.BonusPoints = MaxBonusPoints
	})
	res, err := ScoreHand(env)
	require.NoError(t, err)
	dealer, other := res.Score.TsumoScore()
	assert.True(t, dealer > 0 && other > 0)
}

func TestScoreHandFuritenTsumo(t *testing.T) {
	env := tsumoEnv(pinfuHand, "4s")
	env.Discards = MustParseTiles("1s")
	res, err := ScoreHand(env)
	require.NoError(t, err)
	assert.Equal(t, 1500, res.Points)
}

func TestScoreHandDoesNotMutate(t *testing.T) {
	env := ronEnv("111222333m456p7p", "7p")
	before := env.Concealed.Clone()
	_, err := ScoreHand(env)
	require.NoError(t, err)
	assert.Equal(t, before, env.Concealed)
}

func TestResultDesc(t *testing.T) {
	env := ronEnv(pinfuHand, "4s")
	env.IsRiichi = true
	env.DoraIndicators = MustParseTiles("3s")
	res, err := ScoreHand(env)
	require.NoError(t, err)
	assert.Equal(t, []string{"riichi 1", "pinfu 1", "dora 1"}, res.Desc())
	assert.Equal(t, "3 han 30 fu", res.Score.String())
}

func TestIsFuriten(t *testing.T) {
	env := ronEnv(pinfuHand, "4s")
	assert.False(t, IsFuriten(env))
	env.Discards = MustParseTiles("4s")
	assert.True(t, IsFuriten(env))
}

func BenchmarkScoreHand(b *testing.B) {
	env := ronEnv("2223334445556m", "6m")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScoreHand(env)
	}
}

func BenchmarkWaits(b *testing.B) {
	hand := MustParseTiles("1112345678999m")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Waits(hand, nil)
	}
}
