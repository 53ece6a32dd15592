package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/lonng/riichi/internal/hooks"
	"github.com/lonng/riichi/internal/web"
	"github.com/lonng/riichi/internal/web/api"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/protocol"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "riichi"
	app.Version = web.Version
	app.Usage = "riichi mahjong scoring server"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "start the http service",
			Action: serve,
		},
		{
			Name:      "score",
			Usage:     "score a winning hand",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "hand", Usage: "concealed tiles without the winning tile, e.g. `123m456p789s23s99s`"},
				cli.StringFlag{Name: "win", Usage: "winning `TILE`"},
				cli.StringSliceFlag{Name: "meld", Usage: "called meld as `KIND:TILES[:FROM]`, e.g. pon:555z:toimen"},
				cli.BoolFlag{Name: "tsumo", Usage: "won by self draw"},
				cli.StringFlag{Name: "from", Usage: "discarder on a ron: kamicha, toimen or shimocha"},
				cli.BoolFlag{Name: "riichi"},
				cli.BoolFlag{Name: "double-riichi"},
				cli.BoolFlag{Name: "ippatsu"},
				cli.BoolFlag{Name: "rinshan"},
				cli.BoolFlag{Name: "chankan"},
				cli.BoolFlag{Name: "last", Usage: "won on the last tile"},
				cli.StringFlag{Name: "seat", Value: "E", Usage: "seat `WIND`"},
				cli.StringFlag{Name: "round", Value: "E", Usage: "round `WIND`"},
				cli.StringFlag{Name: "dora", Usage: "dora indicators"},
				cli.StringFlag{Name: "ura", Usage: "ura dora indicators"},
				cli.IntFlag{Name: "honba"},
				cli.IntFlag{Name: "deposits", Usage: "riichi sticks on the table"},
			},
			Action: score,
		},
	}

	app.Before = setup
	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.GlobalString("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("Read config failed: %v", err)
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewSourceHook(log.DebugLevel, log.ErrorLevel))
	}
	return nil
}

func serve(c *cli.Context) error {
	if c.GlobalBool("cpuprofile") {
		filename := fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix())
		f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, os.ModePerm)
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	web.Startup()
	return nil
}

func parseMelds(specs []string) ([]protocol.MeldInfo, error) {
	melds := make([]protocol.MeldInfo, 0, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.Wrapf(errutil.ErrIllegalMeld, "meld %q", s)
		}
		m := protocol.MeldInfo{Kind: parts[0], Tiles: parts[1]}
		if len(parts) == 3 {
			m.From = parts[2]
		}
		melds = append(melds, m)
	}
	return melds, nil
}

func score(c *cli.Context) error {
	melds, err := parseMelds(c.StringSlice("meld"))
	if err != nil {
		return err
	}

	resp, err := api.ScoreHand(&protocol.ScoreRequest{
		Hand:         c.String("hand"),
		Melds:        melds,
		WinTile:      c.String("win"),
		Tsumo:        c.Bool("tsumo"),
		From:         c.String("from"),
		RoundWind:    c.String("round"),
		SeatWind:     c.String("seat"),
		Riichi:       c.Bool("riichi"),
		DoubleRiichi: c.Bool("double-riichi"),
		Ippatsu:      c.Bool("ippatsu"),
		Rinshan:      c.Bool("rinshan"),
		Chankan:      c.Bool("chankan"),
		LastTile:     c.Bool("last"),
		Dora:         c.String("dora"),
		UraDora:      c.String("ura"),
		Honba:        c.Int("honba"),
		Deposits:     c.Int("deposits"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s wait)\n", resp.Hand, resp.Wait)
	for _, y := range resp.Yaku {
		fmt.Printf("  %s\n", y)
	}
	switch {
	case resp.Yakuman > 0:
		fmt.Printf("%dx yakuman", resp.Yakuman)
	default:
		fmt.Printf("%d han %d fu", resp.Han, resp.Fu)
	}
	if resp.Limit != "" {
		fmt.Printf(" %s", resp.Limit)
	}
	fmt.Printf(": %d points", resp.Points)
	if resp.Dealer > 0 || resp.NonDealer > 0 {
		fmt.Printf(" (%d/%d)", resp.NonDealer, resp.Dealer)
	}
	fmt.Println()
	return nil
}
