package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lonng/riichi/internal/game/mahjong"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "game")

type lastDiscard struct {
	seat  int
	tile  mahjong.Tile
	index int // position in the discarder's pile
}

// Game is a four-seat table playing consecutive hands. It deals from a
// Wall, tracks turn order and calls, and builds a HandEnvironment for every
// win claim before handing it to the scoring engine.
type Game struct {
	mu sync.Mutex

	id         string
	rng        *rand.Rand
	recorder   Recorder
	startScore int
	logger     *log.Entry

	players   [numSeats]*Player
	status    Status
	round     int // hands dealt so far
	roundWind mahjong.Wind
	dealer    int
	honba     int
	deposits  int // riichi sticks waiting on the table
	streak    int // consecutive dealer wins
	beginAt   int64

	wall         *Wall
	turn         int
	discard      *lastDiscard
	interrupted  bool // a call broke the first go-around
	rinshan      bool
	discardRound int

	last *RoundResult
}

type Option func(*Game)

// WithSeed makes the shuffle reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

func WithStartScore(score int) Option {
	return func(g *Game) { g.startScore = score }
}

func New(opts ...Option) *Game {
	g := &Game{
		id:         uuid.New(),
		startScore: defaultStartScore,
		roundWind:  mahjong.East,
		status:     StatusIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.logger = logger.WithField(fieldGame, g.id)
	for i := range g.players {
		g.players[i] = newPlayer(g.id, i, g.startScore)
	}
	return g
}

func (g *Game) ID() string { return g.id }

// StartRound deals a fresh hand. The dealer receives a 14th tile and acts first.
func (g *Game) StartRound() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.startRound()
}

func (g *Game) startRound() error {
	if g.status == StatusPlaying {
		return errors.Wrap(errutil.ErrIllegalGameStatus, "hand in progress")
	}

	g.wall = NewWall(g.rng)
	for _, p := range g.players {
		p.reset()
	}
	for n := 0; n < 13; n++ {
		for i := 0; i < numSeats; i++ {
			t, _ := g.wall.Draw()
			g.players[(g.dealer+i)%numSeats].deal(t)
		}
	}
	t, _ := g.wall.Draw()
	g.players[g.dealer].draw(t)

	g.round++
	g.turn = g.dealer
	g.discard = nil
	g.interrupted = false
	g.rinshan = false
	g.discardRound = 0
	g.beginAt = time.Now().Unix()
	g.status = StatusPlaying

	g.logger.Infof("Round %d started, wind=%s dealer=%d honba=%d deposits=%d",
		g.round, g.roundWind, g.dealer, g.honba, g.deposits)
	return nil
}

func (g *Game) checkPlaying() error {
	if g.status != StatusPlaying {
		return errors.Wrapf(errutil.ErrIllegalGameStatus, "status %s", g.status)
	}
	return nil
}

func (g *Game) checkSeat(seat int) (*Player, error) {
	if seat < 0 || seat >= numSeats {
		return nil, errors.Wrapf(errutil.ErrPlayerNotFound, "seat %d", seat)
	}
	return g.players[seat], nil
}

func (g *Game) checkTurn(seat int) (*Player, error) {
	if err := g.checkPlaying(); err != nil {
		return nil, err
	}
	p, err := g.checkSeat(seat)
	if err != nil {
		return nil, err
	}
	if g.turn != seat {
		return nil, errors.Wrapf(errutil.ErrNotYourTurn, "seat %d, turn %d", seat, g.turn)
	}
	return p, nil
}

func (g *Game) seatWind(seat int) mahjong.Wind {
	return mahjong.Wind((seat-g.dealer+numSeats)%numSeats) + mahjong.East
}

// passDiscard marks every seat except the discarder and skip that let a
// winning discard go by as furiten.
func (g *Game) passDiscard(skip int) {
	d := g.discard
	if d == nil {
		return
	}
	for _, p := range g.players {
		if p.seat == d.seat || p.seat == skip {
			continue
		}
		if p.waits().Contains(d.tile) {
			p.furiten = true
			p.logger.Debugf("Passed on %s, furiten", d.tile)
		}
	}
	g.discard = nil
}

// interrupt ends every first-turn and ippatsu window.
func (g *Game) interrupt() {
	g.interrupted = true
	for _, p := range g.players {
		p.ippatsu = false
	}
}

// Draw takes the next wall tile for the seat whose turn it is.
func (g *Game) Draw(seat int) (mahjong.Tile, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.checkTurn(seat)
	if err != nil {
		return mahjong.Tile{}, err
	}
	if p.mustDiscard {
		return mahjong.Tile{}, errors.Wrap(errutil.ErrIllegalGameStatus, "discard first")
	}

	t, err := g.wall.Draw()
	if err != nil {
		return mahjong.Tile{}, err
	}
	g.passDiscard(noSeat)
	g.rinshan = false
	p.draw(t)
	return t, nil
}

// Discard throws a tile from the hand of the seat whose turn it is.
func (g *Game) Discard(seat int, t mahjong.Tile) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.checkTurn(seat)
	if err != nil {
		return err
	}
	if !p.mustDiscard {
		return errors.Wrap(errutil.ErrIllegalGameStatus, "draw first")
	}
	if p.riichi {
		if !p.hasDrawn || p.drawn != t {
			return errors.Wrapf(errutil.ErrRiichiLocked, "discard %s", t)
		}
		if p.waits().Contains(t) {
			p.furiten = true
			p.logger.Debugf("Discarded winning tile %s in riichi, furiten", t)
		}
	}
	return g.doDiscard(p, t)
}

func (g *Game) doDiscard(p *Player, t mahjong.Tile) error {
	if err := p.discard(t); err != nil {
		return errors.Wrapf(err, "discard %s", t)
	}
	g.discard = &lastDiscard{seat: p.seat, tile: t, index: len(p.discards) - 1}
	g.rinshan = false
	g.turn = (p.seat + 1) % numSeats
	if g.turn == g.dealer {
		g.discardRound++
	}
	return nil
}

// DeclareRiichi discards t and locks the hand. The hand must stay tenpai
// without t, be closed, and afford the deposit.
func (g *Game) DeclareRiichi(seat int, t mahjong.Tile) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.checkTurn(seat)
	if err != nil {
		return err
	}
	switch {
	case !p.hasDrawn:
		return errors.Wrap(errutil.ErrIllegalGameStatus, "riichi needs a drawn tile")
	case p.riichi:
		return errors.Wrap(errutil.ErrIllegalGameStatus, "already in riichi")
	case !p.isClosed():
		return errors.Wrap(errutil.ErrIllegalGameStatus, "riichi needs a closed hand")
	case p.score < riichiDeposit:
		return errutil.ErrScoreNotEnough
	case g.wall.Remaining() < numSeats:
		return errors.Wrap(errutil.ErrIllegalGameStatus, "too few tiles left for riichi")
	}

	rest, ok := p.concealed().Remove(t)
	if !ok {
		return errors.Wrapf(errutil.ErrTileNotInHand, "riichi %s", t)
	}
	if len(mahjong.Waits(rest, p.melds)) == 0 {
		return errutil.ErrNotTenpai
	}

	double := p.firstTurn && !g.interrupted
	if err := g.doDiscard(p, t); err != nil {
		return err
	}
	p.riichi = true
	p.doubleRiichi = double
	p.ippatsu = true
	p.score -= riichiDeposit
	g.deposits++
	p.logger.Infof("Riichi declared on %s, double=%v", t, double)
	return nil
}

// claimable checks that seat may call the last discard.
func (g *Game) claimable(seat int) (*Player, *lastDiscard, error) {
	if err := g.checkPlaying(); err != nil {
		return nil, nil, err
	}
	p, err := g.checkSeat(seat)
	if err != nil {
		return nil, nil, err
	}
	d := g.discard
	if d == nil || d.seat == seat {
		return nil, nil, errors.Wrap(errutil.ErrIllegalGameStatus, "no discard to claim")
	}
	if p.riichi {
		return nil, nil, errutil.ErrRiichiLocked
	}
	return p, d, nil
}

func (g *Game) claim(p *Player, d *lastDiscard, m mahjong.Meld) {
	g.players[d.seat].claimed[d.index] = true
	g.passDiscard(p.seat)
	g.interrupt()
	p.melds = append(p.melds, m)
	p.firstTurn = false
	p.mustDiscard = true
	g.turn = p.seat
	p.logger.Infof("Called %s", m)
}

// Pon claims the last discard with two matching tiles from any seat.
func (g *Game) Pon(seat int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, d, err := g.claimable(seat)
	if err != nil {
		return err
	}
	if err := p.removeTiles(d.tile, 2); err != nil {
		return errors.Wrapf(err, "pon %s", d.tile)
	}
	g.claim(p, d, mahjong.NewPon(mahjong.RelativeTo(d.seat, seat), d.tile))
	return nil
}

// Chi claims the last discard from the seat on the left, completing a run
// with a and b.
func (g *Game) Chi(seat int, a, b mahjong.Tile) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, d, err := g.claimable(seat)
	if err != nil {
		return err
	}
	if (d.seat+1)%numSeats != seat {
		return errors.Wrap(errutil.ErrNotYourTurn, "chi only from the left")
	}

	m := mahjong.NewChi(a, b, d.tile).Claimed(mahjong.Kamicha)
	if err := m.Validate(); err != nil {
		return err
	}
	need := mahjong.Tiles{a, b}
	if p.hand.Count(a) < need.Count(a) || p.hand.Count(b) < need.Count(b) {
		return errors.Wrapf(errutil.ErrTileNotInHand, "chi %s%s", a, b)
	}
	if err := p.removeTiles(a, 1); err != nil {
		return errors.Wrapf(err, "chi %s%s", a, b)
	}
	if err := p.removeTiles(b, 1); err != nil {
		return errors.Wrapf(err, "chi %s%s", a, b)
	}
	g.claim(p, d, m)
	return nil
}

// OpenKan claims the last discard with three matching tiles and draws a
// replacement.
func (g *Game) OpenKan(seat int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, d, err := g.claimable(seat)
	if err != nil {
		return err
	}
	if g.wall.Remaining() == 0 {
		return errutil.ErrWallExhausted
	}
	if err := p.removeTiles(d.tile, 3); err != nil {
		return errors.Wrapf(err, "kan %s", d.tile)
	}
	g.claim(p, d, mahjong.NewOpenKan(mahjong.RelativeTo(d.seat, seat), d.tile))
	return g.replacement(p)
}

// ClosedKan sets aside four concealed copies of t and draws a replacement.
func (g *Game) ClosedKan(seat int, t mahjong.Tile) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.checkTurn(seat)
	if err != nil {
		return err
	}
	switch {
	case !p.hasDrawn:
		return errors.Wrap(errutil.ErrIllegalGameStatus, "kan needs a drawn tile")
	case p.riichi:
		return errutil.ErrRiichiLocked
	case p.concealed().Count(t) < 4:
		return errors.Wrapf(errutil.ErrTileNotInHand, "kan %s", t)
	case g.wall.Remaining() == 0:
		return errutil.ErrWallExhausted
	}

	p.mergeDrawn()
	if err := p.removeTiles(t, 4); err != nil {
		return errors.Wrapf(err, "kan %s", t)
	}
	p.melds = append(p.melds, mahjong.NewClosedKan(t))
	g.interrupt()
	p.logger.Infof("Closed kan %s", t)
	return g.replacement(p)
}

func (g *Game) replacement(p *Player) error {
	t, err := g.wall.DrawReplacement()
	if err != nil {
		return err
	}
	p.draw(t)
	g.rinshan = true
	return nil
}

// environment describes a win by p on tile.
func (g *Game) environment(p *Player, tile mahjong.Tile, selfDraw bool, from mahjong.RelativeSeat) *mahjong.HandEnvironment {
	env := &mahjong.HandEnvironment{
		RoundWind:         g.roundWind,
		SeatWind:          g.seatWind(p.seat),
		DiscardRound:      g.discardRound,
		BonusCount:        g.honba,
		BonusPoints:       g.deposits * riichiDeposit,
		Concealed:         p.hand.Clone(),
		OpenMelds:         append([]mahjong.Meld(nil), p.melds...),
		LastTile:          tile,
		IsSelfDraw:        selfDraw,
		DiscardedFrom:     from,
		IsRiichi:          p.riichi,
		IsDoubleRiichi:    p.doubleRiichi,
		IsIppatsu:         p.ippatsu,
		IsRinshan:         selfDraw && g.rinshan,
		IsLastTile:        g.wall.Remaining() == 0,
		IsFirstTurn:       p.firstTurn && !g.interrupted,
		Discards:          p.discards.Clone(),
		IsFuriten:         p.furiten,
		DoraIndicators:    g.wall.DoraIndicators(),
		UraDoraIndicators: g.wall.UraDoraIndicators(),
	}
	if p.seat == g.dealer {
		env.DealerWinStreak = g.streak
	}
	return env
}

// Tsumo claims a win on the drawn tile.
func (g *Game) Tsumo(seat int) (*RoundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.checkTurn(seat)
	if err != nil {
		return nil, err
	}
	if !p.hasDrawn {
		return nil, errors.Wrap(errutil.ErrIllegalGameStatus, "tsumo needs a drawn tile")
	}

	res, err := mahjong.ScoreHand(g.environment(p, p.drawn, true, mahjong.Self))
	if err != nil {
		return nil, err
	}
	return g.settleWin(p, noSeat, p.drawn, res), nil
}

// Ron claims a win on the last discard.
func (g *Game) Ron(seat int) (*RoundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPlaying(); err != nil {
		return nil, err
	}
	p, err := g.checkSeat(seat)
	if err != nil {
		return nil, err
	}
	d := g.discard
	if d == nil || d.seat == seat {
		return nil, errors.Wrap(errutil.ErrIllegalGameStatus, "no discard to ron")
	}

	res, err := mahjong.ScoreHand(g.environment(p, d.tile, false, mahjong.RelativeTo(d.seat, seat)))
	if err != nil {
		return nil, err
	}
	return g.settleWin(p, d.seat, d.tile, res), nil
}

// ExhaustiveDraw ends a hand whose live wall is empty once the last
// discard has been made.
func (g *Game) ExhaustiveDraw() (*RoundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPlaying(); err != nil {
		return nil, err
	}
	if g.wall.Remaining() > 0 {
		return nil, errors.Wrapf(errutil.ErrIllegalGameStatus, "%d tiles left", g.wall.Remaining())
	}
	if g.players[g.turn].mustDiscard {
		return nil, errors.Wrap(errutil.ErrIllegalGameStatus, "last discard pending")
	}
	return g.settleDraw(), nil
}

// NextRound moves the dealer and honba counters on and deals again.
func (g *Game) NextRound() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusFinished || g.last == nil {
		return errors.Wrapf(errutil.ErrIllegalGameStatus, "status %s", g.status)
	}

	last := g.last
	switch {
	case last.DealerKeeps:
		g.honba++
		if !last.Drawn {
			g.streak++
		}
	default:
		if last.Drawn {
			g.honba++
		} else {
			g.honba = 0
		}
		g.streak = 0
		g.dealer = (g.dealer + 1) % numSeats
		if g.dealer == 0 {
			g.roundWind = g.roundWind.Next()
		}
	}
	return g.startRound()
}

// Player returns a copy of a seat's state.
func (g *Game) Player(seat int) (PlayerView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.checkSeat(seat)
	if err != nil {
		return PlayerView{}, err
	}
	return p.view(g.seatWind(seat)), nil
}

// State is a copy of the table.
type State struct {
	ID             string               `json:"id"`
	Status         string               `json:"status"`
	Round          int                  `json:"round"`
	RoundWind      mahjong.Wind         `json:"round_wind"`
	Dealer         int                  `json:"dealer"`
	Honba          int                  `json:"honba"`
	Deposits       int                  `json:"deposits"`
	Turn           int                  `json:"turn"`
	Remaining      int                  `json:"remaining"`
	DoraIndicators mahjong.Tiles        `json:"dora_indicators"`
	LastDiscard    *mahjong.Tile        `json:"last_discard,omitempty"`
	Players        [numSeats]PlayerView `json:"players"`
}

func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := State{
		ID:        g.id,
		Status:    g.status.String(),
		Round:     g.round,
		RoundWind: g.roundWind,
		Dealer:    g.dealer,
		Honba:     g.honba,
		Deposits:  g.deposits,
		Turn:      g.turn,
	}
	if g.wall != nil {
		s.Remaining = g.wall.Remaining()
		s.DoraIndicators = g.wall.DoraIndicators()
	}
	if d := g.discard; d != nil {
		t := d.tile
		s.LastDiscard = &t
	}
	for i, p := range g.players {
		s.Players[i] = p.view(g.seatWind(i))
	}
	return s
}
