package game

import (
	"github.com/lonng/riichi/internal/game/mahjong"
	"github.com/lonng/riichi/pkg/errutil"
	log "github.com/sirupsen/logrus"
)

// Player is one seat at the table. All access goes through Game, which
// holds the lock.
type Player struct {
	seat  int
	score int

	hand     mahjong.Tiles // concealed tiles, drawn tile excluded
	drawn    mahjong.Tile
	hasDrawn bool
	melds    []mahjong.Meld
	discards mahjong.Tiles
	claimed  []bool // discards taken by another seat's call

	mustDiscard  bool
	riichi       bool
	doubleRiichi bool
	ippatsu      bool
	furiten      bool // temporary furiten, permanent once in riichi
	firstTurn    bool // no own discard yet this hand

	logger *log.Entry
}

func newPlayer(gameID string, seat, score int) *Player {
	return &Player{
		seat:   seat,
		score:  score,
		logger: log.WithFields(log.Fields{fieldGame: gameID, fieldSeat: seat}),
	}
}

func (p *Player) reset() {
	p.hand = p.hand[:0]
	p.hasDrawn = false
	p.melds = nil
	p.discards = nil
	p.claimed = nil
	p.mustDiscard = false
	p.riichi = false
	p.doubleRiichi = false
	p.ippatsu = false
	p.furiten = false
	p.firstTurn = true
}

func (p *Player) deal(t mahjong.Tile) {
	p.hand = append(p.hand, t)
	p.hand.Sort()
}

func (p *Player) draw(t mahjong.Tile) {
	p.drawn = t
	p.hasDrawn = true
	p.mustDiscard = true
}

// mergeDrawn moves the drawn tile into the sorted hand.
func (p *Player) mergeDrawn() {
	if !p.hasDrawn {
		return
	}
	p.hasDrawn = false
	p.deal(p.drawn)
}

// concealed returns every concealed tile including the drawn one.
func (p *Player) concealed() mahjong.Tiles {
	tiles := p.hand.Clone()
	if p.hasDrawn {
		tiles = append(tiles, p.drawn)
		tiles.Sort()
	}
	return tiles
}

func (p *Player) removeTiles(t mahjong.Tile, n int) error {
	if p.hand.Count(t) < n {
		return errutil.ErrTileNotInHand
	}
	for i := 0; i < n; i++ {
		p.hand, _ = p.hand.Remove(t)
	}
	return nil
}

func (p *Player) discard(t mahjong.Tile) error {
	if p.hasDrawn && p.drawn == t {
		p.hasDrawn = false
	} else {
		if err := p.removeTiles(t, 1); err != nil {
			return err
		}
		p.mergeDrawn()
	}

	p.discards = append(p.discards, t)
	p.claimed = append(p.claimed, false)
	p.mustDiscard = false
	p.firstTurn = false
	p.ippatsu = false
	if !p.riichi {
		p.furiten = false
	}
	return nil
}

func (p *Player) isClosed() bool {
	for _, m := range p.melds {
		if m.Kind != mahjong.ClosedKan {
			return false
		}
	}
	return true
}

// waits lists the tiles completing the hand while it holds 13 tiles.
func (p *Player) waits() mahjong.Tiles {
	return mahjong.Waits(p.hand, p.melds)
}

// nagashi reports a discard pile of terminals and honors that nobody called from.
func (p *Player) nagashi() bool {
	if len(p.discards) == 0 {
		return false
	}
	for i, t := range p.discards {
		if !t.IsYaochu() || p.claimed[i] {
			return false
		}
	}
	return true
}

// PlayerView is a copy of a seat's public and private state.
type PlayerView struct {
	Seat     int            `json:"seat"`
	Wind     mahjong.Wind   `json:"wind"`
	Score    int            `json:"score"`
	Hand     mahjong.Tiles  `json:"hand"`
	Drawn    *mahjong.Tile  `json:"drawn,omitempty"`
	Melds    []mahjong.Meld `json:"melds"`
	Discards mahjong.Tiles  `json:"discards"`
	Riichi   bool           `json:"riichi"`
	Furiten  bool           `json:"furiten"`
}

func (p *Player) view(wind mahjong.Wind) PlayerView {
	v := PlayerView{
		Seat:     p.seat,
		Wind:     wind,
		Score:    p.score,
		Hand:     p.hand.Clone(),
		Melds:    append([]mahjong.Meld(nil), p.melds...),
		Discards: p.discards.Clone(),
		Riichi:   p.riichi,
		Furiten:  p.furiten,
	}
	if p.hasDrawn {
		t := p.drawn
		v.Drawn = &t
	}
	return v
}
