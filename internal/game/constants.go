package game

import "fmt"

const (
	fieldGame = "game"
	fieldSeat = "seat"
)

const (
	numSeats          = 4
	defaultStartScore = 25000
	riichiDeposit     = 1000
	notenPenalty      = 3000 // split between tenpai and noten hands at an exhaustive draw
	noSeat            = -1
)

type Status int32

const (
	StatusIdle     Status = iota // created, no hand dealt yet
	StatusPlaying                // a hand is in progress
	StatusFinished               // hand settled, waiting for NextRound
)

var statusNames = [...]string{
	StatusIdle:     "idle",
	StatusPlaying:  "playing",
	StatusFinished: "finished",
}

func (s Status) String() string {
	if s < StatusIdle || s > StatusFinished {
		return fmt.Sprintf("status(%d)", int32(s))
	}
	return statusNames[s]
}
