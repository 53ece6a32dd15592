package errutil

import (
	"github.com/pkg/errors"
)

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	rcBadRoute
	rcNotFound
	rcIllegalParameter
	rcInvalidParameter
	rcDbOperation
	rcCacheOperation
	rcServerInternal
	rcInitFailed
	rcNotImplemented
	rcHistoryNotFound
	rcGameNotFound
	rcPlayerNotFound
	rcPermissionDenied
)

// scoring and table errors
const (
	rcIllegalTile = codeBase + 100 + iota
	rcIllegalMeld
	rcDismatchTileNum
	rcIllegalHandShape
	rcNoYaku
	rcFuriten
	rcNotWon
	rcWallExhausted
	rcIllegalGameStatus
	rcNotYourTurn
	rcTileNotInHand
	rcRiichiLocked
	rcNotTenpai
	rcScoreNotEnough
)

var errs = map[error]int{
	ErrBadRoute:          rcBadRoute,
	ErrNotFound:          rcNotFound,
	ErrIllegalParameter:  rcIllegalParameter,
	ErrInvalidParameter:  rcInvalidParameter,
	ErrDBOperation:       rcDbOperation,
	ErrCacheOperation:    rcCacheOperation,
	ErrServerInternal:    rcServerInternal,
	ErrInitFailed:        rcInitFailed,
	ErrNotImplemented:    rcNotImplemented,
	ErrHistoryNotFound:   rcHistoryNotFound,
	ErrGameNotFound:      rcGameNotFound,
	ErrPlayerNotFound:    rcPlayerNotFound,
	ErrPermissionDenied:  rcPermissionDenied,
	ErrIllegalTile:       rcIllegalTile,
	ErrIllegalMeld:       rcIllegalMeld,
	ErrDismatchTileNum:   rcDismatchTileNum,
	ErrIllegalHandShape:  rcIllegalHandShape,
	ErrNoYaku:            rcNoYaku,
	ErrFuriten:           rcFuriten,
	ErrNotWon:            rcNotWon,
	ErrWallExhausted:     rcWallExhausted,
	ErrIllegalGameStatus: rcIllegalGameStatus,
	ErrNotYourTurn:       rcNotYourTurn,
	ErrTileNotInHand:     rcTileNotInHand,
	ErrRiichiLocked:      rcRiichiLocked,
	ErrNotTenpai:         rcNotTenpai,
	ErrScoreNotEnough:    rcScoreNotEnough,
}

//Code code for the error, wrapped errors report the code of their cause
func Code(err error) int {
	if c, ok := errs[errors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
