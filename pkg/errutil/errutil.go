package errutil

import (
	"errors"
)

var (
	ErrBadRoute          = errors.New("bad route")
	ErrNotFound          = errors.New("not found")
	ErrIllegalParameter  = errors.New("illegal parameter")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrDBOperation       = errors.New("database opertaion failed")
	ErrCacheOperation    = errors.New("cache opertaion failed")
	ErrServerInternal    = errors.New("server internal error")
	ErrInitFailed        = errors.New("initialize failed")
	ErrNotImplemented    = errors.New("not implemented")
	ErrHistoryNotFound   = errors.New("history not found")
	ErrGameNotFound      = errors.New("game not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrIllegalTile       = errors.New("illegal tile")
	ErrIllegalMeld       = errors.New("illegal meld")
	ErrDismatchTileNum   = errors.New("a shortage or surplus of tiles")
	ErrIllegalHandShape  = errors.New("hand is not a complete shape")
	ErrNoYaku            = errors.New("hand has no yaku")
	ErrFuriten           = errors.New("ron is not allowed in furiten")
	ErrNotWon            = errors.New("not won now")
	ErrWallExhausted     = errors.New("wall exhausted")
	ErrIllegalGameStatus = errors.New("illegal game status")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrTileNotInHand     = errors.New("tile not in hand")
	ErrRiichiLocked      = errors.New("hand is locked by riichi")
	ErrNotTenpai         = errors.New("hand is not tenpai")
	ErrScoreNotEnough    = errors.New("score not enough")
)
