package engine

import "errors"

// Sentinel errors returned by engine operations. Callers match them with
// errors.Is; wrapped messages carry the specifics.
var (
	ErrInvalidPlayerCount   = errors.New("invalid player count")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrNotCurrentPlayer     = errors.New("not the current player")
	ErrInvalidPhase         = errors.New("action not legal in current phase")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrPropertyNotOwnable   = errors.New("space cannot be owned")
	ErrPropertyAlreadyOwned = errors.New("property already owned")
	ErrBuildingRule         = errors.New("building rule violation")
	ErrInvalidTrade         = errors.New("invalid trade")
	ErrGameOver             = errors.New("game is over")
)
