package world

import "errors"

// Rejections of player actions. All are recoverable: the turn reports them
// and the game continues.
var (
	ErrNoExit            = errors.New("you can't go that way")
	ErrNotHere           = errors.New("that is not here")
	ErrNotCarried        = errors.New("that is not in your inventory")
	ErrAlreadyEquipped   = errors.New("that is already equipped")
	ErrNotEquippable     = errors.New("that cannot be equipped")
	ErrNotEquipped       = errors.New("that is not equipped")
	ErrNotPotion         = errors.New("that is not something you can drink")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicatePlace    = errors.New("a place with that name already exists here")
)

// ErrNoTarget is returned when an exit is created without a destination.
var ErrNoTarget = errors.New("exit has no target location")
