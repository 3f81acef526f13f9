package store

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidReaction   = errors.New("invalid reaction type")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)
