package golurk

import "errors"

var (
	// ErrNotAllowed is returned (wrapped) for any selection that is invalid in the battle's current state.
	// The battle is never changed when this is returned.
	ErrNotAllowed  = errors.New("not allowed")
	ErrEmptyParty  = errors.New("party has no pokemon")
	ErrUnknownItem = errors.New("unknown item")
	ErrBadRecord   = errors.New("invalid pokemon record")
)
