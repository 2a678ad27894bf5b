package repository

import "errors"

// ErrHoldingExists is returned by InsertHolding when the (participant, card) row already exists.
var ErrHoldingExists = errors.New("holding already exists")
