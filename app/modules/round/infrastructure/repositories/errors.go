package rounddb

import "errors"

var (
	ErrRoundNotFound  = errors.New("round not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)
