package scorecardservice

import "errors"

// Validation errors. These are checked before any persistence attempt, so a caller
// seeing one knows no partial write happened.
var (
	ErrInvalidStrokes = errors.New("strokes must be a positive integer")
	ErrInvalidPutts   = errors.New("putts must be zero or a positive integer")
	ErrInvalidTee     = errors.New("unknown tee color")

	// ErrScorecardIncomplete rejects completing a card that still has unscored holes.
	ErrScorecardIncomplete = errors.New("scorecard has unscored holes")
)
