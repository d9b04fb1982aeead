package rounddb

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Repository is the persistence contract for the trip itinerary.
type Repository interface {
	CreateRound(ctx context.Context, db bun.IDB, round *Round) error
	GetRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*Round, error)
	// ListRounds returns the itinerary ordered by trip day.
	ListRounds(ctx context.Context, db bun.IDB) ([]Round, error)
	UpdateTeeTime(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, teeTime time.Time) error

	ReplacePairings(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, pairings []Pairing) error
	// ListPairings returns the round's groups ordered by group number.
	ListPairings(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]Pairing, error)
}
