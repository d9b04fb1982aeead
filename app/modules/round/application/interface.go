package roundservice

import (
	"context"

	rounddb "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// CreateRoundParams describes a new itinerary entry. TeeTimeInput is natural
// language and is resolved against the trip timezone.
type CreateRoundParams struct {
	TripDay      int
	Name         string
	CourseID     sharedtypes.CourseID
	TeeTimeInput string
	DressCode    string
	Notes        string
}

// Service manages the trip itinerary: rounds, tee times, and pairings.
type Service interface {
	CreateRound(ctx context.Context, params CreateRoundParams) (*rounddb.Round, error)
	GetRound(ctx context.Context, roundID sharedtypes.RoundID) (*rounddb.Round, error)
	Itinerary(ctx context.Context) ([]rounddb.Round, error)
	RescheduleTeeTime(ctx context.Context, roundID sharedtypes.RoundID, teeTimeInput string) (*rounddb.Round, error)

	SetPairings(ctx context.Context, roundID sharedtypes.RoundID, groups [][]sharedtypes.AttendeeID) error
	ListPairings(ctx context.Context, roundID sharedtypes.RoundID) ([]rounddb.Pairing, error)
}
