package sharedtypes

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// scanUUID converts a database value into a uuid.UUID.
func scanUUID(src any) (uuid.UUID, error) {
	switch v := src.(type) {
	case nil:
		return uuid.Nil, nil
	case string:
		return uuid.Parse(v)
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.ParseBytes(v)
	default:
		return uuid.Nil, fmt.Errorf("unsupported uuid source type %T", src)
	}
}

// RoundID identifies one golf round of the trip.
type RoundID uuid.UUID

func NewRoundID() RoundID { return RoundID(uuid.New()) }

func (id RoundID) String() string                { return uuid.UUID(id).String() }
func (id RoundID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id RoundID) Value() (driver.Value, error)  { return id.String(), nil }
func (id RoundID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id *RoundID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = RoundID(u)
	return nil
}

func (id *RoundID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return fmt.Errorf("scan RoundID: %w", err)
	}
	*id = RoundID(u)
	return nil
}

// AttendeeID identifies a trip attendee (the player directory is maintained elsewhere).
type AttendeeID uuid.UUID

func NewAttendeeID() AttendeeID { return AttendeeID(uuid.New()) }

func (id AttendeeID) String() string                { return uuid.UUID(id).String() }
func (id AttendeeID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id AttendeeID) Value() (driver.Value, error)  { return id.String(), nil }
func (id AttendeeID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id *AttendeeID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = AttendeeID(u)
	return nil
}

func (id *AttendeeID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return fmt.Errorf("scan AttendeeID: %w", err)
	}
	*id = AttendeeID(u)
	return nil
}

// CourseID identifies a golf course.
type CourseID uuid.UUID

func NewCourseID() CourseID { return CourseID(uuid.New()) }

func (id CourseID) String() string                { return uuid.UUID(id).String() }
func (id CourseID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id CourseID) Value() (driver.Value, error)  { return id.String(), nil }
func (id CourseID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id *CourseID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = CourseID(u)
	return nil
}

func (id *CourseID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return fmt.Errorf("scan CourseID: %w", err)
	}
	*id = CourseID(u)
	return nil
}

// HoleID identifies a single hole of a course.
type HoleID uuid.UUID

func NewHoleID() HoleID { return HoleID(uuid.New()) }

func (id HoleID) String() string                { return uuid.UUID(id).String() }
func (id HoleID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id HoleID) Value() (driver.Value, error)  { return id.String(), nil }
func (id HoleID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id *HoleID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = HoleID(u)
	return nil
}

func (id *HoleID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return fmt.Errorf("scan HoleID: %w", err)
	}
	*id = HoleID(u)
	return nil
}

// ScorecardID identifies one player's scorecard for one round.
type ScorecardID uuid.UUID

func NewScorecardID() ScorecardID { return ScorecardID(uuid.New()) }

func (id ScorecardID) String() string                { return uuid.UUID(id).String() }
func (id ScorecardID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id ScorecardID) Value() (driver.Value, error)  { return id.String(), nil }
func (id ScorecardID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id *ScorecardID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = ScorecardID(u)
	return nil
}

func (id *ScorecardID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return fmt.Errorf("scan ScorecardID: %w", err)
	}
	*id = ScorecardID(u)
	return nil
}
