// Package domain holds the typed identifiers shared across bounded contexts.
//
// Each entity gets its own UUID-backed type so a CaseID can never be passed
// where a UserID is expected. Parse* functions are the trust boundary: they
// reject empty, malformed and nil UUIDs with CodeInvalidInput.
package domain

import (
	"github.com/google/uuid"

	dErrors "casebook/pkg/domain-errors"
)

type (
	UserID          uuid.UUID
	CaseID          uuid.UUID
	ParticipationID uuid.UUID
	HiringRequestID uuid.UUID
	BadgeID         uuid.UUID
	BadgeAwardID    uuid.UUID
	RatingID        uuid.UUID
	JobPostID       uuid.UUID
	ApplicationID   uuid.UUID
)

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return parsed, nil
}

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

func ParseCaseID(s string) (CaseID, error) {
	u, err := parseUUID(s, "case id")
	return CaseID(u), err
}

func ParseParticipationID(s string) (ParticipationID, error) {
	u, err := parseUUID(s, "participation id")
	return ParticipationID(u), err
}

func ParseHiringRequestID(s string) (HiringRequestID, error) {
	u, err := parseUUID(s, "hiring request id")
	return HiringRequestID(u), err
}

func ParseBadgeID(s string) (BadgeID, error) {
	u, err := parseUUID(s, "badge id")
	return BadgeID(u), err
}

func ParseBadgeAwardID(s string) (BadgeAwardID, error) {
	u, err := parseUUID(s, "badge award id")
	return BadgeAwardID(u), err
}

func ParseRatingID(s string) (RatingID, error) {
	u, err := parseUUID(s, "rating id")
	return RatingID(u), err
}

func ParseJobPostID(s string) (JobPostID, error) {
	u, err := parseUUID(s, "job post id")
	return JobPostID(u), err
}

func ParseApplicationID(s string) (ApplicationID, error) {
	u, err := parseUUID(s, "application id")
	return ApplicationID(u), err
}

func (id UserID) String() string { return uuid.UUID(id).String() }
func (id UserID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id CaseID) String() string { return uuid.UUID(id).String() }
func (id CaseID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id CaseID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *CaseID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id ParticipationID) String() string { return uuid.UUID(id).String() }
func (id ParticipationID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ParticipationID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *ParticipationID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id HiringRequestID) String() string { return uuid.UUID(id).String() }
func (id HiringRequestID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id HiringRequestID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *HiringRequestID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id BadgeID) String() string { return uuid.UUID(id).String() }
func (id BadgeID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id BadgeID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *BadgeID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id BadgeAwardID) String() string { return uuid.UUID(id).String() }
func (id BadgeAwardID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id BadgeAwardID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *BadgeAwardID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id RatingID) String() string { return uuid.UUID(id).String() }
func (id RatingID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id RatingID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *RatingID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id JobPostID) String() string { return uuid.UUID(id).String() }
func (id JobPostID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id JobPostID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *JobPostID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id ApplicationID) String() string { return uuid.UUID(id).String() }
func (id ApplicationID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ApplicationID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
func (id *ApplicationID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
