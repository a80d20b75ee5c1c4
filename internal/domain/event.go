package domain

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusUpcoming     Status = "upcoming"
	StatusActive       Status = "active"
	StatusPostponed    Status = "postponed"
	StatusCompleted    Status = "completed"
	StatusNotCompleted Status = "not_completed"
	StatusCancelled    Status = "cancelled"
)

// Terminal statuses are never changed by automatic reconciliation.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNotCompleted
}

// Joinable reports whether new participants may enroll while the drive is in s.
func (s Status) Joinable() bool {
	return s == StatusUpcoming || s == StatusActive || s == StatusPostponed
}

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusPostponed,
		StatusCompleted, StatusNotCompleted, StatusCancelled:
		return true
	}
	return false
}

// StatusDetail groups a status with the fields that only exist for certain
// statuses. Constructors keep the reason/postponed_until pairing correct;
// Validate is the backstop for details built from user input.
type StatusDetail struct {
	Status         Status
	Reason         string
	PostponedUntil *time.Time
	UpdatedBy      string
	UpdatedAt      time.Time
}

func Upcoming(reason, by string, at time.Time) StatusDetail {
	return StatusDetail{Status: StatusUpcoming, Reason: reason, UpdatedBy: by, UpdatedAt: at}
}

func Active(reason, by string, at time.Time) StatusDetail {
	return StatusDetail{Status: StatusActive, Reason: reason, UpdatedBy: by, UpdatedAt: at}
}

func Completed(reason, by string, at time.Time) StatusDetail {
	return StatusDetail{Status: StatusCompleted, Reason: reason, UpdatedBy: by, UpdatedAt: at}
}

func NotCompleted(reason, by string, at time.Time) StatusDetail {
	return StatusDetail{Status: StatusNotCompleted, Reason: reason, UpdatedBy: by, UpdatedAt: at}
}

func Cancelled(reason, by string, at time.Time) StatusDetail {
	return StatusDetail{Status: StatusCancelled, Reason: reason, UpdatedBy: by, UpdatedAt: at}
}

func Postponed(until time.Time, reason, by string, at time.Time) StatusDetail {
	return StatusDetail{Status: StatusPostponed, Reason: reason, PostponedUntil: &until, UpdatedBy: by, UpdatedAt: at}
}

func (d StatusDetail) Validate() error {
	if !d.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, d.Status)
	}
	needsReason := d.Status == StatusCancelled || d.Status == StatusPostponed
	if needsReason && d.Reason == "" {
		return fmt.Errorf("%w: status_reason is required for status %q", ErrValidation, d.Status)
	}
	if d.Status == StatusPostponed && d.PostponedUntil == nil {
		return fmt.Errorf("%w: postponed_until is required for status %q", ErrValidation, d.Status)
	}
	if d.Status != StatusPostponed && d.PostponedUntil != nil {
		return fmt.Errorf("%w: postponed_until is only allowed for status %q", ErrValidation, StatusPostponed)
	}
	return nil
}

type Event struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	Location             string     `json:"location"`
	Latitude             *float64   `json:"latitude,omitempty"`
	Longitude            *float64   `json:"longitude,omitempty"`
	ExpectedParticipants int        `json:"expected_participants"`
	CurrentParticipants  int        `json:"current_participants"`
	Status               Status     `json:"status"`
	StatusReason         string     `json:"status_reason,omitempty"`
	StatusUpdatedBy      string     `json:"status_updated_by,omitempty"`
	StatusUpdatedAt      *time.Time `json:"status_updated_at,omitempty"`
	PostponedUntil       *time.Time `json:"postponed_until,omitempty"`
	CreatorID            string     `json:"creator_id"`
	CityID               string     `json:"city_id"`
	CategoryIDs          []string   `json:"category_ids"`
	Version              int64      `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// EffectiveEnd is the end date, falling back to the start date for drives
// without an explicit end.
func (e *Event) EffectiveEnd() time.Time {
	if e.EndDate != nil {
		return *e.EndDate
	}
	return e.StartDate
}

// ApplyStatusDetail overwrites the status cluster in one step so the
// reason/postponed_until pairing cannot drift field by field.
func (e *Event) ApplyStatusDetail(d StatusDetail) {
	e.Status = d.Status
	e.StatusReason = d.Reason
	e.PostponedUntil = d.PostponedUntil
	e.StatusUpdatedBy = d.UpdatedBy
	at := d.UpdatedAt
	e.StatusUpdatedAt = &at
}

type CreateEventInput struct {
	Name                 string
	Description          string
	StartDate            time.Time
	EndDate              *time.Time
	Location             string
	Latitude             *float64
	Longitude            *float64
	ExpectedParticipants int
	CityID               string
	CategoryIDs          []string
}

// UpdateEventInput is a sparse patch; nil fields are left untouched.
type UpdateEventInput struct {
	Name                 *string
	Description          *string
	StartDate            *time.Time
	EndDate              *time.Time
	Location             *string
	Latitude             *float64
	Longitude            *float64
	ExpectedParticipants *int
	CityID               *string
	CategoryIDs          []string
}

type SortKey string

const (
	SortByDate         SortKey = "date"
	SortByParticipants SortKey = "participants"
)

type ListFilter struct {
	CityID     string
	CategoryID string
	Status     Status
	SortBy     SortKey
	Top        int
}
