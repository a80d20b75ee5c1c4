package dto

import (
	"time"

	"drivehub/internal/domain"
	"drivehub/internal/lifecycle"
)

type EventResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	StartDate            string   `json:"start_date"`
	EndDate              *string  `json:"end_date,omitempty"`
	Location             string   `json:"location"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	ExpectedParticipants int      `json:"expected_participants"`
	CurrentParticipants  int      `json:"current_participants"`
	MinParticipants      int      `json:"min_participants"`
	Status               string   `json:"status"`
	StatusReason         string   `json:"status_reason,omitempty"`
	StatusUpdatedBy      string   `json:"status_updated_by,omitempty"`
	StatusUpdatedAt      *string  `json:"status_updated_at,omitempty"`
	PostponedUntil       *string  `json:"postponed_until,omitempty"`
	CreatorID            string   `json:"creator_id"`
	CityID               string   `json:"city_id"`
	CategoryIDs          []string `json:"category_ids"`
	CreatedAt            string   `json:"created_at"`
}

type ParticipantResponse struct {
	EventID  string `json:"event_id"`
	UserID   string `json:"user_id"`
	JoinedAt string `json:"joined_at"`
}

type ParticipationResponse struct {
	Joined bool `json:"joined"`
}

type CityResponse struct {
	ID       string `json:"id"`
	CityName string `json:"city_name"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

type CategoryResponse struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Name:                 e.Name,
		Description:          e.Description,
		StartDate:            e.StartDate.Format(time.RFC3339),
		EndDate:              formatOptional(e.EndDate),
		Location:             e.Location,
		Latitude:             e.Latitude,
		Longitude:            e.Longitude,
		ExpectedParticipants: e.ExpectedParticipants,
		CurrentParticipants:  e.CurrentParticipants,
		MinParticipants:      lifecycle.MinParticipants(e.ExpectedParticipants),
		Status:               string(e.Status),
		StatusReason:         e.StatusReason,
		StatusUpdatedBy:      e.StatusUpdatedBy,
		StatusUpdatedAt:      formatOptional(e.StatusUpdatedAt),
		PostponedUntil:       formatOptional(e.PostponedUntil),
		CreatorID:            e.CreatorID,
		CityID:               e.CityID,
		CategoryIDs:          e.CategoryIDs,
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		EventID:  p.EventID,
		UserID:   p.UserID,
		JoinedAt: p.JoinedAt.Format(time.RFC3339),
	}
}

func ToCityResponse(c *domain.City) CityResponse {
	return CityResponse{ID: c.ID, CityName: c.CityName, State: c.State, Country: c.Country}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, CategoryName: c.CategoryName}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
