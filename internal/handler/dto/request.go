package dto

type CreateEventRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Description          string   `json:"description" binding:"required"`
	StartDate            string   `json:"start_date" binding:"required"`
	EndDate              *string  `json:"end_date"`
	Location             string   `json:"location" binding:"required"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	ExpectedParticipants int      `json:"expected_participants" binding:"required,gt=0"`
	CityID               string   `json:"city_id" binding:"required"`
	CategoryIDs          []string `json:"category_ids" binding:"required,min=1"`
}

type UpdateEventRequest struct {
	Name                 *string  `json:"name"`
	Description          *string  `json:"description"`
	StartDate            *string  `json:"start_date"`
	EndDate              *string  `json:"end_date"`
	Location             *string  `json:"location"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	ExpectedParticipants *int     `json:"expected_participants"`
	CityID               *string  `json:"city_id"`
	CategoryIDs          []string `json:"category_ids"`
}

type SetStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	Reason         string  `json:"reason"`
	PostponedUntil *string `json:"postponed_until"`
}

type LeaveRequest struct {
	Reason string `json:"reason"`
}
