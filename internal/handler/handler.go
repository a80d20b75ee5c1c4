package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"drivehub/internal/domain"
	"drivehub/internal/handler/dto"
	"drivehub/internal/middleware"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput, creatorID string) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id string, patch domain.UpdateEventInput, actorID string) (*domain.Event, error)
	SetStatus(ctx context.Context, id string, detail domain.StatusDetail, actorID string) (*domain.Event, error)
	Join(ctx context.Context, id, userID string) (*domain.Participant, error)
	Leave(ctx context.Context, id, userID, reason string) error
	IsParticipant(ctx context.Context, id, userID string) (bool, error)
}

type RefDataSvc interface {
	ListCities(ctx context.Context) ([]*domain.City, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type Handler struct {
	eventService   EventSvc
	refDataService RefDataSvc
}

func NewHandler(eventService EventSvc, refDataService RefDataSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		refDataService: refDataService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}
	endDate, err := parseOptionalTime(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Name:                 req.Name,
		Description:          req.Description,
		StartDate:            startDate,
		EndDate:              endDate,
		Location:             req.Location,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		ExpectedParticipants: req.ExpectedParticipants,
		CityID:               req.CityID,
		CategoryIDs:          req.CategoryIDs,
	}

	event, err := h.eventService.Create(c.Request.Context(), input, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.ListFilter{
		CityID:     c.Query("cityId"),
		CategoryID: c.Query("categoryId"),
		Status:     domain.Status(c.Query("status")),
		SortBy:     domain.SortKey(c.Query("sortBy")),
	}
	if top := c.Query("top"); top != "" {
		n, err := strconv.Atoi(top)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "top must be a positive integer"})
			return
		}
		filter.Top = n
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := parseOptionalTime(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}
	endDate, err := parseOptionalTime(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected RFC3339",
		})
		return
	}

	patch := domain.UpdateEventInput{
		Name:                 req.Name,
		Description:          req.Description,
		StartDate:            startDate,
		EndDate:              endDate,
		Location:             req.Location,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		ExpectedParticipants: req.ExpectedParticipants,
		CityID:               req.CityID,
		CategoryIDs:          req.CategoryIDs,
	}

	event, err := h.eventService.Update(c.Request.Context(), id, patch, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) SetEventStatus(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	postponedUntil, err := parseOptionalTime(req.PostponedUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid postponed_until format, expected RFC3339",
		})
		return
	}

	detail := domain.StatusDetail{
		Status:         domain.Status(req.Status),
		Reason:         req.Reason,
		PostponedUntil: postponedUntil,
	}

	event, err := h.eventService.SetStatus(c.Request.Context(), id, detail, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Participation

func (h *Handler) JoinEvent(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	participant, err := h.eventService.Join(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

func (h *Handler) LeaveEvent(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.LeaveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	if err := h.eventService.Leave(c.Request.Context(), id, userID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "left"})
}

func (h *Handler) GetParticipation(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	joined, err := h.eventService.IsParticipant(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipationResponse{Joined: joined})
}

// Reference data

func (h *Handler) ListCities(c *ginext.Context) {
	cities, err := h.refDataService.ListCities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CityResponse, 0, len(cities))
	for _, city := range cities {
		resp = append(resp, dto.ToCityResponse(city))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.refDataService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, dto.ToCategoryResponse(category))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrCityNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrNotJoined):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrEventNotJoinable),
		errors.Is(err, domain.ErrEventClosed),
		errors.Is(err, domain.ErrImmutable),
		errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
