package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"drivehub/internal/domain"
	"drivehub/internal/handler/dto"
	hmocks "drivehub/internal/handler/mocks"
)

const testUserID = "user-1"

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockRefDataSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	refDataSvc := hmocks.NewMockRefDataSvc(t)

	h := NewHandler(eventSvc, refDataSvc)

	// Stands in for the JWT middleware.
	authStub := func(c *ginext.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	}

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/cities", h.ListCities)
		api.GET("/categories", h.ListCategories)

		authed := api.Group("", authStub)
		{
			authed.POST("/events", h.CreateEvent)
			authed.PATCH("/events/:id", h.UpdateEvent)
			authed.POST("/events/:id/status", h.SetEventStatus)
			authed.POST("/events/:id/join", h.JoinEvent)
			authed.POST("/events/:id/leave", h.LeaveEvent)
			authed.GET("/events/:id/participation", h.GetParticipation)
		}
	}

	return eventSvc, refDataSvc, r
}

func sampleEvent(id string) *domain.Event {
	start := time.Now().Add(24 * time.Hour)
	return &domain.Event{
		ID:                   id,
		Name:                 "Tree Plantation Drive",
		Description:          "Planting trees in the park",
		StartDate:            start,
		Location:             "Central Park",
		ExpectedParticipants: 30,
		CurrentParticipants:  12,
		Status:               domain.StatusUpcoming,
		CreatorID:            testUserID,
		CityID:               uuid.New().String(),
		CategoryIDs:          []string{uuid.New().String()},
		CreatedAt:            time.Now(),
	}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	event := sampleEvent(uuid.New().String())
	eventSvc.EXPECT().Create(mock.Anything, mock.Anything, testUserID).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Name:                 "Tree Plantation Drive",
		Description:          "Planting trees in the park",
		StartDate:            event.StartDate.Format(time.RFC3339),
		Location:             "Central Park",
		ExpectedParticipants: 30,
		CityID:               event.CityID,
		CategoryIDs:          event.CategoryIDs,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tree Plantation Drive", resp.Name)
	assert.Equal(t, 10, resp.MinParticipants)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"X","description":"Y","start_date":"not-a-date","location":"Z","expected_participants":10,"city_id":"c1","category_ids":["cat1"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Get(mock.Anything, eventID).Return(sampleEvent(eventID), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.ID)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Get(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_PassesFilter(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().
		List(mock.Anything, domain.ListFilter{
			CityID: "Delhi",
			Status: domain.StatusActive,
			Top:    5,
		}).
		Return([]*domain.Event{sampleEvent(uuid.New().String())}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?cityId=Delhi&status=active&top=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListEvents_BadTop(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?top=zero", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().
		Update(mock.Anything, eventID, mock.Anything, testUserID).
		Return(nil, domain.ErrForbidden)

	body := []byte(`{"name":"New name"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SetEventStatus_Postpone(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	until := time.Now().Add(72 * time.Hour).Truncate(time.Second).UTC()

	event := sampleEvent(eventID)
	event.Status = domain.StatusPostponed
	event.StatusReason = "venue flooded"
	event.PostponedUntil = &until

	eventSvc.EXPECT().
		SetStatus(mock.Anything, eventID, domain.StatusDetail{
			Status:         domain.StatusPostponed,
			Reason:         "venue flooded",
			PostponedUntil: &until,
		}, testUserID).
		Return(event, nil)

	body, _ := json.Marshal(dto.SetStatusRequest{
		Status:         "postponed",
		Reason:         "venue flooded",
		PostponedUntil: ptr(until.Format(time.RFC3339)),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "postponed", resp.Status)
	assert.Equal(t, "venue flooded", resp.StatusReason)
}

func TestHandler_SetEventStatus_ValidationError(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().
		SetStatus(mock.Anything, eventID, mock.Anything, testUserID).
		Return(nil, domain.ErrValidation)

	body := []byte(`{"status":"cancelled"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Participation ---

func TestHandler_JoinEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().
		Join(mock.Anything, eventID, testUserID).
		Return(&domain.Participant{EventID: eventID, UserID: testUserID, JoinedAt: time.Now()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/join", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ParticipantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testUserID, resp.UserID)
}

func TestHandler_JoinEvent_AlreadyJoined(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().
		Join(mock.Anything, eventID, testUserID).
		Return(nil, domain.ErrAlreadyJoined)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/join", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_LeaveEvent_WithReason(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().
		Leave(mock.Anything, eventID, testUserID, "schedule conflict").
		Return(nil)

	body := []byte(`{"reason":"schedule conflict"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/leave", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_LeaveEvent_NotJoined(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().
		Leave(mock.Anything, eventID, testUserID, "").
		Return(domain.ErrNotJoined)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/leave", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetParticipation(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().
		IsParticipant(mock.Anything, eventID, testUserID).
		Return(true, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/participation", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ParticipationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Joined)
}

func TestHandler_CreateEvent_Unauthenticated(t *testing.T) {
	eventSvc := hmocks.NewMockEventSvc(t)
	refDataSvc := hmocks.NewMockRefDataSvc(t)
	h := NewHandler(eventSvc, refDataSvc)

	// No auth middleware mounted, so no user id in context.
	r := ginext.New("test")
	r.POST("/api/events", h.CreateEvent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Reference data ---

func TestHandler_ListCities(t *testing.T) {
	_, refDataSvc, r := setupRouter(t)

	refDataSvc.EXPECT().ListCities(mock.Anything).Return([]*domain.City{
		{ID: uuid.New().String(), CityName: "Delhi", State: "Delhi", Country: "India"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Delhi", resp[0].CityName)
}

func TestHandler_ListCategories(t *testing.T) {
	_, refDataSvc, r := setupRouter(t)

	refDataSvc.EXPECT().ListCategories(mock.Anything).Return([]*domain.Category{
		{ID: uuid.New().String(), CategoryName: "Education"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Education", resp[0].CategoryName)
}

func ptr[T any](v T) *T {
	return &v
}
