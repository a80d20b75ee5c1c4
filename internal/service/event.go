package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"drivehub/internal/domain"
	"drivehub/internal/lifecycle"
	"drivehub/internal/monitoring"
	"drivehub/internal/service/ports"
)

type EventService struct {
	repo     ports.EventRepo
	refdata  ports.RefDataRepo
	ledger   *LedgerService
	notifier ports.StatusNotifier
	logger   logger.Logger
	now      func() time.Time
}

func NewEventService(
	repo ports.EventRepo,
	refdata ports.RefDataRepo,
	ledger *LedgerService,
	notifier ports.StatusNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:     repo,
		refdata:  refdata,
		ledger:   ledger,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput, creatorID string) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", domain.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.CityID == "" {
		return nil, fmt.Errorf("%w: city_id is required", domain.ErrValidation)
	}
	if len(input.CategoryIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", domain.ErrValidation)
	}
	if input.ExpectedParticipants <= 0 {
		return nil, fmt.Errorf("%w: expected_participants must be positive", domain.ErrValidation)
	}

	now := s.now().UTC()
	event := &domain.Event{
		ID:                   uuid.New().String(),
		Name:                 input.Name,
		Description:          input.Description,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		Location:             input.Location,
		Latitude:             input.Latitude,
		Longitude:            input.Longitude,
		ExpectedParticipants: input.ExpectedParticipants,
		CurrentParticipants:  0,
		Status:               domain.StatusUpcoming,
		CreatorID:            creatorID,
		CityID:               input.CityID,
		CategoryIDs:          input.CategoryIDs,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("creator_id", creatorID),
	)

	return event, nil
}

// Get loads a drive and brings its status up to date before returning it.
// Visibility gating does not apply here: direct links always resolve.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return s.refresh(ctx, event)
}

func (s *EventService) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, error) {
	resolved, err := s.resolveFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if resolved.Top > 0 {
		resolved.SortBy = domain.SortByParticipants
	}

	events, err := s.repo.List(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	now := s.now()
	res := make([]*domain.Event, 0, len(events))
	for _, event := range events {
		event, err = s.refresh(ctx, event)
		if err != nil {
			return nil, err
		}
		// Top-N and explicit status queries skip the public quorum gate.
		if resolved.Top == 0 && resolved.Status == "" && !lifecycle.ShouldList(event, now) {
			continue
		}
		res = append(res, event)
	}

	sortEvents(res, resolved.SortBy)

	return res, nil
}

func (s *EventService) Update(ctx context.Context, id string, patch domain.UpdateEventInput, actorID string) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.CreatorID != actorID {
		return nil, domain.ErrForbidden
	}
	if event.Status == domain.StatusCompleted {
		return nil, domain.ErrImmutable
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		event.Name = *patch.Name
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.StartDate != nil {
		event.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		event.EndDate = patch.EndDate
	}
	if event.EndDate != nil && event.EndDate.Before(event.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", domain.ErrValidation)
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Latitude != nil {
		event.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		event.Longitude = patch.Longitude
	}
	if patch.ExpectedParticipants != nil {
		if *patch.ExpectedParticipants <= 0 {
			return nil, fmt.Errorf("%w: expected_participants must be positive", domain.ErrValidation)
		}
		event.ExpectedParticipants = *patch.ExpectedParticipants
	}
	if patch.CityID != nil {
		event.CityID = *patch.CityID
	}
	if patch.CategoryIDs != nil {
		if len(patch.CategoryIDs) == 0 {
			return nil, fmt.Errorf("%w: at least one category is required", domain.ErrValidation)
		}
		event.CategoryIDs = patch.CategoryIDs
	}

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	event.Version++

	s.logger.Info("event updated",
		logger.String("event_id", event.ID),
		logger.String("actor_id", actorID),
	)

	return event, nil
}

// SetStatus is the manual override path for creator-driven cancellation and
// postponement; the automatic engine never produces cancelled.
func (s *EventService) SetStatus(ctx context.Context, id string, detail domain.StatusDetail, actorID string) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.CreatorID != actorID {
		return nil, domain.ErrForbidden
	}
	if event.Status == domain.StatusCompleted {
		return nil, domain.ErrImmutable
	}

	detail.UpdatedBy = actorID
	detail.UpdatedAt = s.now()
	if err = detail.Validate(); err != nil {
		return nil, err
	}

	if err = s.repo.ApplyStatus(ctx, event.ID, event.Version, detail); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	from := event.Status
	event.ApplyStatusDetail(detail)
	event.Version++
	monitoring.StatusTransition(string(from), string(detail.Status), monitoring.TriggerManual)

	s.logger.Info("event status overridden",
		logger.String("event_id", event.ID),
		logger.String("from", string(from)),
		logger.String("to", string(detail.Status)),
		logger.String("actor_id", actorID),
	)

	// The caller may keep mutating event; the goroutine reads a snapshot.
	snapshot := *event
	go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), &snapshot)

	return event, nil
}

// Join enrolls the user after bringing the status up to date, so a stale
// upcoming drive whose end has passed cannot be joined. The capacity and
// duplicate checks run inside the ledger's transaction.
func (s *EventService) Join(ctx context.Context, id, userID string) (*domain.Participant, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.Status.Joinable() {
		return nil, domain.ErrEventNotJoinable
	}

	return s.ledger.Join(ctx, id, userID)
}

func (s *EventService) Leave(ctx context.Context, id, userID, reason string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	return s.ledger.Leave(ctx, id, userID, reason)
}

func (s *EventService) IsParticipant(ctx context.Context, id, userID string) (bool, error) {
	return s.ledger.IsParticipant(ctx, id, userID)
}

// ReconcileSweep refreshes every non-terminal drive. The scheduler calls
// this periodically; lazy reconciliation on read remains the source of
// truth, so sweep failures only delay transitions.
func (s *EventService) ReconcileSweep(ctx context.Context) (int, error) {
	start := s.now()
	events, err := s.repo.ListNonTerminal(ctx)
	if err != nil {
		return 0, fmt.Errorf("list non-terminal: %w", err)
	}

	var transitions int
	for _, event := range events {
		before := event.Status
		refreshed, err := s.refresh(ctx, event)
		if err != nil {
			s.logger.Error("sweep reconcile failed",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if refreshed.Status != before {
			transitions++
		}
	}
	monitoring.SweepObserved(s.now().Sub(start))

	return transitions, nil
}

// refresh applies the lifecycle rules and persists any resulting change
// under optimistic concurrency. A version conflict is retried once against
// a fresh snapshot; reconcile is idempotent, so the retry is safe.
func (s *EventService) refresh(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	for attempt := 0; ; attempt++ {
		detail := lifecycle.Reconcile(event, s.now())
		if detail == nil {
			return event, nil
		}

		err := s.repo.ApplyStatus(ctx, event.ID, event.Version, *detail)
		if err == nil {
			from := event.Status
			event.ApplyStatusDetail(*detail)
			event.Version++
			monitoring.StatusTransition(string(from), string(detail.Status), monitoring.TriggerAuto)

			s.logger.Info("event status reconciled",
				logger.String("event_id", event.ID),
				logger.String("from", string(from)),
				logger.String("to", string(detail.Status)),
			)

			snapshot := *event
			go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), &snapshot)

			return event, nil
		}

		if errors.Is(err, domain.ErrConflict) && attempt == 0 {
			fresh, gerr := s.repo.GetByID(ctx, event.ID)
			if gerr != nil {
				return nil, fmt.Errorf("reload after conflict: %w", gerr)
			}
			event = fresh
			continue
		}

		return nil, fmt.Errorf("persist reconciled status: %w", err)
	}
}

func (s *EventService) resolveFilter(ctx context.Context, filter domain.ListFilter) (domain.ListFilter, error) {
	if filter.CityID != "" {
		city, err := s.refdata.FindCity(ctx, filter.CityID)
		if err != nil {
			return filter, fmt.Errorf("resolve city: %w", err)
		}
		filter.CityID = city.ID
	}
	if filter.CategoryID != "" {
		category, err := s.refdata.FindCategory(ctx, filter.CategoryID)
		if err != nil {
			return filter, fmt.Errorf("resolve category: %w", err)
		}
		filter.CategoryID = category.ID
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return filter, fmt.Errorf("%w: invalid status filter %q", domain.ErrValidation, filter.Status)
	}

	return filter, nil
}

func sortEvents(events []*domain.Event, key domain.SortKey) {
	switch key {
	case domain.SortByParticipants:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].CurrentParticipants > events[j].CurrentParticipants
		})
	default:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].StartDate.Before(events[j].StartDate)
		})
	}
}
