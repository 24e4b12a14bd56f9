package service

import (
	"context"
	"time"

	"github.com/Izanmg/streamevents/internal/cache"
	"github.com/Izanmg/streamevents/internal/models"
	"github.com/Izanmg/streamevents/internal/observability"
	"github.com/Izanmg/streamevents/internal/repository"
	"github.com/Izanmg/streamevents/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

// EventService handles event creation, editing and discovery.
type EventService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

// CreateEventInput carries the fields accepted when creating an event.
type CreateEventInput struct {
	Title           string
	Description     string
	Category        string
	Difficulty      string
	ScheduledFor    time.Time
	Status          string
	Thumbnail       string
	MaxViewers      int
	DurationMinutes *int
	Tags            string
	StreamURL       string
	CreatorID       uint
}

// UpdateEventInput carries the editable fields. Nil pointers leave the
// current value untouched. The creator can never be reassigned.
type UpdateEventInput struct {
	EventID         uint
	UserID          uint
	Title           *string
	Description     *string
	Category        *string
	Difficulty      *string
	ScheduledFor    *time.Time
	Status          *string
	Thumbnail       *string
	MaxViewers      *int
	DurationMinutes *int
	Tags            *string
	StreamURL       *string
	IsFeatured      *bool
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo, now: time.Now}
}

// WithClock overrides the wall clock. Used by tests.
func (s *EventService) WithClock(now func() time.Time) *EventService {
	s.now = now
	return s
}

// CreateEvent validates and persists a new event owned by the caller.
func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	span, ctx := observability.NewSpan(ctx, "EventService.CreateEvent")
	defer span.End()

	if in.Title == "" || in.Description == "" || in.Category == "" {
		return nil, models.NewValidationError("Title, description, and category are required")
	}
	if len(in.Title) > 200 {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if !models.ValidCategory(in.Category) {
		return nil, models.NewValidationError("Unknown category")
	}

	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}
	if !models.ValidDifficulty(difficulty) {
		return nil, models.NewValidationError("Unknown difficulty level")
	}

	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.ValidStatus(status) {
		return nil, models.NewValidationError("Unknown status")
	}

	if err := validation.ValidateScheduledFor(in.ScheduledFor, s.now()); err != nil {
		return nil, err
	}

	maxViewers := in.MaxViewers
	if maxViewers <= 0 {
		maxViewers = models.DefaultMaxViewers
	}

	if in.DurationMinutes != nil && *in.DurationMinutes <= 0 {
		return nil, models.NewValidationError("Duration must be positive")
	}

	event := &models.Event{
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		Difficulty:      difficulty,
		ScheduledFor:    in.ScheduledFor,
		Status:          status,
		Thumbnail:       in.Thumbnail,
		MaxViewers:      maxViewers,
		DurationMinutes: in.DurationMinutes,
		Tags:            validation.NormalizeTags(in.Tags),
		StreamURL:       in.StreamURL,
		CreatorID:       in.CreatorID,
	}

	span.AddAttributes(
		attribute.String("event.category", event.Category),
		attribute.Int("event.creator_id", int(event.CreatorID)),
	)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		span.SetError(err)
		return nil, err
	}

	event.ComputeScheduleFlags(s.now())
	observability.EventsCreated.WithLabelValues(event.Category).Inc()
	return event, nil
}

// UpdateEvent applies the provided fields to an existing event. Only the
// creator may edit; everyone else gets a denial, never a silent no-op.
func (s *EventService) UpdateEvent(ctx context.Context, in UpdateEventInput) (*models.Event, error) {
	span, ctx := observability.NewSpan(ctx, "EventService.UpdateEvent")
	defer span.End()
	span.AddAttributes(attribute.Int("event.id", int(in.EventID)))

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	if !event.CanEdit(in.UserID) {
		return nil, models.NewAuthorizationDeniedError("Only the event creator can edit this event")
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(*in.Title) > 200 {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		event.Title = *in.Title
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, models.NewValidationError("Description cannot be empty")
		}
		event.Description = *in.Description
	}
	if in.Category != nil {
		if !models.ValidCategory(*in.Category) {
			return nil, models.NewValidationError("Unknown category")
		}
		// Changing category never rewrites an already derived duration.
		event.Category = *in.Category
	}
	if in.Difficulty != nil {
		if !models.ValidDifficulty(*in.Difficulty) {
			return nil, models.NewValidationError("Unknown difficulty level")
		}
		event.Difficulty = *in.Difficulty
	}
	if in.ScheduledFor != nil {
		if err := validation.ValidateScheduledFor(*in.ScheduledFor, s.now()); err != nil {
			return nil, err
		}
		event.ScheduledFor = *in.ScheduledFor
	}
	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, models.NewValidationError("Unknown status")
		}
		event.Status = *in.Status
	}
	if in.Thumbnail != nil {
		event.Thumbnail = *in.Thumbnail
	}
	if in.MaxViewers != nil {
		if *in.MaxViewers <= 0 {
			return nil, models.NewValidationError("Max viewers must be positive")
		}
		event.MaxViewers = *in.MaxViewers
	}
	if in.DurationMinutes != nil {
		if *in.DurationMinutes <= 0 {
			return nil, models.NewValidationError("Duration must be positive")
		}
		event.DurationMinutes = in.DurationMinutes
	}
	if in.Tags != nil {
		event.Tags = validation.NormalizeTags(*in.Tags)
	}
	if in.StreamURL != nil {
		event.StreamURL = *in.StreamURL
	}
	if in.IsFeatured != nil {
		event.IsFeatured = *in.IsFeatured
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		span.SetError(err)
		return nil, err
	}

	event.ComputeScheduleFlags(s.now())
	return event, nil
}

// GetEvent returns one event by ID, served cache-aside.
func (s *EventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	key := cache.EventKey(id)

	err := cache.Aside(ctx, key, &event, cache.EventTTL, func() error {
		found, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		event = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	event.ComputeScheduleFlags(s.now())
	return &event, nil
}

// ListEvents returns events matching the filter, newest schedule first.
// First pages are served cache-aside with a short TTL; deeper pages go
// straight to the database.
func (s *EventService) ListEvents(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	if filter.Offset != 0 {
		return s.eventRepo.Filter(ctx, filter)
	}

	var events []models.Event
	key := cache.EventListKey(filter.Fingerprint())

	err := cache.Aside(ctx, key, &events, cache.EventListTTL, func() error {
		found, err := s.eventRepo.Filter(ctx, filter)
		if err != nil {
			return err
		}
		events = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// MyEvents returns the caller's own events, drafts included.
func (s *EventService) MyEvents(ctx context.Context, userID uint, limit, offset int) ([]models.Event, error) {
	return s.eventRepo.ListByCreator(ctx, userID, limit, offset)
}
