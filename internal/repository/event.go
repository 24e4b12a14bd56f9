package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Izanmg/streamevents/internal/cache"
	"github.com/Izanmg/streamevents/internal/models"

	"gorm.io/gorm"
)

// EventFilter holds the optional criteria for listing events. Zero values
// mean the criterion is not applied.
type EventFilter struct {
	Query    string
	Category string
	Status   string
	Limit    int
	Offset   int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes LIKE wildcards so user queries match as literal
// substrings. The patterns built from it must carry ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Fingerprint returns a stable string identifying the filter for cache keys.
// Offset is excluded because only first pages are cached.
func (f EventFilter) Fingerprint() string {
	return fmt.Sprintf("%s|%s|%s|%d", strings.ToLower(f.Query), f.Category, f.Status, f.Limit)
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	Filter(ctx context.Context, filter EventFilter) ([]models.Event, error)
	ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns a new EventRepository implementation.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Preload("Creator").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Event", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, event.ID)
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Event{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, id)
	return nil
}

// Filter lists events matching the given criteria, newest schedule first with
// creation time as the tie-breaker. The text query matches title, description
// and tags case-insensitively; query, category and status apply independently.
func (r *eventRepository) Filter(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	q := r.db.WithContext(ctx).Model(&models.Event{}).Preload("Creator")

	if filter.Query != "" {
		pattern := "%" + escapeLike(filter.Query) + "%"
		q = q.Where(
			`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\' OR LOWER(tags) LIKE LOWER(?) ESCAPE '\'`,
			pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var events []models.Event
	err := q.Order("scheduled_for DESC, created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&events).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *eventRepository) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("scheduled_for DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}
