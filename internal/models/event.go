package models

import (
	"time"

	"gorm.io/gorm"
)

// Event categories.
const (
	CategoryGaming    = "gaming"
	CategoryMusic     = "music"
	CategoryTalk      = "talk"
	CategoryEducation = "education"
)

// Event difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Event lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"
)

// EventCategories lists the valid categories in display order.
var EventCategories = []string{CategoryGaming, CategoryMusic, CategoryTalk, CategoryEducation}

// EventDifficulties lists the valid difficulty levels.
var EventDifficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// EventStatuses lists the valid lifecycle statuses.
var EventStatuses = []string{StatusDraft, StatusScheduled, StatusLive, StatusFinished, StatusCancelled}

// DefaultDurationByCategory is the fallback event duration (minutes) applied
// at first save when none was provided.
var DefaultDurationByCategory = map[string]int{
	CategoryGaming:    120,
	CategoryMusic:     90,
	CategoryTalk:      60,
	CategoryEducation: 120,
}

// DefaultMaxViewers is applied when no viewer cap is provided.
const DefaultMaxViewers = 100

// Event represents a scheduled live-stream event.
// Tags are stored as a normalized comma-and-space-joined string (see
// validation.NormalizeTags). The creator is set once at creation and is
// immutable thereafter.
type Event struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	Category        string         `gorm:"size:20;not null;index" json:"category"`
	Difficulty      string         `gorm:"size:20;default:beginner" json:"difficulty"`
	ScheduledFor    time.Time      `gorm:"not null;index" json:"scheduled_for"`
	Status          string         `gorm:"size:20;default:draft;index" json:"status"`
	Thumbnail       string         `gorm:"size:500" json:"thumbnail"`
	MaxViewers      int            `gorm:"default:100" json:"max_viewers"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	Tags            string         `gorm:"size:500" json:"tags"`
	StreamURL       string         `gorm:"size:500" json:"stream_url"`
	IsFeatured      bool           `gorm:"default:false" json:"is_featured"`
	CreatorID       uint           `gorm:"not null;index" json:"creator_id"`
	Creator         User           `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	// IsPast and IsUpcoming are not persisted; computed against the wall
	// clock when the record is loaded.
	IsPast     bool           `gorm:"-" json:"is_past"`
	IsUpcoming bool           `gorm:"-" json:"is_upcoming"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeSave derives the duration from the category when none is set.
// The transition happens exactly once: an existing duration is never
// overwritten, regardless of category changes.
func (e *Event) BeforeSave(tx *gorm.DB) error {
	if e.DurationMinutes == nil {
		if minutes, ok := DefaultDurationByCategory[e.Category]; ok {
			e.DurationMinutes = &minutes
		}
	}
	return nil
}

// AfterFind populates the computed schedule flags.
func (e *Event) AfterFind(tx *gorm.DB) error {
	e.ComputeScheduleFlags(time.Now())
	return nil
}

// ComputeScheduleFlags sets IsPast/IsUpcoming relative to now.
func (e *Event) ComputeScheduleFlags(now time.Time) {
	e.IsPast = e.ScheduledFor.Before(now)
	e.IsUpcoming = !e.IsPast
}

// CanEdit reports whether the given user may edit this event. Only the
// creator may; administrative overrides are not part of the core.
func (e *Event) CanEdit(userID uint) bool {
	return e.CreatorID == userID
}

// ValidCategory reports whether v is a known event category.
func ValidCategory(v string) bool {
	_, ok := DefaultDurationByCategory[v]
	return ok
}

// ValidDifficulty reports whether v is a known difficulty level.
func ValidDifficulty(v string) bool {
	for _, d := range EventDifficulties {
		if v == d {
			return true
		}
	}
	return false
}

// ValidStatus reports whether v is a known event status.
func ValidStatus(v string) bool {
	for _, s := range EventStatuses {
		if v == s {
			return true
		}
	}
	return false
}
