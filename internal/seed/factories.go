// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Izanmg/streamevents/internal/models"
	"github.com/Izanmg/streamevents/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tunes how the Factory generates data.
type SeedOptions struct {
	// DryRun logs what would be created without touching the database.
	DryRun bool
	// SkipBcrypt stores the plaintext demo password instead of hashing it.
	// Much faster for large runs; never use outside local development.
	SkipBcrypt bool
	// MaxDays bounds how far into the past and future schedules spread.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 45
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

var seedRoles = []string{
	models.RoleMember, models.RoleMember, models.RoleMember,
	models.RoleStreamer, models.RoleStreamer,
	models.RoleModerator,
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := strings.ToLower(fmt.Sprintf("%s.%s%d", first, last, gofakeit.Number(10, 999)))

	user := &models.User{
		Username:    username,
		Email:       fmt.Sprintf("%s@streamevents.dev", username),
		FirstName:   first,
		LastName:    last,
		DisplayName: fmt.Sprintf("%s %s", first, last),
		Bio:         gofakeit.Sentence(10),
		Avatar:      fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Role:        seedRoles[f.rng.Intn(len(seedRoles))],
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s> role=%s", user.Username, user.Email, user.Role)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

var titleTemplates = map[string][]string{
	models.CategoryGaming: {
		"%s Speedrun Attempts",
		"Ranked Grind: %s",
		"Chill %s Playthrough",
		"Community Night: %s",
	},
	models.CategoryMusic: {
		"Live Set: %s",
		"%s Jam Session",
		"Unplugged: %s",
		"Late Night %s Mix",
	},
	models.CategoryTalk: {
		"Fireside Chat: %s",
		"AMA About %s",
		"Hot Takes on %s",
		"%s Roundtable",
	},
	models.CategoryEducation: {
		"Workshop: %s",
		"Crash Course in %s",
		"Deep Dive: %s",
		"Office Hours: %s",
	},
}

var tagPools = map[string][]string{
	models.CategoryGaming:    {"fps", "indie", "retro", "speedrun", "co-op", "ranked"},
	models.CategoryMusic:     {"live", "acoustic", "electronic", "jazz", "improv"},
	models.CategoryTalk:      {"ama", "interview", "community", "news"},
	models.CategoryEducation: {"tutorial", "workshop", "beginner-friendly", "hands-on"},
}

// BuildEvent constructs an event for the given creator without persisting
// it. Schedules spread across MaxDays in both directions so listings show a
// realistic mix of past and upcoming events, with status following the
// schedule.
func (f *Factory) BuildEvent(creator *models.User, category string, overrides ...func(*models.Event)) *models.Event {
	templates := titleTemplates[category]
	topic := gofakeit.HipsterWord()
	if topic != "" {
		topic = strings.ToUpper(topic[:1]) + topic[1:]
	}

	daysOffset := f.rng.Intn(f.opts.MaxDays*2) - f.opts.MaxDays
	scheduledFor := time.Now().
		Add(time.Duration(daysOffset) * 24 * time.Hour).
		Add(time.Duration(f.rng.Intn(24)) * time.Hour)

	event := &models.Event{
		Title:        fmt.Sprintf(templates[f.rng.Intn(len(templates))], topic),
		Description:  gofakeit.Paragraph(1, 3, 8, "\n"),
		Category:     category,
		Difficulty:   models.EventDifficulties[f.rng.Intn(len(models.EventDifficulties))],
		ScheduledFor: scheduledFor,
		Status:       f.statusFor(scheduledFor),
		Thumbnail:    fmt.Sprintf("https://picsum.photos/seed/%s/640/360", gofakeit.UUID()),
		MaxViewers:   f.rng.Intn(900) + 100,
		Tags:         f.pickTags(category),
		StreamURL:    fmt.Sprintf("https://stream.example.com/%s", gofakeit.UUID()),
		IsFeatured:   f.rng.Float32() < 0.1,
		CreatorID:    creator.ID,
	}

	// Leave some durations unset so category defaults get exercised.
	if f.rng.Float32() < 0.5 {
		minutes := (f.rng.Intn(5) + 1) * 30
		event.DurationMinutes = &minutes
	}

	for _, override := range overrides {
		override(event)
	}
	return event
}

func (f *Factory) statusFor(scheduledFor time.Time) string {
	if scheduledFor.Before(time.Now()) {
		if f.rng.Float32() < 0.15 {
			return models.StatusCancelled
		}
		return models.StatusFinished
	}
	switch {
	case f.rng.Float32() < 0.2:
		return models.StatusDraft
	default:
		return models.StatusScheduled
	}
}

func (f *Factory) pickTags(category string) string {
	pool := tagPools[category]
	n := f.rng.Intn(3) + 1
	picked := make([]string, 0, n)
	for _, i := range f.rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	// Stored tags are always in normalized form, seeded rows included.
	return validation.NormalizeTags(strings.Join(picked, ", "))
}

// CreateEvent constructs and persists a sample `models.Event` for the
// given creator.
func (f *Factory) CreateEvent(creator *models.User, category string, overrides ...func(*models.Event)) (*models.Event, error) {
	event := f.BuildEvent(creator, category, overrides...)

	if f.opts.DryRun {
		f.nextID++
		event.ID = f.nextID
		log.Printf("[dry-run] CreateEvent: category=%s creator=%d title=%q", event.Category, event.CreatorID, event.Title)
		return event, nil
	}

	if err := f.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEventsBatch persists multiple events in a single DB call when possible.
func (f *Factory) CreateEventsBatch(events []*models.Event) error {
	if f.opts.DryRun {
		for _, e := range events {
			f.nextID++
			e.ID = f.nextID
		}
		log.Printf("[dry-run] CreateEventsBatch: %d events (no DB write)", len(events))
		return nil
	}
	return f.db.Create(&events).Error
}
