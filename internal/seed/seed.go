package seed

import (
	"fmt"
	"log"

	"github.com/Izanmg/streamevents/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumEvents   int
	ShouldClean bool
	Factory     SeedOptions
}

// categoryShare is the fraction of seeded events assigned to each
// category, expressed in tenths.
type categoryShare struct {
	Gaming    int
	Music     int
	Talk      int
	Education int
}

var defaultShare = categoryShare{Gaming: 4, Music: 3, Talk: 2, Education: 1}

// computeCounts splits total across the categories according to share,
// assigning the rounding remainder to gaming.
func computeCounts(total int, share categoryShare) (gaming, music, talk, education int) {
	unit := share.Gaming + share.Music + share.Talk + share.Education
	if unit == 0 || total <= 0 {
		return 0, 0, 0, 0
	}
	music = total * share.Music / unit
	talk = total * share.Talk / unit
	education = total * share.Education / unit
	gaming = total - music - talk - education
	return gaming, music, talk, education
}

// Seed populates the database with demo users and events.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d events...", opts.NumUsers, opts.NumEvents)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
	}

	factory := NewFactory(db, opts.Factory)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	count, err := createEvents(factory, users, opts.NumEvents)
	if err != nil {
		return fmt.Errorf("failed to create events: %w", err)
	}
	log.Printf("Created %d events", count)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE events, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// createUsers persists count users, always starting with a few fixed
// accounts so local logins stay predictable between reseeds.
func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	type fixed struct {
		username string
		role     string
	}
	baseUsers := []fixed{
		{"demo.member", models.RoleMember},
		{"demo.streamer", models.RoleStreamer},
		{"demo.moderator", models.RoleModerator},
	}
	if count >= len(baseUsers) {
		for _, b := range baseUsers {
			user, err := factory.CreateUser(func(u *models.User) {
				u.Username = b.username
				u.Email = fmt.Sprintf("%s@streamevents.dev", b.username)
				u.Role = b.role
			})
			if err != nil {
				log.Printf("Failed to create user %s: %v", b.username, err)
				continue
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create seed user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// createEvents spreads count events across the categories and persists
// them in batches per category.
func createEvents(factory *Factory, users []*models.User, count int) (int, error) {
	if len(users) == 0 {
		return 0, fmt.Errorf("no users to assign events to")
	}

	gaming, music, talk, education := computeCounts(count, defaultShare)
	perCategory := map[string]int{
		models.CategoryGaming:    gaming,
		models.CategoryMusic:     music,
		models.CategoryTalk:      talk,
		models.CategoryEducation: education,
	}

	created := 0
	for _, category := range models.EventCategories {
		n := perCategory[category]
		if n == 0 {
			continue
		}
		events := make([]*models.Event, 0, n)
		for i := 0; i < n; i++ {
			creator := users[factory.rng.Intn(len(users))]
			events = append(events, factory.BuildEvent(creator, category))
		}
		if err := factory.CreateEventsBatch(events); err != nil {
			return created, err
		}
		created += len(events)
	}

	return created, nil
}
