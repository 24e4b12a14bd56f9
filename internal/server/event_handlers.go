package server

import (
	"strings"
	"time"

	"github.com/Izanmg/streamevents/internal/models"
	"github.com/Izanmg/streamevents/internal/repository"
	"github.com/Izanmg/streamevents/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetEvents handles GET /api/events with optional q, category and status
// filters, each applied independently.
func (s *Server) GetEvents(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" && !models.ValidCategory(category) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown category"))
	}
	if status := c.Query("status"); status != "" && !models.ValidStatus(status) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown status"))
	}

	p := parsePagination(c, 20)
	events, err := s.eventService.ListEvents(c.UserContext(), repository.EventFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    p.Limit,
		Offset:   p.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"events": events,
		"count":  len(events),
	})
}

// GetEvent handles GET /api/events/:id
func (s *Server) GetEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	event, svcErr := s.eventService.GetEvent(c.UserContext(), id)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(event)
}

// GetMyEvents handles GET /api/events/mine; drafts are included because the
// caller owns them.
func (s *Server) GetMyEvents(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	events, err := s.eventService.MyEvents(c.UserContext(), currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"events": events,
		"count":  len(events),
	})
}

// CreateEvent handles POST /api/events
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req struct {
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		Category        string    `json:"category"`
		Difficulty      string    `json:"difficulty"`
		ScheduledFor    time.Time `json:"scheduled_for"`
		Status          string    `json:"status"`
		Thumbnail       string    `json:"thumbnail"`
		MaxViewers      int       `json:"max_viewers"`
		DurationMinutes *int      `json:"duration_minutes"`
		Tags            string    `json:"tags"`
		StreamURL       string    `json:"stream_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.CreateEvent(c.UserContext(), service.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Difficulty:      req.Difficulty,
		ScheduledFor:    req.ScheduledFor,
		Status:          req.Status,
		Thumbnail:       req.Thumbnail,
		MaxViewers:      req.MaxViewers,
		DurationMinutes: req.DurationMinutes,
		Tags:            req.Tags,
		StreamURL:       req.StreamURL,
		CreatorID:       currentUserID(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent handles PUT /api/events/:id. Absent fields keep their current
// values; only the creator may edit.
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title           *string    `json:"title"`
		Description     *string    `json:"description"`
		Category        *string    `json:"category"`
		Difficulty      *string    `json:"difficulty"`
		ScheduledFor    *time.Time `json:"scheduled_for"`
		Status          *string    `json:"status"`
		Thumbnail       *string    `json:"thumbnail"`
		MaxViewers      *int       `json:"max_viewers"`
		DurationMinutes *int       `json:"duration_minutes"`
		Tags            *string    `json:"tags"`
		StreamURL       *string    `json:"stream_url"`
		IsFeatured      *bool      `json:"is_featured"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, svcErr := s.eventService.UpdateEvent(c.UserContext(), service.UpdateEventInput{
		EventID:         id,
		UserID:          currentUserID(c),
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Difficulty:      req.Difficulty,
		ScheduledFor:    req.ScheduledFor,
		Status:          req.Status,
		Thumbnail:       req.Thumbnail,
		MaxViewers:      req.MaxViewers,
		DurationMinutes: req.DurationMinutes,
		Tags:            req.Tags,
		StreamURL:       req.StreamURL,
		IsFeatured:      req.IsFeatured,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(event)
}
