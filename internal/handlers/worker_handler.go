package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gigworkers/gigworkers_be/internal/listing"
	"github.com/gigworkers/gigworkers_be/internal/models"
	"github.com/gigworkers/gigworkers_be/internal/services/workers"
	"github.com/gigworkers/gigworkers_be/internal/store"
)

type WorkerHandler struct {
	Store store.WorkerStore
	Svc   *workers.Service
}

func NewWorkerHandler(st store.WorkerStore, svc *workers.Service) *WorkerHandler {
	return &WorkerHandler{Store: st, Svc: svc}
}

// ListPublic serves the home page listing: the full snapshot ranked
// (active, then available, then likes), filtered by the optional city and
// skill query params, with the filter facets riding along.
func (h *WorkerHandler) ListPublic(c *fiber.Ctx) error {
	filters := listing.Filters{
		City:       c.Query("city"),
		SkillQuery: c.Query("skill"),
	}

	profiles, err := h.Store.ListAll(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load workers",
		})
	}

	result := listing.Compute(profiles, filters)

	out := make([]fiber.Map, 0, len(result.Entries))
	for _, e := range result.Entries {
		p := e.Profile
		out = append(out, fiber.Map{
			"id":              p.UserID,
			"name":            p.Name,
			"city":            p.City,
			"area":            p.Area,
			"skills":          p.SkillNames(),
			"available":       p.Available,
			"is_active":       p.IsActive,
			"likes":           p.Likes,
			"contact_enabled": e.ContactEnabled,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
		"facets": fiber.Map{
			"cities": result.Cities,
			"skills": result.Skills,
		},
	})
}

func (h *WorkerHandler) GetDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid worker ID",
		})
	}

	profile, err := h.Store.GetByID(c.UserContext(), id)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Worker not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load worker",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    workerDetail(profile),
	})
}

func workerDetail(p *models.WorkerProfile) fiber.Map {
	data := fiber.Map{
		"id":              p.UserID,
		"name":            p.Name,
		"area":            p.Area,
		"city":            p.City,
		"bio":             p.Bio,
		"portfolio":       p.Portfolio,
		"available":       p.Available,
		"is_active":       p.IsActive,
		"skills":          p.SkillList(),
		"services":        p.ServiceList(),
		"likes":           p.Likes,
		"reviews":         p.ReviewList(),
		"contact_enabled": p.ContactEnabled(),
		"created_at":      p.CreatedAt,
	}
	// WhatsApp link only while the worker is contactable
	if p.ContactEnabled() && p.Whatsapp != "" {
		data["whatsapp_link"] = "https://wa.me/91" + p.Whatsapp
	}
	return data
}

// Like bumps a worker's counter, once per browsing session.
func (h *WorkerHandler) Like(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid worker ID",
		})
	}

	sid, _ := c.Locals("sessionId").(string)
	if sid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing session",
		})
	}

	switch err := h.Svc.Like(c.UserContext(), sid, id); err {
	case nil:
	case workers.ErrAlreadyLiked:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Already liked",
		})
	case store.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Worker not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save like",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Liked",
	})
}

type ReviewReq struct {
	Text string `json:"text"`
}

// AddReview appends one free-text review, once per browsing session.
func (h *WorkerHandler) AddReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid worker ID",
		})
	}

	var req ReviewReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	sid, _ := c.Locals("sessionId").(string)
	if sid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing session",
		})
	}

	switch err := h.Svc.AddReview(c.UserContext(), sid, id, req.Text); err {
	case nil:
	case workers.ErrEmptyReview:
		errs := FieldErrors{}
		errs.Add("text", "Review text is required")
		return validationFail(c, errs)
	case workers.ErrAlreadyReviewed:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Already reviewed",
		})
	case store.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Worker not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save review",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Review saved",
	})
}

func ownerID(c *fiber.Ctx) (uuid.UUID, bool) {
	uid, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(uid)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *WorkerHandler) MyProfile(c *fiber.Ctx) error {
	id, ok := ownerID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	profile, err := h.Store.GetByID(c.UserContext(), id)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Profile not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    workerDetail(profile),
	})
}

func profileFormErrors(form workers.ProfileForm) FieldErrors {
	errs := FieldErrors{}
	if form.Name == "" {
		errs.Add("name", "Name is required")
	}
	if form.City == "" {
		errs.Add("city", "City is required")
	}
	return errs
}

func (h *WorkerHandler) CreateProfile(c *fiber.Ctx) error {
	id, ok := ownerID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var form workers.ProfileForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	if errs := profileFormErrors(form); len(errs) > 0 {
		return validationFail(c, errs)
	}

	profile, err := h.Svc.CreateProfile(c.UserContext(), id, form)
	switch err {
	case nil:
	case workers.ErrProfileExists:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Profile already exists",
		})
	case workers.ErrInvalidProfile:
		return validationFail(c, profileFormErrors(form))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Profile created",
		"data": fiber.Map{
			"id":        profile.UserID,
			"name":      profile.Name,
			"city":      profile.City,
			"is_active": profile.IsActive,
		},
	})
}

func (h *WorkerHandler) UpdateProfile(c *fiber.Ctx) error {
	id, ok := ownerID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var form workers.ProfileForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	if errs := profileFormErrors(form); len(errs) > 0 {
		return validationFail(c, errs)
	}

	switch err := h.Svc.UpdateProfile(c.UserContext(), id, form); err {
	case nil:
	case store.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Profile not found",
		})
	case workers.ErrInvalidProfile:
		return validationFail(c, profileFormErrors(form))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated",
	})
}

func (h *WorkerHandler) ToggleAvailability(c *fiber.Ctx) error {
	id, ok := ownerID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	available, err := h.Svc.ToggleAvailability(c.UserContext(), id)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Profile not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update availability",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"available": available,
		},
	})
}
