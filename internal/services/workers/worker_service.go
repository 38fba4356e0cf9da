// Package workers holds the mutation rules for worker records: availability
// toggle, like-once-per-session, review-once-per-session, and wholesale
// profile edits. Collaborators are injected so tests run against fakes.
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/gigworkers/gigworkers_be/internal/models"
	"github.com/gigworkers/gigworkers_be/internal/session"
	"github.com/gigworkers/gigworkers_be/internal/store"
)

var (
	ErrAlreadyLiked    = errors.New("already liked this session")
	ErrAlreadyReviewed = errors.New("already reviewed this session")
	ErrEmptyReview     = errors.New("review text is empty")
	ErrInvalidProfile  = errors.New("name and city are required")
	ErrProfileExists   = errors.New("profile already exists")
)

// Notifier is told after a worker record changed, so listeners can be
// brought up to date. A nil Notifier is fine.
type Notifier interface {
	WorkerUpdated(workerID uuid.UUID)
}

type Service struct {
	Store   store.WorkerStore
	Markers session.MarkerStore
	Notify  Notifier
}

func NewService(st store.WorkerStore, markers session.MarkerStore, notify Notifier) *Service {
	return &Service{Store: st, Markers: markers, Notify: notify}
}

// ProfileForm is the full editable field set. Edits replace these fields
// wholesale; there is no field-level merge, last submitter wins.
type ProfileForm struct {
	Name      string           `json:"name"`
	Area      string           `json:"area"`
	City      string           `json:"city"`
	Bio       string           `json:"bio"`
	Portfolio string           `json:"portfolio"`
	Whatsapp  string           `json:"whatsapp"`
	Available bool             `json:"available"`
	Skills    []models.Skill   `json:"skills"`
	Services  []models.Service `json:"services"`
}

func (f *ProfileForm) validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.City) == "" {
		return ErrInvalidProfile
	}
	return nil
}

func mustJSON(v any) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("[]")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// CreateProfile makes the worker record for a fresh account. New profiles
// start unpublished with zero likes and no reviews, same as the signup form.
func (s *Service) CreateProfile(ctx context.Context, ownerID uuid.UUID, form ProfileForm) (*models.WorkerProfile, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	if _, err := s.Store.GetByID(ctx, ownerID); err == nil {
		return nil, ErrProfileExists
	} else if err != store.ErrNotFound {
		return nil, err
	}

	skills := form.Skills
	if skills == nil {
		skills = []models.Skill{}
	}
	services := form.Services
	if services == nil {
		services = []models.Service{}
	}

	profile := &models.WorkerProfile{
		UserID:    ownerID,
		Name:      strings.TrimSpace(form.Name),
		Area:      strings.TrimSpace(form.Area),
		City:      strings.TrimSpace(form.City),
		Bio:       form.Bio,
		Portfolio: strings.TrimSpace(form.Portfolio),
		Whatsapp:  strings.TrimSpace(form.Whatsapp),
		Available: form.Available,
		IsActive:  false,
		Likes:     0,
		Skills:    mustJSON(skills),
		Services:  mustJSON(services),
		Reviews:   datatypes.JSON("[]"),
	}

	if err := s.Store.Create(ctx, profile); err != nil {
		return nil, err
	}
	s.notify(ownerID)
	return profile, nil
}

// UpdateProfile replaces every editable field from the submitted form.
func (s *Service) UpdateProfile(ctx context.Context, ownerID uuid.UUID, form ProfileForm) error {
	if err := form.validate(); err != nil {
		return err
	}

	skills := form.Skills
	if skills == nil {
		skills = []models.Skill{}
	}
	services := form.Services
	if services == nil {
		services = []models.Service{}
	}

	err := s.Store.Update(ctx, ownerID, map[string]any{
		"name":      strings.TrimSpace(form.Name),
		"area":      strings.TrimSpace(form.Area),
		"city":      strings.TrimSpace(form.City),
		"bio":       form.Bio,
		"portfolio": strings.TrimSpace(form.Portfolio),
		"whatsapp":  strings.TrimSpace(form.Whatsapp),
		"available": form.Available,
		"skills":    mustJSON(skills),
		"services":  mustJSON(services),
	})
	if err != nil {
		return err
	}
	s.notify(ownerID)
	return nil
}

// ToggleAvailability flips the single available flag. Last write wins under
// concurrent toggles; there is no conflict detection here.
func (s *Service) ToggleAvailability(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	profile, err := s.Store.GetByID(ctx, ownerID)
	if err != nil {
		return false, err
	}
	next := !profile.Available
	if err := s.Store.Update(ctx, ownerID, map[string]any{"available": next}); err != nil {
		return false, err
	}
	s.notify(ownerID)
	return next, nil
}

// Like increments the worker's counter, at most once per browsing session.
// The marker is claimed before the write and released again if the write
// fails, so a failed like stays retryable.
func (s *Service) Like(ctx context.Context, sessionID string, workerID uuid.UUID) error {
	claimed, err := s.Markers.Claim(ctx, session.KindLike, sessionID, workerID.String())
	if err != nil {
		return err
	}
	if !claimed {
		return ErrAlreadyLiked
	}

	if err := s.Store.IncrementLikes(ctx, workerID); err != nil {
		_ = s.Markers.Release(ctx, session.KindLike, sessionID, workerID.String())
		return err
	}
	s.notify(workerID)
	return nil
}

// AddReview prepends one free-text review, at most once per browsing session.
func (s *Service) AddReview(ctx context.Context, sessionID string, workerID uuid.UUID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyReview
	}

	claimed, err := s.Markers.Claim(ctx, session.KindReview, sessionID, workerID.String())
	if err != nil {
		return err
	}
	if !claimed {
		return ErrAlreadyReviewed
	}

	if err := s.Store.AppendReview(ctx, workerID, text); err != nil {
		_ = s.Markers.Release(ctx, session.KindReview, sessionID, workerID.String())
		return err
	}
	s.notify(workerID)
	return nil
}

func (s *Service) notify(workerID uuid.UUID) {
	if s.Notify != nil {
		s.Notify.WorkerUpdated(workerID)
	}
}
