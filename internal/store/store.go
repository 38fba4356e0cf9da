// Package store is the document-store boundary for the workers collection.
// Handlers and services talk to the WorkerStore interface so tests can swap
// in fakes; the GORM implementation lives in workers_gorm.go.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gigworkers/gigworkers_be/internal/models"
)

var ErrNotFound = errors.New("worker not found")

type WorkerStore interface {
	ListAll(ctx context.Context) ([]models.WorkerProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkerProfile, error)
	Create(ctx context.Context, profile *models.WorkerProfile) error
	// Update applies a partial set of column values to one worker record.
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	// IncrementLikes bumps the like counter atomically in the store, so
	// concurrent likers from different sessions never undercount.
	IncrementLikes(ctx context.Context, id uuid.UUID) error
	// AppendReview prepends a review atomically in the store (newest first),
	// so concurrent reviewers never overwrite each other's append.
	AppendReview(ctx context.Context, id uuid.UUID, text string) error
}
