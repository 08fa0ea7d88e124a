package resource

import (
	"context"

	"github.com/google/uuid"
)

// Store is what the service needs from the repository.
type Store[T any, P any] interface {
	List(ctx context.Context, userID string) ([]*T, error)
	GetByID(ctx context.Context, userID, id string) (*T, error)
	Create(ctx context.Context, userID, id string, payload *P) (*T, error)
	Patch(ctx context.Context, userID, id string, payload *P) (*T, error)
	Delete(ctx context.Context, userID, id string) (string, error)
	BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error)
}

// API is the operation surface the handlers consume.
type API[T any, P any] interface {
	List(ctx context.Context, userID string) ([]*T, error)
	GetByID(ctx context.Context, userID, id string) (*T, error)
	Create(ctx context.Context, userID string, payload *P) (*T, error)
	Patch(ctx context.Context, userID, id string, payload *P) (*T, error)
	Delete(ctx context.Context, userID, id string) (string, error)
	BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error)
}

// Service applies the entity's field schema and mints ids; everything
// else passes straight through to the store.
type Service[T any, P any] struct {
	store Store[T, P]
	def   *Definition[T, P]
}

func NewService[T any, P any](store Store[T, P], def *Definition[T, P]) *Service[T, P] {
	return &Service[T, P]{store: store, def: def}
}

func (s *Service[T, P]) List(ctx context.Context, userID string) ([]*T, error) {
	return s.store.List(ctx, userID)
}

func (s *Service[T, P]) GetByID(ctx context.Context, userID, id string) (*T, error) {
	return s.store.GetByID(ctx, userID, id)
}

// Create validates the payload, assigns a fresh id and stores the
// row under the caller's identity. Client-supplied ids never reach
// this point; the payload type has no id field.
func (s *Service[T, P]) Create(ctx context.Context, userID string, payload *P) (*T, error) {
	if err := s.def.Validate(payload); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, userID, uuid.NewString(), payload)
}

// Patch validates the provided fields against the entity's value
// rules, then applies them. A field a create would reject is rejected
// here too; fields left out of the payload are untouched.
func (s *Service[T, P]) Patch(ctx context.Context, userID, id string, payload *P) (*T, error) {
	if err := s.def.ValidatePatch(payload); err != nil {
		return nil, err
	}
	return s.store.Patch(ctx, userID, id, payload)
}

func (s *Service[T, P]) Delete(ctx context.Context, userID, id string) (string, error) {
	return s.store.Delete(ctx, userID, id)
}

func (s *Service[T, P]) BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error) {
	return s.store.BulkDelete(ctx, userID, ids)
}
