package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/tick/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TaskRepository interface {
	// Create persists the task and fills in its generated ID.
	Create(ctx context.Context, task *domain.Task) error
	// GetByOwnerAndID returns nil when no task with that id belongs to owner.
	// A task owned by someone else is indistinguishable from a missing one.
	GetByOwnerAndID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	// DeleteByOwnerAndID reports whether a row was actually removed.
	DeleteByOwnerAndID(ctx context.Context, ownerID uuid.UUID, id int64) (bool, error)
}
