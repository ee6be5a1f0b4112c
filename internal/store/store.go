package store

import (
	"context"
	"errors"

	"github.com/B7A9F/exercices-api/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// UserStore persists user identity records. Email uniqueness is enforced
// by a pre-check plus a unique index; the check-then-create window is an
// accepted race (see DESIGN.md).
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ExerciceStore persists exercice records keyed by owner identity.
type ExerciceStore interface {
	ListByOwners(ctx context.Context, owners []string) ([]models.Exercice, error)
	ExistsTriple(ctx context.Context, owner, name, exerciceType, muscle string) (bool, error)
	Create(ctx context.Context, ex models.Exercice) error
	GetByID(ctx context.Context, id string) (models.Exercice, error)
	Update(ctx context.Context, ex models.Exercice) error
	Delete(ctx context.Context, id string) error
}
