package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when no admin credential was stored yet.
var ErrCredentialNotFound = errors.New("admin credential not found")

// CategoryStore keeps the category tree. The default tree is stored on first load.
type CategoryStore interface {
	Load(ctx context.Context) (entity.Categories, error)
	Save(ctx context.Context, categories entity.Categories) error
}

// AdminCredentialStore keeps the single admin login.
type AdminCredentialStore interface {
	Load(ctx context.Context) (*entity.AdminCredential, error)
	Save(ctx context.Context, credential *entity.AdminCredential) error
}
