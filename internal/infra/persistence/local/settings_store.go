package local

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type categoryStore struct {
	docs documents
}

// NewCategoryStore returns the category tree store.
func NewCategoryStore(store kv.Store, logger *slog.Logger) repository.CategoryStore {
	return &categoryStore{docs: newDocuments(store, logger)}
}

func (s *categoryStore) Load(ctx context.Context) (entity.Categories, error) {
	var categories entity.Categories
	found, err := s.docs.read(ctx, keyCategories, &categories)
	if err != nil {
		return nil, err
	}
	if found && categories != nil {
		return categories, nil
	}

	categories = entity.DefaultCategories()
	if err := s.docs.write(ctx, keyCategories, categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *categoryStore) Save(ctx context.Context, categories entity.Categories) error {
	return s.docs.write(ctx, keyCategories, categories)
}

type adminCredentialStore struct {
	docs documents
}

// NewAdminCredentialStore returns the admin credential store.
func NewAdminCredentialStore(store kv.Store, logger *slog.Logger) repository.AdminCredentialStore {
	return &adminCredentialStore{docs: newDocuments(store, logger)}
}

func (s *adminCredentialStore) Load(ctx context.Context) (*entity.AdminCredential, error) {
	credential := &entity.AdminCredential{}
	found, err := s.docs.read(ctx, keyAdmin, credential)
	if err != nil {
		return nil, err
	}
	if !found || credential.Username == "" || credential.PasswordHash == "" {
		return nil, repository.ErrCredentialNotFound
	}

	return credential, nil
}

func (s *adminCredentialStore) Save(ctx context.Context, credential *entity.AdminCredential) error {
	return s.docs.write(ctx, keyAdmin, credential)
}
