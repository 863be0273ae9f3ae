package local

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

// catalogStore keeps the whole product list under one key. A product's id
// is its position in that list.
type catalogStore struct {
	docs documents
}

// NewCatalogStore returns the local product backend.
func NewCatalogStore(store kv.Store, logger *slog.Logger) repository.CatalogStore {
	return &catalogStore{docs: newDocuments(store, logger)}
}

// ParseIndex converts a local product id to its list position.
func ParseIndex(id string) (int, bool) {
	index, err := strconv.Atoi(id)
	if err != nil || index < 0 {
		return 0, false
	}

	return index, true
}

func (s *catalogStore) load(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if _, err := s.docs.read(ctx, keyProducts, &products); err != nil {
		return nil, err
	}
	for i := range products {
		products[i].ID = strconv.Itoa(i)
	}

	return products, nil
}

func (s *catalogStore) store(ctx context.Context, products []entity.Product) error {
	stored := make([]entity.Product, len(products))
	for i, p := range products {
		stored[i] = p.Clone()
		stored[i].ID = ""
	}

	return s.docs.write(ctx, keyProducts, stored)
}

func (s *catalogStore) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}

func (s *catalogStore) Get(ctx context.Context, id string) (*entity.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	index, ok := ParseIndex(id)
	if !ok || index >= len(products) {
		return nil, repository.ErrProductNotFound
	}
	product := products[index]

	return &product, nil
}

func (s *catalogStore) Save(ctx context.Context, products []entity.Product) error {
	return s.store(ctx, products)
}

func (s *catalogStore) Add(ctx context.Context, product *entity.Product) (string, error) {
	products, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	products = append(products, *product)
	if err := s.store(ctx, products); err != nil {
		return "", err
	}

	return strconv.Itoa(len(products) - 1), nil
}

func (s *catalogStore) Update(ctx context.Context, id string, product *entity.Product) error {
	products, err := s.load(ctx)
	if err != nil {
		return err
	}

	index, ok := ParseIndex(id)
	if !ok || index >= len(products) {
		return repository.ErrProductNotFound
	}
	products[index] = *product

	return s.store(ctx, products)
}

func (s *catalogStore) Remove(ctx context.Context, id string) error {
	products, err := s.load(ctx)
	if err != nil {
		return err
	}

	index, ok := ParseIndex(id)
	if !ok || index >= len(products) {
		return repository.ErrProductNotFound
	}
	products = append(products[:index], products[index+1:]...)

	return s.store(ctx, products)
}
