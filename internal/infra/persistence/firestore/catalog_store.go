// Package firestore implements the remote backend on Cloud Firestore.
package firestore

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type catalogStore struct {
	client *firestore.Client
}

// NewCatalogStore returns the remote product backend. Product ids are document ids.
func NewCatalogStore(client *firestore.Client) repository.CatalogStore {
	return &catalogStore{client: client}
}

func (s *catalogStore) collection() *firestore.CollectionRef {
	return s.client.Collection(constants.CollectionProducts)
}

func (s *catalogStore) List(ctx context.Context) ([]entity.Product, error) {
	docs, err := s.collection().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]entity.Product, 0, len(docs))
	for _, doc := range docs {
		var p entity.Product
		if err := doc.DataTo(&p); err != nil {
			return nil, errors.Wrapf(err, "decode product %s", doc.Ref.ID)
		}
		p.ID = doc.Ref.ID
		products = append(products, p)
	}

	return products, nil
}

func (s *catalogStore) Get(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, repository.ErrProductNotFound
	}

	doc, err := s.collection().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get product %s", id)
	}

	var p entity.Product
	if err := doc.DataTo(&p); err != nil {
		return nil, errors.Wrapf(err, "decode product %s", id)
	}
	p.ID = doc.Ref.ID

	return &p, nil
}

// Save replaces the collection: every existing document is deleted and each
// product is written as a new document.
func (s *catalogStore) Save(ctx context.Context, products []entity.Product) error {
	existing, err := s.collection().DocumentRefs(ctx).GetAll()
	if err != nil {
		return errors.Wrap(err, "list product refs")
	}

	writer := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(existing)+len(products))
	for _, ref := range existing {
		job, err := writer.Delete(ref)
		if err != nil {
			writer.End()

			return errors.Wrapf(err, "queue delete %s", ref.ID)
		}
		jobs = append(jobs, job)
	}
	for i := range products {
		job, err := writer.Create(s.collection().NewDoc(), &products[i])
		if err != nil {
			writer.End()

			return errors.Wrap(err, "queue create product")
		}
		jobs = append(jobs, job)
	}
	writer.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.Wrap(err, "replace products")
		}
	}

	return nil
}

func (s *catalogStore) Add(ctx context.Context, product *entity.Product) (string, error) {
	ref, _, err := s.collection().Add(ctx, product)
	if err != nil {
		return "", errors.Wrap(err, "add product")
	}

	return ref.ID, nil
}

func (s *catalogStore) Update(ctx context.Context, id string, product *entity.Product) error {
	if id == "" {
		return repository.ErrProductNotFound
	}

	if _, err := s.collection().Doc(id).Set(ctx, product); err != nil {
		return errors.Wrapf(err, "set product %s", id)
	}

	return nil
}

func (s *catalogStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return repository.ErrProductNotFound
	}

	if _, err := s.collection().Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete product %s", id)
	}

	return nil
}
