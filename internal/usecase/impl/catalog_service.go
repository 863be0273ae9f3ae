package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	catalog     repository.SyncedCatalog
	categories  repository.CategoryStore
	spreadsheet service.Spreadsheet
	clock       service.Clock
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog     repository.SyncedCatalog
	Categories  repository.CategoryStore
	Spreadsheet service.Spreadsheet
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewCatalogService creates the admin product service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalog:     params.Catalog,
		categories:  params.Categories,
		spreadsheet: params.Spreadsheet,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) (*usecase.ProductList, error) {
	products, outcome, err := s.catalog.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductList{
		Products: products,
		Backend:  outcome.Backend,
		Warning:  warningFor(outcome, readFallbackWarning),
	}, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*usecase.WriteResult, error) {
	now := s.clock.Now()
	product := productFromInput(input)
	product.CreatedAt = &now

	outcome, err := s.catalog.Add(ctx, &product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add product")
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Product created",
		slog.String("id", outcome.ID),
		slog.String("backend", string(outcome.Backend)),
	)

	return writeResult(outcome), nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, input usecase.ProductInput) (*usecase.WriteResult, error) {
	existing, _, err := s.catalog.Get(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	product := productFromInput(input)
	product.CreatedAt = existing.CreatedAt
	if len(product.Images) == 0 {
		product.Images = existing.Images
	}

	outcome, err := s.catalog.Update(ctx, id, &product)
	if err != nil {
		return nil, mapProductError(err, id, "failed to update product")
	}

	return writeResult(outcome), nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) (*usecase.WriteResult, error) {
	_, _, err := s.catalog.Get(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	outcome, err := s.catalog.Remove(ctx, id)
	if err != nil {
		return nil, mapProductError(err, id, "failed to remove product")
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Product removed",
		slog.String("id", id),
		slog.String("backend", string(outcome.Backend)),
	)

	return writeResult(outcome), nil
}

func (s *catalogService) ClearProducts(ctx context.Context) (*usecase.WriteResult, error) {
	outcome, err := s.catalog.Save(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear products")
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Catalog cleared", slog.String("backend", string(outcome.Backend)))

	return writeResult(outcome), nil
}

func (s *catalogService) SyncProducts(ctx context.Context) (int, error) {
	if !s.catalog.RemoteEnabled() {
		return 0, domainerrors.ErrRemoteDisabled
	}

	count, err := s.catalog.PushLocal(ctx)
	if err != nil {
		loggerFor(ctx, s.logger).ErrorContext(ctx, "Product sync failed", slog.Int("pushed", count), slog.Any("error", err))

		return count, err
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Products synced", slog.Int("count", count))

	return count, nil
}

func (s *catalogService) ExportProducts(ctx context.Context, w io.Writer) error {
	products, _, err := s.catalog.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list products")
	}

	return s.spreadsheet.WriteProducts(w, products)
}

// ImportProducts adds every valid row of the workbook as a new product.
func (s *catalogService) ImportProducts(ctx context.Context, r io.ReaderAt, size int64) (*usecase.ImportOutput, error) {
	products, skipped, err := s.spreadsheet.ReadProducts(r, size)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	out := &usecase.ImportOutput{Skipped: skipped}
	for i := range products {
		if products[i].CreatedAt == nil {
			now := s.clock.Now()
			products[i].CreatedAt = &now
		}

		outcome, err := s.catalog.Add(ctx, &products[i])
		if err != nil {
			return out, errors.Wrapf(err, "failed to add imported product %q", products[i].Title)
		}
		out.Added++
		if outcome.FellBack() {
			out.Warning = writeFallbackWarning
		}
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Products imported",
		slog.Int("added", out.Added),
		slog.Int("skipped", out.Skipped),
	)

	return out, nil
}

func (s *catalogService) SaveCategories(ctx context.Context, categories entity.Categories) error {
	cleaned := entity.Categories{}
	for group, subs := range categories {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		kept := []string{}
		for _, sub := range subs {
			if sub = strings.TrimSpace(sub); sub != "" {
				kept = append(kept, sub)
			}
		}
		cleaned[group] = kept
	}

	return errors.Wrap(s.categories.Save(ctx, cleaned), "failed to save categories")
}

func productFromInput(input usecase.ProductInput) entity.Product {
	var images []string
	for _, img := range input.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	return entity.Product{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Images:      images,
		Price:       input.Price,
		Discount:    input.Discount,
		Published:   input.Published,
		Group:       strings.TrimSpace(input.Group),
		Subcategory: strings.TrimSpace(input.Subcategory),
	}
}

func writeResult(outcome repository.Outcome) *usecase.WriteResult {
	return &usecase.WriteResult{
		ID:      outcome.ID,
		Backend: outcome.Backend,
		Warning: warningFor(outcome, writeFallbackWarning),
	}
}

// mapProductError turns a store not-found into the API error. Persistence
// errors pass through untouched so the caller sees the remote failure.
func mapProductError(err error, id, msg string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound.WithDetails(id)
	}

	var persistErr *domainerrors.PersistenceError
	if errors.As(err, &persistErr) {
		return persistErr
	}

	return errors.Wrap(err, msg)
}
