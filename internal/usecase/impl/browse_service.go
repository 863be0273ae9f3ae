package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type browseService struct {
	catalog    repository.SyncedCatalog
	filters    repository.FilterStateStore
	categories repository.CategoryStore
	logger     *slog.Logger
}

// BrowseServiceParams holds dependencies for BrowseService, injected by Fx.
type BrowseServiceParams struct {
	fx.In

	Catalog    repository.SyncedCatalog
	Filters    repository.FilterStateStore
	Categories repository.CategoryStore
	Logger     *slog.Logger
}

// NewBrowseService creates the storefront catalog service.
func NewBrowseService(params BrowseServiceParams) usecase.BrowseUsecase {
	return &browseService{
		catalog:    params.Catalog,
		filters:    params.Filters,
		categories: params.Categories,
		logger:     params.Logger,
	}
}

func (s *browseService) GetState(ctx context.Context, sessionID string) (*usecase.BrowseState, error) {
	state, err := s.filters.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load filter state")
	}

	return &usecase.BrowseState{State: *state, Label: state.Label()}, nil
}

func (s *browseService) SetSearch(ctx context.Context, sessionID, query string) (*usecase.BrowseState, error) {
	return s.update(ctx, sessionID, func(state *entity.FilterState) {
		state.SearchQuery = strings.TrimSpace(query)
	})
}

func (s *browseService) SetCategory(ctx context.Context, sessionID, group, subcategory string) (*usecase.BrowseState, error) {
	group = strings.TrimSpace(group)
	subcategory = strings.TrimSpace(subcategory)

	return s.update(ctx, sessionID, func(state *entity.FilterState) {
		if group == "" {
			state.Category = nil

			return
		}
		state.Category = &entity.CategoryFilter{Group: group, Subcategory: subcategory}
	})
}

func (s *browseService) ClearCategory(ctx context.Context, sessionID string) (*usecase.BrowseState, error) {
	return s.update(ctx, sessionID, func(state *entity.FilterState) {
		state.Category = nil
	})
}

func (s *browseService) SetSort(ctx context.Context, sessionID, mode string) (*usecase.BrowseState, error) {
	return s.update(ctx, sessionID, func(state *entity.FilterState) {
		state.Sort = entity.ParseSortMode(mode)
	})
}

func (s *browseService) update(ctx context.Context, sessionID string, apply func(*entity.FilterState)) (*usecase.BrowseState, error) {
	state, err := s.filters.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load filter state")
	}

	apply(state)

	if err := s.filters.Save(ctx, sessionID, state); err != nil {
		return nil, errors.Wrap(err, "failed to save filter state")
	}

	return &usecase.BrowseState{State: *state, Label: state.Label()}, nil
}

// ListProducts runs the catalog through the session's search, category and sort.
func (s *browseService) ListProducts(ctx context.Context, sessionID string) (*usecase.ProductListing, error) {
	browse, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products, outcome, err := s.catalog.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result := catalog.Apply(products, browse.State)
	loggerFor(ctx, s.logger).DebugContext(ctx, "Catalog listed",
		slog.Int("total", len(products)),
		slog.Int("shown", len(result.Products)),
		slog.String("backend", string(outcome.Backend)),
	)

	return &usecase.ProductListing{
		Result:  result,
		Browse:  *browse,
		Outcome: outcome,
	}, nil
}

func (s *browseService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, _, err := s.catalog.Get(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (s *browseService) Categories(ctx context.Context) (entity.Categories, error) {
	categories, err := s.categories.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	return categories, nil
}
