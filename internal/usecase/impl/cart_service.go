package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type cartService struct {
	carts     repository.CartStore
	checkouts repository.CheckoutStateStore
	catalog   repository.SyncedCatalog
	formatter service.MoneyFormatter
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Carts     repository.CartStore
	Checkouts repository.CheckoutStateStore
	Catalog   repository.SyncedCatalog
	Formatter service.MoneyFormatter
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		carts:     params.Carts,
		checkouts: params.Checkouts,
		catalog:   params.Catalog,
		formatter: params.Formatter,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return newCartView(cart, s.formatter), nil
}

// AddItem merges the item into the cart and reopens a submitted checkout.
func (s *cartService) AddItem(ctx context.Context, sessionID string, input usecase.AddItemInput) (*usecase.CartView, error) {
	if err := checkQuantity(input.Quantity); err != nil {
		return nil, err
	}
	item, err := s.resolveItem(ctx, input)
	if err != nil {
		return nil, err
	}

	view, err := s.mutate(ctx, sessionID, "add", func(cart *entity.Cart) error {
		cart.Add(item, input.Quantity)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkouts.Save(ctx, sessionID, &entity.CheckoutState{Status: entity.CheckoutEditing}); err != nil {
		return nil, errors.Wrap(err, "failed to reset checkout state")
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Item added to cart",
		slog.String("title", item.Title),
		slog.Int("count", view.Count),
	)

	return view, nil
}

func (s *cartService) resolveItem(ctx context.Context, input usecase.AddItemInput) (entity.CartItem, error) {
	if input.ProductID != "" {
		product, _, err := s.catalog.Get(ctx, input.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.CartItem{}, domainerrors.ErrProductNotFound.WithDetails(input.ProductID)
		}
		if err != nil {
			return entity.CartItem{}, errors.Wrap(err, "failed to get product")
		}

		return entity.CartItem{
			Title: product.Title,
			Price: product.Price,
			Img:   product.Thumbnail(),
		}, nil
	}

	if input.Item == nil || strings.TrimSpace(input.Item.Title) == "" {
		return entity.CartItem{}, domainerrors.NewValidationError("title", "ITEM_TITLE_REQUIRED", "الرجاء تحديد المنتج")
	}
	if input.Item.Price < 0 {
		return entity.CartItem{}, domainerrors.NewValidationError("price", "ITEM_PRICE_INVALID", "السعر غير صالح")
	}

	return entity.CartItem{
		Title: strings.TrimSpace(input.Item.Title),
		Price: input.Item.Price,
		Img:   input.Item.Img,
	}, nil
}

func (s *cartService) SetQuantity(ctx context.Context, sessionID string, index, quantity int) (*usecase.CartView, error) {
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, "set_quantity", func(cart *entity.Cart) error {
		return indexed(cart.SetQuantity(index, quantity), index)
	})
}

func (s *cartService) Increment(ctx context.Context, sessionID string, index int) (*usecase.CartView, error) {
	return s.mutate(ctx, sessionID, "increment", func(cart *entity.Cart) error {
		return indexed(cart.Increment(index), index)
	})
}

func (s *cartService) Decrement(ctx context.Context, sessionID string, index int) (*usecase.CartView, error) {
	return s.mutate(ctx, sessionID, "decrement", func(cart *entity.Cart) error {
		return indexed(cart.Decrement(index), index)
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, index int) (*usecase.CartView, error) {
	return s.mutate(ctx, sessionID, "remove", func(cart *entity.Cart) error {
		return indexed(cart.Remove(index), index)
	})
}

func (s *cartService) Clear(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return s.mutate(ctx, sessionID, "clear", func(cart *entity.Cart) error {
		cart.Clear()

		return nil
	})
}

// mutate loads the cart, applies op and saves it before returning.
func (s *cartService) mutate(ctx context.Context, sessionID, op string, apply func(*entity.Cart) error) (*usecase.CartView, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if err := apply(cart); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}
	s.metrics.CartMutation(op)

	return newCartView(cart, s.formatter), nil
}

// checkQuantity rejects quantities a cart line cannot hold. Values below 1
// are left to the cart, which clamps them.
func checkQuantity(quantity int) error {
	if quantity > entity.MaxQuantity {
		return domainerrors.NewValidationError("quantity", "QUANTITY_TOO_LARGE",
			"الكمية يجب ألا تتجاوز "+strconv.Itoa(entity.MaxQuantity))
	}

	return nil
}

func indexed(ok bool, index int) error {
	if ok {
		return nil
	}

	return domainerrors.ErrCartItemNotFound.WithDetails("index " + strconv.Itoa(index))
}
