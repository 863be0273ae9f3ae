package impl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/cucumber/godog"
)

type storefrontScenario struct {
	t        *testing.T
	f        *storefrontFixtures
	cart     *usecase.CartView
	preview  *usecase.CouponPreview
	listing  *usecase.ProductListing
	checkErr error
}

func (s *storefrontScenario) reset() {
	s.f = newStorefrontFixtures(s.t)
	s.cart = nil
	s.preview = nil
	s.listing = nil
	s.checkErr = nil
}

func (s *storefrontScenario) aCoupon(ctx context.Context, status, kind, code string, value int) error {
	coupon := entity.Coupon{
		Code:   code,
		Type:   entity.CouponType(kind),
		Value:  float64(value),
		Active: status == "active",
	}

	return s.f.coupons.Add(ctx, &coupon)
}

func (s *storefrontScenario) theCatalogContains(ctx context.Context, table *godog.Table) error {
	products := make([]entity.Product, 0, len(table.Rows))
	for _, row := range table.Rows[1:] {
		price, err := strconv.ParseInt(row.Cells[1].Value, 10, 64)
		if err != nil {
			return err
		}
		products = append(products, entity.Product{
			Title: row.Cells[0].Value,
			Price: price,
			Group: row.Cells[2].Value,
		})
	}

	_, err := s.f.catalog.Save(ctx, products)

	return err
}

func (s *storefrontScenario) iAddToTheCart(ctx context.Context, quantity int, title string, price int) error {
	view, err := s.f.cart.AddItem(ctx, testSession, usecase.AddItemInput{
		Item:     &entity.CartItem{Title: title, Price: int64(price)},
		Quantity: quantity,
	})
	if err != nil {
		return err
	}
	s.cart = view

	return nil
}

func (s *storefrontScenario) iDecrementLine(ctx context.Context, line int) error {
	view, err := s.f.cart.Decrement(ctx, testSession, line-1)
	if err != nil {
		return err
	}
	s.cart = view

	return nil
}

func (s *storefrontScenario) iPreviewCoupon(ctx context.Context, code string) error {
	preview, err := s.f.checkout.PreviewCoupon(ctx, testSession, code)
	if err != nil {
		return err
	}
	s.preview = preview

	return nil
}

func (s *storefrontScenario) iSubmitCheckoutWithAnEmptyPhone(ctx context.Context) error {
	form := validForm()
	form.Phone = ""
	_, s.checkErr = s.f.checkout.Submit(ctx, testSession, form)

	return nil
}

func (s *storefrontScenario) iFilterByGroup(ctx context.Context, group string) error {
	if _, err := s.f.browse.SetCategory(ctx, testSession, group, ""); err != nil {
		return err
	}
	listing, err := s.f.browse.ListProducts(ctx, testSession)
	if err != nil {
		return err
	}
	s.listing = listing

	return nil
}

func (s *storefrontScenario) theTotalsAre(subtotal, discount, total int) error {
	if s.preview == nil {
		return errors.New("no coupon preview was taken")
	}
	got := s.preview.Quote
	if got.Subtotal != int64(subtotal) || got.Discount != int64(discount) || got.Total != int64(total) {
		return fmt.Errorf("expected %d/%d/%d, got %d/%d/%d",
			subtotal, discount, total, got.Subtotal, got.Discount, got.Total)
	}

	return nil
}

func (s *storefrontScenario) theCartHasLines(count int) error {
	if s.cart == nil || len(s.cart.Items) != count {
		return fmt.Errorf("expected %d cart lines, got %v", count, s.cart)
	}

	return nil
}

func (s *storefrontScenario) lineHasQuantity(line, quantity int) error {
	if s.cart == nil || line < 1 || line > len(s.cart.Items) {
		return fmt.Errorf("cart has no line %d", line)
	}
	if got := s.cart.Items[line-1].Quantity; got != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, got)
	}

	return nil
}

func (s *storefrontScenario) checkoutFailsOnField(field string) error {
	var verr *domainerrors.ValidationError
	if !errors.As(s.checkErr, &verr) {
		return fmt.Errorf("expected a validation error, got %v", s.checkErr)
	}
	if verr.Field != field {
		return fmt.Errorf("expected field %q, got %q", field, verr.Field)
	}

	return nil
}

func (s *storefrontScenario) theCheckoutIsStillBeingEdited(ctx context.Context) error {
	view, err := s.f.checkout.GetState(ctx, testSession)
	if err != nil {
		return err
	}
	if view.State.Status != entity.CheckoutEditing {
		return fmt.Errorf("expected editing, got %s", view.State.Status)
	}

	return nil
}

func (s *storefrontScenario) noOrderHasBeenPlaced(ctx context.Context) error {
	orders, _, err := s.f.orders.List(ctx)
	if err != nil {
		return err
	}
	if len(orders) != 0 {
		return fmt.Errorf("expected no orders, got %d", len(orders))
	}

	return nil
}

func (s *storefrontScenario) theListingShows(expected string) error {
	if s.listing == nil {
		return errors.New("no listing was taken")
	}
	got := titles(s.listing.Products)
	if strings.Join(got, ", ") != expected {
		return fmt.Errorf("expected %q, got %q", expected, strings.Join(got, ", "))
	}

	return nil
}

func initializeStorefrontScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(sc *godog.ScenarioContext) {
		s := &storefrontScenario{t: t}

		sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			s.reset()

			return ctx, nil
		})

		// Given
		sc.Step(`^an? (active|inactive) (percent|fixed) coupon "([^"]*)" worth (\d+)$`, s.aCoupon)
		sc.Step(`^the catalog contains:$`, s.theCatalogContains)

		// When
		sc.Step(`^I add (\d+) "([^"]*)" priced (\d+) to the cart$`, s.iAddToTheCart)
		sc.Step(`^I decrement line (\d+)$`, s.iDecrementLine)
		sc.Step(`^I preview coupon "([^"]*)"$`, s.iPreviewCoupon)
		sc.Step(`^I submit checkout with an empty phone$`, s.iSubmitCheckoutWithAnEmptyPhone)
		sc.Step(`^I filter by group "([^"]*)"$`, s.iFilterByGroup)

		// Then
		sc.Step(`^the subtotal is (\d+), the discount is (\d+) and the total is (\d+)$`, s.theTotalsAre)
		sc.Step(`^the cart has (\d+) lines?$`, s.theCartHasLines)
		sc.Step(`^line (\d+) has quantity (\d+)$`, s.lineHasQuantity)
		sc.Step(`^checkout fails on the "([^"]*)" field$`, s.checkoutFailsOnField)
		sc.Step(`^the checkout is still being edited$`, s.theCheckoutIsStillBeingEdited)
		sc.Step(`^no order has been placed$`, s.noOrderHasBeenPlaced)
		sc.Step(`^the listing shows "([^"]*)"$`, s.theListingShows)
	}
}

func TestStorefrontFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeStorefrontScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
