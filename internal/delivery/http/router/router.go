// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BrowseHandler       *handler.BrowseHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	AdminHandler        *handler.AdminHandler
	ProductAdminHandler *handler.ProductAdminHandler
	OrderAdminHandler   *handler.OrderAdminHandler
	CouponAdminHandler  *handler.CouponAdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	SessionMiddleware   *middleware.SessionMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	browse   *handler.BrowseHandler
	cart     *handler.CartHandler
	checkout *handler.CheckoutHandler
	admin    *handler.AdminHandler
	products *handler.ProductAdminHandler
	orders   *handler.OrderAdminHandler
	coupons  *handler.CouponAdminHandler
	auth     *middleware.AuthMiddleware
	session  *middleware.SessionMiddleware
	metrics  *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		browse:   params.BrowseHandler,
		cart:     params.CartHandler,
		checkout: params.CheckoutHandler,
		admin:    params.AdminHandler,
		products: params.ProductAdminHandler,
		orders:   params.OrderAdminHandler,
		coupons:  params.CouponAdminHandler,
		auth:     params.AuthMiddleware,
		session:  params.SessionMiddleware,
		metrics:  params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Public catalog
	e.GET("/products/:id", r.browse.GetProduct)
	e.GET("/categories", r.browse.Categories)
	e.GET("/orders/:id/qr", r.checkout.OrderQR)

	// Shopper routes keyed by the session cookie
	shop := e.Group("", r.session.Handle)
	{
		shop.GET("/products", r.browse.ListProducts)
		shop.GET("/browse", r.browse.GetState)
		shop.PUT("/browse/search", r.browse.SetSearch)
		shop.PUT("/browse/filter", r.browse.SetCategory)
		shop.DELETE("/browse/filter", r.browse.ClearCategory)
		shop.PUT("/browse/sort", r.browse.SetSort)

		shop.GET("/cart", r.cart.GetCart)
		shop.DELETE("/cart", r.cart.Clear)
		shop.POST("/cart/items", r.cart.AddItem)
		shop.PATCH("/cart/items/:index", r.cart.SetQuantity)
		shop.POST("/cart/items/:index/increment", r.cart.Increment)
		shop.POST("/cart/items/:index/decrement", r.cart.Decrement)
		shop.DELETE("/cart/items/:index", r.cart.RemoveItem)

		shop.GET("/checkout", r.checkout.GetState)
		shop.POST("/checkout", r.checkout.Submit)
		shop.POST("/checkout/coupon", r.checkout.PreviewCoupon)
	}

	e.POST("/admin/login", r.admin.Login)

	// Admin panel requires a token with the admin role
	admin := e.Group("/admin")
	admin.Use(r.auth.Authenticate)
	admin.Use(r.auth.RequireRole(constants.RoleAdmin))
	{
		admin.PUT("/credentials", r.admin.ChangeCredentials)
		admin.PUT("/categories", r.products.SaveCategories)

		admin.GET("/products", r.products.ListProducts)
		admin.POST("/products", r.products.CreateProduct)
		admin.DELETE("/products", r.products.ClearProducts)
		admin.POST("/products/sync", r.products.SyncProducts)
		admin.GET("/products/export", r.products.ExportProducts)
		admin.POST("/products/import", r.products.ImportProducts)
		admin.PUT("/products/:id", r.products.UpdateProduct)
		admin.DELETE("/products/:id", r.products.DeleteProduct)

		admin.GET("/orders", r.orders.ListOrders)
		admin.GET("/orders/export", r.orders.ExportOrders)

		admin.GET("/coupons", r.coupons.ListCoupons)
		admin.POST("/coupons", r.coupons.CreateCoupon)
		admin.DELETE("/coupons/:index", r.coupons.DeleteCoupon)
	}
}
