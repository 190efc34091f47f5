// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"expo/internal/delivery/http/middleware"
	"expo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler    *handler.ProductHandler
	SaleHandler       *handler.SaleHandler
	PaymentHandler    *handler.PaymentHandler
	WinnersHandler    *handler.WinnersHandler
	CheckoutHandler   *handler.CheckoutHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler    *handler.ProductHandler
	saleHandler       *handler.SaleHandler
	paymentHandler    *handler.PaymentHandler
	winnersHandler    *handler.WinnersHandler
	checkoutHandler   *handler.CheckoutHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:    params.ProductHandler,
		saleHandler:       params.SaleHandler,
		paymentHandler:    params.PaymentHandler,
		winnersHandler:    params.WinnersHandler,
		checkoutHandler:   params.CheckoutHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/categories", r.productHandler.ListCategories)
		products.GET("/:id", r.productHandler.GetProduct)
		products.POST("", r.productHandler.CreateProduct)
	}

	sales := api.Group("/sales")
	{
		sales.GET("", r.saleHandler.ListSales)
		sales.POST("", r.saleHandler.CreateSale)
	}

	api.POST("/payment", r.paymentHandler.ProcessPayment)
	api.GET("/winners", r.winnersHandler.GetWinners)

	// Opening a session is the only checkout call without a token
	api.POST("/checkout/sessions", r.checkoutHandler.OpenSession)

	checkout := api.Group("/checkout")
	checkout.Use(r.sessionMiddleware.Authenticate)
	{
		checkout.GET("", r.checkoutHandler.GetCheckout)
		checkout.POST("/cart/items", r.checkoutHandler.AddItem)
		checkout.PATCH("/cart/items", r.checkoutHandler.UpdateItem)
		checkout.DELETE("/cart/items", r.checkoutHandler.RemoveItem)
		checkout.DELETE("/cart", r.checkoutHandler.ClearCart)
		checkout.POST("/cart/promo", r.checkoutHandler.ApplyPromo)
		checkout.POST("/start", r.checkoutHandler.Start)
		checkout.POST("/method", r.checkoutHandler.SelectMethod)
		checkout.POST("/details", r.checkoutHandler.EnterDetails)
		checkout.POST("/pay", r.checkoutHandler.Pay)
		checkout.POST("/back", r.checkoutHandler.GoBack)
		checkout.GET("/qr", r.checkoutHandler.PaymentQR)
	}
}
