package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/events"
	"github.com/onlinestore/backend/orders"
	"github.com/onlinestore/backend/storage"
)

// SetupRouter wires every endpoint. Tests drive the returned engine through
// httptest against an in-memory database.
func SetupRouter(store storage.Store, tokens *auth.TokenService, publisher events.Publisher) *gin.Engine {
	r := gin.Default()

	orderService := orders.NewService(store, publisher)

	authHandler := NewAuthHandler(store, tokens)
	productHandler := NewProductHandler(store)
	categoryHandler := NewCategoryHandler(store)
	customerHandler := NewCustomerHandler(store)
	imageHandler := NewImageHandler(store)
	orderHandler := NewOrderHandler(store, orderService)
	paymentHandler := NewPaymentHandler(store)
	shippingHandler := NewShippingHandler(store)
	reviewHandler := NewReviewHandler(store)
	adminHandler := NewAdminHandler(store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public surface: registration, login, and the product catalog.
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)
	r.GET("/products/exists/:id", productHandler.Exists)
	r.GET("/products/:id/reviews", reviewHandler.ListByProduct)
	r.GET("/products/:id/images", imageHandler.ListByProduct)
	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:id", categoryHandler.Get)

	authed := r.Group("/", auth.Middleware(tokens))
	{
		authed.GET("/auth/me", authHandler.Me)

		authed.POST("/orders/complete", orderHandler.PlaceComplete)
		authed.GET("/orders/:id", orderHandler.Get)
		authed.GET("/orders/customer/:customerID", orderHandler.ListByCustomer)
		authed.GET("/orders/exists/:id", orderHandler.Exists)
		authed.PUT("/orders/:id/status", orderHandler.UpdateStatus)

		authed.GET("/orderitems/order/:orderID", orderHandler.ItemsByOrder)
		authed.GET("/payments/order/:orderID", paymentHandler.GetByOrder)
		authed.GET("/shippings/order/:orderID", shippingHandler.GetByOrder)

		authed.GET("/customers/:id", customerHandler.Get)
		authed.PUT("/customers/:id", customerHandler.Update)

		authed.POST("/reviews", reviewHandler.Create)
	}

	admin := r.Group("/", auth.Middleware(tokens), auth.AdminOnly())
	{
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.POST("/images", imageHandler.Create)
		admin.DELETE("/images/:id", imageHandler.Delete)

		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.GET("/customers", customerHandler.List)
		admin.DELETE("/customers/:id", customerHandler.Delete)

		admin.GET("/orders", orderHandler.List)
		admin.PUT("/orders/:id", orderHandler.Update)
		admin.DELETE("/orders/:id", orderHandler.Delete)

		admin.GET("/payments", paymentHandler.List)
		admin.GET("/shippings", shippingHandler.List)
		admin.PUT("/shippings/:id", shippingHandler.Update)

		admin.GET("/admin/stats", adminHandler.Stats)
	}

	return r
}
