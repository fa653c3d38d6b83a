package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
	"github.com/Harshanad03/ecommerce-sub000/internal/cache"
	"github.com/Harshanad03/ecommerce-sub000/internal/cart"
	"github.com/Harshanad03/ecommerce-sub000/internal/handlers"
	"github.com/Harshanad03/ecommerce-sub000/internal/kvstore"
	"github.com/Harshanad03/ecommerce-sub000/internal/middleware"
	"github.com/Harshanad03/ecommerce-sub000/internal/orders"
	"github.com/Harshanad03/ecommerce-sub000/internal/repository"
)

// Deps agrupa lo que arma el composition root.
type Deps struct {
	Repo        *repository.ProductRepository
	Cache       *cache.Cache
	Carts       *cart.Manager
	Orders      *orders.Service
	Auth        *backend.AuthService
	Storage     *backend.Storage
	KV          kvstore.Store
	Mailer      handlers.WelcomeMailer
	JWTSecret   []byte
	AdminAPIKey string
}

func RegisterRoutes(router *gin.Engine, deps Deps) {
	products := handlers.NewProductHandler(deps.Repo, deps.Cache)
	carts := handlers.NewCartHandler(deps.Carts, deps.Repo)
	checkout := handlers.NewCheckoutHandler(deps.Carts, deps.Orders)
	auth := handlers.NewAuthHandler(deps.Auth, deps.Mailer)
	settings := handlers.NewSettingsHandler(deps.KV, deps.Cache)
	uploads := handlers.NewUploadHandler(deps.Storage)

	router.Static("/uploads", deps.Storage.Dir())

	v1 := router.Group("/v1")
	v1.Use(middleware.Authenticate(deps.JWTSecret))
	{
		v1.GET("/products", products.ListProducts)
		v1.GET("/products/:id", products.GetProduct)

		v1.POST("/auth/register", auth.Register)
		v1.POST("/auth/login", auth.Login)
		v1.GET("/auth/me", middleware.RequireAuth(deps.JWTSecret), auth.Me)

		v1.GET("/cart", carts.GetCart)
		v1.POST("/cart/items", carts.AddItem)
		v1.PUT("/cart/items/:product_id", carts.UpdateItem)
		v1.DELETE("/cart/items/:product_id", carts.RemoveItem)
		v1.DELETE("/cart", carts.ClearCart)

		v1.POST("/checkout", checkout.Checkout)
		v1.GET("/orders", checkout.History)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdmin(deps.JWTSecret, deps.AdminAPIKey))
	{
		admin.POST("/products", products.CreateProduct)
		admin.PATCH("/products/:id", products.UpdateProduct)
		admin.DELETE("/products/:id", products.DeleteProduct)

		admin.POST("/uploads", uploads.Upload)

		admin.GET("/settings/backend", settings.Status)
		admin.PUT("/settings/backend", settings.Update)
		admin.DELETE("/settings/backend", settings.Clear)
	}
}
