package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
	"github.com/Harshanad03/ecommerce-sub000/internal/cache"
	"github.com/Harshanad03/ecommerce-sub000/internal/cart"
	"github.com/Harshanad03/ecommerce-sub000/internal/config"
	"github.com/Harshanad03/ecommerce-sub000/internal/email"
	"github.com/Harshanad03/ecommerce-sub000/internal/kvstore"
	"github.com/Harshanad03/ecommerce-sub000/internal/orders"
	"github.com/Harshanad03/ecommerce-sub000/internal/repository"
	"github.com/Harshanad03/ecommerce-sub000/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	var kv kvstore.Store
	if cfg.RedisURL != "" {
		store, err := kvstore.NewRedisStore(cfg.RedisURL, "storefront:")
		if err != nil {
			log.Fatal("❌ Could not connect to redis: ", err)
		}
		kv = store
		log.Println("✅ Using redis key-value store")
	} else {
		store, err := kvstore.NewFileStore(filepath.Join(cfg.DataDir, "storefront.json"))
		if err != nil {
			log.Fatal("❌ Could not open local store: ", err)
		}
		kv = store
	}

	storage, err := backend.NewStorage(filepath.Join(cfg.DataDir, "uploads"), cfg.BaseURL+"/uploads")
	if err != nil {
		log.Fatal("❌ Could not open upload bucket: ", err)
	}

	connector := backend.NewConnector(kv, cfg.Database)
	local := repository.NewLocalStore(kv)
	repo := repository.NewProductRepository(connector, local)

	var mailer *email.Sender
	if cfg.SendGridKey != "" && cfg.EmailFrom != "" {
		mailer = email.NewSender(cfg.SendGridKey, cfg.EmailFrom, cfg.SiteName)
		log.Println("✅ Email notifications enabled")
	}

	var orderMailer orders.Mailer
	if mailer != nil {
		orderMailer = mailer
	}

	deps := routes.Deps{
		Repo:        repo,
		Cache:       cache.New(5 * time.Minute),
		Carts:       cart.NewManager(kv),
		Orders:      orders.NewService(connector, kv, orderMailer),
		Auth:        backend.NewAuthService(connector, []byte(cfg.JWTSecret)),
		Storage:     storage,
		KV:          kv,
		JWTSecret:   []byte(cfg.JWTSecret),
		AdminAPIKey: cfg.AdminAPIKey,
	}
	if mailer != nil {
		deps.Mailer = mailer
	}

	router := gin.Default()
	routes.RegisterRoutes(router, deps)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped: ", err)
	}
}
