package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shoplite/ecommerce-api/config"
	orderControllers "github.com/shoplite/ecommerce-api/controllers/order"
	"github.com/shoplite/ecommerce-api/logging"
	"github.com/shoplite/ecommerce-api/middleware"
	"github.com/shoplite/ecommerce-api/routes"
	"github.com/shoplite/ecommerce-api/services"
	"github.com/shoplite/ecommerce-api/storage"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Database.DSN == "" {
		logger.Fatal("DB_DSN is not set")
	}

	// Init DB (migrations run inside Open)
	store, err := storage.Open(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Services
	users := services.NewUserService(store, logger)
	catalog := services.NewCatalogService(store, logger)
	carts := services.NewCartService(store, logger)
	orders := services.NewOrderService(store, logger)

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler(logger))

	routes.SetupRoutes(r, routes.Deps{
		Users:    users,
		Catalog:  catalog,
		Carts:    carts,
		Orders:   orders,
		OrderHub: orderControllers.NewHub(),
	})

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
