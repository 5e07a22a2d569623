package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/config"
	"github.com/quartzsoft/tempus-api/internal/infrastructure/database"
	"github.com/quartzsoft/tempus-api/internal/infrastructure/repository"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/handler"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/routes"
	"github.com/quartzsoft/tempus-api/pkg/cache"
	"github.com/quartzsoft/tempus-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Catalog reads go through Redis when it is configured; the noop cache
	// keeps the wiring identical without it.
	var catalogCache cache.Cache = cache.NoopCache{}
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Warning: Redis unreachable, falling back to no cache: %v", err)
		} else {
			catalogCache = redisCache
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	stockRepo := repository.NewStockRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	registerRepo := repository.NewRegisterRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, storeRepo, jwtManager)
	storeService := service.NewStoreService(storeRepo)
	productService := service.NewProductService(productRepo, collectionRepo, supplierRepo, catalogCache)
	collectionService := service.NewCollectionService(collectionRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	customerService := service.NewCustomerService(customerRepo, saleRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, customerRepo, storeRepo, productRepo)
	stockService := service.NewStockService(stockRepo, productRepo, storeRepo)
	sessionService := service.NewSessionService(sessionRepo, registerRepo, storeRepo)
	saleService := service.NewSaleService(saleRepo, sessionRepo, registerRepo, stockRepo, productRepo, customerRepo)

	// Handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Store:       handler.NewStoreHandler(storeService),
		Product:     handler.NewProductHandler(productService),
		Collection:  handler.NewCollectionHandler(collectionService),
		Supplier:    handler.NewSupplierHandler(supplierService),
		Customer:    handler.NewCustomerHandler(customerService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Stock:       handler.NewStockHandler(stockService),
		Session:     handler.NewSessionHandler(sessionService),
		Sale:        handler.NewSaleHandler(saleService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	addr := ":" + cfg.App.Port
	log.Printf("%s listening on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
