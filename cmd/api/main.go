package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vetstock/vetstock-api/internal/application/auth"
	"github.com/vetstock/vetstock-api/internal/application/inventory"
	"github.com/vetstock/vetstock-api/internal/application/usecase"
	"github.com/vetstock/vetstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/vetstock/vetstock-api/internal/interfaces/http"
	"github.com/vetstock/vetstock-api/pkg/config"
	"github.com/vetstock/vetstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	practiceRepo := postgres.NewPracticeRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconcileUC := inventory.NewReconcileUseCase(
		txRunner, productRepo, practiceRepo,
		log.Zerolog(),
		time.Duration(cfg.Stock.OpTimeoutSeconds)*time.Second,
		cfg.Stock.DefaultItemQuantity,
	)
	stockQueryUC := inventory.NewStockQueryUseCase(stockRepo, productRepo, practiceRepo)
	productUC := usecase.NewProductUseCase(productRepo, stockRepo)
	practiceUC := usecase.NewPracticeUseCase(practiceRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		AccessExpMinutes:  cfg.JWT.AccessExpMinutes,
		RefreshExpMinutes: cfg.JWT.RefreshExpMinutes,
		Issuer:            cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VetStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reconcile:  reconcileUC,
		StockQuery: stockQueryUC,
		ProductUC:  productUC,
		PracticeUC: practiceUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
