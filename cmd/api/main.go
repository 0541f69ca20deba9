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

	_ "github.com/vecindo/registro-api/docs"
	"github.com/vecindo/registro-api/internal/application/auth"
	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/internal/application/registro"
	"github.com/vecindo/registro-api/internal/infrastructure/checks"
	"github.com/vecindo/registro-api/internal/infrastructure/geo"
	infrapdf "github.com/vecindo/registro-api/internal/infrastructure/pdf"
	"github.com/vecindo/registro-api/internal/infrastructure/postgres"
	httpRouter "github.com/vecindo/registro-api/internal/interfaces/http"
	"github.com/vecindo/registro-api/pkg/config"
	"github.com/vecindo/registro-api/pkg/logger"
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

	accountRepo := postgres.NewAccountRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	divisionRepo := postgres.NewDivisionRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)

	checksClient := checks.NewClient(cfg.Checks)
	geocoder := geo.NewNominatimClient(cfg.Geo)

	registry := flow.NewRegistry(flow.Deps{
		Accounts:   accountRepo,
		Businesses: businessRepo,
		Addresses:  addressRepo,
		Snapshots:  snapshotRepo,
		Checker:    checksClient,
		Codes:      checksClient,
		Log:        log,
	})

	authUC := auth.NewAuthUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: constancia de registro con QR de verificación pública
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.BaseURL)
	constanciaUC := registro.NewConstanciaUseCase(
		accountRepo, businessRepo, addressRepo, snapshotRepo, pdfGenerator,
	)

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
		Title:    "Registro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Registry:     registry,
		ConstanciaUC: constanciaUC,
		Divisions:    divisionRepo,
		Geocoder:     geocoder,
		JWTSecret:    cfg.JWT.Secret,
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
