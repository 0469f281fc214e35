package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/inventario-fabrica/internal/application/auth"
	"github.com/tu-usuario/inventario-fabrica/internal/application/inventory"
	"github.com/tu-usuario/inventario-fabrica/internal/application/usecase"
	"github.com/tu-usuario/inventario-fabrica/internal/infrastructure/sheets"
	httpRouter "github.com/tu-usuario/inventario-fabrica/internal/interfaces/http"
	"github.com/tu-usuario/inventario-fabrica/pkg/config"
	"github.com/tu-usuario/inventario-fabrica/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.Sheets.SpreadsheetID == "" {
		log.Fatal().Msg("SHEETS_SPREADSHEET_ID es requerido")
	}

	// Pool de handles al almacén remoto: uno por worker, creados al primer uso.
	pool := sheets.NewPool(cfg.Sheets.PoolSize, func(ctx context.Context) (sheets.Store, error) {
		return sheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
	})

	productRepo := sheets.NewProductRepository(pool, cfg.Sheets.ProductsSheet)
	orderRepo := sheets.NewOrderRepository(pool, cfg.Sheets.OrdersSheet)

	movementUC := inventory.NewMovementUseCase(productRepo, log)
	reconcileUC := inventory.NewReconcileUseCase(productRepo, orderRepo, log)
	productUC := usecase.NewProductUseCase(productRepo)
	authUC := auth.NewAuthUseCase(
		auth.Credentials{Usuario: cfg.Auth.Usuario, PasswordHash: cfg.Auth.PasswordHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
	)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// El almacén remoto puede tardar; el timeout generoso va acá, no en el motor.
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		Movements: movementUC,
		Reconcile: reconcileUC,
		JWTSecret: cfg.JWT.Secret,
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
