package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/BANCESQWQ/bobisfinal/internal/application/analytics"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	infrapdf "github.com/BANCESQWQ/bobisfinal/internal/infrastructure/pdf"
	"github.com/BANCESQWQ/bobisfinal/internal/infrastructure/postgres"
	httpRouter "github.com/BANCESQWQ/bobisfinal/internal/interfaces/http"
	"github.com/BANCESQWQ/bobisfinal/pkg/config"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
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

	registroRepo := postgres.NewRegistroRepository(pool)
	gestionRepo := postgres.NewGestionRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	guiaGenerator := infrapdf.NewMarotoGuiaGenerator()

	registroUC := usecase.NewRegistroUseCase(registroRepo)
	gestionUC := usecase.NewGestionUseCase(gestionRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, txRunner, guiaGenerator)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegistroUC:  registroUC,
		GestionUC:   gestionUC,
		PedidoUC:    pedidoUC,
		UsuarioUC:   usuarioUC,
		DashboardUC: dashboardUC,
		DB:          pool,
		CORS:        cfg.CORS,
		Log:         log,
		AppName:     cfg.App.Name,
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
