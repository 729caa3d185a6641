package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	apphttp "github.com/jhoicas/medsupply-pro/internal/interfaces/http"
	"github.com/jhoicas/medsupply-pro/pkg/config"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// Backend de desarrollo: sirve el contrato REST del marketplace en memoria
// para probar el cliente sin el backend real.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.Mock.Addr()).
		Msg("iniciando backend de desarrollo")

	// El backend real emite los montos como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	store := apphttp.NewStore()
	if cfg.Mock.Seed {
		if err := store.Seed(); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de ejemplo")
		}
		log.Info().Msg("datos de ejemplo creados (vendor@example.com / facility@example.com)")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-mockapi",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		Store:      store,
		JWTSecret:  cfg.Mock.JWTSecret,
		JWTExpDays: cfg.Mock.JWTExpDays,
	})

	go func() {
		if err := app.Listen(cfg.Mock.Addr()); err != nil {
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

	log.Info().Msg("backend detenido")
}
