package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/medsupply-pro/internal/application/catalog"
	"github.com/jhoicas/medsupply-pro/internal/application/dashboard"
	"github.com/jhoicas/medsupply-pro/internal/application/orders"
	"github.com/jhoicas/medsupply-pro/internal/application/session"
	"github.com/jhoicas/medsupply-pro/internal/infrastructure/rest"
	"github.com/jhoicas/medsupply-pro/internal/infrastructure/tokenstore"
	"github.com/jhoicas/medsupply-pro/internal/interfaces/term"
	"github.com/jhoicas/medsupply-pro/pkg/config"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// Cliente de terminal del marketplace MedSupply Pro.
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
		Str("api", cfg.API.BaseURL).
		Msg("iniciando cliente")

	store, err := tokenstore.New(cfg.Token.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("resolver la ruta del token")
	}

	client := rest.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, log)

	sess := session.NewManager(client, store, log)
	loader := dashboard.NewLoader(client, log)
	createProduct := catalog.NewCreateProductUseCase(client, loader, log)
	placeOrder := orders.NewPlaceOrderUseCase(client, loader, log)

	app := term.NewApp(sess, loader, createProduct, placeOrder,
		term.NewRenderer(os.Stdout), os.Stdin, log)

	// Ctrl+C cancela el comando en vuelo y termina el bucle.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("cliente finalizado con error")
	}

	log.Info().Msg("cliente detenido")
}
