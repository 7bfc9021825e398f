package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appauth "github.com/jhoicas/gestion-cli/internal/application/auth"
	"github.com/jhoicas/gestion-cli/internal/application/cache"
	"github.com/jhoicas/gestion-cli/internal/application/usecase"
	"github.com/jhoicas/gestion-cli/internal/infrastructure/api"
	"github.com/jhoicas/gestion-cli/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/gestion-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-cli/internal/interfaces/cli"
	"github.com/jhoicas/gestion-cli/pkg/config"
	"github.com/jhoicas/gestion-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	sessionPath, err := cfg.Session.Path()
	if err != nil {
		log.Fatal().Err(err).Msg("resolver archivo de sesión")
	}
	sessions := localstore.NewStore(sessionPath, log)

	client := api.NewClient(cfg.API.BaseURL, cfg.API.TimeoutSeconds, log)
	// Restaurar la credencial de una sesión previa, si la hay.
	if _, cookie, ok := sessions.Load(); ok && cookie != "" {
		client.SetSessionCookie(cookie)
	}

	store := cache.NewStore(log)
	app := &cli.App{
		Log:       log,
		Auth:      appauth.NewAuthUseCase(api.NewAuthGateway(client), sessions, client, store),
		Customers: usecase.NewCustomerUseCase(api.NewCustomerGateway(client), store),
		Profile:   usecase.NewProfileUseCase(api.NewProfileGateway(client), store),
		PDF:       infrapdf.NewCustomerListGenerator(),
		Out:       os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
