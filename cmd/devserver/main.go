package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/gestion-cli/internal/devserver"
	"github.com/jhoicas/gestion-cli/pkg/config"
	"github.com/jhoicas/gestion-cli/pkg/logger"
)

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
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando devserver")

	srv := devserver.New(cfg.JWT, log)

	// Apagado ordenado ante SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("apagando devserver")
		_ = srv.App().Shutdown()
	}()

	if err := srv.App().Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}
