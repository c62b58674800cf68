package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/embedforge/internal/config"
	"github.com/aleister1102/embedforge/internal/logger"
	"github.com/aleister1102/embedforge/internal/server"
)

var (
	configFile = flag.String("config", "", "Path to configuration file (YAML or JSON)")
	portFlag   = flag.Int("port", 0, "Override the configured listen port")
)

func main() {
	flag.StringVar(configFile, "c", "", "Path to configuration file (shorthand)")
	flag.Parse()

	gCfg, err := config.LoadGlobalConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if *portFlag != 0 {
		gCfg.ServerConfig.Port = *portFlag
	}

	appLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	srv, err := server.New(gCfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		appLogger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		if err := srv.Shutdown(); err != nil {
			appLogger.Error().Err(err).Msg("Graceful shutdown failed")
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil {
			appLogger.Fatal().Err(err).Msg("Server exited with error")
		}
	}

	appLogger.Info().Msg("Server stopped")
}
