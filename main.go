// Package main provides the entry point for the EchoText speech synthesis service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/Swethareddy21395/EchoText/internal/app"
	"github.com/Swethareddy21395/EchoText/internal/config"
	"github.com/Swethareddy21395/EchoText/internal/history"
	"github.com/Swethareddy21395/EchoText/internal/infrastructure"
	"github.com/Swethareddy21395/EchoText/internal/openai"
	"github.com/Swethareddy21395/EchoText/internal/server"
	"github.com/Swethareddy21395/EchoText/internal/synthesis"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// Create the application with all modules
	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		openai.Module,

		// Application modules
		synthesis.Module,
		history.Module,
		server.Module,

		// Supply the config path
		fx.Supply(*configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(infrastructure.NewFxEventLogger),
	)

	// Set up a channel to listen for OS signals (like Ctrl+C)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Start the application in a goroutine
	go application.Run()

	// Block until a signal is received
	sig := <-sigCh
	fmt.Printf("Received signal: %s, initiating shutdown.\n", sig)

	// Give the application 30 seconds to shut down gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	err := application.Stop(shutdownCtx)
	cancel()

	if err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application has shut down gracefully.")
}
