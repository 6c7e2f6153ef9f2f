// Package main is the entry point for the mussick playback daemon.
//
// mussick is a music streaming client core with clean architecture:
// - Event-driven communication (no callbacks)
// - Dependency injection for testability
// - Repository pattern for data persistence
//
// Build:
//
//	go build -o build/mussick ./cmd
//
// Run:
//
//	./build/mussick
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mokshhhhh/mussick/internal/app"
	"github.com/mokshhhhh/mussick/internal/config"
)

func main() {
	// Load configuration (file + environment + defaults)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create the application with dependency injection
	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Ensure a graceful shutdown
	defer func() {
		fmt.Println("\nShutting down...")
		if err := application.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
		}
	}()

	// Block until interrupted
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}
