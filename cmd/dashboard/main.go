package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/arifwicaksono/ecomdash/internal/config"
	"github.com/arifwicaksono/ecomdash/internal/dataset"
	"github.com/arifwicaksono/ecomdash/internal/money"
	"github.com/arifwicaksono/ecomdash/internal/server"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// env bootstrap function
func loadEnv(logger *logrus.Logger) {
	// Get the project root directory (where go.mod is)
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		logger.Warnf("no .env file found at %s, using system environment variables", envPath)
	} else {
		logger.Infof("loaded .env from %s", envPath)
	}
}

// main is the entry point for the dashboard API server
// It loads both extracts into memory and starts the HTTP server with
// graceful shutdown
func main() {
	// Initialize structured logger with custom formatting
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// load .env BEFORE anything reads os.Getenv
	loadEnv(logger)

	// Load and validate configuration from environment variables
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Load the two source extracts; a malformed file means no dashboard
	data, err := dataset.Load(cfg.OrdersCSV, cfg.ProductsCSV)
	if err != nil {
		logger.WithError(err).Fatal("failed to load source data")
	}
	min, max := data.Range()
	logger.WithFields(logrus.Fields{
		"orders":   len(data.Orders),
		"listings": len(data.Listings),
		"min_date": min.Format("2006-01-02"),
		"max_date": max.Format("2006-01-02"),
	}).Info("source data loaded")

	// One formatter for every currency metric keeps the code/locale pair
	// consistent across the view
	formatter, err := money.NewFormatter(cfg.CurrencyCode, cfg.CurrencyLocale)
	if err != nil {
		logger.WithError(err).Fatal("invalid currency settings")
	}

	// Setup signal handling for graceful shutdown (Ctrl+C, SIGTERM)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Create handlers with all dependencies injected
	h := &server.Handlers{
		Data:      data,
		Money:     formatter,
		ExportDir: cfg.ExportDir,
		DevMode:   cfg.DevMode,
		Logger:    logger,
	}

	// Create HTTP server with configuration and handlers
	srv, err := server.NewServer(server.ServerDeps{
		Handlers: h,
		Config: server.ServerConfig{
			Addr:    cfg.APIAddr,
			DevMode: cfg.DevMode,
			APIKey:  cfg.APIKey,
		},
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create http server")
	}

	// Setup graceful shutdown in a separate goroutine
	go func() {
		<-sigCh
		logger.Info("shutting down")
		_ = srv.Shutdown(context.Background())
	}()

	// Start the HTTP server
	logger.WithField("addr", cfg.APIAddr).Info("dashboard server starting")
	if err := srv.Start(); err != nil {
		// "http: Server closed" is expected during graceful shutdown
		if err.Error() == "http: Server closed" {
			return
		}
		logger.WithError(err).Fatal("dashboard server failed")
	}

	// Wait for server to be fully shut down
	if err := srv.WaitClosed(context.Background()); err != nil {
		fmt.Println(err)
	}
}
