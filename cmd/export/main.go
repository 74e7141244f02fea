package main

import (
	"flag"
	"path/filepath"
	"runtime"

	"github.com/arifwicaksono/ecomdash/internal/config"
	"github.com/arifwicaksono/ecomdash/internal/dataset"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// main is the standalone export step: it loads the extracts and writes the
// normalized, timestamp-sorted tables back to CSV. Kept out of the view
// pipeline so rendering a dashboard never writes files.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	_, filename, _, _ := runtime.Caller(0)
	envPath := filepath.Join(filepath.Dir(filename), "../..", ".env")
	if err := godotenv.Load(envPath); err != nil {
		logger.Warnf("no .env file found at %s, using system environment variables", envPath)
	}

	cfg := config.Load()
	out := flag.String("out", cfg.ExportDir, "output directory for exported CSV files")
	flag.Parse()

	data, err := dataset.Load(cfg.OrdersCSV, cfg.ProductsCSV)
	if err != nil {
		logger.WithError(err).Fatal("failed to load source data")
	}

	ordersFile, productsFile, err := dataset.ExportCSV(data, *out)
	if err != nil {
		logger.WithError(err).Fatal("export failed")
	}
	logger.WithFields(logrus.Fields{
		"orders":   ordersFile,
		"products": productsFile,
	}).Info("export completed")
}
