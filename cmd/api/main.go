package main

import (
	_ "embed"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"fashionous/internal/catalog"
	"fashionous/internal/config"
	"fashionous/internal/http"
	"fashionous/internal/orders"
	"fashionous/internal/service"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Load the catalog once; it is read-only for the life of the process
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	slog.Info("Catalog loaded", "path", cfg.CatalogPath, "items", len(cat.Items))
	if cat.CoercedPrices > 0 {
		slog.Warn("Catalog contains non-numeric prices coerced to 0", "items", cat.CoercedPrices)
	}

	// Derive the vocabulary sets used for free-text token recognition
	vocab := catalog.BuildVocabulary(cat.Items)
	slog.Info("Vocabulary built",
		"fabrics", len(vocab.Fabrics()),
		"sleeves", len(vocab.Sleeves()),
		"necklines", len(vocab.Necklines()),
		"occasions", len(vocab.Occasions()),
	)

	// The order log is the only mutable shared resource
	orderLog := orders.NewLog(cfg.OrdersCSVPath)
	slog.Info("Order log ready", "path", orderLog.Path())

	recommendService := service.NewRecommendService(cat, vocab, cfg.TopK)
	orderService := service.NewOrderService(orderLog)

	// Create router with dependencies
	deps := &http.Deps{
		Recommend: recommendService,
		Orders:    orderService,
		Catalog:   cat,
		OrderLog:  orderLog,
		IndexHTML: indexHTML,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "top_k", cfg.TopK)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
