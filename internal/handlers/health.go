package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fashionous/internal/catalog"
	"fashionous/internal/contextutil"
	"fashionous/internal/orders"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	cat      *catalog.Catalog
	orderLog *orders.Log
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cat *catalog.Catalog, orderLog *orders.Log) *HealthHandler {
	return &HealthHandler{cat: cat, orderLog: orderLog}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "degraded"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks. The catalog is loaded
// once at startup, so the checks are cheap: item count and order-log
// directory reachability.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]string),
	}

	if n := len(h.cat.Items); n > 0 {
		resp.Checks["catalog"] = "ok (" + strconv.Itoa(n) + " items)"
	} else {
		resp.Checks["catalog"] = "empty"
		resp.Issues = append(resp.Issues, "catalog has no items")
	}

	if dirExists(filepath.Dir(h.orderLog.Path())) {
		resp.Checks["order_log"] = "ok"
	} else {
		resp.Checks["order_log"] = "directory missing"
		resp.Issues = append(resp.Issues, "order log directory does not exist")
	}

	if len(resp.Issues) > 0 {
		resp.Status = "degraded"
		logger.WarnContext(ctx, "health check degraded", "issues", resp.Issues)
	}
	writeJSON(ctx, w, resp)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
