package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fashionous/internal/contextutil"
	"fashionous/internal/orders"
	"fashionous/internal/service"
)

// OrderHandler handles HTTP requests for order placement.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orderService}
}

// PlaceOrderRequest represents the HTTP request payload for order placement.
type PlaceOrderRequest struct {
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Address  string           `json:"address"`
	Products []orders.Product `json:"products"`
}

// ServeHTTP handles HTTP requests for order placement. Validation failures
// come back as 200 with success=false, matching the original API contract;
// only log I/O failures produce an error status.
func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.orders.PlaceOrder(ctx, service.PlaceOrderRequest{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Products: req.Products,
	})
	if err != nil {
		logger.ErrorContext(ctx, "order placement failed", "error", err)
		if errors.Is(err, service.ErrOrderLog) {
			writeError(w, http.StatusInternalServerError, "Failed to record order")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}
	writeJSON(ctx, w, svcResp)
}
