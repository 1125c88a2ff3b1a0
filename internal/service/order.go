package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"fashionous/internal/contextutil"
	"fashionous/internal/orders"
)

// PlaceOrderRequest represents an order placement request in the domain
// layer. All string fields are trimmed before validation.
type PlaceOrderRequest struct {
	Name     string           `validate:"required"`
	Phone    string           `validate:"required"`
	Address  string           `validate:"required"`
	Products []orders.Product `validate:"required,min=1"`
}

// PlaceOrderResponse mirrors the order API contract. A validation failure is
// reported here with Success=false rather than as an error; only log I/O
// failures surface as errors.
type PlaceOrderResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	TotalAmount int    `json:"total_amount"`
	OrderID     string `json:"order_id,omitempty"`
}

// OrderService records placed orders.
type OrderService interface {
	// PlaceOrder validates the request, derives the total, and appends one
	// log row per product. No partial write happens on validation failure.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (PlaceOrderResponse, error)
}

// orderService implements OrderService on top of the CSV order log.
type orderService struct {
	log      *orders.Log
	validate *validator.Validate
}

// NewOrderService creates an OrderService writing to the given log.
func NewOrderService(log *orders.Log) OrderService {
	return &orderService{
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// missingDetailsMessage matches the historical API response for incomplete
// order submissions.
const missingDetailsMessage = "Please provide all required details and at least one product."

// PlaceOrder validates and records an order.
func (s *orderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (PlaceOrderResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)

	if err := s.validate.Struct(req); err != nil {
		logger.WarnContext(ctx, "order rejected, missing required details", "error", err)
		return PlaceOrderResponse{
			Success: false,
			Message: missingDetailsMessage,
		}, nil
	}

	order := orders.New(uuid.NewString(), req.Name, req.Phone, req.Address, req.Products)
	if order.CoercedPrices > 0 {
		logger.WarnContext(ctx, "order contains non-numeric prices coerced to 0",
			"coerced", order.CoercedPrices, "products", len(order.Products))
	}

	if err := s.log.Append(order); err != nil {
		logger.ErrorContext(ctx, "failed to append order log", "error", err)
		return PlaceOrderResponse{}, fmt.Errorf("%w: %v", ErrOrderLog, err)
	}

	logger.InfoContext(ctx, "order placed",
		"order_id", order.ID, "products", len(order.Products), "total_amount", order.TotalAmount)
	return PlaceOrderResponse{
		Success:     true,
		Message:     fmt.Sprintf("Order placed for %d product(s)! Total: ₹%d", len(order.Products), order.TotalAmount),
		TotalAmount: order.TotalAmount,
		OrderID:     order.ID,
	}, nil
}
