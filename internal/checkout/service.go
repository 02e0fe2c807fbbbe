package checkout

import (
	"context"
	"sync"

	"github.com/florawhisper/storefront-gateway/internal/cart"
	"github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/metrics"
)

// Input carries the shopper-entered checkout fields. The cart contents
// and total come from the session's cart, never from the caller.
type Input struct {
	CustomerEmail     string `json:"customerEmail" validate:"required,email"`
	ShippingAddress   string `json:"shippingAddress" validate:"required"`
	CustomerNotes     string `json:"customerNotes"`
	FromAccountNumber string `json:"fromAccountNumber" validate:"required"`
	PaymentUsername   string `json:"paymentUsername" validate:"required"`
	Code              string `json:"code" validate:"required"`
}

type upstream interface {
	SubmitCheckout(ctx context.Context, token string, req flora.CheckoutRequest) (*flora.Order, error)
}

// Service places orders against the upstream store. At most one
// checkout per session runs at a time.
type Service struct {
	upstream upstream
	metrics  *metrics.CartMetrics

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(upstream upstream, cartMetrics *metrics.CartMetrics) *Service {
	return &Service{
		upstream: upstream,
		metrics:  cartMetrics,
		inFlight: make(map[string]bool),
	}
}

// Result pairs the placed order with the totals it was charged at.
type Result struct {
	Order  *flora.Order     `json:"order"`
	Totals cart.OrderTotals `json:"totals"`
}

// Submit places the session's cart as an order. The cart is cleared
// only after the upstream accepts it, a failed checkout keeps the cart
// intact for retry.
func (s *Service) Submit(ctx context.Context, sessionID, token string, store *cart.Store, input Input) (*Result, error) {
	if !s.begin(sessionID) {
		return nil, errors.New(errors.CodeConflict, "a checkout for this session is already in progress")
	}
	defer s.end(sessionID)

	quantities := store.PlantQuantities()
	if len(quantities) == 0 {
		return nil, errors.New(errors.CodeValidation, "cart is empty")
	}

	totals := cart.OrderTotal(store.TotalCost())
	req := flora.CheckoutRequest{
		PlantQuantities:   quantities,
		TotalAmount:       totals.Total,
		CustomerEmail:     input.CustomerEmail,
		ShippingAddress:   input.ShippingAddress,
		CustomerNotes:     input.CustomerNotes,
		FromAccountNumber: input.FromAccountNumber,
		PaymentUsername:   input.PaymentUsername,
		Code:              input.Code,
	}

	order, err := s.upstream.SubmitCheckout(ctx, token, req)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncCheckout("failure")
		}
		return nil, err
	}

	store.Clear()
	if s.metrics != nil {
		s.metrics.IncCheckout("success")
	}
	return &Result{Order: order, Totals: totals}, nil
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}
