package orders

import (
	"context"
	"fmt"

	"github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
)

type upstream interface {
	OrderHistory(ctx context.Context, token string) ([]flora.Order, error)
	ListOrders(ctx context.Context, token string) ([]flora.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status flora.ShippingStatus) (*flora.Order, error)
}

// Service fronts upstream order reads and shipping-status updates.
type Service struct {
	upstream upstream
}

func NewService(upstream upstream) *Service {
	return &Service{upstream: upstream}
}

// History returns the calling shopper's past orders.
func (s *Service) History(ctx context.Context, token string) ([]flora.Order, error) {
	return s.upstream.OrderHistory(ctx, token)
}

// List returns every order in the store.
func (s *Service) List(ctx context.Context, token string) ([]flora.Order, error) {
	return s.upstream.ListOrders(ctx, token)
}

// UpdateStatus moves an order along the shipping flow. Transitions are
// checked against the current upstream state before the update is sent,
// so an impossible move fails fast with the reason.
func (s *Service) UpdateStatus(ctx context.Context, token string, orderID int64, next flora.ShippingStatus) (*flora.Order, error) {
	if !next.Valid() {
		return nil, errors.New(errors.CodeValidation, fmt.Sprintf("unknown shipping status %q", next))
	}

	current, err := s.findOrder(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	if !current.ShippingStatus.CanTransitionTo(next) {
		return nil, errors.New(errors.CodeStateConflict,
			fmt.Sprintf("order %d cannot move from %s to %s", orderID, current.ShippingStatus, next))
	}

	return s.upstream.UpdateOrderStatus(ctx, token, orderID, next)
}

func (s *Service) findOrder(ctx context.Context, token string, orderID int64) (*flora.Order, error) {
	all, err := s.upstream.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == orderID {
			return &all[i], nil
		}
	}
	return nil, errors.New(errors.CodeNotFound, fmt.Sprintf("order %d not found", orderID))
}
