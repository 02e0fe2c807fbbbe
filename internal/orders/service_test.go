package orders

import (
	"context"
	"testing"

	"github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
)

type stubUpstream struct {
	orders  []flora.Order
	listErr error
	updated []flora.ShippingStatus
}

func (s *stubUpstream) OrderHistory(context.Context, string) ([]flora.Order, error) {
	return s.orders, nil
}

func (s *stubUpstream) ListOrders(context.Context, string) ([]flora.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

func (s *stubUpstream) UpdateOrderStatus(_ context.Context, _ string, orderID int64, status flora.ShippingStatus) (*flora.Order, error) {
	s.updated = append(s.updated, status)
	return &flora.Order{ID: orderID, ShippingStatus: status}, nil
}

func TestUpdateStatusAllowsForwardTransitions(t *testing.T) {
	cases := []struct {
		from flora.ShippingStatus
		to   flora.ShippingStatus
	}{
		{flora.ShippingPending, flora.ShippingOutForDelivery},
		{flora.ShippingProcessing, flora.ShippingOutForDelivery},
		{flora.ShippingOutForDelivery, flora.ShippingDelivered},
	}

	for _, tc := range cases {
		upstream := &stubUpstream{orders: []flora.Order{{ID: 1, ShippingStatus: tc.from}}}
		svc := NewService(upstream)

		order, err := svc.UpdateStatus(context.Background(), "tok", 1, tc.to)
		if err != nil {
			t.Fatalf("%s -> %s: %v", tc.from, tc.to, err)
		}
		if order.ShippingStatus != tc.to {
			t.Fatalf("%s -> %s: got %s", tc.from, tc.to, order.ShippingStatus)
		}
	}
}

func TestUpdateStatusRejectsImpossibleTransitions(t *testing.T) {
	cases := []struct {
		from flora.ShippingStatus
		to   flora.ShippingStatus
	}{
		{flora.ShippingPending, flora.ShippingDelivered},
		{flora.ShippingDelivered, flora.ShippingOutForDelivery},
		{flora.ShippingOutForDelivery, flora.ShippingOutForDelivery},
		{flora.ShippingDelivered, flora.ShippingDelivered},
	}

	for _, tc := range cases {
		upstream := &stubUpstream{orders: []flora.Order{{ID: 1, ShippingStatus: tc.from}}}
		svc := NewService(upstream)

		_, err := svc.UpdateStatus(context.Background(), "tok", 1, tc.to)
		if errors.CodeOf(err) != errors.CodeStateConflict {
			t.Fatalf("%s -> %s: expected %s, got %v", tc.from, tc.to, errors.CodeStateConflict, err)
		}
		if len(upstream.updated) != 0 {
			t.Fatalf("%s -> %s: update should not reach upstream", tc.from, tc.to)
		}
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := NewService(&stubUpstream{})

	_, err := svc.UpdateStatus(context.Background(), "tok", 42, flora.ShippingDelivered)
	if errors.CodeOf(err) != errors.CodeNotFound {
		t.Fatalf("expected %s, got %v", errors.CodeNotFound, err)
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc := NewService(&stubUpstream{orders: []flora.Order{{ID: 1, ShippingStatus: flora.ShippingPending}}})

	_, err := svc.UpdateStatus(context.Background(), "tok", 1, flora.ShippingStatus("LOST"))
	if errors.CodeOf(err) != errors.CodeValidation {
		t.Fatalf("expected %s, got %v", errors.CodeValidation, err)
	}
}
