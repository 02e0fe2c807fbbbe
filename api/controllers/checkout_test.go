package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	cartpkg "github.com/florawhisper/storefront-gateway/internal/cart"
	"github.com/florawhisper/storefront-gateway/internal/checkout"
	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
)

type stubCheckoutUpstream struct {
	order *flora.Order
	err   error
}

func (s stubCheckoutUpstream) SubmitCheckout(context.Context, string, flora.CheckoutRequest) (*flora.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

const checkoutBody = `{
	"customerEmail":"rose@example.com",
	"shippingAddress":"1 Garden Lane",
	"fromAccountNumber":"ACC-1",
	"paymentUsername":"rose",
	"code":"1234"
}`

func TestCheckoutSubmitPlacesOrder(t *testing.T) {
	store := cartpkg.NewStore()
	store.Add(*testPlant(4, "10.00"), 2)
	svc := checkout.NewService(stubCheckoutUpstream{order: &flora.Order{ID: 42}}, nil)
	handler := CheckoutSubmit(svc, stubCarts{store: store}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout", checkoutBody))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if store.TotalItems() != 0 {
		t.Fatal("expected cart cleared after checkout")
	}

	var envelope struct {
		Data checkout.Result `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Order.ID != 42 {
		t.Fatalf("unexpected order id %d", envelope.Data.Order.ID)
	}
	if envelope.Data.Totals.Total.String() != "27.59" {
		t.Fatalf("unexpected total %s", envelope.Data.Totals.Total)
	}
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	svc := checkout.NewService(stubCheckoutUpstream{}, nil)
	handler := CheckoutSubmit(svc, stubCarts{store: cartpkg.NewStore()}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout", checkoutBody))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutSubmitUpstreamRejection(t *testing.T) {
	store := cartpkg.NewStore()
	store.Add(*testPlant(4, "10.00"), 1)
	svc := checkout.NewService(stubCheckoutUpstream{err: pkgerrors.New(pkgerrors.CodeValidation, "Insufficient balance")}, nil)
	handler := CheckoutSubmit(svc, stubCarts{store: store}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout", checkoutBody))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if store.TotalItems() != 1 {
		t.Fatal("expected cart kept after rejected checkout")
	}
}

func TestCheckoutQuote(t *testing.T) {
	store := cartpkg.NewStore()
	store.Add(*testPlant(4, "100.00"), 1)
	handler := CheckoutQuote(stubCarts{store: store}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodGet, "/api/v1/checkout/quote", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartpkg.OrderTotals `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Shipping.String() != "5.99" {
		t.Fatalf("unexpected shipping %s", envelope.Data.Shipping)
	}
	if envelope.Data.Tax.String() != "8.00" {
		t.Fatalf("unexpected tax %s", envelope.Data.Tax)
	}
	if envelope.Data.Total.String() != "113.99" {
		t.Fatalf("unexpected total %s", envelope.Data.Total)
	}
}
