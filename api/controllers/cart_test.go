package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/florawhisper/storefront-gateway/api/middleware"
	cartpkg "github.com/florawhisper/storefront-gateway/internal/cart"
	"github.com/florawhisper/storefront-gateway/internal/session"
	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/types"
)

type stubCarts struct {
	store *cartpkg.Store
}

func (s stubCarts) Cart(string) *cartpkg.Store { return s.store }

type stubPlantGetter struct {
	plant *flora.Plant
	err   error
}

func (s stubPlantGetter) GetPlant(context.Context, string, int64) (*flora.Plant, error) {
	return s.plant, s.err
}

func sessionRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := middleware.WithSession(req.Context(), "sess-1", &session.Identity{
		Token:    "tok-1",
		Username: "rose",
		Role:     session.RoleCustomer,
	})
	return req.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeView(t *testing.T, resp *httptest.ResponseRecorder) cartView {
	t.Helper()
	var envelope struct {
		Data cartView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func testPlant(id int64, price string) *flora.Plant {
	m, _ := types.MoneyFromString(price)
	return &flora.Plant{ID: id, Name: "fern", Price: m}
}

func TestCartGetEmpty(t *testing.T) {
	handler := CartGet(stubCarts{store: cartpkg.NewStore()}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodGet, "/api/v1/cart", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	view := decodeView(t, resp)
	if view.TotalItems != 0 || len(view.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", view)
	}
}

func TestCartAddFetchesPlantUpstream(t *testing.T) {
	store := cartpkg.NewStore()
	handler := CartAdd(stubCarts{store: store}, stubPlantGetter{plant: testPlant(4, "12.50")}, nil, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"plantId":4,"quantity":2}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	view := decodeView(t, resp)
	if view.TotalItems != 2 {
		t.Fatalf("expected 2 items, got %d", view.TotalItems)
	}
	if store.PlantQuantities()[4] != 2 {
		t.Fatalf("expected plant 4 in cart, got %v", store.PlantQuantities())
	}
}

func TestCartAddUnknownPlant(t *testing.T) {
	handler := CartAdd(stubCarts{store: cartpkg.NewStore()}, stubPlantGetter{err: pkgerrors.New(pkgerrors.CodeNotFound, "no such plant")}, nil, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"plantId":99,"quantity":1}`))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartAddRejectsBadBody(t *testing.T) {
	handler := CartAdd(stubCarts{store: cartpkg.NewStore()}, stubPlantGetter{}, nil, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"quantity":1}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartUpdateQuantityRemovesAtZero(t *testing.T) {
	store := cartpkg.NewStore()
	store.Add(*testPlant(4, "12.50"), 3)
	handler := CartUpdateQuantity(stubCarts{store: store}, nil, nil)

	req := withURLParam(sessionRequest(http.MethodPut, "/api/v1/cart/items/4", `{"quantity":0}`), "plantId", "4")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if store.TotalItems() != 0 {
		t.Fatalf("expected line removed, got %d items", store.TotalItems())
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	store := cartpkg.NewStore()
	store.Add(*testPlant(4, "12.50"), 1)
	store.Add(*testPlant(5, "3.00"), 1)

	remove := CartRemove(stubCarts{store: store}, nil, nil)
	req := withURLParam(sessionRequest(http.MethodDelete, "/api/v1/cart/items/4", ""), "plantId", "4")
	resp := httptest.NewRecorder()
	remove.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("remove: expected 200 got %d", resp.Code)
	}
	if _, ok := store.PlantQuantities()[4]; ok {
		t.Fatal("expected plant 4 removed")
	}

	clearCart := CartClear(stubCarts{store: store}, nil, nil)
	resp = httptest.NewRecorder()
	clearCart.ServeHTTP(resp, sessionRequest(http.MethodDelete, "/api/v1/cart", ""))
	if resp.Code != http.StatusOK {
		t.Fatalf("clear: expected 200 got %d", resp.Code)
	}
	if store.TotalItems() != 0 {
		t.Fatal("expected cart emptied")
	}
}
