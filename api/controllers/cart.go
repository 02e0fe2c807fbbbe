package controllers

import (
	"context"
	"net/http"

	"github.com/florawhisper/storefront-gateway/api/middleware"
	"github.com/florawhisper/storefront-gateway/api/responses"
	"github.com/florawhisper/storefront-gateway/api/validators"
	cartpkg "github.com/florawhisper/storefront-gateway/internal/cart"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
	"github.com/florawhisper/storefront-gateway/pkg/metrics"
)

// CartProvider hands out the per-session cart store.
type CartProvider interface {
	Cart(sessionID string) *cartpkg.Store
}

type plantGetter interface {
	GetPlant(ctx context.Context, token string, plantID int64) (*flora.Plant, error)
}

type cartView struct {
	Lines      []cartpkg.Line      `json:"lines"`
	TotalItems int                 `json:"totalItems"`
	Totals     cartpkg.OrderTotals `json:"totals"`
}

func viewOf(store *cartpkg.Store) cartView {
	lines := store.Lines()
	if lines == nil {
		lines = []cartpkg.Line{}
	}
	return cartView{
		Lines:      lines,
		TotalItems: store.TotalItems(),
		Totals:     cartpkg.OrderTotal(store.TotalCost()),
	}
}

// CartGet returns the session cart with its running totals.
func CartGet(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := carts.Cart(middleware.SessionIDFromContext(r.Context()))
		responses.WriteSuccess(w, viewOf(store))
	}
}

type cartAddRequest struct {
	PlantID  int64 `json:"plantId" validate:"required,min=1"`
	Quantity int   `json:"quantity"`
}

// CartAdd puts a plant in the session cart. The plant is looked up
// upstream so the cart always carries current pricing.
func CartAdd(carts CartProvider, cat plantGetter, cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		plant, err := cat.GetPlant(r.Context(), identity.Token, payload.PlantID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := carts.Cart(middleware.SessionIDFromContext(r.Context()))
		store.Add(*plant, payload.Quantity)
		cartMetrics.IncMutation("add")

		responses.WriteSuccess(w, viewOf(store))
	}
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartUpdateQuantity replaces a line's quantity. Zero or below removes
// the line.
func CartUpdateQuantity(carts CartProvider, cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, err := pathID(r, "plantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := carts.Cart(middleware.SessionIDFromContext(r.Context()))
		store.SetQuantity(plantID, payload.Quantity)
		cartMetrics.IncMutation("update")

		responses.WriteSuccess(w, viewOf(store))
	}
}

// CartRemove drops a plant from the session cart.
func CartRemove(carts CartProvider, cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, err := pathID(r, "plantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := carts.Cart(middleware.SessionIDFromContext(r.Context()))
		store.Remove(plantID)
		cartMetrics.IncMutation("remove")

		responses.WriteSuccess(w, viewOf(store))
	}
}

// CartClear empties the session cart.
func CartClear(carts CartProvider, cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := carts.Cart(middleware.SessionIDFromContext(r.Context()))
		store.Clear()
		cartMetrics.IncMutation("clear")

		responses.WriteSuccess(w, viewOf(store))
	}
}
