package controllers

import (
	"net/http"

	"github.com/florawhisper/storefront-gateway/api/middleware"
	"github.com/florawhisper/storefront-gateway/api/responses"
	"github.com/florawhisper/storefront-gateway/api/validators"
	cartpkg "github.com/florawhisper/storefront-gateway/internal/cart"
	"github.com/florawhisper/storefront-gateway/internal/checkout"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
)

// CheckoutQuote returns the order totals the current cart would be
// charged at.
func CheckoutQuote(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := carts.Cart(middleware.SessionIDFromContext(r.Context()))
		responses.WriteSuccess(w, cartpkg.OrderTotal(store.TotalCost()))
	}
}

// CheckoutSubmit places the session cart as an order.
func CheckoutSubmit(svc *checkout.Service, carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkout.Input
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		identity := middleware.IdentityFromContext(r.Context())
		store := carts.Cart(sessionID)

		result, err := svc.Submit(r.Context(), sessionID, identity.Token, store, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
