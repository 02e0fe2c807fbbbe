package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/florawhisper/storefront-gateway/api/middleware"
	"github.com/florawhisper/storefront-gateway/api/responses"
	"github.com/florawhisper/storefront-gateway/internal/orders"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
)

// OrdersHistory returns the calling shopper's past orders.
func OrdersHistory(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())
		history, err := svc.History(r.Context(), identity.Token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, history)
	}
}

// OrdersList returns every order in the store.
func OrdersList(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())
		all, err := svc.List(r.Context(), identity.Token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, all)
	}
}

// OrderStatusUpdate moves an order to the next shipping stage.
func OrderStatusUpdate(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := pathID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		next := flora.ShippingStatus(chi.URLParam(r, "status"))
		identity := middleware.IdentityFromContext(r.Context())

		order, err := svc.UpdateStatus(r.Context(), identity.Token, orderID, next)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
