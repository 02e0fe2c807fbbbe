package controllers

import (
	"net/http"

	"github.com/florawhisper/storefront-gateway/api/middleware"
	"github.com/florawhisper/storefront-gateway/api/responses"
	"github.com/florawhisper/storefront-gateway/api/validators"
	"github.com/florawhisper/storefront-gateway/internal/catalog"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
)

// MeaningsList returns the flower meaning encyclopedia.
func MeaningsList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())
		meanings, err := svc.ListFlowerMeanings(r.Context(), identity.Token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, meanings)
	}
}

// MeaningGet returns one flower meaning entry.
func MeaningGet(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "meaningId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		meaning, err := svc.GetFlowerMeaning(r.Context(), identity.Token, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, meaning)
	}
}

// MeaningCreate adds an encyclopedia entry.
func MeaningCreate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload flora.FlowerMeaning
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		created, err := svc.CreateFlowerMeaning(r.Context(), identity.Token, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// MeaningUpdate replaces an encyclopedia entry.
func MeaningUpdate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "meaningId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload flora.FlowerMeaning
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		updated, err := svc.UpdateFlowerMeaning(r.Context(), identity.Token, id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// MeaningDelete removes an encyclopedia entry.
func MeaningDelete(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "meaningId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		msg, err := svc.DeleteFlowerMeaning(r.Context(), identity.Token, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": msg})
	}
}
