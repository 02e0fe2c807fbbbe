package controllers

import (
	"net/http"
	"strconv"

	"github.com/florawhisper/storefront-gateway/api/middleware"
	"github.com/florawhisper/storefront-gateway/api/responses"
	"github.com/florawhisper/storefront-gateway/internal/catalog"
	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
)

// PlantsList returns the full plant catalog.
func PlantsList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())
		plants, err := svc.ListPlants(r.Context(), identity.Token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, plants)
	}
}

// PlantsByCategory returns plants within one category, optionally
// filtered by color and name search terms.
func PlantsByCategory(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := pathID(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		query := r.URL.Query()
		plants, err := svc.SearchPlants(r.Context(), identity.Token, categoryID, query.Get("color"), query.Get("name"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, plants)
	}
}

// PlantsSearch filters a category by color and name terms taken from
// the query string. The categoryId parameter is required.
func PlantsSearch(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		categoryID, err := strconv.ParseInt(query.Get("categoryId"), 10, 64)
		if err != nil || categoryID < 1 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "categoryId must be a positive integer"))
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		plants, err := svc.SearchPlants(r.Context(), identity.Token, categoryID, query.Get("color"), query.Get("name"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, plants)
	}
}

// PlantGet returns one plant by id.
func PlantGet(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, err := pathID(r, "plantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		plant, err := svc.GetPlant(r.Context(), identity.Token, plantID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, plant)
	}
}

// PlantCreate forwards a multipart plant listing to the upstream store.
func PlantCreate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, img, err := readMultipart(r, "image")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		msg, err := svc.CreatePlant(r.Context(), identity.Token, fields, img)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": msg})
	}
}

// PlantUpdate forwards a multipart plant edit to the upstream store.
func PlantUpdate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, err := pathID(r, "plantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fields, img, err := readMultipart(r, "image")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		msg, err := svc.UpdatePlant(r.Context(), identity.Token, plantID, fields, img)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": msg})
	}
}

// PlantDelete removes a plant listing.
func PlantDelete(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantID, err := pathID(r, "plantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		msg, err := svc.DeletePlant(r.Context(), identity.Token, plantID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": msg})
	}
}

// CategoriesList returns the catalog categories.
func CategoriesList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())
		categories, err := svc.ListCategories(r.Context(), identity.Token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}
