package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/florawhisper/storefront-gateway/api/middleware"
	"github.com/florawhisper/storefront-gateway/api/responses"
	"github.com/florawhisper/storefront-gateway/api/validators"
	"github.com/florawhisper/storefront-gateway/internal/session"
	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
)

type authUpstream interface {
	Login(ctx context.Context, req flora.LoginRequest) (*flora.LoginResponse, error)
	Register(ctx context.Context, accountType string, fields []flora.FormField, img *flora.FormFile) (string, error)
	ChangePassword(ctx context.Context, token string, userID int64, req flora.ChangePasswordRequest) error
}

type sessionWriter interface {
	Create(ctx context.Context, identity session.Identity) (string, error)
	Revoke(ctx context.Context, sessionID string) error
}

type loginRequest struct {
	UserNameOrEmail string `json:"userNameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type loginResponse struct {
	SessionToken string `json:"sessionToken"`
	Username     string `json:"username"`
	RoleName     string `json:"roleName"`
}

// Login exchanges credentials with the upstream store and opens a
// browsing session holding the returned bearer token.
func Login(upstream authUpstream, sessions sessionWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := upstream.Login(r.Context(), flora.LoginRequest{
			UserNameOrEmail: payload.UserNameOrEmail,
			Password:        payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID, err := sessions.Create(r.Context(), session.Identity{
			Token:    resp.Token,
			Username: resp.Username,
			Role:     resp.RoleName,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, loginResponse{
			SessionToken: sessionID,
			Username:     resp.Username,
			RoleName:     resp.RoleName,
		})
	}
}

var registerTypes = map[string]bool{
	"customer": true,
	"admin":    true,
	"bankuser": true,
}

// Register forwards the multipart signup form to the upstream store.
func Register(upstream authUpstream, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountType := chi.URLParam(r, "type")
		if !registerTypes[accountType] {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown account type"))
			return
		}

		fields, img, err := readMultipart(r, "img")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg, err := upstream.Register(r.Context(), accountType, fields, img)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": msg})
	}
}

// Logout revokes the browsing session, dropping its cart.
func Logout(sessions sessionWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if err := sessions.Revoke(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "logged out"})
	}
}

type changePasswordRequest struct {
	UserID          int64  `json:"userId" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ChangePassword forwards a password rotation to the upstream store.
func ChangePassword(upstream authUpstream, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload changePasswordRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identity := middleware.IdentityFromContext(r.Context())
		err := upstream.ChangePassword(r.Context(), identity.Token, payload.UserID, flora.ChangePasswordRequest{
			CurrentPassword: payload.CurrentPassword,
			NewPassword:     payload.NewPassword,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "password updated"})
	}
}
