package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emoorm/storefront/api/middleware"
	"github.com/emoorm/storefront/api/responses"
	followsvc "github.com/emoorm/storefront/internal/follow"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
)

// FollowStore records the caller following the store.
func FollowStore(svc followsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "follow service unavailable"))
			return
		}
		userID := middleware.UserIDFromContext(r.Context())
		if err := svc.Follow(r.Context(), userID, chi.URLParam(r, "storeId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"following": true})
	}
}

// UnfollowStore removes the caller's follow.
func UnfollowStore(svc followsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "follow service unavailable"))
			return
		}
		userID := middleware.UserIDFromContext(r.Context())
		if err := svc.Unfollow(r.Context(), userID, chi.URLParam(r, "storeId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"following": false})
	}
}

// FollowStatus reports whether the caller follows the store.
func FollowStatus(svc followsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "follow service unavailable"))
			return
		}
		userID := middleware.UserIDFromContext(r.Context())
		following, err := svc.IsFollowing(r.Context(), userID, chi.URLParam(r, "storeId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"following": following})
	}
}
