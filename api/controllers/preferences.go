package controllers

import (
	"net/http"

	"github.com/emoorm/storefront/api/middleware"
	"github.com/emoorm/storefront/api/responses"
	"github.com/emoorm/storefront/api/validators"
	"github.com/emoorm/storefront/internal/clientstate"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
)

// DismissedBanners serves the banner ids this device has dismissed.
func DismissedBanners(state *clientstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := loadBanners(r, state)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, banners)
	}
}

type dismissBannerRequest struct {
	BannerID string `json:"bannerId" validate:"required"`
}

// DismissBanner records a banner dismissal; re-dismissing is a no-op.
func DismissBanner(state *clientstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dismissBannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		banners, err := loadBanners(r, state)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		for _, id := range banners {
			if id == payload.BannerID {
				responses.WriteSuccess(w, banners)
				return
			}
		}
		banners = append(banners, payload.BannerID)

		deviceID := middleware.DeviceIDFromContext(r.Context())
		if err := state.Save(r.Context(), deviceID, clientstate.SlotBanners, banners); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving banner dismissals"))
			return
		}
		responses.WriteSuccess(w, banners)
	}
}

func loadBanners(r *http.Request, state *clientstate.Store) ([]string, error) {
	if state == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "client state unavailable")
	}
	deviceID := middleware.DeviceIDFromContext(r.Context())

	var banners []string
	if err := state.Load(r.Context(), deviceID, clientstate.SlotBanners, &banners); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading banner dismissals")
	}
	if banners == nil {
		banners = []string{}
	}
	return banners, nil
}
