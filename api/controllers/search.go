package controllers

import (
	"net/http"

	"github.com/emoorm/storefront/api/middleware"
	"github.com/emoorm/storefront/api/responses"
	"github.com/emoorm/storefront/api/validators"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
	"github.com/emoorm/storefront/internal/search"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
)

// SearchSuggestions serves typeahead matches for the search box.
func SearchSuggestions(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		snap, err := cache.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog"))
			return
		}
		responses.WriteSuccess(w, search.Suggest(snap.Products, r.URL.Query().Get("q")))
	}
}

// SearchHistory serves the device's recent search terms.
func SearchHistory(state *clientstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := loadHistory(r, state)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, history)
	}
}

type recordSearchRequest struct {
	Term string `json:"term" validate:"required"`
}

// RecordSearch pushes a term onto the device's history.
func RecordSearch(state *clientstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload recordSearchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		history, err := loadHistory(r, state)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		history = search.AddToHistory(history, payload.Term)
		deviceID := middleware.DeviceIDFromContext(r.Context())
		if err := state.Save(r.Context(), deviceID, clientstate.SlotSearchHistory, history); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving search history"))
			return
		}
		responses.WriteSuccess(w, history)
	}
}

// ClearSearchHistory wipes the device's history.
func ClearSearchHistory(state *clientstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := middleware.DeviceIDFromContext(r.Context())
		if err := state.Clear(r.Context(), deviceID, clientstate.SlotSearchHistory); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing search history"))
			return
		}
		responses.WriteSuccess(w, []string{})
	}
}

// Recommendations serves picks derived from the device's recent searches.
func Recommendations(cache *catalog.Cache, state *clientstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		history, err := loadHistory(r, state)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := cache.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog"))
			return
		}
		responses.WriteSuccess(w, search.Recommend(snap.Products, history))
	}
}

func loadHistory(r *http.Request, state *clientstate.Store) ([]string, error) {
	if state == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "client state unavailable")
	}
	deviceID := middleware.DeviceIDFromContext(r.Context())

	var history []string
	if err := state.Load(r.Context(), deviceID, clientstate.SlotSearchHistory, &history); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading search history")
	}
	if history == nil {
		history = []string{}
	}
	return history, nil
}
