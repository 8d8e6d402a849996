package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emoorm/storefront/api/middleware"
	"github.com/emoorm/storefront/api/responses"
	"github.com/emoorm/storefront/api/validators"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/events"
	"github.com/emoorm/storefront/pkg/logger"
)

type avatarUpdateRequest struct {
	AvatarURL string `json:"avatarUrl" validate:"required,url"`
}

// UpdateAvatar announces the caller's new avatar to every open view.
func UpdateAvatar(broadcaster *events.Broadcaster, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if broadcaster == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "event bus unavailable"))
			return
		}
		var payload avatarUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		broadcaster.Publish(events.AvatarUpdate{UserID: userID, AvatarURL: payload.AvatarURL})
		responses.WriteSuccess(w, map[string]string{"avatarUrl": payload.AvatarURL})
	}
}

// AvatarStream pushes avatar updates over server-sent events until the client
// disconnects.
func AvatarStream(broadcaster *events.Broadcaster, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if broadcaster == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "event bus unavailable"))
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "streaming unsupported"))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		updates, cancel := broadcaster.Subscribe()
		defer cancel()

		for {
			select {
			case <-r.Context().Done():
				return
			case update, open := <-updates:
				if !open {
					return
				}
				data, err := json.Marshal(update)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: avatar\ndata: %s\n\n", data)
				flusher.Flush()
			}
		}
	}
}
