package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/emoorm/storefront/api/responses"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
)

// Identity headers are injected by the edge gateway after it verifies the
// caller. The storefront trusts them as-is.
const (
	deviceIDHeader = "X-Device-Id"
	userIDHeader   = "X-User-Id"
	sellerIDHeader = "X-Seller-Id"
)

// Identity copies gateway identity headers into the request context and the
// request logger. Absent headers leave the corresponding slot empty.
func Identity(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if deviceID := strings.TrimSpace(r.Header.Get(deviceIDHeader)); deviceID != "" {
				ctx = WithDeviceID(ctx, deviceID)
				if logg != nil {
					ctx = logg.WithDeviceID(ctx, deviceID)
				}
			}
			if userID := strings.TrimSpace(r.Header.Get(userIDHeader)); userID != "" {
				ctx = WithUserID(ctx, userID)
				if logg != nil {
					ctx = logg.WithUserID(ctx, userID)
				}
			}
			if sellerID := strings.TrimSpace(r.Header.Get(sellerIDHeader)); sellerID != "" {
				ctx = WithSellerID(ctx, sellerID)
				if logg != nil {
					ctx = logg.WithSellerID(ctx, sellerID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireDevice rejects requests that arrived without a device identity.
func RequireDevice(logg *logger.Logger) func(http.Handler) http.Handler {
	return requireIdentity(logg, DeviceIDFromContext, "device identity required")
}

// RequireUser rejects requests that arrived without a user identity.
func RequireUser(logg *logger.Logger) func(http.Handler) http.Handler {
	return requireIdentity(logg, UserIDFromContext, "user identity required")
}

// RequireSeller rejects requests that arrived without a seller identity.
func RequireSeller(logg *logger.Logger) func(http.Handler) http.Handler {
	return requireIdentity(logg, SellerIDFromContext, "seller identity required")
}

func requireIdentity(logg *logger.Logger, lookup func(context.Context) string, msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if lookup(ctx) == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, msg))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
