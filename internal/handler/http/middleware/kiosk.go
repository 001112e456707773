package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
	"github.com/pointage/timeclock-backend-go/internal/pkg/jwt"
)

type stationKey struct{}

// KioskRequired gates the scan endpoints behind a kiosk-scoped token. The
// token comes from the Authorization header or, for EventSource requests
// that cannot set headers, the kiosk_token query parameter.
func KioskRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" {
				token = r.URL.Query().Get("kiosk_token")
			}
			if token == "" {
				response.Unauthorized(w, "Kiosk token required")
				return
			}

			stationID, err := jwtService.ValidateKioskToken(token)
			if err != nil {
				response.Unauthorized(w, "Invalid kiosk token")
				return
			}

			ctx := context.WithValue(r.Context(), stationKey{}, stationID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StationID returns the station id the kiosk token was issued for.
func StationID(ctx context.Context) string {
	id, _ := ctx.Value(stationKey{}).(string)
	return id
}
