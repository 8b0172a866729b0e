package middlewares

import (
	"context"
	"net/http"

	"github.com/schemagate-io/schemagate/constants"
	"github.com/schemagate-io/schemagate/utils"
)

type contextKey int

const requestIDKey contextKey = 0

// RequestID assigns each request an id, reusing the caller-provided header
// value when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(constants.HeaderRequestID)
		if id == "" {
			id = utils.UUID()
		}
		w.Header().Set(constants.HeaderRequestID, id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
