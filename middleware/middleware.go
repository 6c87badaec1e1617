package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"utsav/globals"

	"github.com/google/uuid"
)

// RequestID stamps each request with a uuid and puts it on the context for
// downstream logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), globals.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logging logs each request method, path, request id and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(globals.RequestIDKey).(string)
		log.Printf("%s %s [%s] – %v", r.Method, r.RequestURI, id, time.Since(start))
	})
}
