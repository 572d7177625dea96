package middleware

import (
	"log"
	"net/http"
	"time"

	"linearbot/appctx"
	"linearbot/core"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with a correlation id and logs its outcome
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !core.IsValidID(requestID) {
			requestID = core.NewID("req")
		}

		w.Header().Set(RequestIDHeader, requestID)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r.WithContext(appctx.SetEventID(r.Context(), requestID)))

		log.Printf("🌐 [%s] %s %s -> %d (%s)", requestID, r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
