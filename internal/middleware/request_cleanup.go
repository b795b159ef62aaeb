package middleware

import (
	"io"
	"net/http"
)

// maxRequestBodyBytes bounds JSON bodies; a logged set or a coach question
// is a few hundred bytes.
const maxRequestBodyBytes = 64 << 10

// DrainAndCloseRequest caps the request body and drains and closes it once
// the handler is done, so the connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
