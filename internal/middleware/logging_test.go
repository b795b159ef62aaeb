package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get(RequestIDHeader)
	})

	rr := httptest.NewRecorder()
	LogRequest()(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/today", nil))

	_, err := uuid.Parse(seenID)
	require.NoError(t, err)
	assert.Equal(t, seenID, rr.Header().Get(RequestIDHeader))

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/today", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	LogRequest()(next).ServeHTTP(rr, req)
	assert.Equal(t, "caller-id", seenID)
	assert.Equal(t, "caller-id", rr.Header().Get(RequestIDHeader))
}
