package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireBearer(t *testing.T) {
	testCases := []struct {
		name               string
		method             string
		authHeader         string
		expectedStatusCode int
		expectedCred       logstore.Credential
	}{
		{
			name:               "ValidToken",
			method:             http.MethodGet,
			authHeader:         "Bearer ya29.token",
			expectedStatusCode: http.StatusOK,
			expectedCred:       "ya29.token",
		},
		{
			name:               "LowercaseScheme",
			method:             http.MethodPost,
			authHeader:         "bearer abc",
			expectedStatusCode: http.StatusOK,
			expectedCred:       "abc",
		},
		{
			name:               "MissingHeader",
			method:             http.MethodGet,
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "EmptyToken",
			method:             http.MethodGet,
			authHeader:         "Bearer   ",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "WrongScheme",
			method:             http.MethodGet,
			authHeader:         "Basic dXNlcjpwYXNz",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "PreflightPassesThrough",
			method:             http.MethodOptions,
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, "/log", nil)
			require.NoError(t, err)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			var gotCred logstore.Credential
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCred, _ = middleware.CredentialFromContext(r.Context())
			})

			rr := httptest.NewRecorder()
			middleware.RequireBearer()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.Equal(t, tc.expectedCred, gotCred)
		})
	}
}
