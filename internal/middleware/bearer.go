package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type credentialCtxKey struct{}

// CredentialFromContext returns the bearer token stored by RequireBearer.
func CredentialFromContext(ctx context.Context) (logstore.Credential, bool) {
	cred, ok := ctx.Value(credentialCtxKey{}).(logstore.Credential)
	return cred, ok
}

func ContextWithCredential(ctx context.Context, cred logstore.Credential) context.Context {
	return context.WithValue(ctx, credentialCtxKey{}, cred)
}

// RequireBearer rejects requests without an "Authorization: Bearer <token>"
// header. The token is passed on to the log store untouched; whether it is
// valid is only known once the store answers.
func RequireBearer() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.bearer")
			defer span.End()

			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				log.Tracef("[missing token] [bearer middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(ContextWithCredential(ctx, logstore.Credential(token))))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
