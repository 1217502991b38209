package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// ErrUnknownPrincipal is returned by a PrincipalResolver when the token is
// valid but its subject no longer exists.
var ErrUnknownPrincipal = errors.New("httpx: unknown principal")

// PrincipalResolver turns verified claims into the value handlers read back
// with PrincipalFromContext (typically the user record).
type PrincipalResolver func(ctx context.Context, claims jwtx.Claims) (any, error)

// AuthnConfig configures AuthnMiddleware.
type AuthnConfig struct {
	Verifier jwtx.Verifier

	// Resolve is optional. When nil only the token itself is checked.
	Resolve PrincipalResolver

	// Cookies are consulted in order when no Authorization header is sent.
	Cookies []string
}

// AuthnMiddleware rejects requests without a valid session token. The token
// comes from "Authorization: Bearer" or, failing that, one of the configured
// cookies.
func AuthnMiddleware(cfg AuthnConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := tokenFromRequest(r, cfg.Cookies)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := cfg.Verifier.Verify(raw)
			if err != nil {
				log.Debug("jwt verify failed", "err", err)
				switch {
				case errors.Is(err, jwtx.ErrExpired):
					writeBearerError(w, "token expired")
				default:
					writeBearerError(w, "token verification failed")
				}
				return
			}

			var principal any
			if cfg.Resolve != nil {
				principal, err = cfg.Resolve(ctx, claims)
				switch {
				case errors.Is(err, ErrUnknownPrincipal):
					writeBearerError(w, "user not found")
					return
				case err != nil:
					log.Error("resolve principal failed", "err", err, "sub", claims.Subject)
					WriteFailure(w, http.StatusServiceUnavailable, PrincipalUnavailableMessage)
					return
				}
			}

			ctx = contextWithAuth(ctx, claims, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookies []string) (string, bool) {
	if authz := r.Header.Get("Authorization"); authz != "" {
		scheme, token, found := strings.Cut(authz, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return "", false
		}
		token = strings.TrimSpace(token)
		return token, token != ""
	}

	for _, name := range cookies {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			return c.Value, true
		}
	}

	return "", false
}

// PrincipalUnavailableMessage is sent when the token is valid but the
// account behind it could not be loaded.
var PrincipalUnavailableMessage = ErrorMessage("unable to load user")

// InvalidJWTMessage formats the message sent when authentication fails.
func InvalidJWTMessage(reason string) string {
	return "Missing or expired jwt(" + reason + ")."
}

// RFC 6750-compliant challenge header plus the envelope body.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteFailure(w, http.StatusUnauthorized, InvalidJWTMessage(desc))
}
