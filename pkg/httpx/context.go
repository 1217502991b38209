package httpx

import (
	"context"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyClaims    ctxKey = "claims"
	CtxKeyPrincipal ctxKey = "principal"
)

func contextWithAuth(ctx context.Context, c jwtx.Claims, principal any) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	ctx = context.WithValue(ctx, CtxKeyPrincipal, principal)
	return ctx
}

// ClaimsFromContext returns the verified token claims, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// PrincipalFromContext returns whatever the authn middleware's resolver
// produced for the current request.
func PrincipalFromContext[T any](ctx context.Context) (T, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(T)
	return p, ok
}
