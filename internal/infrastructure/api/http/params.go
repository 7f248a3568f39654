package http

import (
	"context"
	"net/http"
	"strings"
)

const (
	APIKeyHeader        = "X-API-Key"
	AuthorizationHeader = "Authorization"
	bearerScheme        = "bearer"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// CredentialFromRequest returns the caller's credential from the X-API-Key
// header or, failing that, from an "Authorization: Bearer" header.
func CredentialFromRequest(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get(APIKeyHeader)); key != "" {
		return key
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get(AuthorizationHeader)), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

// WithAccountID stores the authenticated account id in ctx.
func WithAccountID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}

// AccountID returns the account id stored by WithAccountID.
func AccountID(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}
