// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyUtilisateurID
	keyRoles
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUtilisateurID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, keyUtilisateurID, id)
}

func GetUtilisateurID(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(keyUtilisateurID).(int)
	return v, ok
}

func WithRoles(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, keyRoles, roles)
}

func GetRoles(ctx context.Context) ([]string, bool) {
	v, ok := ctx.Value(keyRoles).([]string)
	return v, ok
}
