package httpx

import "context"

type ctxKey string

// CtxKeyUserID holds the authenticated subject for the request.
const CtxKeyUserID ctxKey = "user_id"

// SubjectFromCtx returns the authenticated subject injected by
// SessionAuthnMiddleware, or "" when the request is unauthenticated.
func SubjectFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
