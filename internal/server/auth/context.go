package auth

import "context"

type ctxKey string

const subjectKey ctxKey = "subject"

// WithSubject binds the verified caller identity to the request context.
// Only the transport layer should call this, after token verification.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the authenticated subject bound to ctx, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}
