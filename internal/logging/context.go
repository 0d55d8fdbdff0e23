package logging

import "context"

type ctxKey struct{}

// RequestIDKey is the attribute name under which adapters log the request id
// carried by the context.
const RequestIDKey = "request_id"

// WithRequestID returns a context whose log lines carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// withContextArgs prepends the request id from ctx to args.
func withContextArgs(ctx context.Context, args []any) []any {
	id := RequestID(ctx)
	if id == "" {
		return args
	}
	out := make([]any, 0, len(args)+2)
	out = append(out, RequestIDKey, id)
	return append(out, args...)
}
