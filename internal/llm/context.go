package llm

import "context"

type callKey struct{}

// callInfo labels a request in the event log.
type callInfo struct {
	purpose   string
	attemptID string
}

func callFrom(ctx context.Context) callInfo {
	if v, ok := ctx.Value(callKey{}).(callInfo); ok {
		return v
	}
	return callInfo{}
}

// WithPurpose tags requests made with ctx, e.g. "evaluation".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	c := callFrom(ctx)
	c.purpose = purpose
	return context.WithValue(ctx, callKey{}, c)
}

// PurposeFrom returns the purpose tag, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p := callFrom(ctx).purpose; p != "" {
		return p
	}
	return "unknown"
}

// WithAttempt ties requests made with ctx to a quiz attempt so log lines
// for one evaluation can be correlated.
func WithAttempt(ctx context.Context, attemptID string) context.Context {
	c := callFrom(ctx)
	c.attemptID = attemptID
	return context.WithValue(ctx, callKey{}, c)
}

// AttemptFrom returns the attempt ID attached by WithAttempt, if any.
func AttemptFrom(ctx context.Context) string {
	return callFrom(ctx).attemptID
}
