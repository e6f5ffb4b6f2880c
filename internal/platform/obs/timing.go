package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

// RequestIDKey carries the per-request correlation ID through context.
const RequestIDKey ctxKey = "req_id"

// RequestID extracts the correlation ID from ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation when the returned func runs,
// tagging it with the request ID and recording it in the op histogram.
// Pass a pointer to the named error return so failures are logged too:
//
//	defer obs.Time(ctx, "pkg.Op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)
		OpDuration.WithLabelValues(name).Observe(dur.Seconds())

		if errp != nil && *errp != nil {
			zap.L().Warn("op failed",
				zap.String("req_id", reqID),
				zap.String("op", name),
				zap.Int64("dur_ms", dur.Milliseconds()),
				zap.Error(*errp),
			)
			return
		}
		zap.L().Debug("op done",
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		)
	}
}
