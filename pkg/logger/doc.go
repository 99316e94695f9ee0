// Package logger builds the application's structured slog logger: JSON to
// stdout, request-scoped attributes injected from context, and optional
// Sentry fan-out for warnings and errors.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "info"}, requestIDExtractor)
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//	// {"level":"INFO","msg":"request processed","status":200,"request_id":"..."}
//
// A ContextExtractor pulls one attribute out of the request context on every
// log call, so values like request ids stay fresh without threading them
// through call sites:
//
//	func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(ridKey{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
// # Sentry
//
// With Config.SentryDSN set, errors create Sentry issues and warnings are
// kept as searchable logs; every record still reaches stdout. An empty DSN
// or a failed init degrades to stdout-only logging, so the same code path
// works in development and production.
package logger
