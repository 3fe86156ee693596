// Package logger builds *slog.Logger instances configured through functional
// options and offers attribute constructors with fixed keys, so that every
// package and the strkit command log the same fields under the same names.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "strkit"),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.InfoContext(ctx, "group name allocated",
//	    logger.Name(name),
//	    logger.Attempts(n),
//	)
//
// Text output is used for development, JSON otherwise. Context extractors
// registered with WithContextExtractors or WithContextValue run on every
// record and add attributes taken from the context passed to the *Context
// logging methods.
//
// Error and Errors return an empty attribute for nil errors, which slog drops,
// so callers can pass possibly-nil errors without checking.
package logger
