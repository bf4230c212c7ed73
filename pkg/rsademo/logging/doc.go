// Package logging is the small logging facade used across rsademo.
//
// Logger wraps the context-aware half of log/slog so that applications can
// plug in their own implementation for tests or redaction:
//
//	logger := logging.New(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
//	b := keypair.NewBuilder(keypair.WithLogger(logger))
//
// Library code logs at Debug only and never logs key material. Private
// exponents and seeds appear as [Redacted] attributes:
//
//	logger.Debug(ctx, "private exponent derived", logging.Redacted("d"))
//	// d="[redacted]"
package logging
