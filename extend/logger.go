package extend

import "go.uber.org/zap"

// Logger is the sink the extend store reports non-fatal diagnostics to (the
// "extend has no matches" warning, primarily). Generalized from the
// reference compiler's Logger/LogListener fan-out (less/logger.go) down to a
// single structured sink: this package has exactly one call site per
// diagnostic kind, so there's no need for the reference type's
// multi-listener broadcast machinery.
type Logger interface {
	Warn(msg string, fields ...zap.Field)
}

// NopLogger discards everything. It is the zero-value-safe default so
// constructing a store never requires configuring a real logger.
type NopLogger struct{}

func (NopLogger) Warn(string, ...zap.Field) {}

// zapLogger adapts a *zap.Logger to the Logger interface.
type zapLogger struct {
	z *zap.Logger
}

// NewZapLogger wraps z as an extend.Logger. Passing nil is equivalent to
// NopLogger.
func NewZapLogger(z *zap.Logger) Logger {
	if z == nil {
		return NopLogger{}
	}
	return &zapLogger{z: z}
}

func (l *zapLogger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
}
