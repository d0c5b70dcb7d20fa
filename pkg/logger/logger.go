package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields attaches structured context to log messages.
type Fields map[string]interface{}

// Logger is the logging interface shared by every component of the
// line counter. Debug is emitted at verbosity >= 1 and Trace at
// verbosity >= 2; the remaining levels are always on.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Trace(msg string)

	// WithFields returns a derived Logger that includes the given
	// fields in every message. The receiver is left unchanged.
	WithFields(fields Fields) Logger
}

// Config controls how a Logger is built.
type Config struct {
	// Verbosity selects the lowest level emitted: 0 for info and
	// above, 1 adds debug, 2 adds trace.
	Verbosity int

	// Output receives the log stream. When nil, logs go to
	// os.Stderr so the report on stdout stays machine-readable.
	Output io.Writer
}

// zapLogger adapts a zap core to the Logger interface. Trace has no
// zap equivalent and is emitted as a prefixed debug entry.
type zapLogger struct {
	zap       *zap.Logger
	verbosity int
}

// NewLogger builds a JSON line logger for the given config.
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	level := zapcore.InfoLevel
	if config.Verbosity > 0 {
		level = zapcore.DebugLevel
	}

	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "ts",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})

	return &zapLogger{
		zap:       zap.New(zapcore.NewCore(encoder, zapcore.AddSync(config.Output), level)),
		verbosity: config.Verbosity,
	}
}

func (l *zapLogger) Debug(msg string) { l.zap.Debug(msg) }
func (l *zapLogger) Info(msg string)  { l.zap.Info(msg) }
func (l *zapLogger) Warn(msg string)  { l.zap.Warn(msg) }
func (l *zapLogger) Error(msg string) { l.zap.Error(msg) }

func (l *zapLogger) Trace(msg string) {
	if l.verbosity < 2 {
		return
	}
	l.zap.Debug("TRACE: " + msg)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for name, value := range fields {
		zapFields = append(zapFields, zap.Any(name, value))
	}

	return &zapLogger{
		zap:       l.zap.With(zapFields...),
		verbosity: l.verbosity,
	}
}
