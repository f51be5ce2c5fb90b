package bendy

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the library's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a real logger. Call before encoding starts; the
// depth-bound discrepancy warning in Encoder.Emit is the only log site.
func SetLogger(l *zap.Logger) {
	logger = l
}
