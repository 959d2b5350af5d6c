// Пакет logger. Журнал
package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/iurnickita/shortener-cli/internal/shortener/logger/config"
)

// NewZapLog создает объект zap-логгера. Журнал пишется в stderr
func NewZapLog(cfg config.Config) (*zap.Logger, error) {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	zapcfg.DisableStacktrace = true
	return zapcfg.Build()
}

// RequestLogMdlw middleware-логгер для входящих HTTP-запросов
func RequestLogMdlw(zaplog *zap.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wl := NewResponseWriterLogger(w)

			handlerStart := time.Now()
			h.ServeHTTP(wl, r)

			zaplog.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("code", wl.statusCode),
				zap.Int("length", wl.length),
				zap.Duration("duration", time.Since(handlerStart)),
			)
		})
	}
}

// responseWriterLogger - оборачивает http.ResponseWriter дополнительным слоем логгирования
type responseWriterLogger struct {
	http.ResponseWriter
	statusCode int
	length     int
}

// NewResponseWriterLogger оборачивает http.ResponseWriter дополнительным слоем логгирования
func NewResponseWriterLogger(w http.ResponseWriter) *responseWriterLogger {
	return &responseWriterLogger{w, http.StatusOK, 0}
}

// WriteHeader переопределение
func (wl *responseWriterLogger) WriteHeader(code int) {
	wl.statusCode = code
	wl.ResponseWriter.WriteHeader(code)
}

// Write переопределение
func (wl *responseWriterLogger) Write(b []byte) (n int, err error) {
	n, err = wl.ResponseWriter.Write(b)
	wl.length += n
	return
}
