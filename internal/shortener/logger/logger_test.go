package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iurnickita/shortener-cli/internal/shortener/logger/config"
)

func TestLogger_NewZapLog(t *testing.T) {
	zaplog, err := NewZapLog(config.Config{LogLevel: "debug"})
	require.NoError(t, err)
	assert.True(t, zaplog.Core().Enabled(zapcore.DebugLevel))

	zaplog, err = NewZapLog(config.Config{LogLevel: config.DefaultLogLevel})
	require.NoError(t, err)
	assert.False(t, zaplog.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zaplog.Core().Enabled(zapcore.WarnLevel))
}

func TestLogger_NewZapLogBadLevel(t *testing.T) {
	_, err := NewZapLog(config.Config{LogLevel: "loud"})
	require.Error(t, err)
}

func TestLogger_RequestLogMdlw(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	h := RequestLogMdlw(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, "taken")
	}))

	r := httptest.NewRequest(http.MethodPost, "/api/add/mylink", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/api/add/mylink", fields["path"])
	assert.Equal(t, int64(http.StatusConflict), fields["code"])
	assert.Equal(t, int64(5), fields["length"])
}
