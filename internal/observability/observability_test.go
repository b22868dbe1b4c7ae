package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchcryptid/obs-shots2cnv/internal/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&config.Config{LogLevel: "info", LogFormat: "json"}, &buf)
	logger.Info("converting shot file", "station", "STA1")

	assert.Contains(t, buf.String(), `"msg":"converting shot file"`)
	assert.Contains(t, buf.String(), `"station":"STA1"`)

	buf.Reset()
	logger = NewLogger(&config.Config{LogLevel: "info", LogFormat: "text"}, &buf)
	logger.Info("converting shot file", "station", "STA1")

	assert.Contains(t, buf.String(), "msg=\"converting shot file\"")
	assert.Contains(t, buf.String(), "station=STA1")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&config.Config{LogLevel: "warn", LogFormat: "text"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_LevelNames(t *testing.T) {
	tests := []struct {
		level     string
		showsInfo bool
		showsWarn bool
	}{
		{"debug", true, true},
		{"info", true, true},
		{"", true, true},
		{"warn", false, true},
		{"warning", false, true},
		{"WARNING", false, true},
		{"error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&config.Config{LogLevel: tt.level, LogFormat: "text"}, &buf)

			logger.Info("info line")
			logger.Warn("warn line")

			assert.Equal(t, tt.showsInfo, strings.Contains(buf.String(), "info line"))
			assert.Equal(t, tt.showsWarn, strings.Contains(buf.String(), "warn line"))
		})
	}
}

func TestWriteTextfile(t *testing.T) {
	m, reg := NewMetricsForTesting()
	m.StationsConverted.Add(3)
	m.ConversionErrors.WithLabelValues("arrival").Inc()

	path := filepath.Join(t.TempDir(), "shots2cnv.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shots2cnv_stations_converted_total 3")
	assert.Contains(t, string(data), `shots2cnv_conversion_errors_total{kind="arrival"} 1`)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StationsConverted))
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	_, reg := NewMetricsForTesting()
	assert.NoError(t, WriteTextfile("", reg))
}
