package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      Config
		want    Config
		wantErr string
	}{
		{name: "defaults", in: Config{}, want: Config{LogLevel: "info", LogFormat: "text"}},
		{name: "normalised", in: Config{LogLevel: " DEBUG ", LogFormat: "Json"}, want: Config{LogLevel: "debug", LogFormat: "json"}},
		{name: "bad level", in: Config{LogLevel: "verbose"}, wantErr: "invalid log-level"},
		{name: "bad format", in: Config{LogFormat: "xml"}, wantErr: "invalid log-format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.in)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf SafeBuffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}
