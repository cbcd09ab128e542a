package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	cases := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tc := range cases {
		SetupLogger(tc.verbosity)
		assert.Equal(t, tc.level, zerolog.GlobalLevel())
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("test-component")
	assert.NotEqual(t, zerolog.Disabled, logger.GetLevel())
}
