package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Levels(t *testing.T) {
	cases := []struct {
		env, level string
		want       zerolog.Level
	}{
		{"production", "", zerolog.WarnLevel},
		{"production", "info", zerolog.InfoLevel},
		{"production", "ERROR", zerolog.ErrorLevel},
		{"production", "nonsense", zerolog.WarnLevel},
		{"development", "error", zerolog.DebugLevel},
	}
	for _, tc := range cases {
		logger := Setup(tc.env, tc.level, &bytes.Buffer{})
		assert.Equal(t, tc.want, logger.GetLevel(), "%s/%s", tc.env, tc.level)
	}
}

func TestSetup_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("production", "info", &buf)

	logger.Info().Str("use_case", "plan_week").Msg("service_use_case")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "plan_week")
	assert.NotContains(t, out, "hidden")
}
