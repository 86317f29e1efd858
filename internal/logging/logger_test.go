package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_JSONOutputCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithComponent(WithContext(context.Background(), logger), "picker")
	FromContext(WithScheme(ctx, "night")).Info().Msg("selected")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"component":"picker"`)
	assert.Contains(t, out, `"scheme":"night"`)
	assert.Contains(t, out, `"message":"selected"`)
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, Format: "json", Output: &buf})

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("nobody listens")
}
