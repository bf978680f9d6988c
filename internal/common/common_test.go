package common

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	base := errors.New("boom")
	err := NewUserError("could not export", base)

	assert.Equal(t, "could not export: boom", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "could not export", UserMessage(err))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
	assert.Empty(t, UserMessage(nil))

	bare := &UserError{UserMessage: "only message"}
	assert.Equal(t, "only message", bare.Error())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	handler, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	slog.New(handler).Info("hello", "route", "root2")
	assert.Contains(t, buf.String(), `"route":"root2"`)

	_, err = NewHandler(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoggerFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), custom)

	assert.Same(t, custom, Logger(ctx))
	assert.Same(t, slog.Default(), Logger(context.Background()))
}
