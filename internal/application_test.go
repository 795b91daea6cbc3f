package application

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgridlabs/tictactoe-console/internal/config"
)

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Rejects an unknown first-turn mark at wiring time", func(t *testing.T) {
		// Given: a config whose first-turn mark is neither X nor O
		conf := &config.Config{LogLevel: "info", Game: config.Game{FirstTurn: "Z"}}

		// When: running the application
		err := RunApp(logger, conf)

		// Then: wiring fails with ErrUnknownMark before any console I/O
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownMark)
	})

	t.Run("Rejects an empty first-turn mark", func(t *testing.T) {
		// Given: a config with no first-turn mark at all
		conf := &config.Config{LogLevel: "info"}

		// When: running the application
		err := RunApp(logger, conf)

		// Then: wiring fails with ErrUnknownMark
		assert.ErrorIs(t, err, ErrUnknownMark)
	})
}
