package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgridlabs/tictactoe-console/internal/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("X wins across the top row", func(t *testing.T) {
		// Given: a session scripted as X:(0,0) O:(1,0) X:(0,1) O:(1,1) X:(0,2)
		input := strings.NewReader("0 0\n1 0\n0 1\n1 1\n0 2\n")
		output := &bytes.Buffer{}
		game := entity.NewGame(entity.PlayerX)
		server := New(newTestLogger(), game, input, output)

		// When: running the session
		err := server.Start(ctx)

		// Then: the session ends cleanly with the win banner and a frozen game
		require.NoError(t, err)
		assert.Contains(t, output.String(), "Player X wins!")
		assert.NotContains(t, output.String(), "draw")
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerX, game.Winner)

		// Then: the final board shows the winning row
		assert.Contains(t, output.String(), "X|X|X")
	})

	t.Run("Full board without a line ends in a draw", func(t *testing.T) {
		// Given: nine alternating moves with no winning line
		input := strings.NewReader("0 0\n0 1\n0 2\n1 1\n1 0\n1 2\n2 1\n2 0\n2 2\n")
		output := &bytes.Buffer{}
		game := entity.NewGame(entity.PlayerX)
		server := New(newTestLogger(), game, input, output)

		// When: running the session
		err := server.Start(ctx)

		// Then: the draw banner is printed
		require.NoError(t, err)
		assert.Contains(t, output.String(), "It's a draw!")
		assert.NotContains(t, output.String(), "wins!")
		assert.True(t, game.IsDraw())
	})

	t.Run("Invalid moves re-prompt the same player", func(t *testing.T) {
		// Given: malformed input, out-of-range and occupied moves before a win
		lines := []string{
			"nope",                     // not numbers
			"1",                        // one number
			"3 3",                      // out of range
			"0 0",                      // X takes the corner
			"0 0",                      // O tries the occupied cell
			"1 0", "0 1", "1 1", "0 2", // rest of the X win
		}
		input := strings.NewReader(strings.Join(lines, "\n") + "\n")
		output := &bytes.Buffer{}
		game := entity.NewGame(entity.PlayerX)
		server := New(newTestLogger(), game, input, output)

		// When: running the session
		err := server.Start(ctx)

		// Then: every bad line produced a rejection and the game still completed
		require.NoError(t, err)
		assert.Equal(t, 4, strings.Count(output.String(), "Invalid move. Try again."))
		assert.Contains(t, output.String(), "Player X wins!")
	})

	t.Run("Closed input ends the session with an error", func(t *testing.T) {
		// Given: an input stream with no lines at all
		input := strings.NewReader("")
		output := &bytes.Buffer{}
		game := entity.NewGame(entity.PlayerX)
		server := New(newTestLogger(), game, input, output)

		// When: running the session
		err := server.Start(ctx)

		// Then: it should return ErrInputClosed mid-game
		assert.ErrorIs(t, err, ErrInputClosed)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Canceled context shuts the session down cleanly", func(t *testing.T) {
		// Given: an already-canceled context
		canceledCtx, cancel := context.WithCancel(context.Background())
		cancel()

		input := strings.NewReader("0 0\n")
		output := &bytes.Buffer{}
		game := entity.NewGame(entity.PlayerX)
		server := New(newTestLogger(), game, input, output)

		// When: running the session
		err := server.Start(canceledCtx)

		// Then: it should return without consuming any move
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Session prompts name the player whose turn it is", func(t *testing.T) {
		// Given: one move by X, then closed input on O's turn
		input := strings.NewReader("2 2\n")
		output := &bytes.Buffer{}
		game := entity.NewGame(entity.PlayerX)
		server := New(newTestLogger(), game, input, output)

		// When: running the session
		err := server.Start(ctx)

		// Then: both players were prompted before the input ran out
		require.Error(t, err)
		prompts := strings.Count(output.String(), "enter your move (row and column, e.g., 0 1): ")
		assert.Equal(t, 2, prompts)
		assert.Equal(t, entity.PlayerO, game.Turn)
	})
}
