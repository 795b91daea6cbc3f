package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/playgridlabs/tictactoe-console/internal/entity"
)

var (
	ErrInputClosed = errors.New("input stream closed")

	errBadMoveLine = errors.New("expected two numbers")
)

// Server - drives one game session over a line-based text console.
type Server struct {
	logger *slog.Logger
	game   *entity.Game

	in  *bufio.Scanner
	out io.Writer
}

// New - returns a console server reading moves from in and rendering to out.
func New(logger *slog.Logger, game *entity.Game, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger,
		game:   game,

		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Start - runs the session until a win, a draw, closed input or a canceled
// context. Rejected and malformed moves re-prompt the same player.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("component", "terminal")

	fmt.Fprintln(that.out, welcomeLine())

	if that.game.IsWaiting() {
		if err := that.game.Start(); err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}
	} else {
		that.game.Reset()
	}

	for {
		if ctx.Err() != nil {
			log.Info("Session canceled, shutting down")
			return nil
		}

		that.printBoard()

		row, col, err := that.readMove()
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}

			log.Debug("could not parse move", "error", err)
			fmt.Fprintln(that.out, rejectLine(err))

			continue
		}

		if err = that.game.MakeTurn(row, col); err != nil {
			log.Debug("move rejected", "error", err)
			fmt.Fprintln(that.out, rejectLine(err))

			continue
		}

		log.Debug("move accepted", "row", row, "col", col)

		if that.game.IsFinished() {
			that.printBoard()
			that.announceResult()

			return nil
		}
	}
}

// readMove - prompts the current player and parses one "row col" line.
func (that *Server) readMove() (int, int, error) {
	fmt.Fprint(that.out, promptLine(that.game.Turn))

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		return 0, 0, ErrInputClosed
	}

	fields := strings.Fields(that.in.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w, got %q", errBadMoveLine, that.in.Text())
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q: %w", fields[0], err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad column %q: %w", fields[1], err)
	}

	return row, col, nil
}

func (that *Server) printBoard() {
	fmt.Fprintf(that.out, "\n%s\n\n", formatBoard(&that.game.Board))
}

func (that *Server) announceResult() {
	if that.game.IsDraw() {
		fmt.Fprintln(that.out, drawLine())
		return
	}

	fmt.Fprintln(that.out, winLine(that.game.Winner))
}
