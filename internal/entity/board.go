package entity

import (
	"fmt"

	"github.com/playgridlabs/tictactoe-console/internal/apperror"
)

const (
	// BoardSize - the grid is fixed at 3x3; the rules have no meaning for other sizes.
	BoardSize = 3

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// winLines - the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
var winLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board - a 3x3 grid of cells, each empty or holding a player's mark.
type Board [BoardSize][BoardSize]string

// ApplyMove - places the player's mark at (row, col). A rejected move leaves
// the board untouched: apperror.ErrOutOfRange for coordinates outside [0,2],
// apperror.ErrCellOccupied for a cell that already holds a mark.
func (that *Board) ApplyMove(row, col int, mark string) error {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return nil
}

// Cell - returns the mark at (row, col); empty string for an empty cell.
func (that *Board) Cell(row, col int) string {
	return that[row][col]
}

// IsFull - reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// IsWinner - reports whether the player owns one of the 8 winning lines.
func (that *Board) IsWinner(mark string) bool {
	if mark == EmptyCell {
		return false
	}

	for _, line := range winLines {
		if that[line[0][0]][line[0][1]] == mark &&
			that[line[1][0]][line[1][1]] == mark &&
			that[line[2][0]][line[2][1]] == mark {
			return true
		}
	}

	return false
}

// Reset - sets every cell back to empty.
func (that *Board) Reset() {
	*that = Board{}
}
