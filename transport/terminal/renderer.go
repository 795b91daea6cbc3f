package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/playgridlabs/tictactoe-console/internal/entity"
)

const rowDivider = "-----"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	markStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	drawStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// formatBoard - renders the grid: cells joined by "|", rows separated by a
// divider line, empty cells shown as spaces. The grid stays plain text so the
// format survives any terminal.
func formatBoard(board *entity.Board) string {
	var builder strings.Builder

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)

		for col := 0; col < entity.BoardSize; col++ {
			cell := board.Cell(row, col)
			if cell == entity.EmptyCell {
				cell = " "
			}

			cells = append(cells, cell)
		}

		builder.WriteString(strings.Join(cells, "|"))

		if row < entity.BoardSize-1 {
			builder.WriteString("\n" + rowDivider + "\n")
		}
	}

	return builder.String()
}

func welcomeLine() string {
	return headerStyle.Render("Welcome to Tic-Tac-Toe!")
}

func promptLine(mark string) string {
	return fmt.Sprintf("Player %s, enter your move (row and column, e.g., 0 1): ", markStyle.Render(mark))
}

func rejectLine(err error) string {
	return fmt.Sprintf("%s (%v)", errorStyle.Render("Invalid move. Try again."), err)
}

func winLine(mark string) string {
	return winStyle.Render(fmt.Sprintf("Player %s wins!", mark))
}

func drawLine() string {
	return drawStyle.Render("It's a draw!")
}
