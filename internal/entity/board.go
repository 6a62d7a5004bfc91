package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// BoardSize is the fixed side length of the grid.
const BoardSize = 3

// Mark is the content of a single cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

// WinCombos lists every line of three cells as (row, col) pairs.
var WinCombos = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other symbol of the two-symbol alphabet.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Move is a 0-based coordinate paired with the mark being placed.
type Move struct {
	Row  int
	Col  int
	Mark Mark
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Grid is a read-only copy of the board cells, row-major.
type Grid [BoardSize][BoardSize]Mark

type Board struct {
	cells Grid
}

func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromGrid builds a board with the given cells already placed.
func NewBoardFromGrid(grid Grid) *Board {
	return &Board{cells: grid}
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) Cell(row, col int) (Mark, error) {
	if !that.InBounds(row, col) {
		return EmptyCell, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return that.cells[row][col], nil
}

// MakeMove places mark on an empty cell. An occupied cell is left untouched.
func (that *Board) MakeMove(row, col int, mark Mark) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that.cells[row][col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.cells[row][col] = mark

	return nil
}

// UndoMove clears a cell. Only the search engine calls it, to roll back
// hypothetical moves while exploring.
func (that *Board) UndoMove(row, col int) {
	if !that.InBounds(row, col) {
		return
	}

	that.cells[row][col] = EmptyCell
}

func (that *Board) CheckWinner(mark Mark) bool {
	if !mark.IsValid() {
		return false
	}

	for _, combo := range WinCombos {
		if that.cells[combo[0][0]][combo[0][1]] == mark &&
			that.cells[combo[1][0]][combo[1][1]] == mark &&
			that.cells[combo[2][0]][combo[2][1]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for row := range that.cells {
		for _, cell := range that.cells[row] {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// EmptyCells returns the free coordinates in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range that.cells {
		for col, cell := range that.cells[row] {
			if cell == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) Snapshot() Grid {
	return that.cells
}
