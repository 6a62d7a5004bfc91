package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "-----"

type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// DisplayBoard prints each row as cells joined by "|", each followed by a
// separator line.
func (that *Renderer) DisplayBoard(grid entity.Grid) {
	var sb strings.Builder

	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cellSymbol(cell))
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
		sb.WriteString(rowSeparator)
		sb.WriteString("\n")
	}

	fmt.Fprint(that.out, sb.String())
}

func (that *Renderer) DisplayMessage(text string) {
	fmt.Fprintln(that.out, text)
}

func cellSymbol(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return string(mark)
}
