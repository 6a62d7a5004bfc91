package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// maxLineLength bounds a single line of input; longer lines are rejected
// as invalid input and skipped.
const maxLineLength = 1024

// Reader reads moves typed as two 1-based integers, e.g. "2 3".
type Reader struct {
	in     *bufio.Reader
	prompt io.Writer
}

func NewReader(in io.Reader, prompt io.Writer) *Reader {
	return &Reader{
		in:     bufio.NewReader(in),
		prompt: prompt,
	}
}

// ReadMove prints prompt, reads one line and returns 0-based coordinates.
// Anything other than exactly two integers is ErrInvalidInput. The range is
// not checked here.
func (that *Reader) ReadMove(prompt string) (int, int, error) {
	if _, err := fmt.Fprint(that.prompt, prompt); err != nil {
		return 0, 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := that.readLine()
	if err != nil {
		return 0, 0, err
	}

	row, col, err := ParseMove(line)
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

// readLine returns the next line without its line ending. A line longer
// than maxLineLength is consumed completely and reported as ErrInvalidInput.
func (that *Reader) readLine() (string, error) {
	var sb strings.Builder
	tooLong := false

	for {
		fragment, isPrefix, err := that.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (sb.Len() > 0 || tooLong) {
				break
			}

			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}

			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if !tooLong && sb.Len()+len(fragment) > maxLineLength {
			tooLong = true
			sb.Reset()
		}

		if !tooLong {
			sb.Write(fragment)
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w: line longer than %d bytes", apperror.ErrInvalidInput, maxLineLength)
	}

	return sb.String(), nil
}

// ParseMove converts "row col" (1-based) into 0-based coordinates.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two numbers, got %d fields", apperror.ErrInvalidInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", apperror.ErrInvalidInput, fields[1])
	}

	return row - 1, col - 1, nil
}
