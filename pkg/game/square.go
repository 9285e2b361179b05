package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSquare = errors.New("invalid square")

// Square identifies one of the nine board cells. The letter is the row, the digit the column.
type Square uint8

const (
	A1 Square = iota
	A2
	A3
	B1
	B2
	B3
	C1
	C2
	C3
)

// Squares lists every square in slot order.
var Squares = [9]Square{A1, A2, A3, B1, B2, B3, C1, C2, C3}

var squareLabels = [9]string{"A1", "A2", "A3", "B1", "B2", "B3", "C1", "C2", "C3"}

// Valid - reports whether the square is one of the nine board cells.
func (that Square) Valid() bool {
	return that <= C3
}

// Index - returns the slot index of the square inside a Position.
// It panics on a value outside A1..C3; check Valid first when the value is not a constant.
func (that Square) Index() int {
	switch that {
	case A1:
		return 0
	case A2:
		return 1
	case A3:
		return 2
	case B1:
		return 3
	case B2:
		return 4
	case B3:
		return 5
	case C1:
		return 6
	case C2:
		return 7
	case C3:
		return 8
	default:
		panic(fmt.Sprintf("game: square %d out of range", uint8(that)))
	}
}

func (that Square) String() string {
	if !that.Valid() {
		return fmt.Sprintf("Square(%d)", uint8(that))
	}

	return squareLabels[that.Index()]
}

// ParseSquare - converts a label such as "b2" into a Square.
func ParseSquare(s string) (Square, error) {
	label := strings.ToUpper(strings.TrimSpace(s))

	for _, square := range Squares {
		if squareLabels[square.Index()] == label {
			return square, nil
		}
	}

	return A1, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
}
