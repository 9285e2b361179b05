package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOccupiedSquare = errors.New("cannot apply move to non-empty square")

// Lines holds every row, column and diagonal in the order Winner checks them.
var Lines = [8][3]Square{
	{A1, A2, A3},
	{B1, B2, B3},
	{C1, C2, C3},
	{A1, B1, C1},
	{A2, B2, C2},
	{A3, B3, C3},
	{A1, B2, C3},
	{A3, B2, C1},
}

// Position is an immutable snapshot of the nine squares.
// The zero value is the empty position.
type Position struct {
	board [9]Token
}

// EmptyPosition - returns the position with every square empty.
func EmptyPosition() Position {
	return Position{}
}

// At - returns the token on the given square. Like Index it panics on an invalid square.
func (that Position) At(square Square) Token {
	return that.board[square.Index()]
}

// Board - returns a copy of all slots in index order.
func (that Position) Board() [9]Token {
	return that.board
}

func (that Position) IsFull() bool {
	for _, token := range that.board {
		if token == Empty {
			return false
		}
	}

	return true
}

// String renders the rows A, B, C separated by "/", e.g. "X.O/.X./..O".
func (that Position) String() string {
	var sb strings.Builder

	for i, token := range that.board {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(token.String())
	}

	return sb.String()
}

// ApplyMove - places token on square and returns the new position.
// Turn order and the token kind are the caller's business; only occupancy is checked.
func ApplyMove(position Position, square Square, token Token) (Position, error) {
	if !square.Valid() {
		return position, fmt.Errorf("%w: %s", ErrInvalidSquare, square)
	}

	i := square.Index()

	if position.board[i] != Empty {
		return position, fmt.Errorf("%w: %s", ErrOccupiedSquare, square)
	}

	next := position
	next.board[i] = token

	return next, nil
}

// Winner - returns the token that completed a line, or Empty.
// If several lines are complete the first one in Lines decides.
func Winner(position Position) Token {
	for _, line := range Lines {
		a, b, c := position.At(line[0]), position.At(line[1]), position.At(line[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}
