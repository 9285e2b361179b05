package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidToken = errors.New("invalid token")

// Token is the mark held by a square.
type Token uint8

const (
	Empty Token = iota
	X
	O
)

func (that Token) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// ParseToken - converts "X", "O" or "." into a Token.
func ParseToken(s string) (Token, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	case ".":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}
}
