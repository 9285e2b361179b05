package apperror

import "errors"

var (
	ErrNoMoves      = errors.New("no moves to replay")
	ErrInvalidMove  = errors.New("invalid move")
	ErrMoveRejected = errors.New("move rejected")
)
