package replay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/pkg/game"
)

type Move struct {
	Square game.Square
	Token  game.Token
}

type Result struct {
	Position game.Position
	Winner   game.Token
	Applied  int
}

// Replayer applies a fixed list of moves to an empty position.
type Replayer struct {
	logger    *slog.Logger
	stopOnWin bool
}

func New(logger *slog.Logger, stopOnWin bool) *Replayer {
	return &Replayer{
		logger:    logger.With("component", "replay"),
		stopOnWin: stopOnWin,
	}
}

// Replay - applies moves in order. On a rejected move the result holds the position reached so far.
func (that *Replayer) Replay(ctx context.Context, moves []Move) (*Result, error) {
	log := that.logger.With("method", "Replay")

	if len(moves) == 0 {
		return nil, apperror.ErrNoMoves
	}

	result := &Result{Position: game.EmptyPosition()}

	for i, move := range moves {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("replay interrupted at move %d: %w", i, err)
		}

		position, err := game.ApplyMove(result.Position, move.Square, move.Token)
		if err != nil {
			log.Warn("move rejected", "index", i, "square", move.Square.String(), "token", move.Token.String(), "error", err)
			return result, fmt.Errorf("%w: move %d: %w", apperror.ErrMoveRejected, i, err)
		}

		result.Position = position
		result.Applied++
		result.Winner = game.Winner(position)

		log.Debug("move applied",
			"index", i,
			"square", move.Square.String(),
			"token", move.Token.String(),
			"position", position.String(),
		)

		if that.stopOnWin && result.Winner != game.Empty {
			log.Info("line completed, stopping", "winner", result.Winner.String(), "applied", result.Applied)
			break
		}
	}

	return result, nil
}
