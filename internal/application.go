package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/config"
	"github.com/rocketscienceinc/tictactoe-rules/internal/replay"
	"github.com/rocketscienceinc/tictactoe-rules/pkg/game"
)

// RunApp - replays the configured moves and logs the final position.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := Replay(ctx, logger, conf)

	return err
}

// Replay - parses the configured moves and runs them through a Replayer.
func Replay(ctx context.Context, logger *slog.Logger, conf *config.Config) (*replay.Result, error) {
	log := logger.With("component", "app")

	moves, err := ParseMoves(conf.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed to parse moves: %w", err)
	}

	result, err := replay.New(logger, conf.StopOnWin).Replay(ctx, moves)
	if err != nil {
		return result, fmt.Errorf("failed to replay moves: %w", err)
	}

	log.Info("replay finished",
		"applied", result.Applied,
		"position", result.Position.String(),
		"winner", result.Winner.String(),
		"full", result.Position.IsFull(),
	)

	return result, nil
}

func ParseMoves(raw []config.Move) ([]replay.Move, error) {
	moves := make([]replay.Move, 0, len(raw))

	for i, move := range raw {
		square, err := game.ParseSquare(move.Square)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", apperror.ErrInvalidMove, i, err)
		}

		token, err := game.ParseToken(move.Token)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", apperror.ErrInvalidMove, i, err)
		}

		moves = append(moves, replay.Move{Square: square, Token: token})
	}

	return moves, nil
}
