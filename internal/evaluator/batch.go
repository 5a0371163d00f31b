package evaluator

import (
	"context"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/besthand/internal/deck"
)

// Result is the outcome of evaluating one hand of a batch
type Result struct {
	Index int
	Input []deck.Token
	Hand  []deck.Card
	Score Score
}

// BatchOptions configures EvaluateBatch
type BatchOptions struct {
	// Workers is the number of concurrent evaluators (0 means one per CPU)
	Workers int

	// Logger receives per-hand debug output. Nil discards it.
	Logger *log.Logger
}

// EvaluateBatch evaluates independent hands concurrently. Results are
// returned in input order. Cancelling ctx stops the remaining work and
// returns the context error.
func EvaluateBatch(ctx context.Context, hands [][]deck.Token, opts BatchOptions) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(hands) {
		workers = len(hands)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, len(hands))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range hands {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				hand, score := Evaluate(hands[i])
				// each worker owns distinct indices
				results[i] = Result{Index: i, Input: hands[i], Hand: hand, Score: score}
				logger.Debug("evaluated hand", "index", i, "hand", deck.FormatCards(hand), "score", score)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
