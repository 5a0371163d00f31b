package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lox/besthand/internal/deck"
	"github.com/lox/besthand/internal/evaluator"
	"github.com/lox/besthand/internal/fileutil"
)

type BatchCmd struct {
	File    string `arg:"" type:"existingfile" help:"File with one hand per line ('#' starts a comment)"`
	Workers int    `short:"w" help:"Concurrent workers (0 uses the config file, then one per CPU)"`
	Output  string `short:"o" type:"path" help:"Write the report to a file instead of stdout"`
}

func (c *BatchCmd) Run(app *App) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	hands, err := readHands(f, app.Config.HandSize)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	workers := c.Workers
	if workers == 0 {
		workers = app.Config.Batch.Workers
	}
	app.Logger.Debug("starting batch", "hands", len(hands), "workers", workers)

	start := app.Clock.Now()
	results, err := evaluator.EvaluateBatch(app.Ctx, hands, evaluator.BatchOptions{
		Workers: workers,
		Logger:  app.Logger,
	})
	if err != nil {
		return err
	}
	elapsed := app.Clock.Since(start)

	if c.Output == "" {
		printBatch(app.Out, app.styles, *app.Config.Output.Sort, results, elapsed)
		return nil
	}

	plain := newStyles(io.Discard, false)
	err = fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
		printBatch(w, plain, *app.Config.Output.Sort, results, elapsed)
		return nil
	})
	if err != nil {
		return err
	}
	app.Logger.Info("wrote report", "file", c.Output, "hands", len(results))
	return nil
}

// readHands parses one hand per line. Blank lines and '#' comments are skipped.
func readHands(r io.Reader, size int) ([][]deck.Token, error) {
	var hands [][]deck.Token
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		tokens, err := parseHand([]string{text}, size, true)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hands = append(hands, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hands, nil
}

func formatTokens(tokens []deck.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func printBatch(out io.Writer, st styles, sorted bool, results []evaluator.Result, elapsed time.Duration) {
	counts := make(map[evaluator.Category]int)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, res := range results {
		counts[res.Score.Category]++
		hand := append([]deck.Card(nil), res.Hand...)
		if sorted {
			deck.SortCards(hand)
		}
		fmt.Fprintf(w, "%s\t%s\n", st.input.Render(formatTokens(res.Input)), st.result(hand, res.Score))
	}
	w.Flush()

	fmt.Fprintln(out)
	for c := evaluator.StraightFlush; c >= evaluator.HighCard; c-- {
		if counts[c] == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\n", st.header.Render(c.String()), counts[c])
	}
	w.Flush()

	fmt.Fprintln(out, st.dim.Render(fmt.Sprintf("%d hands in %v", len(results), elapsed.Truncate(time.Millisecond))))
}
