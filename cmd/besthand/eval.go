package main

import (
	"fmt"
	"strings"

	"github.com/lox/besthand/internal/deck"
	"github.com/lox/besthand/internal/evaluator"
	"github.com/lox/besthand/internal/validate"
)

type BestCmd struct {
	Cards []string `arg:"" help:"Card tokens, e.g. 6C 7C 8C 9C TC 5C JS"`
}

func (c *BestCmd) Run(app *App) error {
	return app.evaluate(c.Cards, false)
}

type WildCmd struct {
	Cards []string `arg:"" help:"Card tokens with optional ?B and ?R jokers, e.g. TD TC 5H 5C 7C ?R ?B"`
}

func (c *WildCmd) Run(app *App) error {
	return app.evaluate(c.Cards, true)
}

// parseHand accepts tokens split across arguments or quoted together
func parseHand(args []string, size int, jokers bool) ([]deck.Token, error) {
	tokens, err := deck.ParseTokens(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	if err := validate.Hand(tokens, validate.Options{Size: size, AllowJokers: jokers}); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (app *App) evaluate(args []string, jokers bool) error {
	tokens, err := parseHand(args, app.Config.HandSize, jokers)
	if err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}

	var (
		hand  []deck.Card
		score evaluator.Score
	)
	if jokers {
		hand, score = evaluator.BestWildHand(tokens)
	} else {
		hand, score = evaluator.BestHand(deck.Cards(tokens))
	}
	app.Logger.Debug("evaluated hand", "jokers", deck.HasJoker(tokens), "category", score.Category, "tiebreaks", score.Tiebreaks())

	if *app.Config.Output.Sort {
		deck.SortCards(hand)
	}
	fmt.Fprintln(app.Out, app.styles.result(hand, score))
	return nil
}
