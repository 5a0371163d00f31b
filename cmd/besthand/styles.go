package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/besthand/internal/deck"
	"github.com/lox/besthand/internal/evaluator"
)

type styles struct {
	header   lipgloss.Style
	hand     lipgloss.Style
	input    lipgloss.Style
	category lipgloss.Style
	dim      lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		input:    r.NewStyle().Foreground(lipgloss.Color("8")),
		category: r.NewStyle().Foreground(lipgloss.Color("10")),
		dim:      r.NewStyle().Faint(true),
	}
}

func (s styles) result(hand []deck.Card, score evaluator.Score) string {
	return s.hand.Render(deck.FormatCards(hand)) + "  " + s.category.Render(score.String())
}
