package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/threecards/internal/deck"
	"github.com/lox/threecards/internal/evaluator"
)

type ScoreCmd struct {
	Cards []string `arg:"" help:"Cards to score, e.g. 'Ks Kh 2c' or 'KsKh2c'"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	return c.run(os.Stdout)
}

func (c *ScoreCmd) run(w io.Writer) error {
	hand, err := deck.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return fmt.Errorf("invalid cards: %w", err)
	}
	b := evaluator.Evaluate(hand)
	_, err = fmt.Fprintf(w, "%s: %s\n", deck.FormatCards(hand), b)
	return err
}
