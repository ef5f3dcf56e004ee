package report

import (
	"errors"
	"io"

	"rps_tourney/internal/game"
	"rps_tourney/internal/tourney"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Options struct {
	Locale language.Tag
	Tally  bool
}

// Write prints the literal and corrected totals, one per line.
func Write(out io.Writer, res *tourney.Result, opts Options) error {
	if out == nil {
		return errors.New("output is required")
	}
	if res == nil {
		return errors.New("result is required")
	}

	p := message.NewPrinter(opts.Locale)
	literal := res.Tally(game.StrategyLiteral)
	corrected := res.Tally(game.StrategyCorrected)

	if _, err := p.Fprintf(out, "Final score from tourney: %d\n", literal.Total); err != nil {
		return err
	}
	if _, err := p.Fprintf(out, "Final score from tourney with correct encoding: %d\n", corrected.Total); err != nil {
		return err
	}

	if !opts.Tally {
		return nil
	}
	for _, t := range res.Tallies {
		if _, err := p.Fprintf(out, "%s: %d rounds, %d wins, %d draws, %d losses\n",
			t.Strategy, t.Rounds, t.Wins, t.Draws, t.Losses); err != nil {
			return err
		}
	}
	if res.Skipped > 0 {
		if _, err := p.Fprintf(out, "skipped: %d of %d lines\n", res.Skipped, res.Lines); err != nil {
			return err
		}
	}
	return nil
}
