package tourney

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"rps_tourney/internal/game"
	"rps_tourney/internal/logger"
	"rps_tourney/internal/metrics"
)

// LineError ties a record error to its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Tally is the running score of one decoding strategy.
type Tally struct {
	Strategy game.Strategy
	Total    int
	Rounds   int
	Wins     int
	Draws    int
	Losses   int
}

func (t *Tally) add(round game.Round) int {
	points := round.Points()
	t.Total += points
	t.Rounds++
	switch round.Outcome {
	case game.Win:
		t.Wins++
	case game.Draw:
		t.Draws++
	case game.Lose:
		t.Losses++
	}
	return points
}

// Result is the outcome of scoring a whole transcript.
type Result struct {
	Tallies []Tally
	Lines   int
	Skipped int
}

// Tally returns the tally for strategy, or a zero tally if it was not scored.
func (r *Result) Tally(strategy game.Strategy) Tally {
	for _, t := range r.Tallies {
		if t.Strategy == strategy {
			return t
		}
	}
	return Tally{Strategy: strategy}
}

type Scorer struct {
	decoders []game.Decoder
	policy   Policy
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewScorer builds a scorer running every decoder on each record.
// m may be nil; a nil log means the package logger.
func NewScorer(decoders []game.Decoder, policy Policy, m *metrics.Metrics, log *slog.Logger) (*Scorer, error) {
	if len(decoders) == 0 {
		return nil, errors.New("at least one decoder is required")
	}
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Get()
	}
	return &Scorer{decoders: decoders, policy: policy, metrics: m, log: log}, nil
}

// DecodeLine runs every decoder on one line. A record that fails any
// decoder fails as a whole so all tallies cover the same rounds.
func (s *Scorer) DecodeLine(line string) ([]game.Round, error) {
	rec, err := game.ParseRecord(line)
	if err != nil {
		return nil, err
	}

	rounds := make([]game.Round, len(s.decoders))
	for i, d := range s.decoders {
		round, err := d.Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("%s decoding: %w", d.Strategy(), err)
		}
		rounds[i] = round
	}
	return rounds, nil
}

// Score reads one record per line from r and sums every strategy.
// Under the abort policy the first bad line stops scoring and no result
// is returned.
func (s *Scorer) Score(r io.Reader) (*Result, error) {
	res := &Result{Tallies: make([]Tally, len(s.decoders))}
	for i, d := range s.decoders {
		res.Tallies[i].Strategy = d.Strategy()
	}

	lines := newLineReader(r)
	for {
		line, ok, err := lines.next()
		if err != nil {
			return nil, &LineError{Line: res.Lines + 1, Err: fmt.Errorf("read transcript: %w", err)}
		}
		if !ok {
			break
		}
		res.Lines++

		rounds, err := s.DecodeLine(line)
		if err != nil {
			s.reject(err)
			lineErr := &LineError{Line: res.Lines, Err: err}
			if s.policy == PolicyAbort {
				return nil, lineErr
			}
			s.log.Warn("skipping record", "line", res.Lines, "error", err)
			res.Skipped++
			continue
		}

		for i, round := range rounds {
			points := res.Tallies[i].add(round)
			strategy := string(s.decoders[i].Strategy())
			if s.metrics != nil {
				s.metrics.ObserveRound(strategy, string(round.Outcome), points)
			}
			s.log.Debug("round scored",
				"line", res.Lines,
				"strategy", strategy,
				"choice", round.Choice,
				"outcome", round.Outcome,
				"points", points,
			)
		}
	}

	s.log.Info("transcript scored", "lines", res.Lines, "skipped", res.Skipped)
	return res, nil
}

func (s *Scorer) reject(err error) {
	if s.metrics == nil {
		return
	}
	reason := metrics.ReasonInvalidChar
	if errors.Is(err, game.ErrShortRecord) {
		reason = metrics.ReasonShortRecord
	}
	s.metrics.ObserveRejected(reason)
}
