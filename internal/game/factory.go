package game

import "fmt"

// Strategy names a way of reading the player token.
type Strategy string

const (
	StrategyLiteral   Strategy = "literal"
	StrategyCorrected Strategy = "corrected"
)

// Decoder turns a record into a scorable round.
type Decoder interface {
	Strategy() Strategy
	Decode(rec Record) (Round, error)
}

type decodeFunc func(Record) (Choice, Outcome, error)

type decoder struct {
	strategy Strategy
	decode   decodeFunc
}

func (d decoder) Strategy() Strategy {
	return d.strategy
}

func (d decoder) Decode(rec Record) (Round, error) {
	choice, outcome, err := d.decode(rec)
	if err != nil {
		return Round{}, err
	}
	return Round{Choice: choice, Outcome: outcome}, nil
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateDecoder(strategy Strategy) (Decoder, error) {
	switch strategy {
	case StrategyLiteral:
		return decoder{strategy: strategy, decode: DecodeLiteral}, nil
	case StrategyCorrected:
		return decoder{strategy: strategy, decode: DecodeCorrected}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", strategy)
	}
}

// Decoders returns the literal and corrected decoders, in that order.
func (f *Factory) Decoders() []Decoder {
	return []Decoder{
		decoder{strategy: StrategyLiteral, decode: DecodeLiteral},
		decoder{strategy: StrategyCorrected, decode: DecodeCorrected},
	}
}
