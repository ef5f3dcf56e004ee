package game

import "fmt"

const (
	opponentPos = 0
	playerPos   = 2
)

// ParseRecord takes the first three characters of line.
// Anything past the third character is ignored.
func ParseRecord(line string) (Record, error) {
	var rec Record
	n := 0
	for _, r := range line {
		if n == len(rec) {
			break
		}
		rec[n] = r
		n++
	}
	if n < len(rec) {
		return Record{}, fmt.Errorf("%w: got %d", ErrShortRecord, n)
	}
	return rec, nil
}

// DecodeLiteral reads the player token as the choice thrown.
func DecodeLiteral(rec Record) (Choice, Outcome, error) {
	opponent, err := decodeOpponent(rec[opponentPos])
	if err != nil {
		return "", "", err
	}
	player, err := decodeChoice(rec[playerPos])
	if err != nil {
		return "", "", err
	}
	return player, DetermineOutcome(opponent, player), nil
}

// DecodeCorrected reads the player token as the outcome wanted and derives
// the choice that gets it.
func DecodeCorrected(rec Record) (Choice, Outcome, error) {
	opponent, err := decodeOpponent(rec[opponentPos])
	if err != nil {
		return "", "", err
	}
	want, err := decodeOutcome(rec[playerPos])
	if err != nil {
		return "", "", err
	}
	return ChoiceFor(want, opponent), want, nil
}

func decodeOpponent(r rune) (Choice, error) {
	switch r {
	case 'A', 'a':
		return Rock, nil
	case 'B', 'b':
		return Paper, nil
	case 'C', 'c':
		return Scissors, nil
	}
	return "", &InvalidCharError{Position: opponentPos, Char: r, Mapping: MappingOpponent}
}

func decodeChoice(r rune) (Choice, error) {
	switch r {
	case 'X', 'x':
		return Rock, nil
	case 'Y', 'y':
		return Paper, nil
	case 'Z', 'z':
		return Scissors, nil
	}
	return "", &InvalidCharError{Position: playerPos, Char: r, Mapping: MappingChoice}
}

func decodeOutcome(r rune) (Outcome, error) {
	switch r {
	case 'X', 'x':
		return Lose, nil
	case 'Y', 'y':
		return Draw, nil
	case 'Z', 'z':
		return Win, nil
	}
	return "", &InvalidCharError{Position: playerPos, Char: r, Mapping: MappingOutcome}
}
