package game

// Choice is a hand shape thrown in a round.
type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

// Outcome is the result of a round from the player's side.
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Draw Outcome = "draw"
)

// Record is one encoded round: opponent token, separator, player token.
type Record [3]rune

// Round is a decoded record ready for scoring.
type Round struct {
	Choice  Choice
	Outcome Outcome
}

// Points returns the score of the round.
func (r Round) Points() int {
	return Score(r.Choice, r.Outcome)
}
