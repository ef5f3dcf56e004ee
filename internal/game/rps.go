package game

// beats maps each choice to the choice it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// DetermineOutcome returns the outcome for player against opponent.
// Argument order matters: swapping them inverts Win and Lose.
func DetermineOutcome(opponent, player Choice) Outcome {
	if opponent == player {
		return Draw
	}
	if beats[player] == opponent {
		return Win
	}
	return Lose
}

// Score is the round score: outcome value (lose 0, draw 3, win 6) plus
// choice value (rock 1, paper 2, scissors 3).
func Score(choice Choice, outcome Outcome) int {
	var outcomeScore int
	switch outcome {
	case Win:
		outcomeScore = 6
	case Draw:
		outcomeScore = 3
	case Lose:
		outcomeScore = 0
	}

	var choiceScore int
	switch choice {
	case Rock:
		choiceScore = 1
	case Paper:
		choiceScore = 2
	case Scissors:
		choiceScore = 3
	}

	return outcomeScore + choiceScore
}

// ChoiceFor returns the choice that produces want against opponent.
func ChoiceFor(want Outcome, opponent Choice) Choice {
	switch want {
	case Lose:
		return beats[opponent]
	case Win:
		for c, loser := range beats {
			if loser == opponent {
				return c
			}
		}
	}
	return opponent
}
