// Core type definitions for the guessing engine.
// Defines:
//   - Mark: per-letter result of a scored guess (exact/near/miss).
//   - Outcome: coarse result of submitting one guess.
//   - Result: structured value the caller renders.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact": letter is correct and in the correct position.
//   - "near":  letter exists in the secret but at a different position.
//   - "miss":  letter does not exist in the secret at all.
type Mark string

const (
	MarkExact Mark = "exact"
	MarkNear  Mark = "near"
	MarkMiss  Mark = "miss"
)

// Outcome is the coarse result of submitting one guess.
type Outcome int

const (
	// OutcomeInvalid means the guess failed the legality checks. The guess
	// counter is untouched and no attempt was consumed.
	OutcomeInvalid Outcome = iota
	// OutcomeFeedback means a legal, non-winning guess was scored and the
	// round continues.
	OutcomeFeedback
	// OutcomeWon means the guess matched the secret. A fresh round has
	// already begun by the time the caller sees this.
	OutcomeWon
	// OutcomeLost means the guess budget is exhausted. A fresh round has
	// already begun by the time the caller sees this.
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFeedback:
		return "feedback"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Result is what one SubmitGuess call produces. The engine computes, the
// caller presents.
type Result struct {
	Outcome   Outcome
	Marks     []Mark // per-letter feedback; nil on win and on invalid input
	Guesses   int    // guesses used in the round this result belongs to
	Remaining int    // guesses left in the round after this one
	Answer    string // the secret, revealed on Won and Lost only
}
