// Round engine for the word-guessing game.
// Responsibilities:
//   - Own the round state: current secret, guess counter, last feedback.
//   - Validate and score one guess per call (length, alphabet, repeats).
//   - Score guesses by the positional first-occurrence rule.
//   - Drive round transitions: win and guess exhaustion both report the
//     outcome and immediately begin a fresh round.
//
// Notes:
//   - The legal word list is built by the words package and passed in; the
//     engine never reads files or the terminal.
//   - The engine is single-player and single-threaded by contract; callers
//     submit one guess at a time.
package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/robalobadob/wordmind/internal/words"
)

// MaxGuesses is the number of legal guesses a round allows before it is lost.
const MaxGuesses = 10

// Engine holds the state of one guessing session across rounds.
type Engine struct {
	list    *words.List
	rng     *rand.Rand
	secret  string // current round's answer, always from list
	guesses int    // legal guesses consumed this round
	last    []Mark // feedback for the most recent scored guess
}

// New constructs an engine over list and starts the first round. A nil rng
// is seeded from crypto/rand; tests pass a fixed-seed source instead. An
// empty list is a configuration error: no secret could ever be chosen.
func New(list *words.List, rng *rand.Rand) (*Engine, error) {
	if list == nil || list.Len() == 0 {
		return nil, errors.New("game: word list is empty")
	}
	if rng == nil {
		seed, err := randomSeed()
		if err != nil {
			return nil, err
		}
		rng = rand.New(rand.NewSource(seed))
	}
	e := &Engine{list: list, rng: rng}
	e.StartRound()
	return e, nil
}

// StartRound resets the round state: a new secret drawn uniformly from the
// list (repeats across rounds are possible), counter zeroed, feedback
// cleared.
func (e *Engine) StartRound() {
	e.secret = e.list.Pick(e.rng)
	e.guesses = 0
	e.last = nil
}

// SubmitGuess validates and scores one guess, advancing the round state.
//
// An illegal guess costs nothing: the counter stays put and the round is
// unchanged. A legal guess consumes one attempt. Matching the secret wins
// the round; full equality is checked before any per-letter scoring, so a
// winning Result carries no marks. A non-winning legal guess is scored and,
// when it was the last allowed attempt, loses the round. Won and Lost both
// start the next round before returning.
func (e *Engine) SubmitGuess(raw string) Result {
	if !words.IsLegal(raw) {
		return Result{Outcome: OutcomeInvalid, Guesses: e.guesses, Remaining: MaxGuesses - e.guesses}
	}

	e.guesses++
	if raw == e.secret {
		res := Result{Outcome: OutcomeWon, Guesses: e.guesses, Answer: e.secret}
		e.StartRound()
		return res
	}

	marks := score(raw, e.secret)
	e.last = marks
	res := Result{
		Outcome:   OutcomeFeedback,
		Marks:     marks,
		Guesses:   e.guesses,
		Remaining: MaxGuesses - e.guesses,
	}
	if e.guesses == MaxGuesses {
		res.Outcome = OutcomeLost
		res.Answer = e.secret
		e.StartRound()
	}
	return res
}

// score evaluates guess against secret position by position.
//
// For each letter the rule looks at the first occurrence of that letter in
// the secret: same index is exact, absent is miss, anything else is near.
// When the secret itself contains a repeated letter, a correctly placed
// non-first occurrence therefore scores near, not exact. Secrets drawn from
// a legal list never repeat letters, so rounds cannot reach that case, but
// the rule is kept as stated for any direct caller.
func score(guess, secret string) []Mark {
	marks := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		switch strings.IndexByte(secret, guess[i]) {
		case i:
			marks[i] = MarkExact
		case -1:
			marks[i] = MarkMiss
		default:
			marks[i] = MarkNear
		}
	}
	return marks
}

// randomSeed derives an int64 seed from crypto/rand.
func randomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
