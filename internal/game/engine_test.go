package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordmind/internal/words"
)

func listOf(t *testing.T, ws ...string) *words.List {
	t.Helper()
	l, err := words.Load(strings.NewReader(strings.Join(ws, "\n")))
	require.NoError(t, err)
	require.Equal(t, len(ws), l.Len())
	return l
}

// singleWordEngine pins the secret by building the engine over a one-word
// list: every round can only choose that word.
func singleWordEngine(t *testing.T, w string) *Engine {
	t.Helper()
	e, err := New(listOf(t, w), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Run("should reject an empty word list", func(t *testing.T) {
		empty, err := words.Load(strings.NewReader(""))
		require.NoError(t, err)
		_, err = New(empty, nil)
		assert.Error(t, err)
	})

	t.Run("should reject a nil word list", func(t *testing.T) {
		_, err := New(nil, nil)
		assert.Error(t, err)
	})

	t.Run("should self-seed when no rng is given", func(t *testing.T) {
		list := listOf(t, "night", "crane", "light")
		e, err := New(list, nil)
		require.NoError(t, err)
		assert.True(t, list.Contains(e.secret))
	})
}

// TestSecretAlwaysFromList drives many rounds and checks the engine never
// invents a secret outside the list.
func TestSecretAlwaysFromList(t *testing.T) {
	list := listOf(t, "night", "crane", "light", "zonal", "house")
	e, err := New(list, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		require.True(t, list.Contains(e.secret))
		e.StartRound()
	}
}

func TestSubmitGuessInvalid(t *testing.T) {
	e := singleWordEngine(t, "night")

	for _, raw := range []string{"", "/", "abc", "abcdef", "ab1de", "NIGHT", "hello"} {
		res := e.SubmitGuess(raw)
		assert.Equal(t, OutcomeInvalid, res.Outcome, "input %q", raw)
		assert.Nil(t, res.Marks)
	}
	assert.Equal(t, 0, e.guesses, "invalid guesses must not consume attempts")

	// Still true mid-round.
	e.SubmitGuess("crane")
	e.SubmitGuess("xyzzy")
	assert.Equal(t, 1, e.guesses)
}

func TestSubmitGuessWin(t *testing.T) {
	e := singleWordEngine(t, "night")

	e.SubmitGuess("crane")
	e.SubmitGuess("light")
	res := e.SubmitGuess("night")

	assert.Equal(t, OutcomeWon, res.Outcome)
	assert.Equal(t, 3, res.Guesses, "win reports the final counter")
	assert.Equal(t, "night", res.Answer)
	assert.Nil(t, res.Marks, "a win short-circuits before scoring")

	// A fresh round has begun: counter reset, feedback cleared.
	assert.Equal(t, 0, e.guesses)
	assert.Nil(t, e.last)
	assert.Equal(t, "night", e.secret)
}

func TestSubmitGuessFeedback(t *testing.T) {
	e := singleWordEngine(t, "night")

	res := e.SubmitGuess("light")
	assert.Equal(t, OutcomeFeedback, res.Outcome)
	assert.Equal(t, []Mark{MarkMiss, MarkExact, MarkExact, MarkExact, MarkExact}, res.Marks)
	assert.Equal(t, 1, res.Guesses)
	assert.Equal(t, MaxGuesses-1, res.Remaining)
	assert.Empty(t, res.Answer, "the secret stays hidden while the round runs")
	assert.Equal(t, res.Marks, e.last)
}

func TestSubmitGuessExhaustion(t *testing.T) {
	e := singleWordEngine(t, "night")

	for i := 1; i < MaxGuesses; i++ {
		res := e.SubmitGuess("crane")
		require.Equal(t, OutcomeFeedback, res.Outcome)
		require.Equal(t, i, res.Guesses)
		require.Equal(t, MaxGuesses-i, res.Remaining)
	}

	res := e.SubmitGuess("crane")
	assert.Equal(t, OutcomeLost, res.Outcome)
	assert.Equal(t, MaxGuesses, res.Guesses)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, "night", res.Answer, "the lost round reveals its word")
	require.Len(t, res.Marks, words.Length, "the final guess still gets feedback")

	// The loss starts the next round just like a win does.
	assert.Equal(t, 0, e.guesses)
	assert.Nil(t, e.last)
}

func TestRoundsAfterWinAreIndependent(t *testing.T) {
	e := singleWordEngine(t, "night")

	require.Equal(t, OutcomeWon, e.SubmitGuess("night").Outcome)
	res := e.SubmitGuess("night")
	assert.Equal(t, OutcomeWon, res.Outcome)
	assert.Equal(t, 1, res.Guesses, "counters never leak across rounds")
}
