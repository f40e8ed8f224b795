// Terminal surface for the game: prompts, feedback rendering, the exit
// sentinel, and the end-of-session summary. The console owns no game rules;
// it submits lines to the engine and renders the structured results.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmind/internal/game"
	"github.com/robalobadob/wordmind/internal/session"
	"github.com/robalobadob/wordmind/internal/words"
)

// ExitToken ends the session when entered alone at the guess prompt.
const ExitToken = "/"

const prompt = "guess> "

// Stats records finished rounds and reports session totals. *session.Store
// satisfies it.
type Stats interface {
	RecordRound(ctx context.Context, r session.Round) error
	Summary(ctx context.Context) (session.Summary, error)
}

// Console runs the interactive guess loop over an input and output stream.
type Console struct {
	engine *game.Engine
	stats  Stats
	in     *bufio.Scanner
	out    io.Writer
	round  int
}

// New wires the loop to its collaborators. stats must be non-nil; recording
// failures are logged, never surfaced to the player.
func New(engine *game.Engine, stats Stats, in io.Reader, out io.Writer) *Console {
	return &Console{
		engine: engine,
		stats:  stats,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run plays rounds until the exit token or end of input. Each line is read,
// stripped of its trailing newline by the scanner, checked against ExitToken
// and otherwise handed to the engine verbatim. It returns an error only when
// reading input itself fails.
func (c *Console) Run(ctx context.Context) error {
	c.printHelp()
	c.round = 1
	c.printRoundBanner()

	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			break
		}
		line := c.in.Text()
		if line == ExitToken {
			break
		}

		res := c.engine.SubmitGuess(line)
		switch res.Outcome {
		case game.OutcomeInvalid:
			fmt.Fprintf(c.out, "not a valid word: guesses use %d distinct lowercase letters\n", words.Length)
		case game.OutcomeFeedback:
			c.printMarks(res.Marks)
			fmt.Fprintf(c.out, "%d guesses left\n", res.Remaining)
		case game.OutcomeWon:
			fmt.Fprintf(c.out, "you got it! %q in %d guesses\n", res.Answer, res.Guesses)
			c.record(ctx, res)
			c.round++
			c.printRoundBanner()
		case game.OutcomeLost:
			c.printMarks(res.Marks)
			fmt.Fprintf(c.out, "out of guesses! the word was %q\n", res.Answer)
			c.record(ctx, res)
			c.round++
			c.printRoundBanner()
		}
	}
	if err := c.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	c.printSummary(ctx)
	return nil
}

func (c *Console) printHelp() {
	fmt.Fprintf(c.out, "guess the %d-letter word. words use %d distinct lowercase letters.\n", words.Length, words.Length)
	fmt.Fprintf(c.out, "you get %d guesses per round. enter %s to quit.\n", game.MaxGuesses, ExitToken)
	fmt.Fprintln(c.out, "feedback: '=' right spot, '+' elsewhere in the word, '-' not in the word")
}

func (c *Console) printRoundBanner() {
	fmt.Fprintf(c.out, "\nround %d\n", c.round)
}

// printMarks indents the feedback so it lines up under the guess the player
// typed after the prompt on the line above.
func (c *Console) printMarks(marks []game.Mark) {
	fmt.Fprintf(c.out, "%s%s\n", strings.Repeat(" ", len(prompt)), renderMarks(marks))
}

func renderMarks(marks []game.Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case game.MarkExact:
			b.WriteByte('=')
		case game.MarkNear:
			b.WriteByte('+')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func (c *Console) record(ctx context.Context, res game.Result) {
	r := session.Round{
		Word:    res.Answer,
		Guesses: res.Guesses,
		Won:     res.Outcome == game.OutcomeWon,
	}
	if err := c.stats.RecordRound(ctx, r); err != nil {
		log.Warn().Err(err).Msg("failed to record round")
	}
}

// printSummary reports session totals. Nothing is printed when no round
// finished; a summary of zeros would just be noise on quit.
func (c *Console) printSummary(ctx context.Context) {
	sum, err := c.stats.Summary(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read session summary")
		return
	}
	if sum.Played == 0 {
		return
	}
	fmt.Fprintf(c.out, "\nplayed %d, won %d, streak %d\n", sum.Played, sum.Wins, sum.Streak)
	if sum.Wins > 0 {
		fmt.Fprintf(c.out, "average guesses per win: %.1f\n", sum.AvgWinGuesses)
	}
}
