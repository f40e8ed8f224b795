// Word legality rules and word list management for the game engine.
//
// Responsibilities:
//   - Decide whether a candidate string is a playable word (IsLegal).
//   - Build the legal word list from a line-oriented source, keeping only
//     candidates that pass the legality checks (Load/LoadFile).
//   - Supply an embedded default list so the game runs with no configuration.
//
// A playable word is exactly Length lowercase ASCII letters with no letter
// used twice. Lists are immutable once built and are handed to the engine
// explicitly; this package keeps no global state.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// Length is the number of letters in every playable word.
const Length = 5

//go:embed default_words.txt
var defaultWords string

// IsLegal reports whether candidate is a playable word: exactly Length
// lowercase ASCII letters ('a'..'z'), each letter appearing at most once.
// Any other input, including empty strings and non-ASCII text, yields false.
func IsLegal(candidate string) bool {
	return len(candidate) == Length && isAlpha(candidate) && noRepeats(candidate)
}

// isAlpha reports whether s consists only of lowercase ASCII letters.
// The comparison is byte-wise, so multi-byte runes fail here.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// noRepeats reports whether no letter occurs more than once in s.
// Bytes outside 'a'..'z' are not counted, so the check is safe on
// arbitrary input.
func noRepeats(s string) bool {
	var counts [26]int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			continue
		}
		counts[c-'a']++
		if counts[c-'a'] > 1 {
			return false
		}
	}
	return true
}

// List is an ordered, immutable collection of legal words. The secret for
// each round is drawn from it.
type List struct {
	words []string
	set   map[string]struct{}
}

// Load reads one candidate per line from r and keeps exactly the lines that
// pass IsLegal, in input order. Illegal lines are discarded silently. Lines
// are taken as-is after newline stripping: no trimming or case folding, so
// "HELLO" or " hello" never make the list.
func Load(r io.Reader) (*List, error) {
	l := &List{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := sc.Text()
		if !IsLegal(w) {
			continue
		}
		l.words = append(l.words, w)
		l.set[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return l, nil
}

// LoadFile loads a word list from the file at path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded word list, used when no file is configured.
func Default() *List {
	l, err := Load(strings.NewReader(defaultWords))
	if err != nil {
		// strings.Reader cannot fail mid-scan.
		panic(err)
	}
	return l
}

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether w is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Pick returns a word chosen uniformly at random. The list must be
// non-empty.
func (l *List) Pick(rng *rand.Rand) string {
	return l.words[rng.Intn(len(l.words))]
}
