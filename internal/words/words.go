// internal/words/words.go
//
// Dictionary collaborators for word-battle.
//
// Responsibilities:
//   - Load a word list from a file (WORDS_FILE) or fall back to the embedded list.
//   - Answer case-insensitive membership queries.
//   - Report how many words are loaded for /debug/words.
//
// Word lists:
//   - One word per line; blank lines and lines starting with '#' are skipped.
//   - Words must be alphabetic (a–z) and at least two letters long.
//   - Lists are normalized to lowercase.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed words.txt
var embeddedWords string

// Dictionary answers membership queries. Contains is case-insensitive.
type Dictionary interface {
	Contains(word string) bool
	Len() int
}

// ErrEmpty is returned when a list yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// List is an in-memory Dictionary. The zero value is an empty list.
type List struct {
	set map[string]struct{}
}

var (
	embeddedOnce sync.Once
	embedded     List
)

// Embedded returns the compiled-in list. It is parsed once and shared.
func Embedded() List {
	embeddedOnce.Do(func() {
		embedded = FromWords(normalizeLines(embeddedWords))
	})
	return embedded
}

// FromWords builds a List from already-split words.
func FromWords(ws []string) List {
	l := List{set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		if w = normalize(w); w != "" {
			l.set[w] = struct{}{}
		}
	}
	return l
}

// Read loads one word per line from r.
func Read(r io.Reader) (List, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := normalize(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return List{}, err
	}
	if len(out) == 0 {
		return List{}, ErrEmpty
	}
	return FromWords(out), nil
}

// ReadFile is Read over the file at path.
func ReadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, err
	}
	defer f.Close()
	l, err := Read(f)
	if err != nil {
		return List{}, fmt.Errorf("read %s: %w", path, err)
	}
	return l, nil
}

func (l List) Contains(word string) bool {
	_, ok := l.set[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

func (l List) Len() int { return len(l.set) }

// Words returns the list contents in no particular order.
func (l List) Words() []string {
	out := make([]string, 0, len(l.set))
	for w := range l.set {
		out = append(out, w)
	}
	return out
}

// normalizeLines splits an embedded multiline string into valid words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := normalize(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// normalize lowercases and trims a line, returning "" for comments and
// anything that is not a plain word.
func normalize(line string) string {
	w := strings.TrimSpace(strings.ToLower(line))
	if len(w) < 2 || strings.HasPrefix(w, "#") || !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
