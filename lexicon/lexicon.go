package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"

	"github.com/katalvlaran/palindromer/trie"
)

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 1024 * 1024

// ErrInvalidWord is returned by FromWords for a word outside A–Z after upper-casing.
var ErrInvalidWord = errors.New("lexicon: word must contain only letters A-Z")

// Options configures dictionary loading.
type Options struct {
	// Latin1 decodes input as ISO-8859-1.
	Latin1 bool
	// Logger receives the load summary.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns UTF-8 input and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLatin1 decodes the dictionary as ISO-8859-1.
func WithLatin1() Option {
	return func(o *Options) { o.Latin1 = true }
}

// WithLogger installs a logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("lexicon: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// Lexicon is a loaded dictionary.
type Lexicon struct {
	// Forward holds every word as written.
	Forward *trie.Node
	// Backward holds every word with its letters reversed.
	Backward *trie.Node
	// Words counts accepted lines, duplicates included.
	Words int
	// Skipped counts blank or invalid lines.
	Skipped int
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{Forward: trie.New(), Backward: trie.New()}
}

// Load reads one word per line from r.
//
// Complexity: O(total input bytes).
func Load(r io.Reader, opts ...Option) (*Lexicon, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Decode
	if o.Latin1 {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// 2. Normalize and insert
	lex := New()
	upper := cases.Upper(language.Und)
	for scanner.Scan() {
		if !lex.add(upper.String(strings.TrimSpace(scanner.Text()))) {
			lex.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read after %d words: %w", lex.Words, err)
	}

	o.Logger.Info("dictionary loaded",
		zap.Int("words", lex.Words),
		zap.Int("skipped", lex.Skipped),
		zap.Bool("latin1", o.Latin1))

	return lex, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open dictionary: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// FromWords builds a Lexicon from an in-memory list. Words are upper-cased;
// any other invalid word fails the whole call.
func FromWords(words []string) (*Lexicon, error) {
	lex := New()
	upper := cases.Upper(language.Und)
	for _, w := range words {
		if !lex.add(upper.String(w)) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
	}

	return lex, nil
}

// Contains reports whether word (case-insensitive) is in the dictionary.
func (l *Lexicon) Contains(word string) bool {
	return l.Forward.Contains(strings.ToUpper(word))
}

// add inserts an already normalized word into both tries.
func (l *Lexicon) add(word string) bool {
	if word == "" || !trie.Valid(word) {
		return false
	}
	// Valid guarantees both inserts succeed.
	_ = l.Forward.Insert(word)
	_ = l.Backward.Insert(reverse(word))
	l.Words++

	return true
}

// reverse returns word with its bytes reversed; word is ASCII.
func reverse(word string) string {
	b := []byte(word)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
