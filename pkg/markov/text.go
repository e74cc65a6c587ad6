package markov

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/CTAG07/markov/pkg/corpus"
)

const (
	// StartOfText is the start token of a TextChain, the Unicode STX control character.
	StartOfText = "\u0002"
	// EndOfText is the end token of a TextChain, the Unicode ETX control character.
	EndOfText = "\u0003"
)

// Tokenizer is an interface that defines the contract for turning a line of
// text into tokens and generated tokens back into text.
type Tokenizer interface {
	// Split returns the tokens of a single sentence.
	Split(line string) []string
	// Join builds the output sentence from generated tokens.
	Join(tokens []string) string
}

// DefaultTokenizer is a default implementation of the Tokenizer interface.
// It splits on runs of whitespace and joins with a single space followed by a
// period. Its behavior can be customized with functional options.
type DefaultTokenizer struct {
	separator  string
	terminator string
	splitRegex *regexp.Regexp
}

// TokenizerOption Is a function that configures a DefaultTokenizer.
type TokenizerOption func(*DefaultTokenizer)

// WithSeparator sets the string used for joining tokens during generation.
// Default: " "
func WithSeparator(sep string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.separator = sep
	}
}

// WithTerminator sets the string appended to every generated sentence.
// Default: "."
func WithTerminator(term string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.terminator = term
	}
}

// WithSplitRegex sets a regex that matches tokens in input text, replacing the
// default whitespace splitting. For example `[\w']+` keeps only words.
func WithSplitRegex(splitRegex string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.splitRegex = regexp.MustCompile(splitRegex)
	}
}

// NewDefaultTokenizer creates a new tokenizer with default settings, which can be
// overridden by providing one or more TokenizerOption functions.
func NewDefaultTokenizer(opts ...TokenizerOption) *DefaultTokenizer {
	t := &DefaultTokenizer{
		separator:  " ",
		terminator: ".",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Split returns the tokens of line. Blank lines produce no tokens.
func (t *DefaultTokenizer) Split(line string) []string {
	if t.splitRegex != nil {
		return t.splitRegex.FindAllString(line, -1)
	}
	return strings.Fields(line)
}

// Join concatenates tokens with the separator and appends the terminator. No
// tokens produce an empty string.
func (t *DefaultTokenizer) Join(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return strings.Join(tokens, t.separator) + t.terminator
}

// TextChain is a Chain of words. Its start and end tokens are StartOfText and
// EndOfText, so fed text must not contain those control characters as tokens.
type TextChain struct {
	*Chain[string]
	tokenizer Tokenizer
}

// NewTextChain creates an empty TextChain. A nil tokenizer selects
// NewDefaultTokenizer().
func NewTextChain(tokenizer Tokenizer, opts ...Option) *TextChain {
	if tokenizer == nil {
		tokenizer = NewDefaultTokenizer()
	}
	return &TextChain{
		Chain:     New(StartOfText, EndOfText, opts...),
		tokenizer: tokenizer,
	}
}

// FeedString feeds one sentence. Ending punctuation should be stripped by the
// caller, otherwise it stays attached to the last word.
func (tc *TextChain) FeedString(line string) *TextChain {
	tc.Feed(tc.tokenizer.Split(line))
	return tc
}

// FeedLines feeds every sentence produced by src until it is exhausted. Read
// errors stop feeding and are returned; sentences already fed stay in the chain.
func (tc *TextChain) FeedLines(src corpus.Source) error {
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("corpus read error: %w", err)
		}
		tc.FeedString(line)
	}
}

// FeedReader feeds r, treating each line as one sentence.
func (tc *TextChain) FeedReader(r io.Reader) error {
	return tc.FeedLines(corpus.NewScanner(r))
}

// FeedFile feeds the file at path, which should hold one sentence per line
// with periods, exclamation points and question marks removed from the end of
// each line.
func (tc *TextChain) FeedFile(path string) error {
	f, err := corpus.OpenFile(path)
	if err != nil {
		return err
	}
	defer func(f *corpus.File) {
		_ = f.Close()
	}(f)
	return tc.FeedLines(f)
}

// GenerateString generates a random sentence.
func (tc *TextChain) GenerateString(opts ...GenerateOption) (string, error) {
	tokens, err := tc.Generate(opts...)
	if err != nil {
		return "", err
	}
	return tc.tokenizer.Join(tokens), nil
}

// GenerateStringFromToken generates a random sentence starting with word.
func (tc *TextChain) GenerateStringFromToken(word string, opts ...GenerateOption) (string, error) {
	tokens, err := tc.GenerateFromToken(word, opts...)
	if err != nil {
		return "", err
	}
	return tc.tokenizer.Join(tokens), nil
}
