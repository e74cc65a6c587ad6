package markov

import (
	"fmt"
	"iter"
	"log/slog"
)

// generateOptions Is used by the generate and walk functions to configure default options.
type generateOptions struct {
	maxLength int
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in Generate, GenerateFromToken, Walk and WalkFromToken.
type GenerateOption func(*generateOptions)

// WithMaxLength caps the number of tokens a single walk produces, counting the
// seed token if there is one. The walk then stops even if the end token has not
// been drawn. A value of 0 or less means no cap, which is the default; without
// a cap, a walk ends only when the end token is sampled.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

func newGenerateOptions(opts []GenerateOption) *generateOptions {
	options := &generateOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Walk returns an iterator over the tokens of one random walk from the start
// token. The end token is not yielded. If the chain has never been fed the
// iterator yields nothing.
//
// Termination is probabilistic. When every fed sequence reaches the end token,
// which Feed guarantees, every token has a path to it with nonzero
// probability, so the walk ends with probability 1 but has no fixed upper
// bound. Use WithMaxLength to impose one.
func (c *Chain[T]) Walk(opts ...GenerateOption) iter.Seq2[T, error] {
	options := newGenerateOptions(opts)
	return func(yield func(T, error) bool) {
		if c.tables[c.start].total == 0 {
			c.logger.Debug("Walk skipped, chain has no training data")
			return
		}
		c.walkFrom(c.start, 0, options, yield)
	}
}

// WalkFromToken returns an iterator over one random walk that begins at seed.
// The seed itself is yielded first. If seed was never fed, the iterator yields
// a single error wrapping ErrTokenNotFound. Seeding with the end token yields
// nothing.
func (c *Chain[T]) WalkFromToken(seed T, opts ...GenerateOption) iter.Seq2[T, error] {
	options := newGenerateOptions(opts)
	return func(yield func(T, error) bool) {
		id, ok := c.vocab.lookup(seed)
		if !ok {
			var zero T
			yield(zero, fmt.Errorf("seed token '%v': %w", seed, ErrTokenNotFound))
			return
		}
		if id == c.end {
			return
		}
		if !yield(seed, nil) {
			return
		}
		c.walkFrom(id, 1, options, yield)
	}
}

// walkFrom contains the main sampling loop shared by all walks. generated is
// the number of tokens already yielded by the caller.
func (c *Chain[T]) walkFrom(current tokenID, generated int, options *generateOptions, yield func(T, error) bool) {
	for {
		if options.maxLength > 0 && generated >= options.maxLength {
			c.logger.Debug("Walk terminated by reaching maxLength",
				slog.Int("max_length", options.maxLength),
				slog.Int("generated_length", generated),
			)
			return
		}

		next, err := c.tables[current].sample(c.rng)
		if err != nil {
			var zero T
			yield(zero, fmt.Errorf("could not sample successor of '%v': %w", c.vocab.value(current), err))
			return
		}
		if next == c.end {
			c.logger.Debug("Walk terminated by end token",
				slog.Int("generated_length", generated),
			)
			return
		}
		if !yield(c.vocab.value(next), nil) {
			return
		}
		generated++
		current = next
	}
}
