package markov

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
)

var (
	// ErrTokenNotFound is returned when a token is requested that was never
	// fed into the chain.
	ErrTokenNotFound = errors.New("token not found in chain")

	// ErrEmptyDistribution indicates that a successor was sampled from a token
	// with no recorded transitions. Tokens reached through Feed always have at
	// least one, so seeing this error means the chain is used outside its
	// contract.
	ErrEmptyDistribution = errors.New("no transitions to sample from")
)

// Chain is a first-order Markov chain over tokens of type T. Start and end
// tokens mark the boundaries of every fed sequence and are registered when the
// chain is created.
type Chain[T comparable] struct {
	start     tokenID
	end       tokenID
	vocab     *vocabulary[T]
	tables    []*transitions // indexed by tokenID
	sequences int
	rng       *rand.Rand
	logger    *slog.Logger
}

// chainOptions holds the settings applied by New.
type chainOptions struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Chain when it is created.
type Option func(*chainOptions)

// WithRand sets the random source used for generation. The chain takes
// ownership of r; it must not be shared with other goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *chainOptions) { o.rng = r }
}

// WithSeed seeds the chain's random source so generation is reproducible.
func WithSeed(seed uint64) Option {
	return func(o *chainOptions) { o.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithLogger sets the logger for the chain. By default, all logs are
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *chainOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an empty chain that uses start and end as its boundary tokens.
func New[T comparable](start, end T, opts ...Option) *Chain[T] {
	options := &chainOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.rng == nil {
		options.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if options.logger == nil {
		options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Chain[T]{
		vocab:  newVocabulary[T](),
		rng:    options.rng,
		logger: options.logger,
	}
	c.start = c.intern(start)
	c.end = c.intern(end)
	return c
}

// intern registers value with an empty transition table if it is new, and
// returns its tokenID.
func (c *Chain[T]) intern(value T) tokenID {
	id, created := c.vocab.intern(value)
	if created {
		c.tables = append(c.tables, newTransitions())
	}
	return id
}

// Feed trains the chain on one sequence of tokens. The sequence is treated as
// if it were preceded by the start token and followed by the end token, and
// each consecutive pair adds one to the count of that transition. An empty
// sequence is ignored. Feed returns the chain so calls can be chained.
//
// Feed is O(n) in the length of tokens.
func (c *Chain[T]) Feed(tokens []T) *Chain[T] {
	if len(tokens) == 0 {
		return c
	}

	prev := c.start
	for _, token := range tokens {
		id := c.intern(token)
		c.tables[prev].record(id)
		prev = id
	}
	c.tables[prev].record(c.end)
	c.sequences++

	c.logger.Debug("Sequence fed",
		slog.Int("sequence_length", len(tokens)),
		slog.Int("vocab_size", c.vocab.len()),
	)
	return c
}
