package markov

import "fmt"

// ChainToken represents a potential next token in the chain, together with the
// number of times it was observed after a given token.
type ChainToken[T comparable] struct {
	Token T
	Freq  int
}

// NextTokens returns every observed successor of value in the order they were
// first seen, along with the sum of their frequencies. The end token appears
// as a successor like any other. It returns an error wrapping ErrTokenNotFound
// if value was never fed.
func (c *Chain[T]) NextTokens(value T) ([]ChainToken[T], int, error) {
	id, ok := c.vocab.lookup(value)
	if !ok {
		return nil, 0, fmt.Errorf("token '%v': %w", value, ErrTokenNotFound)
	}
	table := c.tables[id]
	tokens := make([]ChainToken[T], 0, len(table.edges))
	for _, e := range table.edges {
		tokens = append(tokens, ChainToken[T]{Token: c.vocab.value(e.next), Freq: e.freq})
	}
	return tokens, table.total, nil
}

// Contains reports whether value is a known token, including the start and end
// tokens.
func (c *Chain[T]) Contains(value T) bool {
	_, ok := c.vocab.lookup(value)
	return ok
}

// Len returns the number of distinct tokens in the chain, including the start
// and end tokens.
func (c *Chain[T]) Len() int {
	return c.vocab.len()
}

// Start returns the start token.
func (c *Chain[T]) Start() T {
	return c.vocab.value(c.start)
}

// End returns the end token.
func (c *Chain[T]) End() T {
	return c.vocab.value(c.end)
}
