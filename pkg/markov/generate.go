package markov

import "iter"

// Generate produces one sequence by walking the chain from the start token
// until the end token is drawn. The end token is not included. A chain that
// has never been fed returns an empty sequence.
//
// Generate is O(mn), where m is the length of the result and n the number of
// successors of each visited token. See Walk for the termination guarantee.
func (c *Chain[T]) Generate(opts ...GenerateOption) ([]T, error) {
	return collect(c.Walk(opts...))
}

// GenerateFromToken produces one sequence that begins with seed and continues
// by walking the chain until the end token is drawn. It returns an error
// wrapping ErrTokenNotFound if seed was never fed.
func (c *Chain[T]) GenerateFromToken(seed T, opts ...GenerateOption) ([]T, error) {
	return collect(c.WalkFromToken(seed, opts...))
}

func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := make([]T, 0)
	for token, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, token)
	}
	return out, nil
}
