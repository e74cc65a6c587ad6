package markov

// Stats holds aggregated statistics for a chain.
type Stats struct {
	Tokens         int // The number of distinct tokens, including start and end.
	Transitions    int // The number of distinct token->next_token links.
	TotalFrequency int // The sum of frequencies of all links; the total number of trained transitions.
	StartingTokens int // The number of distinct tokens that can start a sequence.
	Sequences      int // The number of non-empty sequences fed.
}

// Stats returns a snapshot of statistics for the chain.
func (c *Chain[T]) Stats() Stats {
	stats := Stats{
		Tokens:         c.vocab.len(),
		StartingTokens: len(c.tables[c.start].edges),
		Sequences:      c.sequences,
	}
	for _, table := range c.tables {
		stats.Transitions += len(table.edges)
		stats.TotalFrequency += table.total
	}
	return stats
}
