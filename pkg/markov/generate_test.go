package markov

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	c := newTestChain(t)
	expected := [][]int{{3, 5, 10}, {3, 5, 12}, {5, 10}, {5, 12}}

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		out, err := c.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if !containsSequence(expected, out) {
			t.Fatalf("Generate() got = %v, want one of %v", out, expected)
		}
		seen[fmt.Sprint(out)] = true
	}
	if len(seen) != len(expected) {
		t.Errorf("expected all %d sequences to appear in 500 trials, saw %d", len(expected), len(seen))
	}
}

func TestGenerateFromToken(t *testing.T) {
	c := newTestChain(t)

	testCases := []struct {
		name     string
		seed     int
		expected [][]int
	}{
		{name: "Branching token", seed: 5, expected: [][]int{{5, 10}, {5, 12}}},
		{name: "Single successor", seed: 3, expected: [][]int{{3, 5, 10}, {3, 5, 12}}},
		{name: "Last token", seed: 12, expected: [][]int{{12}}},
		{name: "Start token is included", seed: 0, expected: [][]int{{0, 3, 5, 10}, {0, 3, 5, 12}, {0, 5, 10}, {0, 5, 12}}},
		{name: "End token yields nothing", seed: 100, expected: [][]int{{}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				out, err := c.GenerateFromToken(tc.seed)
				if err != nil {
					t.Fatalf("GenerateFromToken(%d) failed: %v", tc.seed, err)
				}
				if !containsSequence(tc.expected, out) {
					t.Fatalf("GenerateFromToken(%d) got = %v, want one of %v", tc.seed, out, tc.expected)
				}
			}
		})
	}
}

func TestGenerateFromTokenNotFound(t *testing.T) {
	c := newTestChain(t)

	out, err := c.GenerateFromToken(42)
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if out != nil {
		t.Errorf("expected nil output on error, got %v", out)
	}
	if !strings.Contains(err.Error(), "42") {
		t.Errorf("expected error to name the missing token, got %q", err.Error())
	}
}

func TestGenerateEmptyChain(t *testing.T) {
	c := New(0, 100)

	out, err := c.Generate()
	if err != nil {
		t.Fatalf("Generate on a new chain failed: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected an empty, non-nil sequence, got %#v", out)
	}

	// The start token has no transitions until something is fed, which is the
	// one way to reach an empty distribution through the public API.
	_, err = c.GenerateFromToken(0)
	if !errors.Is(err, ErrEmptyDistribution) {
		t.Errorf("expected ErrEmptyDistribution, got %v", err)
	}
}

func TestGenerateSinglePath(t *testing.T) {
	sequence := []int{1, 2, 3, 4}
	for seed := uint64(1); seed <= 5; seed++ {
		c := New(0, 100, WithSeed(seed))
		c.Feed(sequence)
		for i := 0; i < 10; i++ {
			out, err := c.Generate()
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if !slices.Equal(out, sequence) {
				t.Fatalf("seed %d: expected %v, got %v", seed, sequence, out)
			}
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	a := newTestChain(t, WithSeed(99))
	b := newTestChain(t, WithRand(rand.New(rand.NewPCG(99, 99))))

	for i := 0; i < 50; i++ {
		outA, errA := a.Generate()
		outB, errB := b.Generate()
		if errA != nil || errB != nil {
			t.Fatalf("Generate failed: %v, %v", errA, errB)
		}
		if !slices.Equal(outA, outB) {
			t.Fatalf("run %d: equally seeded chains diverged: %v vs %v", i, outA, outB)
		}
	}
}

func TestGenerateDistribution(t *testing.T) {
	c := New(0, 100, WithSeed(2024))
	for i := 0; i < 3; i++ {
		c.Feed([]int{1, 2})
	}
	c.Feed([]int{1, 3})

	const trials = 20000
	var twos int
	for i := 0; i < trials; i++ {
		out, err := c.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(out) != 2 || out[0] != 1 {
			t.Fatalf("unexpected sequence %v", out)
		}
		if out[1] == 2 {
			twos++
		}
	}

	ratio := float64(twos) / trials
	if ratio < 0.72 || ratio > 0.78 {
		t.Errorf("expected branch 1->2 about 75%% of the time, got %.3f", ratio)
	}
}

func TestGenerateWithMaxLength(t *testing.T) {
	c := New(0, 100, WithSeed(3))
	// 1 and 2 loop back onto each other far more often than they end.
	for i := 0; i < 5; i++ {
		c.Feed([]int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2})
	}

	testCases := []struct {
		name      string
		maxLength int
		fromToken bool
	}{
		{name: "Cap of one", maxLength: 1},
		{name: "Cap of three", maxLength: 3},
		{name: "Seed counts toward cap", maxLength: 2, fromToken: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				var out []int
				var err error
				if tc.fromToken {
					out, err = c.GenerateFromToken(1, WithMaxLength(tc.maxLength))
				} else {
					out, err = c.Generate(WithMaxLength(tc.maxLength))
				}
				if err != nil {
					t.Fatalf("Generate failed: %v", err)
				}
				if len(out) == 0 || len(out) > tc.maxLength {
					t.Fatalf("expected 1..%d tokens, got %v", tc.maxLength, out)
				}
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	tc := NewTextChain(nil, WithSeed(1))
	if err := tc.FeedReader(strings.NewReader(createBenchmarkCorpus())); err != nil {
		b.Fatalf("FeedReader() setup for benchmark failed: %v", err)
	}

	genOpts := map[string][]GenerateOption{
		"Unbounded": nil,
		"MaxLength": {WithMaxLength(20)},
	}

	for name, opts := range genOpts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := tc.GenerateString(opts...)
				b.SetBytes(int64(len(s)))
				if err != nil {
					b.Fatalf("GenerateString() failed: %v", err)
				}
			}
		})
	}
}
