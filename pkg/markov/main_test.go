package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
)

// newTestChain creates an integer chain with start 0 and end 100, fed with
// [3 5 10] and [5 12]. It is seeded so failures are reproducible.
func newTestChain(t *testing.T, opts ...Option) *Chain[int] {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	c := New(0, 100, opts...)
	c.Feed([]int{3, 5, 10}).Feed([]int{5, 12})
	return c
}

// newTestTextChain creates a seeded TextChain trained on two short sentences.
func newTestTextChain(t *testing.T) *TextChain {
	t.Helper()
	tc := NewTextChain(nil, WithSeed(7))
	if err := tc.FeedReader(strings.NewReader("one fish two fish\nred fish blue fish\n")); err != nil {
		t.Fatalf("setup: FeedReader() failed: %v", err)
	}
	return tc
}

// containsSequence reports whether got equals one of want.
func containsSequence[T comparable](want [][]T, got []T) bool {
	return slices.ContainsFunc(want, func(w []T) bool {
		return slices.Equal(w, got)
	})
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking\nit is not very long but will prevent a crash\n"
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
