package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineLength bounds a single line read by a Scanner.
const maxLineLength = 1 << 20

// Source is a stateful reader of training sentences.
type Source interface {
	// Next returns the next sentence. It returns io.EOF as the error when the
	// source is fully consumed.
	Next() (string, error)
}

// Scanner is a Source that yields one sentence per line of an io.Reader.
type Scanner struct {
	scanner *bufio.Scanner
}

// NewScanner returns a Scanner reading lines from r.
func NewScanner(r io.Reader) *Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	return &Scanner{scanner: scanner}
}

// Next returns the next line without its line terminator. When the reader is
// exhausted it returns io.EOF; any other error comes from the underlying reader.
func (s *Scanner) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// File is a Scanner over an open file. It must be closed after use.
type File struct {
	*Scanner
	f *os.File
}

// OpenFile opens the file at path for line-by-line reading.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus file: %w", err)
	}
	return &File{Scanner: NewScanner(f), f: f}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// Collect drains src and returns every sentence it produced.
func Collect(src Source) ([]string, error) {
	var lines []string
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}
