// Package random provides the deterministic random-number sources consumed by the simulator.
//
// A source hands out a fixed, ordered sequence of non-negative 32-bit integers, one per call.
// It is never rewound, so two runs only see the same values when each gets its own source.
package random

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrSourceExhausted = errors.New("random source exhausted")
	ErrInvalidValue    = errors.New("invalid random value")
)

// Source yields the next value of the sequence.
type Source interface {
	Next() (int, error)
}

// FileSource reads one integer per line.
type FileSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
	drawn   int
}

// OpenFile opens the file at path as a FileSource. The caller must Close it.
func OpenFile(path string) (*FileSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening random numbers file %s: %w", path, err)
	}
	source := NewFileSource(file)
	source.closer = file
	return source, nil
}

// NewFileSource reads values from r.
func NewFileSource(r io.Reader) *FileSource {
	return &FileSource{scanner: bufio.NewScanner(r)}
}

// Next returns the next value. Reaching the end of the input returns ErrSourceExhausted.
func (s *FileSource) Next() (int, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, fmt.Errorf("error reading random number %d: %w", s.drawn+1, err)
		}
		return 0, fmt.Errorf("%w after %d values", ErrSourceExhausted, s.drawn)
	}
	s.drawn++

	line := strings.TrimSpace(s.scanner.Text())
	value, err := strconv.ParseInt(line, 10, 32)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w on line %d: %q", ErrInvalidValue, s.drawn, line)
	}
	return int(value), nil
}

// Drawn reports how many values have been consumed.
func (s *FileSource) Drawn() int {
	return s.drawn
}

func (s *FileSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// SliceSource serves values from memory.
type SliceSource struct {
	values []int
	next   int
}

func NewSliceSource(values ...int) *SliceSource {
	return &SliceSource{values: values}
}

func (s *SliceSource) Next() (int, error) {
	if s.next >= len(s.values) {
		return 0, fmt.Errorf("%w after %d values", ErrSourceExhausted, s.next)
	}
	value := s.values[s.next]
	s.next++
	return value, nil
}

// Drawn reports how many values have been consumed.
func (s *SliceSource) Drawn() int {
	return s.next
}
