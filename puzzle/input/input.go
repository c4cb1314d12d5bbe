// Package input reads puzzle input files and parses them line by line.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// ReadLines reads path and returns its lines; see Lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Lines(f)
}

// Lines returns the lines of r without line terminators. Trailing blank lines are dropped.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// LineError reports a line that could not be parsed. Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseEach applies parse to every line. All failures are reported together,
// one *LineError per bad line, and no values are returned if any line fails.
func ParseEach[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(lines))
	var errs error
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			errs = multierr.Append(errs, &LineError{Line: i + 1, Text: line, Err: err})
			continue
		}
		values = append(values, v)
	}
	if errs != nil {
		return nil, errs
	}
	return values, nil
}

// Ints parses one integer of type T per line.
func Ints[T constraints.Integer](lines []string) ([]T, error) {
	return ParseEach(lines, ParseInt[T])
}

// ParseInt parses s as a base-10 T, rejecting values outside T's range.
func ParseInt[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	bitSize := int(8 * unsafe.Sizeof(zero))
	if ^zero > 0 { // unsigned
		v, err := strconv.ParseUint(s, 10, bitSize)
		return T(v), err
	}
	v, err := strconv.ParseInt(s, 10, bitSize)
	return T(v), err
}

