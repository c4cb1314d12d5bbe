// Package puzzle registers daily solvers and runs them over parsed input.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Answer holds the two reported values of a day. Values are printed with fmt.
type Answer struct {
	Part1 any
	Part2 any
}

type Solver interface {
	Solve(ctx context.Context, lines []string) (Answer, error)
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(ctx context.Context, lines []string) (Answer, error)

func (f SolverFunc) Solve(ctx context.Context, lines []string) (Answer, error) {
	return f(ctx, lines)
}

var (
	ErrBadDay       = errors.New("day must be between 1 and 25")
	ErrDuplicateDay = errors.New("day already registered")
	ErrUnknownDay   = errors.New("no solver registered for day")
)

// Registry maps days to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

func (r *Registry) Register(day int, s Solver) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: %d", ErrBadDay, day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.solvers[day] = s
	return nil
}

func (r *Registry) Lookup(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// InputName is the default input file name of a day, e.g. d01.txt.
func InputName(day int) string {
	return fmt.Sprintf("d%02d.txt", day)
}
