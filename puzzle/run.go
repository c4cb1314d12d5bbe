package puzzle

import (
	"context"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/on-the-ground/advent_ive_go/effects"
	"github.com/on-the-ground/advent_ive_go/effects/log"
)

// Report is the outcome of one solved day.
type Report struct {
	Day    int
	Answer Answer
	Span   effects.TimeSpan
}

func (r Report) Duration() time.Duration {
	return r.Span.Duration()
}

// Millis returns the solve duration in milliseconds, to the microsecond.
func (r Report) Millis() decimal.Decimal {
	d, err := decimal.New(r.Duration().Microseconds(), 3)
	if err != nil {
		// only reachable for durations beyond the decimal's 19 digits
		return decimal.Zero
	}
	return d
}

// Lines renders the report the way it is printed.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("Part 1: %v", r.Answer.Part1),
		fmt.Sprintf("Part 2: %v", r.Answer.Part2),
		fmt.Sprintf("Duration: %sms", r.Millis()),
	}
}

// Run solves one day over lines and times the solve.
// A log effect handler must be registered in ctx.
func Run(ctx context.Context, day int, s Solver, lines []string) (Report, error) {
	log.Effect(ctx, log.LogDebug, "solving", map[string]interface{}{
		"day":   day,
		"lines": len(lines),
	})

	start := time.Now()
	answer, err := s.Solve(ctx, lines)
	span := effects.Since(start)
	if err != nil {
		log.Effect(ctx, log.LogError, "solve failed", map[string]interface{}{
			"day":   day,
			"error": err.Error(),
		})
		return Report{}, fmt.Errorf("day %d: %w", day, err)
	}

	report := Report{Day: day, Answer: answer, Span: span}
	log.Effect(ctx, log.LogInfo, "solved", map[string]interface{}{
		"day":      day,
		"duration": report.Duration().String(),
	})
	return report, nil
}
