package delivery

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdelivery/city"
)

// Sentinel errors for allocation runs.
var (
	// ErrInfeasible indicates that the blocks cannot be distributed.
	ErrInfeasible = errors.New("delivery: impossible to appoint blocks")

	// ErrRoundLimit indicates the run hit the WithMaxRounds cap.
	ErrRoundLimit = errors.New("delivery: round limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("delivery: invalid option supplied")

	// ErrCityNil is returned when a nil city is passed.
	ErrCityNil = errors.New("delivery: city is nil")
)

// InfeasibleError reports the round in which CrossConflict found no swap and
// which pizzerias were still free at that point.
type InfeasibleError struct {
	Round int
	Free  []int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%v: round %d, free pizzerias %v", ErrInfeasible, e.Round, e.Free)
}

// Unwrap lets errors.Is match ErrInfeasible.
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// Phase is one state of the allocation state machine.
type Phase uint8

const (
	// PhaseFreeBlock claims provably uncontested blocks.
	PhaseFreeBlock Phase = iota
	// PhaseCrossConflict resolves mutual single-block reservations.
	PhaseCrossConflict
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFreeBlock:
		return "free-block"
	case PhaseCrossConflict:
		return "cross-conflict"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Next returns the phase that always follows p.
func (p Phase) Next() Phase {
	if p == PhaseFreeBlock {
		return PhaseCrossConflict
	}
	return PhaseFreeBlock
}

// PhaseReport summarizes one phase execution.
type PhaseReport struct {
	Round   int // 1-based count of phase executions
	Passes  int // sweeps over the free pizzerias
	Claimed int // blocks claimed during the execution
	Free    int // free pizzerias left afterwards
}

// Stats summarizes a finished run.
type Stats struct {
	Rounds              int
	FreeBlockPasses     int
	CrossConflictPasses int
	Claimed             int // total blocks claimed by both phases
	Swapped             int // blocks claimed by CrossConflict
}

// Option configures a Manager.
type Option func(*Options)

// Options holds Manager settings and hooks.
type Options struct {
	// Logger receives debug-level tracing of phases.
	Logger *zap.Logger

	// OnPhase is called after each phase execution that did not fail.
	OnPhase func(p Phase, r PhaseReport)

	// OnClaim is called after every claim.
	OnClaim func(id int, d city.Direction, count int)

	// MaxRounds, if > 0, stops the run with ErrRoundLimit after that many
	// phase executions. Zero means unlimited.
	MaxRounds int

	err error
}

// DefaultOptions returns Options with a no-op logger, no-op hooks and no
// round limit.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		OnPhase: func(Phase, PhaseReport) {},
		OnClaim: func(int, city.Direction, int) {},
	}
}

// WithLogger sets the logger used for phase tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPhase registers a callback run after each phase execution.
func WithOnPhase(fn func(p Phase, r PhaseReport)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithOnClaim registers a callback run after each claim.
func WithOnClaim(fn func(id int, d city.Direction, count int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClaim = fn
		}
	}
}

// WithMaxRounds caps the number of phase executions.
//
//	n > 0: stop with ErrRoundLimit after n rounds
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}
