package delivery

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdelivery/city"
)

// Manager is the allocation context. It holds the only write access to its
// city for the duration of Run; phases mutate the city exclusively through it.
type Manager struct {
	city  *city.City
	opts  Options
	log   *zap.Logger
	phase Phase
	stats Stats
}

// NewManager binds a Manager to c, starting in PhaseFreeBlock.
func NewManager(c *city.City, opts ...Option) *Manager {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		city:  c,
		opts:  o,
		log:   o.Logger,
		phase: PhaseFreeBlock,
	}
}

// Distribute runs a fresh Manager over c to completion.
// On error the city is left in its partially allocated state and must be
// discarded.
func Distribute(c *city.City, opts ...Option) (Stats, error) {
	return NewManager(c, opts...).Run()
}

// Phase returns the phase the next round will execute.
func (m *Manager) Phase() Phase { return m.phase }

// Stats returns the counters accumulated so far.
func (m *Manager) Stats() Stats { return m.stats }

// Run alternates phases until no pizzerias are free (success) or a phase
// reports infeasibility. Each round executes the current phase, switches to
// the next one unconditionally, then checks for completion.
//
// Returns ErrCityNil, ErrOptionViolation, ErrRoundLimit or *InfeasibleError.
func (m *Manager) Run() (Stats, error) {
	if m.city == nil {
		return m.stats, ErrCityNil
	}
	if m.opts.err != nil {
		return m.stats, m.opts.err
	}

	for {
		if m.opts.MaxRounds > 0 && m.stats.Rounds >= m.opts.MaxRounds {
			return m.stats, fmt.Errorf("%w: %d rounds, %d pizzerias free",
				ErrRoundLimit, m.stats.Rounds, len(m.city.FreeIDs()))
		}

		current := m.phase
		m.stats.Rounds++
		report, err := m.execute(current)
		if err != nil {
			m.log.Debug("allocation failed",
				zap.Stringer("phase", current),
				zap.Int("round", m.stats.Rounds),
				zap.Error(err))
			return m.stats, err
		}

		m.stats.Claimed += report.Claimed
		m.log.Debug("phase executed",
			zap.Stringer("phase", current),
			zap.Int("round", report.Round),
			zap.Int("passes", report.Passes),
			zap.Int("claimed", report.Claimed),
			zap.Int("free", report.Free))
		m.opts.OnPhase(current, report)

		m.phase = current.Next()
		if !m.city.HasFree() {
			return m.stats, nil
		}
	}
}

// execute dispatches one round to the phase implementation.
func (m *Manager) execute(p Phase) (PhaseReport, error) {
	r := PhaseReport{Round: m.stats.Rounds}
	var err error

	switch p {
	case PhaseFreeBlock:
		r.Passes, r.Claimed = m.appointFreeBlocks()
		m.stats.FreeBlockPasses += r.Passes
	case PhaseCrossConflict:
		r.Passes = 1
		r.Claimed = m.swapCrossConflicts()
		m.stats.CrossConflictPasses++
		m.stats.Swapped += r.Claimed
		if r.Claimed == 0 {
			err = &InfeasibleError{Round: r.Round, Free: m.city.FreeIDs()}
		}
	default:
		err = fmt.Errorf("delivery: unknown %v", p)
	}

	r.Free = len(m.city.FreeIDs())
	return r, err
}

// claim records count blocks for id in d and notifies the hook.
func (m *Manager) claim(id int, d city.Direction, count int) {
	m.city.Claim(id, d, count)
	m.opts.OnClaim(id, d, count)
}
