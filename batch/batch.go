// Package batch allocates a sequence of independent cities and decides how a
// failing city affects the rest.
//
// All cities are built and validated before any allocation starts. Cities
// are then allocated one after another in input order.
//
// Policies:
//
//   - AbortBatch (default): the first failure aborts the batch and no results
//     are returned, not even for cities that already finished.
//   - IsolateFailures: a failing city is recorded in its Result and the
//     remaining cities still run.
package batch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdelivery/city"
	"github.com/katalvlaran/lvdelivery/cityio"
	"github.com/katalvlaran/lvdelivery/delivery"
	"github.com/katalvlaran/lvdelivery/territory"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("batch: unknown failure policy")

// Policy selects how a failing city affects the batch.
type Policy int

const (
	// AbortBatch discards every result once any city fails.
	AbortBatch Policy = iota
	// IsolateFailures keeps per-city errors and continues.
	IsolateFailures
)

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case AbortBatch:
		return "abort"
	case IsolateFailures:
		return "isolate"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy maps "abort" or "isolate" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "abort", "":
		return AbortBatch, nil
	case "isolate":
		return IsolateFailures, nil
	}
	return AbortBatch, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Result is the outcome of one city.
type Result struct {
	Case  int
	City  *city.City
	Stats delivery.Stats
	Err   error
}

// Option configures Run.
type Option func(*options)

type options struct {
	policy  Policy
	verify  bool
	logger  *zap.Logger
	onCity  func(Result)
	perCity []delivery.Option
}

// WithPolicy selects the failure policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithVerify checks every finished city with territory.Verify. A failed check
// is treated like a failed allocation.
func WithVerify() Option {
	return func(o *options) { o.verify = true }
}

// WithLogger sets the logger for per-city progress and passes it on to
// each delivery.Manager.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnCity registers a callback run after each city, before the policy
// is applied.
func WithOnCity(fn func(Result)) Option {
	return func(o *options) {
		if fn != nil {
			o.onCity = fn
		}
	}
}

// WithDeliveryOptions forwards options to every delivery.Manager.
func WithDeliveryOptions(opts ...delivery.Option) Option {
	return func(o *options) { o.perCity = append(o.perCity, opts...) }
}

// Run builds every city in instances, then allocates them in order.
// Construction errors always abort before any allocation.
func Run(instances []cityio.Instance, opts ...Option) ([]Result, error) {
	o := options{logger: zap.NewNop(), onCity: func(Result) {}}
	for _, opt := range opts {
		opt(&o)
	}

	cities := make([]*city.City, len(instances))
	for i, in := range instances {
		c, err := in.City()
		if err != nil {
			return nil, fmt.Errorf("batch: case %d: %w", i+1, err)
		}
		cities[i] = c
	}

	perCity := append([]delivery.Option{delivery.WithLogger(o.logger)}, o.perCity...)
	results := make([]Result, 0, len(cities))
	for i, c := range cities {
		log := o.logger.With(zap.Int("case", i+1))
		res := Result{Case: i + 1, City: c}

		res.Stats, res.Err = delivery.Distribute(c, perCity...)
		if res.Err == nil && o.verify {
			res.Err = territory.Verify(c, territory.ModeComplete)
		}
		o.onCity(res)

		if res.Err != nil {
			log.Info("city failed", zap.Error(res.Err), zap.Stringer("policy", o.policy))
			if o.policy == AbortBatch {
				return nil, fmt.Errorf("batch: case %d: %w", res.Case, res.Err)
			}
		} else {
			log.Debug("city allocated",
				zap.Int("pizzerias", c.Len()),
				zap.Int("rounds", res.Stats.Rounds),
				zap.Int("claimed", res.Stats.Claimed),
				zap.Int("swapped", res.Stats.Swapped))
		}
		results = append(results, res)
	}
	return results, nil
}

// Cases converts results into writer input. Failed cities carry only their
// error.
func Cases(results []Result) []cityio.Case {
	out := make([]cityio.Case, 0, len(results))
	for _, r := range results {
		cs := cityio.Case{Number: r.Case, Err: r.Err}
		if r.Err == nil {
			for _, p := range r.City.Pizzerias() {
				cs.Counts = append(cs.Counts, p.Counts())
			}
		}
		out = append(out, cs)
	}
	return out
}
