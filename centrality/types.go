// SPDX-License-Identifier: MIT
// Package centrality defines the options, errors and result types for the
// node centrality measures: degree, eigenvector and betweenness.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if a nil *core.Graph is passed.
//	– ErrOptionViolation if an option carried an invalid value (negative
//	  iterations or tolerance).
//	– ErrNegativeCost    if betweenness meets a negative traversal cost.
package centrality

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Sentinel errors for centrality computations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrNegativeCost indicates a negative traversal cost on a shortest path.
	ErrNegativeCost = errors.New("centrality: negative traversal cost encountered")
)

// Eigenvector defaults.
const (
	DefaultIterations = 100
	DefaultTolerance  = 1e-4
)

// Options configures Eigenvector and Betweenness.
//
// Normalized – divide scores by the maximum so they fall in [0,1].
// Directed   – follow edges Node1→Node2 only.
// Reversed   – (eigenvector) swap endpoints, scoring incoming traffic.
// Rating     – (eigenvector) per-node multiplier, 1 when absent.
// Iterations – (eigenvector) power-iteration budget; must be ≥ 0.
// Tolerance  – (eigenvector) per-node convergence tolerance; must be ≥ 0.
// Rand       – (eigenvector) source for the random start vector.
// Logger     – receives the non-convergence warning.
type Options struct {
	Normalized bool
	Directed   bool
	Reversed   bool
	Rating     map[string]float64
	Iterations int
	Tolerance  float64
	Rand       *rand.Rand
	Logger     *log.Logger

	// internal error recorded during option parsing
	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultEigenvectorOptions returns normalized, directed, reversed Options
// with 100 iterations and tolerance 1e-4.
func DefaultEigenvectorOptions() Options {
	return Options{
		Normalized: true,
		Directed:   true,
		Reversed:   true,
		Iterations: DefaultIterations,
		Tolerance:  DefaultTolerance,
	}
}

// DefaultBetweennessOptions returns normalized, undirected Options.
func DefaultBetweennessOptions() Options {
	return Options{
		Normalized: true,
		Directed:   false,
	}
}

// WithNormalized sets whether scores are divided by their maximum.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithDirected sets whether edges are one-way.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithReversed sets whether edge endpoints are swapped (eigenvector).
func WithReversed(reversed bool) Option {
	return func(o *Options) { o.Reversed = reversed }
}

// WithRating sets per-node multipliers (eigenvector).
func WithRating(rating map[string]float64) Option {
	return func(o *Options) { o.Rating = rating }
}

// WithIterations sets the power-iteration budget. Negative values are
// recorded as ErrOptionViolation.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithTolerance sets the convergence tolerance. Negative or NaN values are
// recorded as ErrOptionViolation.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: tolerance must be non-negative (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithRand supplies the random source for the start vector.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger for warnings; log.Default() when nil.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// Result is the outcome of Eigenvector.
//
// Scores     – node id → score; all zero when the iteration did not converge.
// Iterations – iterations actually run.
// Converged  – whether the tolerance was met within the budget.
type Result struct {
	Scores     map[string]float64
	Iterations int
	Converged  bool
}

func (o *Options) rng() *rand.Rand {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o.Rand
}

func (o *Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}
