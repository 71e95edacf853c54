// SPDX-License-Identifier: MIT
// Package layout defines the force-directed Spring layout, its tuning
// constants and the functional options that configure it.
//
// Errors (sentinel):
//
//	– ErrBadConstant if K, Force or Repulsion is not a positive finite number.
package layout

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// ErrBadConstant indicates a non-positive, NaN or infinite spring constant.
var ErrBadConstant = errors.New("layout: spring constants must be positive and finite")

// Default spring constants.
const (
	DefaultK         = 4.0  // force constant (ideal edge length)
	DefaultForce     = 0.01 // force multiplier applied to displacement
	DefaultRepulsion = 50.0 // maximum repulsive force radius
)

// minSeparation2 is the squared distance under which two nodes are treated
// as coincident and get a small random offset instead.
const minSeparation2 = 0.01

// minLength replaces a zero edge length when computing spring stiffness.
const minLength = 0.01

// Options configures a Spring.
//
// K         – force constant; must be > 0.
// Force     – displacement multiplier; must be > 0.
// Repulsion – radius beyond which nodes stop repelling; must be > 0.
// Rand      – source for coincident-node jitter; seeded from the clock when nil.
type Options struct {
	K         float64
	Force     float64
	Repulsion float64
	Rand      *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with the default constants and no Rand.
func DefaultOptions() Options {
	return Options{
		K:         DefaultK,
		Force:     DefaultForce,
		Repulsion: DefaultRepulsion,
	}
}

// WithK sets the force constant.
func WithK(k float64) Option { return func(o *Options) { o.K = k } }

// WithForce sets the force multiplier.
func WithForce(f float64) Option { return func(o *Options) { o.Force = f } }

// WithRepulsion sets the maximum repulsive force radius.
func WithRepulsion(r float64) Option { return func(o *Options) { o.Repulsion = r } }

// WithRand supplies the jitter source; useful for reproducible layouts.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// validate checks every constant is a positive finite number.
func (o Options) validate() error {
	for _, v := range [...]float64{o.K, o.Force, o.Repulsion} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadConstant
		}
	}

	return nil
}

func clockRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
