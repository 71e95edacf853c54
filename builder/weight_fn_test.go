package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/builder"
)

// TestWeightFns: distributions stay non-negative, in range and fall back
// deterministically without an RNG.
func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	require.Equal(t, 0.25, builder.ConstantWeightFn(0.25)(rng))

	uniform := builder.UniformWeightFn(0.2, 0.4)
	require.Equal(t, 0.2, uniform(nil))
	for i := 0; i < 100; i++ {
		w := uniform(rng)
		require.GreaterOrEqual(t, w, 0.2)
		require.Less(t, w, 0.4)
	}

	normal := builder.NormalWeightFn(-5, 1)
	require.Equal(t, 0.0, normal(nil), "clipped at zero")
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, normal(rng), 0.0)
	}
	require.Equal(t, 0.5, builder.NormalWeightFn(0.5, 0)(rng))

	exp := builder.ExponentialWeightFn(4)
	require.Equal(t, 0.25, exp(nil))
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, exp(rng), 0.0)
	}
}

// TestWeightFnPanics: meaningless parameters are rejected at construction.
func TestWeightFnPanics(t *testing.T) {
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.UniformWeightFn(-1, 1) })
	require.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	require.Panics(t, func() { builder.NormalWeightFn(0, -1) })
	require.Panics(t, func() { builder.ExponentialWeightFn(0) })
}
