// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConfigDefaults: no options resolve to deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Equal(t, "7", cfg.idFn(7))
	require.Nil(t, cfg.rng)
	require.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	require.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	require.Equal(t, defaultRightPrefix, cfg.rightPrefix)
	require.Empty(t, cfg.edgeType)
}

// TestConfigLastWins: later options override earlier ones.
func TestConfigLastWins(t *testing.T) {
	cfg := newBuilderConfig(WithSymbolIDs(), WithExcelColumnIDs())
	require.Equal(t, "AB", cfg.idFn(27))

	cfg = newBuilderConfig(WithHexIDs(), WithDefaultIDs())
	require.Equal(t, "255", cfg.idFn(255))

	cfg = newBuilderConfig(WithConstantWeight(0.3), WithConstantWeight(0.7))
	require.Equal(t, 0.7, cfg.weightFn(nil))

	cfg = newBuilderConfig(WithPartitionPrefix("A", "B"), WithPartitionPrefix("", ""))
	require.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	require.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

// TestConfigRand: WithSeed reproduces draws, WithRand attaches the given source.
func TestConfigRand(t *testing.T) {
	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	require.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

// TestOptionPanics: nil functions are programmer errors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { WithIDScheme(nil) })
	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithWeightFn(nil) })
}
