package builder_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/builder"
)

// TestIDFns verifies each IDFn on valid inputs and panics on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"AlphanumericIDFn_low", builder.AlphanumericIDFn, 10, "a", false},
		{"AlphanumericIDFn_wrap", builder.AlphanumericIDFn, 36, "10", false},
		{"AlphanumericIDFn_neg", builder.AlphanumericIDFn, -5, "", true},

		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"HexIDFn_ff", builder.HexIDFn, 255, "ff", false},
		{"HexIDFn_neg", builder.HexIDFn, -1, "", true},

		{"SymbolNumberIDFn_v3", builder.SymbolNumberIDFn("v"), 3, "v3", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("v"), -3, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				require.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			require.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestUUIDIDFn: ids are version-4 UUIDs, memoized per index and seeded.
func TestUUIDIDFn(t *testing.T) {
	fn := builder.UUIDIDFn(rand.New(rand.NewSource(3)))
	again := builder.UUIDIDFn(rand.New(rand.NewSource(3)))

	id0 := fn(0)
	u, err := uuid.Parse(id0)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), u.Version())

	require.Equal(t, id0, fn(0), "memoized")
	require.NotEqual(t, id0, fn(1))
	require.Equal(t, id0, again(0), "same seed, same draw order")

	require.Panics(t, func() { builder.UUIDIDFn(nil) })
}
