package tests

import (
	"testing"

	"github.com/aretw0/markov/pkg/ports"
)

// AdapterContractTest is a reusable test suite that verifies if an adapter complies with ports.Adapter.
// samples must hold at least two logically distinct payloads.
func AdapterContractTest[T any](t *testing.T, adapter ports.Adapter[T], samples ...T) {
	t.Helper()

	if len(samples) < 2 {
		t.Fatalf("contract needs at least 2 distinct samples, got %d", len(samples))
	}

	// 1. Compare is reflexive
	t.Run("Compare_Reflexive", func(t *testing.T) {
		for i, s := range samples {
			if c := adapter.Compare(s, s); c != 0 {
				t.Errorf("sample %d: Compare(s, s) = %d, want 0", i, c)
			}
		}
	})

	// 2. Distinct samples never compare equal, and the sign flips with the operands
	t.Run("Compare_Distinct", func(t *testing.T) {
		for i := range samples {
			for j := range samples {
				if i == j {
					continue
				}
				ab := adapter.Compare(samples[i], samples[j])
				ba := adapter.Compare(samples[j], samples[i])
				if ab == 0 {
					t.Errorf("samples %d and %d compare equal", i, j)
				}
				if sign(ab) != -sign(ba) {
					t.Errorf("Compare(%d, %d) = %d but Compare(%d, %d) = %d", i, j, ab, j, i, ba)
				}
			}
		}
	})

	// 3. A clone is logically equal to its source and can be released
	t.Run("Clone_Release", func(t *testing.T) {
		for i, s := range samples {
			clone, err := adapter.Clone(s)
			if err != nil {
				t.Fatalf("sample %d: unexpected clone error: %v", i, err)
			}
			if c := adapter.Compare(clone, s); c != 0 {
				t.Errorf("sample %d: clone compares %d against its source", i, c)
			}
			if adapter.IsTerminal(clone) != adapter.IsTerminal(s) {
				t.Errorf("sample %d: clone disagrees on IsTerminal", i)
			}
			adapter.Release(clone)
		}
	})

	// 4. Optional hash index agrees with Compare
	if h, ok := adapter.(ports.Hasher[T]); ok {
		t.Run("Hash_AgreesWithCompare", func(t *testing.T) {
			for i, s := range samples {
				clone, err := adapter.Clone(s)
				if err != nil {
					t.Fatalf("sample %d: unexpected clone error: %v", i, err)
				}
				if h.Hash(clone) != h.Hash(s) {
					t.Errorf("sample %d: equal payloads hash differently", i)
				}
				adapter.Release(clone)
			}
		})
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
