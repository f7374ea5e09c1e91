package bsbf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalNumBytesIsBlockAligned(t *testing.T) {
	for _, tc := range []struct {
		n uint32
		p float64
	}{
		{100, 0.01},
		{1, 0.01},
		{1_000_000, 0.001},
		{7, 0.5},
	} {
		got := OptimalNumBytes(tc.n, tc.p)
		require.GreaterOrEqual(t, got, uint32(blockBytes))
		require.Zero(t, got%blockBytes)
	}
}

func TestInsertThenProbe(t *testing.T) {
	blob := New(OptimalNumBytes(100, 0.01))

	items := make([][]byte, 0, 50)
	for i := 0; i < 50; i++ {
		items = append(items, []byte(fmt.Sprintf("item-%d", i)))
	}
	for _, it := range items {
		Insert(blob, Hash(it))
	}
	for _, it := range items {
		require.True(t, Probe(blob, Hash(it)), "expected %q to probe true", it)
	}
}

func TestProbeOnEmptyFilterIsFalse(t *testing.T) {
	blob := New(OptimalNumBytes(100, 0.01))
	require.False(t, Probe(blob, Hash([]byte("never-inserted"))))
}

func TestFalsePositiveRateIsNearTarget(t *testing.T) {
	const n = 2000
	const p = 0.01

	blob := New(OptimalNumBytes(n, p))
	for i := 0; i < n; i++ {
		Insert(blob, Hash([]byte(fmt.Sprintf("pos-%d", i))))
	}

	falsePositives := 0
	const negatives = n * 10
	for i := 0; i < negatives; i++ {
		if Probe(blob, Hash([]byte(fmt.Sprintf("neg-%d", i)))) {
			falsePositives++
		}
	}
	rate := float64(falsePositives) / float64(negatives)
	require.Lessf(t, rate, 2*p, "observed fpr %v exceeds 2x target %v", rate, p)
}

func TestNewIsZeroed(t *testing.T) {
	blob := New(64)
	for _, b := range blob {
		require.Zero(t, b)
	}
}
