package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTrip(t *testing.T) {
	require := require.New(t)

	m := &metadata{
		version:      3,
		size:         42,
		baseCapacity: 100,
		bloomBytes:   4096,
		nFilters:     2,
		expansion:    2,
		errorRate:    0.01,
	}
	decoded, err := decodeMetadata(m.encode())
	require.NoError(err)
	require.Equal(m, decoded)
}

func TestDecodeMetadataRejectsWrongLength(t *testing.T) {
	_, err := decodeMetadata([]byte{1, 2, 3})
	require.ErrorContains(t, err, "corrupted")
}

func TestDecodeMetadataRejectsInvariantViolations(t *testing.T) {
	cases := []struct {
		name string
		m    *metadata
	}{
		{"zero n_filters", &metadata{nFilters: 0, errorRate: 0.01, baseCapacity: 1}},
		{"error_rate zero", &metadata{nFilters: 1, errorRate: 0, baseCapacity: 1}},
		{"error_rate one", &metadata{nFilters: 1, errorRate: 1, baseCapacity: 1}},
		{"zero base_capacity", &metadata{nFilters: 1, errorRate: 0.01, baseCapacity: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeMetadata(tc.m.encode())
			require.ErrorContains(t, err, "corrupted")
		})
	}
}

func TestGetCapacitySumsGeometricSeries(t *testing.T) {
	m := &metadata{nFilters: 3, baseCapacity: 2, expansion: 2, errorRate: 0.01}
	require.EqualValues(t, 2+4+8, m.GetCapacity())
}

func TestGetCapacitySingleFilter(t *testing.T) {
	m := &metadata{nFilters: 1, baseCapacity: 100, expansion: 2, errorRate: 0.01}
	require.EqualValues(t, 100, m.GetCapacity())
}

func TestGetCapacitySaturatesInsteadOfOverflowing(t *testing.T) {
	m := &metadata{nFilters: 10, baseCapacity: 1 << 30, expansion: 1 << 10, errorRate: 0.01}
	// Filter 0 holds exactly 1<<30; filters 1..9 each saturate at MaxUint32.
	require.EqualValues(t, uint64(1<<30)+uint64(1<<32-1)*9, m.GetCapacity())
}

func TestCapacityOfFilterSaturatesAtMaxUint32(t *testing.T) {
	c := capacityOfFilter(1<<30, 1<<10, 5)
	require.EqualValues(t, 1<<32-1, c)
}
