package history

import (
	"testing"

	"emperror.dev/errors"
	averrors "github.com/rileyhilliard/allocview/internal/errors"
	"github.com/rileyhilliard/allocview/internal/metrics"
	"github.com/rileyhilliard/allocview/internal/metrics/metricstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []string{"active", "allocated", "mapped", "metadata", "retained"}

// readerFunc adapts a function to Reader.
type readerFunc func(i int) (float64, error)

func (f readerFunc) Read(i int) (float64, error) { return f(i) }

func TestNewStore(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{"default capacity", DefaultCapacity, false},
		{"capacity one", 1, false},
		{"zero capacity", 0, true},
		{"negative capacity", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(names, tt.capacity)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, s)
				assert.True(t, averrors.IsCode(err, averrors.ErrCapacity))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, s.Capacity())
			assert.Equal(t, len(names), s.Metrics())
			assert.Equal(t, 0, s.Len())
			assert.Equal(t, names, s.Names())
		})
	}
}

func TestStore_SampleAppendsOnePerMetric(t *testing.T) {
	s, err := NewStore(names, 4)
	require.NoError(t, err)

	tick := 0
	r := readerFunc(func(i int) (float64, error) {
		return float64(tick*10 + i), nil
	})

	for tick = 0; tick < 6; tick++ {
		require.NoError(t, s.Sample(r))
	}

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []float64{20, 30, 40, 50}, s.Values(0))
	assert.Equal(t, []float64{24, 34, 44, 54}, s.Values(4))

	latest, ok := s.Latest(1)
	require.True(t, ok)
	assert.Equal(t, 51.0, latest)
}

func TestStore_FailedReadLeavesWindowsUnchanged(t *testing.T) {
	s, err := NewStore(names, 8)
	require.NoError(t, err)

	ok := readerFunc(func(i int) (float64, error) { return float64(i + 1), nil })
	require.NoError(t, s.Sample(ok))

	before := make([][]float64, s.Metrics())
	for i := range before {
		before[i] = s.Values(i)
	}

	for failAt := range names {
		cause := errors.New("read failed")
		failing := readerFunc(func(i int) (float64, error) {
			if i == failAt {
				return 0, cause
			}
			return 100, nil
		})

		err := s.Sample(failing)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))

		for i := range before {
			assert.Equal(t, before[i], s.Values(i), "metric %d changed after failed tick at %d", i, failAt)
		}
	}
}

func TestStore_SampleThroughHandles(t *testing.T) {
	src := metricstest.NewFakeSource(names...)
	h, err := metrics.New(src, names)
	require.NoError(t, err)

	s, err := NewStore(h.Names(), 512)
	require.NoError(t, err)

	for i := 0; i < 600; i++ {
		src.Set("active", float64(i))
		require.NoError(t, h.Advance())
		require.NoError(t, s.Sample(h))
	}

	active := s.Values(0)
	require.Len(t, active, 512)
	assert.Equal(t, 88.0, active[0])
	assert.Equal(t, 599.0, active[511])
}

func TestStore_ReadErrorFromHandles(t *testing.T) {
	src := metricstest.NewFakeSource(names...)
	h, err := metrics.New(src, names)
	require.NoError(t, err)
	s, err := NewStore(h.Names(), 16)
	require.NoError(t, err)

	require.NoError(t, h.Advance())
	require.NoError(t, s.Sample(h))

	src.FailRead("mapped", errors.New("mapped unavailable"))
	require.NoError(t, h.Advance())
	err = s.Sample(h)
	require.Error(t, err)
	assert.True(t, averrors.IsCode(err, averrors.ErrRead))

	for i := 0; i < s.Metrics(); i++ {
		assert.Len(t, s.Values(i), 1)
	}
}

func TestStore_EmptyNames(t *testing.T) {
	s, err := NewStore(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.Sample(readerFunc(func(int) (float64, error) {
		return 0, errors.New("never called")
	})))
}
