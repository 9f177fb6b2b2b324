package metrics_test

import (
	"testing"

	"emperror.dev/errors"
	averrors "github.com/rileyhilliard/allocview/internal/errors"
	"github.com/rileyhilliard/allocview/internal/metrics"
	"github.com/rileyhilliard/allocview/internal/metrics/metricstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ResolvesAllNames(t *testing.T) {
	src := metricstest.NewFakeSource("active", "allocated")

	h, err := metrics.New(src, []string{"active", "allocated"})
	require.NoError(t, err)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []string{"active", "allocated"}, h.Names())
}

func TestNew_Failures(t *testing.T) {
	tests := []struct {
		name   string
		source metrics.Source
		names  []string
	}{
		{name: "unknown name", source: metricstest.NewFakeSource("active"), names: []string{"active", "bogus"}},
		{name: "no names", source: metricstest.NewFakeSource("active"), names: nil},
		{name: "no source", source: nil, names: []string{"active"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := metrics.New(tt.source, tt.names)
			require.Error(t, err)
			assert.Nil(t, h)
			assert.True(t, averrors.IsCode(err, averrors.ErrResolution))
		})
	}
}

func TestNew_UnknownNameKeepsCause(t *testing.T) {
	_, err := metrics.New(metricstest.NewFakeSource("active"), []string{"bogus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, metrics.ErrUnknownMetric))
	assert.Contains(t, err.Error(), "`bogus`")
}

func TestHandles_NamesIsACopy(t *testing.T) {
	h, err := metrics.New(metricstest.NewFakeSource("active"), []string{"active"})
	require.NoError(t, err)

	names := h.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"active"}, h.Names())
}

func TestHandles_AdvanceAndRead(t *testing.T) {
	src := metricstest.NewFakeSource("active", "retained")
	h, err := metrics.New(src, []string{"active", "retained"})
	require.NoError(t, err)

	src.Set("active", 42)
	src.Set("retained", 7)
	require.NoError(t, h.Advance())

	v, err := h.Read(0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	v, err = h.Read(1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	// Values only change after the next advance.
	src.Set("active", 43)
	v, err = h.Read(0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestHandles_AdvanceError(t *testing.T) {
	src := metricstest.NewFakeSource("active")
	h, err := metrics.New(src, []string{"active"})
	require.NoError(t, err)

	cause := errors.New("instrumentation disabled")
	src.AdvanceErr = cause

	err = h.Advance()
	require.Error(t, err)
	assert.True(t, averrors.IsCode(err, averrors.ErrRefresh))
	assert.True(t, errors.Is(err, cause))
}

func TestHandles_ReadErrors(t *testing.T) {
	src := metricstest.NewFakeSource("active")
	h, err := metrics.New(src, []string{"active"})
	require.NoError(t, err)
	require.NoError(t, h.Advance())

	t.Run("out of range", func(t *testing.T) {
		_, err := h.Read(5)
		require.Error(t, err)
		assert.True(t, averrors.IsCode(err, averrors.ErrRead))
		assert.True(t, errors.Is(err, metrics.ErrStaleHandle))
	})

	t.Run("source error", func(t *testing.T) {
		src.FailRead("active", errors.New("ctl read failed"))
		defer src.FailRead("active", nil)

		_, err := h.Read(0)
		require.Error(t, err)
		assert.True(t, averrors.IsCode(err, averrors.ErrRead))
		assert.Contains(t, err.Error(), "`active`")
	})
}
