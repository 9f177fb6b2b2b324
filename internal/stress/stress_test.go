package stress

import (
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeForDigit(t *testing.T) {
	tests := []struct {
		digit  rune
		double bool
		want   datasize.ByteSize
	}{
		{'1', false, 10 * datasize.MB},
		{'5', false, 50 * datasize.MB},
		{'9', false, 90 * datasize.MB},
		{'0', false, 100 * datasize.MB},
		{'1', true, 20 * datasize.MB},
		{'0', true, 200 * datasize.MB},
	}

	for _, tt := range tests {
		t.Run(string(tt.digit), func(t *testing.T) {
			got, ok := SizeForDigit(tt.digit, DefaultStep, tt.double)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeForDigit_NotADigit(t *testing.T) {
	for _, r := range []rune{'a', 'p', '!', ' '} {
		_, ok := SizeForDigit(r, DefaultStep, false)
		assert.False(t, ok, "%q", r)
	}
}

func TestSizeForDigit_CustomStep(t *testing.T) {
	got, ok := SizeForDigit('3', datasize.KB, false)
	require.True(t, ok)
	assert.Equal(t, 3*datasize.KB, got)
}

func TestSizeForDigit_Overflow(t *testing.T) {
	huge := 2 * datasize.EB

	tests := []struct {
		digit  rune
		double bool
	}{
		{'8', false},
		{'9', false},
		{'0', false},
		{'4', true},
	}

	for _, tt := range tests {
		t.Run(string(tt.digit), func(t *testing.T) {
			got, ok := SizeForDigit(tt.digit, huge, tt.double)
			assert.False(t, ok)
			assert.Zero(t, got)
		})
	}

	got, ok := SizeForDigit('1', huge, false)
	require.True(t, ok)
	assert.Equal(t, huge, got)
}

func TestSizeForDigit_MaxStepFits(t *testing.T) {
	got, ok := SizeForDigit('0', MaxStep, true)
	require.True(t, ok)
	assert.Equal(t, 20*datasize.GB, got)
}

func TestList_PushPop(t *testing.T) {
	var l List

	l.Push(4*datasize.KB, false)
	l.Push(8*datasize.KB, true)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 12*datasize.KB, l.Total())

	require.True(t, l.Pop())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 4*datasize.KB, l.Total())

	require.True(t, l.Pop())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, datasize.ByteSize(0), l.Total())
}

func TestList_PushThenPopRestoresLength(t *testing.T) {
	var l List
	l.Push(datasize.KB, false)
	before := l.Len()

	l.Push(2*datasize.KB, true)
	l.Pop()

	assert.Equal(t, before, l.Len())
	assert.Equal(t, datasize.KB, l.Total())
}

func TestList_PopEmptyIsNoop(t *testing.T) {
	var l List
	assert.False(t, l.Pop())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, datasize.ByteSize(0), l.Total())
}

func TestList_PopIsLIFO(t *testing.T) {
	var l List
	l.Push(1*datasize.KB, false)
	l.Push(2*datasize.KB, false)
	l.Push(3*datasize.KB, false)

	l.Pop()
	assert.Equal(t, 3*datasize.KB, l.Total())
	l.Pop()
	assert.Equal(t, 1*datasize.KB, l.Total())
}
