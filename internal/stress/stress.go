// Package stress holds the memory blocks a user allocates from the keyboard to
// perturb the metrics under observation.
package stress

import (
	"math"

	"github.com/c2h5oh/datasize"
)

// DefaultStep is the size bound to the '1' key.
const DefaultStep = 10 * datasize.MB

// MaxStep is the largest step a config may bind to the '1' key. The biggest
// buffer a single key can request is 20 steps.
const MaxStep = datasize.GB

// SizeForDigit maps '1'..'9' to 1..9 steps and '0' to 10 steps.
// double doubles the result. Any other rune is not a size key, and neither is
// a size that would not fit in an int.
func SizeForDigit(digit rune, step datasize.ByteSize, double bool) (datasize.ByteSize, bool) {
	var n datasize.ByteSize
	switch {
	case digit == '0':
		n = 10
	case digit >= '1' && digit <= '9':
		n = datasize.ByteSize(digit - '0')
	default:
		return 0, false
	}
	if double {
		n *= 2
	}

	if step > datasize.ByteSize(math.MaxInt)/n {
		return 0, false
	}
	return n * step, true
}

// List is a LIFO stack of stress buffers.
type List struct {
	blocks [][]byte
	total  datasize.ByteSize
}

// Push allocates a buffer of size bytes. With fill set every byte is written
// so the pages are actually committed; otherwise the memory is only reserved.
func (l *List) Push(size datasize.ByteSize, fill bool) {
	block := make([]byte, int(size.Bytes()))
	if fill {
		clear(block)
	}
	l.blocks = append(l.blocks, block)
	l.total += size
}

// Pop frees the most recently pushed buffer. It reports false when the list
// was already empty.
func (l *List) Pop() bool {
	n := len(l.blocks)
	if n == 0 {
		return false
	}
	l.total -= datasize.ByteSize(len(l.blocks[n-1]))
	l.blocks[n-1] = nil
	l.blocks = l.blocks[:n-1]
	return true
}

// Len returns the number of live buffers.
func (l *List) Len() int {
	return len(l.blocks)
}

// Total returns the combined size of all live buffers.
func (l *List) Total() datasize.ByteSize {
	return l.total
}
