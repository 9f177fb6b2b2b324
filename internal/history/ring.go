package history

// Ring is a fixed-size circular buffer for float64 values.
// Once full, each Push overwrites the oldest value.
type Ring struct {
	data  []float64
	head  int
	count int
}

// NewRing creates a ring holding at most size values. size must be positive.
func NewRing(size int) *Ring {
	return &Ring{data: make([]float64, size)}
}

// Push appends a value, evicting the oldest one when the ring is full.
func (r *Ring) Push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of values currently held.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.data)
}

// At returns the i-th value counting from the oldest (0) to the newest (Len()-1).
func (r *Ring) At(i int) float64 {
	start := (r.head - r.count + len(r.data)) % len(r.data)
	return r.data[(start+i)%len(r.data)]
}

// Each calls fn for every value from oldest to newest.
func (r *Ring) Each(fn func(i int, value float64)) {
	start := (r.head - r.count + len(r.data)) % len(r.data)
	for i := 0; i < r.count; i++ {
		fn(i, r.data[(start+i)%len(r.data)])
	}
}

// Values returns a copy of all values in chronological order (oldest first).
func (r *Ring) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	out := make([]float64, 0, r.count)
	r.Each(func(_ int, v float64) {
		out = append(out, v)
	})
	return out
}

// Last returns the newest value, or false if the ring is empty.
func (r *Ring) Last() (float64, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.data[(r.head-1+len(r.data))%len(r.data)], true
}
