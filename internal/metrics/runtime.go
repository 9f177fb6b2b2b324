package metrics

import (
	rtmetrics "runtime/metrics"
	"strings"

	"emperror.dev/errors"
)

// RuntimeNames are the metrics tracked by default for the runtime source.
var RuntimeNames = []string{"active", "allocated", "mapped", "metadata", "retained"}

// runtimeClass describes a derived metric as the sum of some runtime/metrics
// keys minus the sum of others.
type runtimeClass struct {
	description string
	add         []string
	sub         []string
}

var runtimeClasses = map[string]runtimeClass{
	"active": {
		description: "Bytes in in-use heap spans, including unused slots",
		add: []string{
			"/memory/classes/heap/objects:bytes",
			"/memory/classes/heap/unused:bytes",
		},
	},
	"allocated": {
		description: "Bytes occupied by live and not-yet-swept heap objects",
		add:         []string{"/memory/classes/heap/objects:bytes"},
	},
	"mapped": {
		description: "Bytes mapped from the OS and not yet released",
		add:         []string{"/memory/classes/total:bytes"},
		sub:         []string{"/memory/classes/heap/released:bytes"},
	},
	"metadata": {
		description: "Bytes used by runtime allocator metadata",
		add: []string{
			"/memory/classes/metadata/mcache/free:bytes",
			"/memory/classes/metadata/mcache/inuse:bytes",
			"/memory/classes/metadata/mspan/free:bytes",
			"/memory/classes/metadata/mspan/inuse:bytes",
			"/memory/classes/metadata/other:bytes",
		},
	},
	"retained": {
		description: "Bytes returned to the OS whose address space is still reserved",
		add:         []string{"/memory/classes/heap/released:bytes"},
	},
}

// resolvedClass holds sample indexes for one issued handle.
type resolvedClass struct {
	add []int
	sub []int
}

// RuntimeSource reads metrics from the Go runtime via runtime/metrics.
//
// Besides the derived names in RuntimeNames, any raw runtime/metrics key
// (for example "/gc/heap/live:bytes") with a uint64 or float64 value can be
// resolved directly.
type RuntimeSource struct {
	known    map[string]rtmetrics.Description
	samples  []rtmetrics.Sample
	position map[string]int
	handles  []resolvedClass
	advanced bool
}

// NewRuntimeSource creates a source over the current runtime's metrics.
func NewRuntimeSource() *RuntimeSource {
	known := make(map[string]rtmetrics.Description)
	for _, d := range rtmetrics.All() {
		known[d.Name] = d
	}
	return &RuntimeSource{
		known:    known,
		position: make(map[string]int),
	}
}

// Resolve issues a handle for a derived name or a raw runtime/metrics key.
func (s *RuntimeSource) Resolve(name string) (Handle, error) {
	class, ok := runtimeClasses[name]
	if !ok {
		if !strings.HasPrefix(name, "/") {
			return 0, errors.WithDetails(ErrUnknownMetric, "metric", name)
		}
		class = runtimeClass{add: []string{name}}
	}

	var rc resolvedClass
	for _, key := range class.add {
		idx, err := s.sampleIndex(key)
		if err != nil {
			return 0, err
		}
		rc.add = append(rc.add, idx)
	}
	for _, key := range class.sub {
		idx, err := s.sampleIndex(key)
		if err != nil {
			return 0, err
		}
		rc.sub = append(rc.sub, idx)
	}

	s.handles = append(s.handles, rc)
	return Handle(len(s.handles) - 1), nil
}

// sampleIndex returns the position of key in the sample batch, adding it on first use.
func (s *RuntimeSource) sampleIndex(key string) (int, error) {
	if idx, ok := s.position[key]; ok {
		return idx, nil
	}

	desc, ok := s.known[key]
	if !ok {
		return 0, errors.WithDetails(ErrUnknownMetric, "key", key)
	}
	if desc.Kind != rtmetrics.KindUint64 && desc.Kind != rtmetrics.KindFloat64 {
		return 0, errors.WithDetails(errors.New("runtime metric is not scalar"), "key", key)
	}

	s.samples = append(s.samples, rtmetrics.Sample{Name: key})
	s.position[key] = len(s.samples) - 1
	// New keys have no value until the next Advance.
	s.advanced = false
	return len(s.samples) - 1, nil
}

// Advance reads every resolved key from the runtime in one batch.
func (s *RuntimeSource) Advance() error {
	rtmetrics.Read(s.samples)
	s.advanced = true
	return nil
}

// Read returns the value for h as of the last Advance.
func (s *RuntimeSource) Read(h Handle) (float64, error) {
	if int(h) < 0 || int(h) >= len(s.handles) {
		return 0, errors.WithDetails(ErrStaleHandle, "handle", int(h))
	}
	if !s.advanced {
		return 0, errors.WithStack(ErrNotAdvanced)
	}

	rc := s.handles[h]
	var total float64
	for _, idx := range rc.add {
		v, err := sampleValue(s.samples[idx])
		if err != nil {
			return 0, err
		}
		total += v
	}
	for _, idx := range rc.sub {
		v, err := sampleValue(s.samples[idx])
		if err != nil {
			return 0, err
		}
		total -= v
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}

func sampleValue(s rtmetrics.Sample) (float64, error) {
	switch s.Value.Kind() {
	case rtmetrics.KindUint64:
		return float64(s.Value.Uint64()), nil
	case rtmetrics.KindFloat64:
		return s.Value.Float64(), nil
	default:
		return 0, errors.WithDetails(errors.New("runtime metric has no value"), "key", s.Name)
	}
}

// runtimeDescriptors describes the derived runtime metrics.
func runtimeDescriptors() []Descriptor {
	out := make([]Descriptor, 0, len(RuntimeNames))
	for _, name := range RuntimeNames {
		class := runtimeClasses[name]
		keys := append([]string(nil), class.add...)
		for _, k := range class.sub {
			keys = append(keys, "-"+k)
		}
		out = append(out, Descriptor{
			Name:        name,
			Description: class.description,
			Keys:        keys,
		})
	}
	return out
}
