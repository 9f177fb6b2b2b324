package metrics

import (
	"os"

	"emperror.dev/errors"
	"github.com/shirou/gopsutil/v4/process"
)

// ProcessNames are the metrics tracked by default for the process source.
var ProcessNames = []string{"rss", "vms", "data", "stack", "swap"}

type processField struct {
	description string
	value       func(*process.MemoryInfoStat) uint64
}

var processFields = map[string]processField{
	"rss": {
		description: "Resident set size reported by the OS",
		value:       func(m *process.MemoryInfoStat) uint64 { return m.RSS },
	},
	"vms": {
		description: "Virtual memory size reported by the OS",
		value:       func(m *process.MemoryInfoStat) uint64 { return m.VMS },
	},
	"data": {
		description: "Data segment size (Linux only)",
		value:       func(m *process.MemoryInfoStat) uint64 { return m.Data },
	},
	"stack": {
		description: "Stack segment size (Linux only)",
		value:       func(m *process.MemoryInfoStat) uint64 { return m.Stack },
	},
	"swap": {
		description: "Swapped-out bytes (Linux only)",
		value:       func(m *process.MemoryInfoStat) uint64 { return m.Swap },
	},
}

// ProcessSource reads the OS view of a process's memory via gopsutil.
type ProcessSource struct {
	pid     int32
	proc    *process.Process
	fields  []processField
	current *process.MemoryInfoStat

	// memoryInfo is swapped in tests.
	memoryInfo func() (*process.MemoryInfoStat, error)
}

// NewProcessSource creates a source for pid. The process is looked up lazily
// on the first Resolve.
func NewProcessSource(pid int32) *ProcessSource {
	return &ProcessSource{pid: pid}
}

// Resolve issues a handle for one of ProcessNames.
func (s *ProcessSource) Resolve(name string) (Handle, error) {
	if err := s.open(); err != nil {
		return 0, err
	}

	field, ok := processFields[name]
	if !ok {
		return 0, errors.WithDetails(ErrUnknownMetric, "metric", name)
	}
	s.fields = append(s.fields, field)
	return Handle(len(s.fields) - 1), nil
}

func (s *ProcessSource) open() error {
	if s.memoryInfo != nil {
		return nil
	}
	proc, err := process.NewProcess(s.pid)
	if err != nil {
		return errors.WrapWithDetails(ErrSourceUnavailable, err.Error(), "pid", s.pid)
	}
	s.proc = proc
	s.memoryInfo = proc.MemoryInfo
	return nil
}

// Advance takes one memory snapshot of the process.
func (s *ProcessSource) Advance() error {
	if s.memoryInfo == nil {
		return errors.WithStack(ErrSourceUnavailable)
	}
	info, err := s.memoryInfo()
	if err != nil {
		return errors.WrapIfWithDetails(err, "failed to read process memory", "pid", s.pid)
	}
	s.current = info
	return nil
}

// Read returns the field for h from the last snapshot.
func (s *ProcessSource) Read(h Handle) (float64, error) {
	if int(h) < 0 || int(h) >= len(s.fields) {
		return 0, errors.WithDetails(ErrStaleHandle, "handle", int(h))
	}
	if s.current == nil {
		return 0, errors.WithStack(ErrNotAdvanced)
	}
	return float64(s.fields[h].value(s.current)), nil
}

// processDescriptors describes the process metrics.
func processDescriptors() []Descriptor {
	out := make([]Descriptor, 0, len(ProcessNames))
	for _, name := range ProcessNames {
		out = append(out, Descriptor{
			Name:        name,
			Description: processFields[name].description,
		})
	}
	return out
}

func currentPID() int32 {
	return int32(os.Getpid())
}
