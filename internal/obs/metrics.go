package obs

import (
	"strings"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// LogMeter writes every measurement to L at Debug level.
type LogMeter struct {
	L Logger
}

func (m LogMeter) Counter(name string, value float64, labels ...Label) {
	m.emit("counter", name, value, labels)
}

func (m LogMeter) Histogram(name string, value float64, labels ...Label) {
	m.emit("histogram", name, value, labels)
}

func (m LogMeter) emit(kind, name string, value float64, labels []Label) {
	if m.L == nil {
		return
	}
	m.L.Logf(Debug, "metric %s %s%s %g", kind, name, formatLabels(labels), value)
}

func formatLabels(labels []Label) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.Key+"="+`"`+l.Value+`"`)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
