// Package status holds lock-free telemetry written by the simulation and read by hosts between frames.
package status

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry groups telemetry by value type
type Registry struct {
	Ints   *Metrics[atomic.Int64]
	Floats *Metrics[Float]
	Texts  *Metrics[Text]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   newMetrics[atomic.Int64](),
		Floats: newMetrics[Float](),
		Texts:  newMetrics[Text](),
	}
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.Ints.Len()+r.Floats.Len()+r.Texts.Len())
	r.Ints.Each(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Each(func(k string, v *Float) {
		out = append(out, Entry{k, strconv.FormatFloat(v.Load(), 'f', 2, 64)})
	})
	r.Texts.Each(func(k string, v *Text) {
		out = append(out, Entry{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
