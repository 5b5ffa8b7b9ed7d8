package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Metric keys published by the explorer
const (
	KeyRedraws    = "redraws"
	KeyRenderMs   = "render_ms"
	KeyCells      = "cells"
	KeyBounded    = "bounded"
	KeyMaxValue   = "max_value"
	KeyIterations = "iterations"
	KeyPalette    = "palette"
)

// Registry is the central metrics facade
// Callers cache pointers once; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "key: value", sorted by key across types
func (r *Registry) Lines() []string {
	type entry struct{ key, val string }
	entries := make([]entry, 0, r.TotalCount())

	r.Ints.Range(func(k string, v *atomic.Int64) {
		entries = append(entries, entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		entries = append(entries, entry{k, strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		entries = append(entries, entry{k, v.Load()})
	})

	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s: %s", e.key, e.val)
	}
	return lines
}
