package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Well-known metric keys shared by the page controller, mail dispatcher and HUD
const (
	KeyAnimators  = "engine.animators"
	KeyTimers     = "engine.timers"
	KeyFrames     = "engine.frames"
	KeyFPS        = "render.fps"
	KeyGauge      = "ambient.gauge"
	KeyGateStep   = "gate.step"
	KeyMailSent   = "mail.sent"
	KeyMailFailed = "mail.failed"
	KeyUnlocked   = "page.unlocked"
	KeyScrollY    = "page.scroll"
)

// Registry is the metrics facade read by the debug HUD
// Writers cache metric pointers at construction; the mail goroutine is the only off-loop writer
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  newMetricMap[atomic.Bool](),
		Ints:   newMetricMap[atomic.Int64](),
		Floats: newMetricMap[Gauge](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key value", bools first, then ints, then floats
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, k+" "+strconv.FormatBool(v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, k+" "+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *Gauge) {
		lines = append(lines, fmt.Sprintf("%s %.2f", k, v.Get()))
	})
	return lines
}
