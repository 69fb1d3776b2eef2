package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64 stored as IEEE-754 bits
// Zero value reads as 0.0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}
