package constants

import "time"

// Frame Scheduling Constants
const (
	// FrameRate is the fixed simulation rate of the animation scheduler
	FrameRate = 60

	// FrameInterval is one fixed animation step
	FrameInterval = time.Second / FrameRate

	// MaxCatchUpSteps bounds how many fixed steps a single Advance may integrate
	// after a stall (suspended terminal, debugger)
	MaxCatchUpSteps = 8

	// InputBufferSize is the capacity of the raw terminal event channel
	InputBufferSize = 256
)

// Logical Pixel Space
// Motion math runs in pixels; a terminal cell spans CellWidthPx x CellHeightPx
const (
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)
