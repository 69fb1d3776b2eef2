package page

import (
	"fmt"
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/content"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/vmath"
)

// Widget is one grid tile
type Widget struct {
	ID    string
	Kind  string
	Index int // Mount order, drives the entrance stagger
	Slot  layout.Slot
}

// BuildWidgets places content widgets on the grid, returning the number of rows used
func BuildWidgets(c *content.Content) ([]Widget, int, error) {
	spans := make([]layout.Span, len(c.Widgets))
	for i, w := range c.Widgets {
		spans[i] = layout.Span{Cols: w.Cols, Rows: w.Rows}
	}
	slots, rows, err := layout.AutoPlace(spans, constants.GridColumns)
	if err != nil {
		return nil, 0, fmt.Errorf("place widgets: %w", err)
	}
	widgets := make([]Widget, len(c.Widgets))
	for i, w := range c.Widgets {
		widgets[i] = Widget{ID: w.ID, Kind: w.Kind, Index: i, Slot: slots[i]}
	}
	return widgets, rows, nil
}

// Entrance is a fade-and-rise transform
type Entrance struct {
	Opacity float64
	Rise    float64 // Remaining downward offset in pixels
}

// entranceAt evaluates a delayed entrance of d, rising from rise pixels below
func entranceAt(sinceLoad, delay, d time.Duration, rise float64) Entrance {
	if sinceLoad < delay {
		return Entrance{Rise: rise}
	}
	t := vmath.Clamp01(float64(sinceLoad-delay) / float64(d))
	e := vmath.Power3Out(t)
	return Entrance{Opacity: e, Rise: rise * (1 - e)}
}

// HeaderEntrance returns the header transform sinceLoad after the curtain lifted
func HeaderEntrance(loaded bool, sinceLoad time.Duration) Entrance {
	if !loaded {
		return Entrance{Rise: constants.HeaderRisePx}
	}
	return entranceAt(sinceLoad, constants.HeaderEntranceDelay, constants.HeaderEntranceDuration, constants.HeaderRisePx)
}

// WidgetEntrance returns widget i's staggered transform
func WidgetEntrance(loaded bool, i int, sinceLoad time.Duration) Entrance {
	if !loaded {
		return Entrance{Rise: constants.EntranceRisePx}
	}
	delay := constants.WidgetEntranceDelay + time.Duration(i)*constants.WidgetEntranceStagger
	return entranceAt(sinceLoad, delay, constants.WidgetEntranceDuration, constants.EntranceRisePx)
}
