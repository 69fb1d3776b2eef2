package events

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/vmath"
)

// PointerPayload is the pointer position and the element chain under it
type PointerPayload struct {
	Pos   vmath.Vec2
	Chain []*layout.Element
}

// OverPayload is the new hovered chain, leaf first, empty when over nothing
type OverPayload struct {
	Chain []*layout.Element
}

// ScrollPayload is a wheel or key scroll delta
type ScrollPayload struct {
	DeltaY float64
}

// KeyPayload mirrors the tcell key event fields the page needs
type KeyPayload struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// ResizePayload is the viewport size in cells
type ResizePayload struct {
	Cols, Rows int
}

// SubmitPayload is the accepted booking message
type SubmitPayload struct {
	Message string
}
