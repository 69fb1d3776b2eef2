package layout

import (
	"slices"

	"github.com/lixenwraith/archive/vmath"
)

// Element is one node of the page tree used for hit-testing
// Rect is in logical pixels, screen space (already scrolled)
type Element struct {
	ID    string
	Rect  vmath.Rect
	Tags  []string
	Label string

	Parent   *Element
	children []*Element
}

// NewElement creates a detached element
func NewElement(id string, rect vmath.Rect, tags ...string) *Element {
	return &Element{ID: id, Rect: rect, Tags: tags}
}

// Add attaches child as the topmost child of e and returns child
func (e *Element) Add(child *Element) *Element {
	child.Parent = e
	e.children = append(e.children, child)
	return child
}

// Children returns child elements in paint order (last is topmost)
func (e *Element) Children() []*Element {
	return e.children
}

// Has reports whether the element carries tag
func (e *Element) Has(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// WithLabel sets the label and returns e
func (e *Element) WithLabel(label string) *Element {
	e.Label = label
	return e
}

// Chain returns e followed by its ancestors up to the root
func (e *Element) Chain() []*Element {
	var chain []*Element
	for n := e; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	return chain
}

// Find returns the first element with id in depth-first order
func (e *Element) Find(id string) *Element {
	if e.ID == id {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Closest returns the nearest element in chain carrying tag
func Closest(chain []*Element, tag string) *Element {
	for _, e := range chain {
		if e.Has(tag) {
			return e
		}
	}
	return nil
}

// Same reports whether two hit chains resolve to the same hover
// Scenes are rebuilt every frame, so nodes match by ID, label and tags rather than identity
func Same(a, b []*Element) bool {
	return slices.EqualFunc(a, b, sameNode)
}

func sameNode(a, b *Element) bool {
	return a.ID == b.ID && a.Label == b.Label && slices.Equal(a.Tags, b.Tags)
}
