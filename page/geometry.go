package page

import (
	"math"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/vmath"
)

// Geometry is the page layout in cells, page space (unscrolled)
// Sections stack vertically: header, widget grid, pinned gallery, footer
type Geometry struct {
	Cols, Rows int

	Header vmath.CellRect
	Grid   vmath.CellRect
	Cards  []vmath.CellRect // Widget order

	GalleryTop    int
	GalleryHeight int // Includes the pinned span
	Footer        vmath.CellRect
	PageHeight    int
}

// ComputeGeometry lays out header and grid for a cols x rows viewport
// The gallery height is filled in later by WithGallery since it depends on the track
func ComputeGeometry(cols, rows int, widgets []Widget, gridRows int) Geometry {
	g := Geometry{Cols: cols, Rows: rows}
	width := max(cols-2*constants.PageMarginCells, constants.GridColumns)

	g.Header = vmath.CellRect{X: constants.PageMarginCells, Y: 1, W: width, H: constants.HeaderRows}

	gridRows = max(gridRows, 1)
	minHeight := gridRows*constants.MinGridRowCells + (gridRows-1)*constants.GridGapCells
	height := max(rows-constants.HeaderRows-3, minHeight)
	g.Grid = vmath.CellRect{X: constants.PageMarginCells, Y: g.Header.Y + g.Header.H + 1, W: width, H: height}

	g.Cards = make([]vmath.CellRect, len(widgets))
	for i, w := range widgets {
		g.Cards[i] = layout.Track(g.Grid, constants.GridColumns, gridRows, constants.GridGapCells, w.Slot)
	}

	g.GalleryTop = g.Grid.Y + g.Grid.H + 1
	return g.WithGallery(rows)
}

// WithGallery sets the gallery section height and places the footer after it
func (g Geometry) WithGallery(heightCells int) Geometry {
	g.GalleryHeight = heightCells
	g.Footer = vmath.CellRect{X: 0, Y: g.GalleryTop + heightCells, W: g.Cols, H: constants.FooterRows}
	g.PageHeight = g.Footer.Y + g.Footer.H
	return g
}

// GalleryTopPx returns the gallery section's page coordinate in pixels
func (g Geometry) GalleryTopPx() float64 {
	return float64(g.GalleryTop) * constants.CellHeightPx
}

// ScrollLimit returns the maximum page scroll in pixels
func (g Geometry) ScrollLimit() float64 {
	return max(float64(g.PageHeight-g.Rows)*constants.CellHeightPx, 0)
}

// Viewport returns the screen in pixels
func (g Geometry) Viewport() vmath.Rect {
	return vmath.CellRect{W: g.Cols, H: g.Rows}.ToPixels(constants.CellWidthPx, constants.CellHeightPx)
}

// Overlay returns the expanded widget's destination rect in pixels, screen space
func (g Geometry) Overlay() vmath.Rect {
	mx := min(constants.OverlayMarginX, g.Cols/8)
	my := min(constants.OverlayMarginY, g.Rows/8)
	r := vmath.CellRect{X: mx, Y: my, W: g.Cols - 2*mx, H: g.Rows - 2*my}
	return r.ToPixels(constants.CellWidthPx, constants.CellHeightPx)
}

// OnScreen converts a page-space cell rect to screen pixels at scrollY
func OnScreen(r vmath.CellRect, scrollY float64) vmath.Rect {
	px := r.ToPixels(constants.CellWidthPx, constants.CellHeightPx)
	px.Y -= scrollY
	return px
}

// pxToCells converts a vertical pixel distance to whole cells, rounding up
func pxToCells(px float64) int {
	return int(math.Ceil(px / constants.CellHeightPx))
}
