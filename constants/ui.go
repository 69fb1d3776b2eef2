package constants

// Grid Layout
const (
	// GridColumns and GridRows define the widget grid
	GridColumns = 4
	GridRows    = 3
	// GridGapCells is the spacing between cards in cells
	GridGapCells = 1
	// PageMarginCells is the horizontal page padding in cells
	PageMarginCells = 2
	// HeaderRows is the height reserved for the page header
	HeaderRows = 5
	// FooterRows is the height of the footer section
	FooterRows = 10
	// MinGridRowCells keeps cards legible on short terminals
	MinGridRowCells = 6
)

// Overlay Layout
const (
	// OverlayMarginX and OverlayMarginY inset the expanded card from the viewport
	OverlayMarginX = 6
	OverlayMarginY = 2
)

// Element tags
const (
	TagMagnetic    = "magnetic"
	TagLink        = "link"
	TagButton      = "button"
	TagClickable   = "clickable"
	TagExpand      = "expand"
	TagClose       = "close"
	TagBackdrop    = "backdrop"
	TagTextField   = "textfield"
	TagGalleryItem = "gallery-item"
)

// GalleryCursorLabel is the follower label over gallery images
const GalleryCursorLabel = "EXPLORE"

// Gallery Section
const (
	// GalleryItemInsetX and GalleryItemInsetY pad each image inside its viewport-wide slot
	GalleryItemInsetX = 6
	GalleryItemInsetY = 3
)
