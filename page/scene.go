package page

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/content"
	"github.com/lixenwraith/archive/expand"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/vmath"
)

// Element ids understood by the click handler
const (
	IDCover      = "cover"
	IDHeader     = "header"
	IDGallery    = "gallery"
	IDFooter     = "footer"
	IDBackdrop   = "backdrop"
	IDOverlay    = "overlay"
	IDClose      = "close"
	IDField      = "field"
	IDSubmit     = "submit"
	IDSelectDate = "select-date"

	prefixExpand = "expand:"
	prefixAnswer = "answer:"
	prefixMood   = "mood:"
	prefixPlace  = "place:"
	prefixLink   = "link:"
)

// SubmitLabel is the follower label over the submit button
const SubmitLabel = "SEND"

func indexed(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// parseIndexed returns the index of an id built by indexed
func parseIndexed(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return i, true
}

// cell builds a pixel rect from a cell offset inside a pixel rect
func cell(in vmath.Rect, dx, dy, w, h int) vmath.Rect {
	return vmath.R(
		in.X+float64(dx)*constants.CellWidthPx,
		in.Y+float64(dy)*constants.CellHeightPx,
		float64(w)*constants.CellWidthPx,
		float64(h)*constants.CellHeightPx,
	)
}

// cellsWide returns the width of r in whole cells
func cellsWide(r vmath.Rect) int {
	return int(r.W / constants.CellWidthPx)
}

// cellsHigh returns the height of r in whole cells
func cellsHigh(r vmath.Rect) int {
	return int(r.H / constants.CellHeightPx)
}

// ExpandControl returns the expand button inside a card
func ExpandControl(card vmath.Rect) vmath.Rect {
	return cell(card, cellsWide(card)-4, 0, 3, 1)
}

// AnswerButton returns quiz answer i inside the quiz card
func AnswerButton(card vmath.Rect, i int) vmath.Rect {
	return cell(card, 2, 3+i, cellsWide(card)-4, 1)
}

// MoodDot returns playlist dot i of n inside the playlist card
func MoodDot(card vmath.Rect, i, n int) vmath.Rect {
	return cell(card, cellsWide(card)-2-2*(n-i), 1, 2, 1)
}

// SelectDateButton returns the ticket action inside the booking card
func SelectDateButton(card vmath.Rect) vmath.Rect {
	return cell(card, 2, cellsHigh(card)-2, cellsWide(card)-4, 1)
}

// CloseButton returns the overlay close control
func CloseButton(overlay vmath.Rect) vmath.Rect {
	return cell(overlay, cellsWide(overlay)-5, 1, 3, 1)
}

// ReasonField returns the booking form text area
func ReasonField(overlay vmath.Rect) vmath.Rect {
	return cell(overlay, 4, 8, cellsWide(overlay)-8, 3)
}

// SubmitButton returns the booking form submit control
func SubmitButton(overlay vmath.Rect) vmath.Rect {
	return cell(overlay, 4, 12, min(cellsWide(overlay)-8, 24), 1)
}

// BuildScene derives the hit-test tree for f
// Paint order matches the renderer so the topmost element wins
func BuildScene(f *Frame) *layout.Scene {
	scene := layout.NewScene(f.Geom.Viewport())
	root := scene.Root

	if f.Blocking {
		root.Add(layout.NewElement(IDCover, f.Geom.Viewport()))
		return scene
	}

	root.Add(layout.NewElement(IDHeader, OnScreen(f.Geom.Header, f.ScrollY).Translate(vmath.V2(0, f.Header.Rise))))

	for i, w := range f.Widgets {
		addCard(root, f, i, w)
	}

	gal := root.Add(layout.NewElement(IDGallery, vmath.R(0, f.Gallery.ScreenY, f.Geom.Viewport().W, float64(f.Geom.Rows)*constants.CellHeightPx)))
	for i, item := range f.Gallery.Items {
		gal.Add(layout.NewElement(indexed(prefixPlace, i), item, constants.TagMagnetic, constants.TagGalleryItem).
			WithLabel(constants.GalleryCursorLabel))
	}

	footer := root.Add(layout.NewElement(IDFooter, OnScreen(f.Geom.Footer, f.ScrollY)))
	for i := range f.Content.Footer.Links {
		footer.Add(layout.NewElement(indexed(prefixLink, i), FooterLink(footer.Rect, f.Content.Footer.Links, i), constants.TagLink))
	}

	if f.Expand.Visible {
		addOverlay(root, f)
	}
	return scene
}

func addCard(root *layout.Element, f *Frame, i int, w Widget) {
	r := f.Card(i)
	var tags []string
	if w.Kind == content.KindDossier {
		tags = append(tags, constants.TagClickable)
	}
	card := root.Add(layout.NewElement(w.ID, r, tags...))

	switch w.Kind {
	case content.KindQuiz:
		if f.Gate.Unlocked {
			break
		}
		for a := range f.Gate.Step.Answers {
			card.Add(layout.NewElement(indexed(prefixAnswer, a), AnswerButton(r, a), constants.TagButton))
		}
	case content.KindPlaylist:
		n := len(f.Content.Moods.Items)
		for m := range n {
			card.Add(layout.NewElement(indexed(prefixMood, m), MoodDot(r, m, n), constants.TagClickable))
		}
	case content.KindTicket:
		if f.State.Unlocked {
			card.Add(layout.NewElement(IDSelectDate, SelectDateButton(r), constants.TagButton))
		}
	}

	if w.ID != f.State.Booking {
		card.Add(layout.NewElement(prefixExpand+w.ID, ExpandControl(r), constants.TagButton, constants.TagExpand))
	}
}

func addOverlay(root *layout.Element, f *Frame) {
	root.Add(layout.NewElement(IDBackdrop, f.Geom.Viewport(), constants.TagBackdrop, constants.TagClickable))
	b := f.Expand.Bounds
	ov := root.Add(layout.NewElement(IDOverlay, b))
	ov.Add(layout.NewElement(IDClose, CloseButton(b), constants.TagButton, constants.TagClose))

	if f.Expand.Payload != expand.PayloadBooking || f.State.Submitted {
		return
	}
	ov.Add(layout.NewElement(IDField, ReasonField(b), constants.TagTextField))
	ov.Add(layout.NewElement(IDSubmit, SubmitButton(b), constants.TagMagnetic).WithLabel(SubmitLabel))
}

// FooterLink returns footer link i laid out left to right on the footer's fourth row
func FooterLink(footer vmath.Rect, links []content.Link, i int) vmath.Rect {
	x := constants.PageMarginCells
	for j := 0; j < i; j++ {
		x += len([]rune(links[j].Label)) + 3
	}
	return cell(footer, x, 4, len([]rune(links[i].Label)), 1)
}

func stringsCut(id, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	return rest, ok && rest != ""
}
