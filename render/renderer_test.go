package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"

	"github.com/lixenwraith/archive/ambient"
	"github.com/lixenwraith/archive/content"
	"github.com/lixenwraith/archive/expand"
	"github.com/lixenwraith/archive/page"
	"github.com/lixenwraith/archive/preload"
	"github.com/lixenwraith/archive/receipt"
)

const (
	testCols = 120
	testRows = 40
)

var now = time.Date(2025, 12, 1, 12, 0, 0, 0, time.Local)

// newFrame builds a settled, loaded page with the gallery scrolled out of view
func newFrame(t *testing.T) *page.Frame {
	t.Helper()
	c, err := content.Load()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	widgets, gridRows, err := page.BuildWidgets(c)
	if err != nil {
		t.Fatalf("widgets: %v", err)
	}
	state := page.NewState(c.Special)
	state.Loaded = true

	f := &page.Frame{
		Now:      now,
		Content:  c,
		State:    state,
		Geom:     page.ComputeGeometry(testCols, testRows, widgets, gridRows),
		Widgets:  widgets,
		Cover:    preload.Cover{Phase: preload.PhaseDone, Fill: 1, Caption: 1, Exit: 1},
		Header:   page.Entrance{Opacity: 1},
		Gauge:    ambient.InitialGauge(),
		Mood:     page.MoodView{Fade: page.Entrance{Opacity: 1}},
		Clock:    page.CountdownView{Days: 23, Hours: 12, Month: ambient.MonthOf(c.CountdownTarget(), now)},
		Gallery:  page.GalleryView{ScreenY: 1e6},
	}
	f.Entrances = make([]page.Entrance, len(widgets))
	for i := range f.Entrances {
		f.Entrances[i] = page.Entrance{Opacity: 1}
	}
	steps := c.Quiz.GateSteps()
	f.Gate = page.GateView{Len: len(steps), Step: steps[0]}
	return f
}

func compose(f *page.Frame) *Buffer {
	b := NewBuffer(testCols, testRows)
	Compose(b, f)
	return b
}

func contains(b *Buffer, s string) bool {
	_, h := b.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(b.Row(y), s) {
			return true
		}
	}
	return false
}

func TestBlendModes(t *testing.T) {
	if got := Blend(RGB{0, 0, 0}, RGB{200, 100, 50}, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected half blend {100 50 25}, got %v", got)
	}
	if got := Difference(RGB{250, 10, 100}, RGB{250, 250, 250}, 1); got != (RGB{0, 240, 150}) {
		t.Errorf("Expected difference {0 240 150}, got %v", got)
	}
	if got := Add(RGB{200, 0, 0}, RGB{100, 0, 0}, 1); got.R != 255 {
		t.Errorf("Expected additive clamp at 255, got %d", got.R)
	}
	if got := Lerp(RGB{0, 0, 0}, RGB{255, 255, 255}, 2); got != RgbWhite {
		t.Errorf("Expected lerp clamped to end, got %v", got)
	}
}

func TestBufferSetKeepsGlyphOnZeroRune(t *testing.T) {
	b := NewBuffer(3, 1)
	b.Set(1, 0, 'x', RgbInk, RgbCard, BlendReplace, 1, AttrBold)
	b.Set(1, 0, 0, RgbBlack, RgbBlack, BlendAlpha, 0.5, AttrNone)

	c := b.Get(1, 0)
	if c.Rune != 'x' || c.Attrs != AttrBold {
		t.Errorf("Expected glyph kept under a tint, got %q %v", c.Rune, c.Attrs)
	}
	if c.Bg != Blend(RgbCard, RgbBlack, 0.5) {
		t.Errorf("Expected tinted background, got %v", c.Bg)
	}
	b.Set(5, 5, 'y', RgbInk, RgbInk, BlendReplace, 1, AttrNone)
}

func TestSetStringClips(t *testing.T) {
	b := NewBuffer(5, 1)
	if n := b.SetString(3, 0, "abc", RgbInk, RgbCard, BlendReplace, 1, AttrNone); n != 2 {
		t.Errorf("Expected 2 columns written, got %d", n)
	}
	if got := b.Row(0); got != "   ab" {
		t.Errorf("Expected clipped row, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("because i need chaos", 10)
	want := []string{"because i", "need chaos"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := wrap("abcdefghij", 4); len(got) != 3 || got[2] != "ij" {
		t.Errorf("Expected long word split, got %q", got)
	}
}

func TestCoverHidesPage(t *testing.T) {
	f := newFrame(t)
	f.Cover = preload.Cover{Phase: preload.PhaseHold, Fill: 1, Caption: 1}
	b := compose(f)

	if !contains(b, f.Content.Title) || !contains(b, f.Content.Preload.Caption) {
		t.Error("Expected title and caption on the curtain")
	}
	if contains(b, f.Content.Header.Tag) {
		t.Error("Expected header hidden under the curtain")
	}
}

func TestCoverExitRevealsBottom(t *testing.T) {
	f := newFrame(t)
	f.Cover = preload.Cover{Phase: preload.PhaseExit, Fill: 1, Caption: 1, Exit: 0.5}
	b := compose(f)

	if got := b.Get(0, testRows-1).Bg; got == RgbCurtain {
		t.Error("Expected the lower half uncovered mid-exit")
	}
	if got := b.Get(0, 0).Bg; got != RgbCurtain {
		t.Errorf("Expected the top still covered, got %v", got)
	}
}

func TestPageShowsWidgets(t *testing.T) {
	f := newFrame(t)
	b := compose(f)

	for _, want := range []string{
		f.Content.Header.Tag,
		f.Content.Dossier.Front,
		f.Gate.Step.Prompt,
		f.Gate.Step.Answers[0],
		f.Content.Moods.Items[0].Name,
		"23d : 12h",
		"S  M  T  W  T  F  S",
		f.Content.Gauge.Title,
		"[ " + f.Content.Ticket.Locked + " ]",
	} {
		if !contains(b, want) {
			t.Errorf("Expected %q on the page", want)
		}
	}
	if contains(b, f.Content.Ticket.Action) {
		t.Error("Expected no ticket action while locked")
	}
}

func TestUnlockedTicketShowsAction(t *testing.T) {
	f := newFrame(t)
	f.State.Unlocked = true
	f.Gate.Unlocked = true
	b := compose(f)

	if !contains(b, f.Content.Ticket.Action) {
		t.Error("Expected ticket action once unlocked")
	}
	if !contains(b, f.Content.Quiz.Granted) {
		t.Error("Expected quiz granted message")
	}
}

func TestGaugeCriticalStatus(t *testing.T) {
	f := newFrame(t)
	f.Gauge = ambient.GaugeState{Value: 100, Target: 100, Critical: true}
	b := compose(f)
	if !contains(b, f.Content.Gauge.Critical) || contains(b, f.Content.Gauge.Stable) {
		t.Error("Expected critical status text")
	}
}

func TestBookingOverlayForm(t *testing.T) {
	f := newFrame(t)
	f.State.Unlocked = true
	f.State.Selected = f.State.Booking
	f.Expand = page.ExpandView{
		Visible:  true,
		Shown:    f.State.Booking,
		Bounds:   f.Geom.Overlay(),
		Progress: 1,
		Backdrop: 0.8,
		Payload:  expand.PayloadBooking,
	}
	b := compose(f)

	for _, want := range []string{f.Content.Form.Title, f.Content.Form.Placeholder, f.Content.Form.Submit, "[×]"} {
		if !contains(b, want) {
			t.Errorf("Expected %q in the booking form", want)
		}
	}

	f.State.Message = "Because chaos"
	b = compose(f)
	if !contains(b, "Because chaos▏") || !contains(b, "13/280") {
		t.Error("Expected typed message with cursor and counter")
	}
}

func TestGenericOverlayDetail(t *testing.T) {
	f := newFrame(t)
	f.Expand = page.ExpandView{
		Visible:  true,
		Shown:    "muse",
		Bounds:   f.Geom.Overlay(),
		Progress: 1,
		Payload:  expand.PayloadGeneric,
	}
	b := compose(f)
	if !contains(b, f.Content.Detail.Title) || contains(b, f.Content.Form.Title) {
		t.Error("Expected generic detail, not the booking form")
	}
}

func TestReceiptRedirectCountdown(t *testing.T) {
	f := newFrame(t)
	f.State.Unlocked = true
	f.State.Selected = f.State.Booking
	f.State.Message = "chaos"
	f.State.Submitted = true
	rc := receipt.Build(now, f.Content.Applicant, "chaos", receipt.Template{
		Issuer: "Nagar Systems",
		Title:  "Official Receipt",
		Status: "Pending Review",
		Note:   "Redirecting to Management...",
	}, language.English)
	f.Receipt = &rc
	f.RedirectIn = 3200 * time.Millisecond
	f.Expand = page.ExpandView{
		Visible:  true,
		Shown:    f.State.Booking,
		Bounds:   f.Geom.Overlay(),
		Progress: 1,
		Payload:  expand.PayloadBooking,
	}
	b := compose(f)

	for _, want := range []string{"NAGAR SYSTEMS", rc.Number, "Redirecting in 4s"} {
		if !contains(b, want) {
			t.Errorf("Expected %q on the receipt", want)
		}
	}
	if contains(b, f.Content.Form.Submit) {
		t.Error("Expected the form replaced by the receipt")
	}
}

func TestRendererDrawsToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(testCols, testRows)

	f := newFrame(t)
	r := New(screen)
	r.Draw(f)

	x, y := f.Geom.Header.X, f.Geom.Header.Y
	got, _, _, _ := screen.GetContent(x, y)
	if want := []rune(f.Content.Header.Tag)[0]; got != want {
		t.Errorf("Expected %q at header origin, got %q", want, got)
	}
}
