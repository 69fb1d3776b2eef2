package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/content"
	"github.com/lixenwraith/archive/page"
	"github.com/lixenwraith/archive/vmath"
)

var weekdays = [7]string{"S", "M", "T", "W", "T", "F", "S"}

func drawHeader(b *Buffer, f *page.Frame) {
	alpha := f.Header.Opacity
	if alpha <= 0 {
		return
	}
	r := cells(page.OnScreen(f.Geom.Header, f.ScrollY).Translate(vmath.V2(0, f.Header.Rise)))
	p := pen{b: b, area: r, alpha: alpha}
	p.text(0, 0, f.Content.Header.Tag, RgbCritical, AttrBold)
	p.text(0, 2, f.Content.Title, RgbBright, AttrBold)
	p.right(2, "SUBJECT: "+strings.ToUpper(f.Content.Subject), RgbMuted, AttrNone)
	p.text(0, r.H-1, strings.Repeat("─", r.W), RgbBorder, AttrNone)
}

func drawCard(b *Buffer, f *page.Frame, i int) {
	w := f.Widgets[i]
	alpha := 1.0
	if i < len(f.Entrances) {
		alpha = f.Entrances[i].Opacity
	}
	if alpha <= 0 {
		return
	}
	px := f.Card(i)
	r := cells(px)

	// The overlay owns the widget while it is expanded; leave its outline behind
	if f.Expand.Visible && f.Expand.Shown == w.ID {
		box(b, r, RgbBackground, RgbBorder, alpha)
		return
	}

	switch w.Kind {
	case content.KindDossier:
		drawDossier(b, f, r, alpha)
	case content.KindQuiz:
		drawQuiz(b, f, px, alpha)
	case content.KindPlaylist:
		drawPlaylist(b, f, px, alpha)
	case content.KindCalendar:
		drawCalendar(b, f, r, alpha)
	case content.KindGauge:
		drawGauge(b, f, r, alpha)
	case content.KindTicket:
		drawTicket(b, f, px, alpha)
	default:
		box(b, r, RgbCard, RgbBorder, alpha)
	}

	if w.ID != f.State.Booking {
		c := cells(page.ExpandControl(px))
		b.SetFgString(c.X, c.Y, "[+]", RgbMuted, alpha, AttrNone)
	}
}

// drawDossier flips around the vertical axis by squeezing the card width
func drawDossier(b *Buffer, f *page.Frame, r vmath.CellRect, alpha float64) {
	d := f.Content.Dossier
	squeeze := math.Abs(math.Cos(math.Pi * f.Flip))
	w := max(int(math.Round(float64(r.W)*squeeze)), 2)
	face := vmath.CellRect{X: r.X + (r.W-w)/2, Y: r.Y, W: w, H: r.H}

	if f.Flip <= 0.5 {
		box(b, face, RgbCard, RgbBorder, alpha)
		p := pen{b: b, area: inner(face), alpha: alpha}
		p.center(p.area.H/2-1, d.Front, RgbBright, AttrBold)
		p.center(p.area.H-1, d.Hint, RgbMuted, AttrItalic)
		return
	}

	box(b, face, RgbPaper, RgbMuted, alpha)
	p := pen{b: b, area: inner(face), alpha: alpha}
	p.text(0, 0, strings.ToUpper(d.Heading), RgbPaperInk, AttrBold)
	for j, row := range d.Rows {
		y := 2 + 2*j
		p.text(0, y, row.Key, RgbMuted, AttrNone)
		fg := RgbPaperInk
		if strings.Contains(row.Value, "CRITICAL") {
			fg = RgbCritical
		}
		p.right(y, row.Value, fg, AttrBold)
	}
	p.right(p.area.H-1, " "+strings.ToUpper(d.Stamp)+" ", RgbCritical, AttrBold|AttrReverse)
}

func drawQuiz(b *Buffer, f *page.Frame, px vmath.Rect, alpha float64) {
	q := f.Content.Quiz
	g := f.Gate
	shaken := px.Translate(vmath.V2(g.Shake, 0))
	r := cells(shaken)

	border := RgbBorder
	if g.Failed {
		border = RgbCritical
	}
	box(b, r, RgbCard, border, alpha)
	p := pen{b: b, area: inner(r), alpha: alpha}
	p.text(0, 0, strings.ToUpper(q.Heading), RgbMuted, AttrBold)

	if g.Unlocked {
		p.right(0, fmt.Sprintf("%d/%d", g.Len, g.Len), RgbGranted, AttrNone)
		p.center(p.area.H/2, q.Granted, RgbGranted, AttrBold)
		return
	}

	p.right(0, fmt.Sprintf("%d/%d", g.Index+1, g.Len), RgbMuted, AttrNone)
	p.text(0, 1, g.Step.Prompt, RgbBright, AttrNone)
	for a, answer := range g.Step.Answers {
		c := cells(page.AnswerButton(shaken, a))
		fg := RgbInk
		if g.Failed {
			fg = RgbCritical
		}
		b.SetFgString(c.X, c.Y, fit("› "+answer, c.W), fg, alpha, AttrNone)
	}
}

func drawPlaylist(b *Buffer, f *page.Frame, px vmath.Rect, alpha float64) {
	m := f.Content.Moods
	r := cells(px)
	box(b, r, RgbCard, RgbBorder, alpha)
	p := pen{b: b, area: inner(r), alpha: alpha}
	p.text(0, 0, "● "+strings.ToUpper(m.Heading), RgbSpotify, AttrBold)

	n := len(m.Items)
	for i := range n {
		c := cells(page.MoodDot(px, i, n))
		dot, fg := "○", RgbDim
		if i == f.Mood.Active {
			dot, fg = "●", RgbSpotify
		}
		b.SetFgString(c.X, c.Y, dot, fg, alpha, AttrNone)
	}

	if f.Mood.Active < 0 || f.Mood.Active >= n {
		return
	}
	mood := m.Items[f.Mood.Active]
	fade := pen{b: b, area: p.area, alpha: alpha * f.Mood.Fade.Opacity}
	dy := 3 + riseCells(f.Mood.Fade.Rise)
	fade.text(0, dy, mood.Name, RgbBright, AttrBold)
	fade.text(0, dy+1, mood.Artist, RgbMuted, AttrNone)
	fade.text(0, p.area.H-1, strings.Repeat("▁▃▅▇▅▃", p.area.W/6+1), RgbSpotify, AttrNone)
}

func drawCalendar(b *Buffer, f *page.Frame, r vmath.CellRect, alpha float64) {
	cal := f.Content.Calendar
	clock := f.Clock
	box(b, r, RgbCard, RgbBorder, alpha)
	p := pen{b: b, area: inner(r), alpha: alpha}

	p.text(0, 0, strings.ToUpper(cal.Label), RgbMuted, AttrBold)
	p.text(0, 1, fmt.Sprintf("%dd : %dh", clock.Days, clock.Hours), RgbBright, AttrBold)

	month := clock.Month
	p.text(0, 3, fmt.Sprintf("%s %d", month.Month, month.Year), RgbAccent, AttrNone)

	// Sunday-first grid, three columns per day
	const stride = 3
	weeks := month.Weeks()
	if p.area.W >= 7*stride-1 && p.area.H >= 5+len(weeks)+2 {
		for d, name := range weekdays {
			p.text(d*stride+1, 4, name, RgbDim, AttrNone)
		}
		for row, week := range weeks {
			for d, day := range week {
				if day == 0 {
					continue
				}
				fg, attrs := RgbInk, AttrNone
				switch {
				case day == month.Target:
					fg, attrs = RgbAccent, AttrBold|AttrReverse
				case day == month.Today:
					attrs = AttrUnderline
				}
				p.text(d*stride, 5+row, fmt.Sprintf("%2d", day), fg, attrs)
			}
		}
	}

	p.text(0, p.area.H-2, cal.Destination, RgbBright, AttrBold)
	p.text(0, p.area.H-1, cal.Hint, RgbMuted, AttrItalic)
}

func drawGauge(b *Buffer, f *page.Frame, r vmath.CellRect, alpha float64) {
	txt := f.Content.Gauge
	g := f.Gauge
	box(b, r, RgbCard, RgbBorder, alpha)
	if g.Critical {
		b.Fill(vmath.CellRect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, 0, RGB{}, RgbCritical, BlendAlphaBg, 0.1*alpha)
	}
	p := pen{b: b, area: inner(r), alpha: alpha}

	status, tone := txt.Stable, RgbGranted
	if g.Critical {
		status, tone = txt.Critical, RgbCritical
	}
	p.text(0, 0, strings.ToUpper(txt.Label), RgbMuted, AttrBold)
	p.right(0, "●", tone, AttrNone)
	p.text(0, 1, txt.Title, RgbBright, AttrItalic)

	mid := p.area.H / 2
	p.text(0, mid, fmt.Sprintf("%d", int(math.Round(g.Value))), RgbBright, AttrBold)
	p.text(4, mid, "%", RgbMuted, AttrNone)

	filled := int(math.Round(vmath.Clamp01(g.Value/constants.GaugeMax) * float64(p.area.W)))
	bar := RgbBright
	if g.Critical {
		bar = RgbCritical
	}
	p.text(0, mid+2, strings.Repeat("━", p.area.W), RgbBorder, AttrNone)
	p.text(0, mid+2, strings.Repeat("━", filled), bar, AttrNone)
	p.text(0, p.area.H-1, status, tone, AttrBold)
}

// drawTicket renders the booking card; locked tickets are washed out behind a badge
func drawTicket(b *Buffer, f *page.Frame, px vmath.Rect, alpha float64) {
	t := f.Content.Ticket
	r := cells(px)
	locked := !f.State.Unlocked

	surface, ink := RgbPaper, RgbPaperInk
	if locked {
		surface, ink = Scale(Grayscale(RgbPaper), 0.5), Grayscale(RgbMuted)
	}
	box(b, r, surface, RgbMuted, alpha)
	p := pen{b: b, area: inner(r), alpha: alpha}
	if locked {
		p.alpha = alpha * 0.5
	}

	p.text(0, 0, t.Title, ink, AttrBold)
	p.right(0, " "+strings.ToUpper(t.Badge)+" ", RgbCritical, AttrBold|AttrReverse)
	p.text(0, 2, "LOCATION", RgbMuted, AttrNone)
	p.text(0, 3, t.Location, ink, AttrBold)
	p.right(2, "PRICE", RgbMuted, AttrNone)
	p.right(3, t.Price, ink, AttrBold)

	if locked {
		label := "[ " + t.Locked + " ]"
		lp := pen{b: b, area: p.area, alpha: alpha}
		lp.center(p.area.H/2, label, RgbBright, AttrBold|AttrReverse)
		return
	}

	c := cells(page.SelectDateButton(px))
	action := fit(t.Action+" →", c.W)
	b.Fill(c, ' ', RgbPaperInk, RgbPaperInk, BlendAlpha, alpha)
	b.SetFgString(centered(c.X, c.W, action), c.Y, action, RgbPaper, alpha, AttrBold)
}
