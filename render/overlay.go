package render

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/expand"
	"github.com/lixenwraith/archive/page"
	"github.com/lixenwraith/archive/receipt"
	"github.com/lixenwraith/archive/vmath"
)

// receiptWidth is the printed slip width in cells
const receiptWidth = 36

// drawOverlay dims the page and draws the morphing widget with its payload
func drawOverlay(b *Buffer, f *page.Frame) {
	ex := f.Expand
	w, h := b.Size()
	b.Fill(vmath.CellRect{W: w, H: h}, 0, RgbBlack, RgbBlack, BlendAlpha, ex.Backdrop)

	r := cells(ex.Bounds)
	box(b, r, RgbCard, RgbAccent, 1)
	c := cells(page.CloseButton(ex.Bounds))
	b.SetFgString(c.X, c.Y, "[×]", RgbInk, 1, AttrBold)

	// Content fades in over the second half of the morph
	alpha := vmath.Clamp01((ex.Progress - 0.5) * 2)
	if alpha <= 0 {
		return
	}

	if ex.Payload != expand.PayloadBooking {
		drawDetail(b, f, r, alpha)
		return
	}
	if f.State.Submitted && f.Receipt != nil {
		drawReceipt(b, f, r, alpha)
		return
	}
	drawForm(b, f, ex.Bounds, alpha)
}

func drawDetail(b *Buffer, f *page.Frame, r vmath.CellRect, alpha float64) {
	d := f.Content.Detail
	p := pen{b: b, area: vmath.CellRect{X: r.X + 4, Y: r.Y + 2, W: max(r.W-8, 0), H: max(r.H-4, 0)}, alpha: alpha}
	p.text(0, 0, strings.ToUpper(f.Expand.Shown), RgbDim, AttrNone)
	p.text(0, 2, d.Title, RgbBright, AttrBold|AttrItalic)
	for i, line := range wrap(d.Body, p.area.W) {
		p.text(0, 4+i, line, RgbMuted, AttrNone)
	}
}

func drawForm(b *Buffer, f *page.Frame, bounds vmath.Rect, alpha float64) {
	form := f.Content.Form
	r := cells(bounds)
	p := pen{b: b, area: vmath.CellRect{X: r.X + 4, Y: r.Y, W: max(r.W-8, 0), H: r.H}, alpha: alpha}

	p.text(0, 2, form.Title, RgbBright, AttrBold|AttrItalic)
	p.text(0, 5, strings.ToUpper(form.ApplicantLabel), RgbMuted, AttrBold)
	p.text(0, 6, f.Content.Applicant, RgbInk, AttrNone)
	p.text(0, 7, strings.ToUpper(form.ReasonLabel), RgbMuted, AttrBold)

	field := cells(page.ReasonField(bounds))
	b.Fill(field, ' ', RgbBackground, RgbBackground, BlendAlpha, alpha)
	fp := pen{b: b, area: field, alpha: alpha}
	msg := f.State.Message
	if msg == "" {
		fp.text(1, 0, form.Placeholder, RgbDim, AttrItalic)
		fp.text(0, 0, "▏", RgbAccent, AttrNone)
	} else if lines := wrap(msg, field.W-1); len(lines) > 0 {
		if len(lines) > field.H {
			lines = lines[len(lines)-field.H:]
		}
		for i, line := range lines {
			fp.text(0, i, line, RgbBright, AttrNone)
		}
		last := lines[len(lines)-1]
		fp.text(runewidth.StringWidth(last), len(lines)-1, "▏", RgbAccent, AttrNone)
	}
	count := fmt.Sprintf("%d/%d", len([]rune(msg)), constants.MessageMaxLength)
	b.SetFgString(field.X+field.W-len(count), field.Y+field.H, count, RgbDim, alpha, AttrNone)

	s := cells(page.SubmitButton(bounds))
	label := fit(form.Submit, s.W-2)
	b.Fill(s, ' ', RgbBright, RgbBright, BlendAlpha, alpha)
	b.SetFgString(centered(s.X, s.W, label), s.Y, label, RgbBlack, alpha, AttrBold)
}

// drawReceipt prints the slip centered in the overlay with the redirect notice
func drawReceipt(b *Buffer, f *page.Frame, r vmath.CellRect, alpha float64) {
	rc := f.Receipt
	lines := rc.Lines()
	height := len(lines) + 12
	slip := vmath.CellRect{
		X: r.X + max((r.W-receiptWidth)/2, 1),
		Y: r.Y + max((r.H-height)/2, 1),
		W: min(receiptWidth, r.W-2),
		H: height,
	}
	b.Fill(slip, ' ', RgbPaper, RgbPaper, BlendAlpha, alpha)
	p := pen{b: b, area: vmath.CellRect{X: slip.X + 2, Y: slip.Y + 1, W: slip.W - 4, H: slip.H - 2}, alpha: alpha}

	p.center(0, strings.ToUpper(rc.Issuer), RgbPaperInk, AttrBold)
	p.center(1, strings.ToUpper(rc.Title), RgbMuted, AttrNone)
	p.text(0, 2, strings.Repeat("╌", p.area.W), RgbPaperInk, AttrNone)
	for i, kv := range lines {
		p.text(0, 3+i, strings.ToUpper(kv[0])+":", RgbPaperInk, AttrNone)
		p.right(3+i, strings.ToUpper(kv[1]), RgbPaperInk, AttrBold)
	}
	y := 3 + len(lines)
	p.text(0, y, strings.Repeat("╌", p.area.W), RgbPaperInk, AttrNone)
	p.center(y+1, rc.Note, RgbMuted, AttrItalic)

	switch {
	case f.State.Redirected:
		p.center(y+2, "Redirected", RgbMuted, AttrNone)
	case f.RedirectIn > 0:
		secs := int(math.Ceil(f.RedirectIn.Seconds()))
		p.center(y+2, fmt.Sprintf("Redirecting in %ds", secs), RgbMuted, AttrNone)
	}
	p.text(0, y+4, barcode(rc, p.area.W), RgbPaperInk, AttrNone)
	p.text(0, y+5, barcode(rc, p.area.W), RgbPaperInk, AttrNone)
}

// barcode is a decorative stripe pattern seeded by the receipt number
func barcode(rc *receipt.Receipt, w int) string {
	h := fnv.New64a()
	h.Write([]byte(rc.Number))
	bits := h.Sum64()
	var sb strings.Builder
	for i := range w {
		if bits>>(uint(i)%64)&1 == 1 {
			sb.WriteRune('▌')
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// wrap breaks s into lines of at most w columns, on spaces where possible
func wrap(s string, w int) []string {
	if w <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	width := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		for ww > w {
			if width > 0 {
				lines = append(lines, line.String())
				line.Reset()
				width = 0
			}
			head := runewidth.Truncate(word, w, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		switch {
		case width == 0:
		case width+1+ww <= w:
			line.WriteByte(' ')
			width++
		default:
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
		line.WriteString(word)
		width += ww
	}
	if width > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
