// Package receipt builds the booking confirmation shown after submit
package receipt

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Template is the static receipt text
type Template struct {
	Issuer string
	Title  string
	Item   string
	Client string
	Cost   string
	Status string
	Note   string
}

// Receipt is one generated confirmation
type Receipt struct {
	Template
	Number    string
	Applicant string
	Message   string
	IssuedAt  time.Time

	printer *message.Printer
}

// Build generates the receipt for a submitted message
func Build(now time.Time, applicant, msg string, tpl Template, tag language.Tag) Receipt {
	return Receipt{
		Template:  tpl,
		Number:    Number(applicant, msg),
		Applicant: applicant,
		Message:   msg,
		IssuedAt:  now,
		printer:   message.NewPrinter(tag),
	}
}

// Number derives a stable receipt number from the submission text
func Number(applicant, msg string) string {
	h := fnv.New32a()
	h.Write([]byte(applicant))
	h.Write([]byte{0})
	h.Write([]byte(strings.TrimSpace(msg)))
	return fmt.Sprintf("AR-%06d", h.Sum32()%1000000)
}

func (r Receipt) p() *message.Printer {
	if r.printer == nil {
		return message.NewPrinter(language.English)
	}
	return r.printer
}

// Date formats the issue date; digits are not grouped
func (r Receipt) Date() string {
	return r.IssuedAt.Format("Jan 2, 2006")
}

// Lines returns the receipt rows, label and value
func (r Receipt) Lines() [][2]string {
	rows := [][2]string{
		{"No.", r.Number},
		{"Date", r.Date()},
		{"Client", firstNonEmpty(r.Client, r.Applicant)},
		{"Item", r.Item},
		{"Cost", r.Cost},
		{"Status", r.Status},
		{"Chars", r.p().Sprintf("%d", len([]rune(r.Message)))},
	}
	return rows
}

// String renders the receipt as plain text
func (r Receipt) String() string {
	var b strings.Builder
	if r.Issuer != "" {
		b.WriteString(r.Issuer)
		b.WriteByte('\n')
	}
	b.WriteString(r.Title)
	b.WriteByte('\n')
	width := 0
	for _, l := range r.Lines() {
		width = max(width, len(l[0]))
	}
	for _, l := range r.Lines() {
		fmt.Fprintf(&b, "%-*s  %s\n", width, l[0], l[1])
	}
	if r.Note != "" {
		b.WriteString(r.Note)
		b.WriteByte('\n')
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
