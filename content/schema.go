package content

import (
	"time"

	"github.com/lixenwraith/archive/gate"
)

// Widget kinds
const (
	KindDossier  = "dossier"
	KindPlaylist = "playlist"
	KindQuiz     = "quiz"
	KindCalendar = "calendar"
	KindGauge    = "gauge"
	KindTicket   = "ticket"
)

// TargetLayout is the calendar target format, interpreted in the local zone
const TargetLayout = "2006-01-02T15:04:05"

// Content is the showcase definition
type Content struct {
	Version     int    `yaml:"version"`
	Title       string `yaml:"title"`
	Subject     string `yaml:"subject"`
	Applicant   string `yaml:"applicant"`
	Special     string `yaml:"special"`
	RedirectURL string `yaml:"redirect_url"`

	Preload  Preload   `yaml:"preload"`
	Header   Header    `yaml:"header"`
	Widgets  []Widget  `yaml:"widgets"`
	Dossier  Dossier   `yaml:"dossier"`
	Quiz     Quiz      `yaml:"quiz"`
	Moods    Moods     `yaml:"moods"`
	Calendar Calendar  `yaml:"calendar"`
	Gauge    GaugeText `yaml:"gauge"`
	Ticket   Ticket    `yaml:"ticket"`
	Form     Form      `yaml:"form"`
	Detail   Detail    `yaml:"detail"`
	Gallery  []Place   `yaml:"gallery"`
	Footer   Footer    `yaml:"footer"`
	Receipt  Receipt   `yaml:"receipt"`

	target time.Time
}

type Preload struct {
	Caption string `yaml:"caption"`
}

type Header struct {
	Tag string `yaml:"tag"`
}

// Widget is one grid tile; identity must be unique
type Widget struct {
	ID   string `yaml:"id"`
	Kind string `yaml:"kind"`
	Cols int    `yaml:"cols"`
	Rows int    `yaml:"rows"`
}

type Dossier struct {
	Front   string `yaml:"front"`
	Hint    string `yaml:"hint"`
	Heading string `yaml:"heading"`
	Stamp   string `yaml:"stamp"`
	Rows    []Row  `yaml:"rows"`
}

type Row struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type Quiz struct {
	Heading string     `yaml:"heading"`
	Granted string     `yaml:"granted"`
	Steps   []QuizStep `yaml:"steps"`
}

type QuizStep struct {
	Prompt  string   `yaml:"prompt"`
	Answers []string `yaml:"answers"`
	Correct int      `yaml:"correct"`
}

type Moods struct {
	Heading string `yaml:"heading"`
	Items   []Mood `yaml:"items"`
}

type Mood struct {
	Name   string `yaml:"name"`
	Artist string `yaml:"artist"`
}

type Calendar struct {
	Label       string `yaml:"label"`
	Target      string `yaml:"target"`
	Destination string `yaml:"destination"`
	Hint        string `yaml:"hint"`
}

type GaugeText struct {
	Label    string `yaml:"label"`
	Title    string `yaml:"title"`
	Stable   string `yaml:"stable"`
	Critical string `yaml:"critical"`
}

type Ticket struct {
	Title    string `yaml:"title"`
	Badge    string `yaml:"badge"`
	Location string `yaml:"location"`
	Price    string `yaml:"price"`
	Action   string `yaml:"action"`
	Locked   string `yaml:"locked"`
}

type Form struct {
	Title          string `yaml:"title"`
	ApplicantLabel string `yaml:"applicant_label"`
	ReasonLabel    string `yaml:"reason_label"`
	Placeholder    string `yaml:"placeholder"`
	Submit         string `yaml:"submit"`
}

type Detail struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Place struct {
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
}

type Footer struct {
	Mark         string `yaml:"mark"`
	CuratedLabel string `yaml:"curated_label"`
	Curator      string `yaml:"curator"`
	Copyright    string `yaml:"copyright"`
	Links        []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Receipt struct {
	Issuer string `yaml:"issuer"`
	Title  string `yaml:"title"`
	Item   string `yaml:"item"`
	Client string `yaml:"client"`
	Cost   string `yaml:"cost"`
	Status string `yaml:"status"`
	Note   string `yaml:"note"`
}

// GateSteps converts the quiz into gate steps
func (q Quiz) GateSteps() []gate.Step {
	steps := make([]gate.Step, len(q.Steps))
	for i, s := range q.Steps {
		steps[i] = gate.Step{Prompt: s.Prompt, Answers: s.Answers, Correct: s.Correct}
	}
	return steps
}

// CountdownTarget returns the parsed calendar target
func (c *Content) CountdownTarget() time.Time {
	return c.target
}

// Widget returns the widget with id
func (c *Content) Widget(id string) (Widget, bool) {
	for _, w := range c.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}
