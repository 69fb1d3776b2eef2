package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"

	"github.com/lixenwraith/archive/ambient"
	"github.com/lixenwraith/archive/browser"
	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/content"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/events"
	"github.com/lixenwraith/archive/expand"
	"github.com/lixenwraith/archive/gallery"
	"github.com/lixenwraith/archive/gate"
	"github.com/lixenwraith/archive/input"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/physics"
	"github.com/lixenwraith/archive/pointer"
	"github.com/lixenwraith/archive/preload"
	"github.com/lixenwraith/archive/receipt"
	"github.com/lixenwraith/archive/status"
	"github.com/lixenwraith/archive/vmath"
)

// DefaultRedirectURL is the post-submit deep link when neither env nor content set one
const DefaultRedirectURL = "https://www.instagram.com/direct/inbox/"

// Mailer sends the booking message without blocking
type Mailer interface {
	Send(msg string)
}

// Cues plays feedback sounds
type Cues interface {
	PlayClick()
	PlayError()
	PlayUnlock()
	PlaySubmit()
}

type silentCues struct{}

func (silentCues) PlayClick()  {}
func (silentCues) PlayError()  {}
func (silentCues) PlayUnlock() {}
func (silentCues) PlaySubmit() {}

// Config carries the controller's collaborators
// Content, Timers, Scheduler and Bus are required, the rest have defaults
type Config struct {
	Content   *content.Content
	Timers    *engine.TimerQueue
	Scheduler *engine.FrameScheduler
	Bus       *events.Bus

	Rand        *rand.Rand
	Mailer      Mailer
	Opener      browser.Opener
	Cues        Cues
	Status      *status.Registry
	Logger      *slog.Logger
	RedirectURL string
	Language    language.Tag
	Debug       bool
}

// Controller owns every page component and is driven from the loop goroutine only
type Controller struct {
	cfg    Config
	bus    *events.Bus
	timers *engine.TimerQueue
	sched  *engine.FrameScheduler
	logger *slog.Logger
	scope  *engine.Scope
	input  *input.Service

	state    State
	widgets  []Widget
	gridRows int
	geom     Geometry
	scene    *layout.Scene
	quit     bool

	preload   *preload.Sequencer
	follower  *pointer.Follower
	gallery   *gallery.Gallery
	scroll    *gallery.SmoothScroll
	gate      *gate.Machine
	expand    *expand.Controller
	gauge     *ambient.Gauge
	countdown *ambient.Countdown

	flip     *physics.Tween
	flipped  bool
	mood     int
	moodFade *physics.Tween

	receipt  *receipt.Receipt
	redirect *engine.Timer
	pressed  []*layout.Element

	mAnimators *atomic.Int64
	mTimers    *atomic.Int64
	mFrames    *atomic.Int64
	mGateStep  *atomic.Int64
	mUnlocked  *atomic.Bool
	mGauge     *status.Gauge
	mScroll    *status.Gauge
}

// NewController builds every component from content; nothing runs until Start
func NewController(cfg Config) (*Controller, error) {
	if cfg.Content == nil || cfg.Timers == nil || cfg.Scheduler == nil || cfg.Bus == nil {
		return nil, errors.New("page: content, timers, scheduler and bus are required")
	}
	if cfg.Rand == nil {
		seed := uint64(cfg.Timers.Now().UnixNano())
		cfg.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if cfg.Cues == nil {
		cfg.Cues = silentCues{}
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = cfg.Content.RedirectURL
	}
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = DefaultRedirectURL
	}
	if cfg.Language == language.Und {
		cfg.Language = language.English
	}

	widgets, gridRows, err := BuildWidgets(cfg.Content)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		bus:      cfg.Bus,
		timers:   cfg.Timers,
		sched:    cfg.Scheduler,
		logger:   cfg.Logger,
		scope:    engine.NewScope(),
		state:    NewState(cfg.Content.Special),
		widgets:  widgets,
		gridRows: gridRows,
		scene:    layout.NewScene(vmath.Rect{}),

		follower:  pointer.NewFollower(cfg.Scheduler, physics.PointerSpring),
		gallery:   gallery.New(cfg.Scheduler, len(cfg.Content.Gallery)),
		scroll:    gallery.NewSmoothScroll(0),
		expand:    expand.NewController(cfg.Scheduler, cfg.Content.Special),
		gauge:     ambient.NewGauge(cfg.Rand, cfg.Scheduler),
		countdown: ambient.NewCountdown(cfg.Content.CountdownTarget()),
		flip:      physics.NewTween(0, vmath.EaseInOut),
		moodFade:  physics.NewTween(1, vmath.Power3Out),

		mAnimators: cfg.Status.Ints.Get(status.KeyAnimators),
		mTimers:    cfg.Status.Ints.Get(status.KeyTimers),
		mFrames:    cfg.Status.Ints.Get(status.KeyFrames),
		mGateStep:  cfg.Status.Ints.Get(status.KeyGateStep),
		mUnlocked:  cfg.Status.Bools.Get(status.KeyUnlocked),
		mGauge:     cfg.Status.Floats.Get(status.KeyGauge),
		mScroll:    cfg.Status.Floats.Get(status.KeyScrollY),
	}
	c.input = input.NewService(cfg.Bus, c)
	c.preload = preload.New(func() { c.bus.Publish(events.EventPreloadReady, nil) })
	c.scroll.OnScroll = func(y float64, dt time.Duration) { c.gallery.Observe(y, dt) }

	c.gate, err = gate.New(cfg.Content.Quiz.GateSteps(), cfg.Timers,
		gate.WithOnUnlock(func() { c.bus.Publish(events.EventGateUnlocked, nil) }),
		gate.WithOnFail(func() { c.bus.Publish(events.EventGateFailed, nil) }),
	)
	if err != nil {
		return nil, fmt.Errorf("page gate: %w", err)
	}
	return c, nil
}

// Start mounts the page for a cols x rows viewport
func (c *Controller) Start(cols, rows int) {
	c.Resize(cols, rows)

	c.follower.Attach(c.bus, c.scope)
	c.preload.Start(c.timers, c.scope)
	c.gauge.Start(c.timers, c.scope)
	c.countdown.Start(c.timers, c.scope)

	c.subscribe(events.EventPreloadReady, func(events.Event) {
		c.Dispatch(Loaded{At: c.timers.Now()})
		c.logger.Info("page loaded")
	})
	c.subscribe(events.EventGateUnlocked, func(events.Event) {
		c.Dispatch(Unlock{})
	})
	c.subscribe(events.EventGateFailed, func(events.Event) {
		c.cfg.Cues.PlayError()
	})
	c.subscribe(events.EventSubmitted, func(ev events.Event) {
		msg := ev.Payload.(*events.SubmitPayload).Message
		if c.cfg.Mailer != nil {
			c.cfg.Mailer.Send(msg)
		} else {
			c.logger.Warn("no mailer configured, message dropped")
		}
		c.cfg.Cues.PlaySubmit()
	})
	c.subscribe(events.EventPointerDown, c.onPointerDown)
	c.subscribe(events.EventPointerUp, c.onPointerUp)
	c.subscribe(events.EventScroll, c.onScroll)
	c.subscribe(events.EventKey, c.onKey)
	c.subscribe(events.EventResize, func(ev events.Event) {
		p := ev.Payload.(*events.ResizePayload)
		c.Resize(p.Cols, p.Rows)
	})
	c.subscribe(events.EventQuit, func(events.Event) { c.quit = true })

	c.scope.Add(c.gate.Close)
	c.scope.Add(c.gallery.Release)
	c.scope.AddAnimator(c.sched, c.scroll)
	c.scope.AddAnimator(c.sched, c.expand)
	c.scope.AddAnimator(c.sched, c.flip)
	c.scope.AddAnimator(c.sched, c.moodFade)
}

func (c *Controller) subscribe(t events.EventType, fn events.HandlerFunc) {
	c.scope.Add(c.bus.Subscribe(t, fn))
}

// Close releases every timer, subscription and scheduled animator
func (c *Controller) Close() {
	c.scope.Close()
}

// Done reports whether quit was requested
func (c *Controller) Done() bool {
	return c.quit
}

// Scene implements input.SceneSource
func (c *Controller) Scene() *layout.Scene {
	return c.scene
}

// State returns the reducer state
func (c *Controller) State() State {
	return c.state
}

// Handle feeds one terminal event through the input service and drains the bus
// Returns false once quit was requested
func (c *Controller) Handle(ev tcell.Event) bool {
	c.input.Handle(ev)
	c.bus.Dispatch()
	return !c.quit
}

// Resize recomputes the page layout for a new viewport
func (c *Controller) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	geom := ComputeGeometry(cols, rows, c.widgets, c.gridRows)
	vw := float64(cols) * constants.CellWidthPx
	vh := float64(rows) * constants.CellHeightPx
	c.gallery.Resize(vw, geom.GalleryTopPx())
	c.geom = geom.WithGallery(pxToCells(c.gallery.Height(vh)))
	c.scroll.SetLimit(c.geom.ScrollLimit())
	c.logger.Debug("resize", "cols", cols, "rows", rows, "page_rows", c.geom.PageHeight)
}

// Dispatch reduces a and runs the effects of the transition
func (c *Controller) Dispatch(a Action) error {
	prev := c.state
	next, err := Reduce(prev, a)
	if err != nil {
		c.logger.Debug("action rejected", "action", fmt.Sprintf("%T", a), "error", err)
		c.cfg.Cues.PlayError()
		return err
	}
	c.state = next
	c.apply(prev, next)
	return nil
}

func (c *Controller) apply(prev, next State) {
	if next.Selected != prev.Selected {
		c.expand.Sync(next.Selected, c.cardRect(next.Selected))
	}
	if next.Unlocked && !prev.Unlocked {
		c.mUnlocked.Store(true)
		c.cfg.Cues.PlayUnlock()
		c.logger.Info("gate unlocked")
	}
	if next.Submitted && !prev.Submitted {
		c.onSubmitted(next)
	}
}

func (c *Controller) onSubmitted(s State) {
	now := c.timers.Now()
	tpl := c.cfg.Content.Receipt
	r := receipt.Build(now, c.cfg.Content.Applicant, s.Message, receipt.Template{
		Issuer: tpl.Issuer,
		Title:  tpl.Title,
		Item:   tpl.Item,
		Client: tpl.Client,
		Cost:   tpl.Cost,
		Status: tpl.Status,
		Note:   tpl.Note,
	}, c.cfg.Language)
	c.receipt = &r

	c.bus.Publish(events.EventSubmitted, &events.SubmitPayload{Message: s.Message})
	c.redirect = c.scope.AddTimer(c.timers.After(constants.RedirectDelay, c.doRedirect))
	c.logger.Info("booking submitted", "receipt", r.Number)
}

func (c *Controller) doRedirect() {
	if c.cfg.Opener != nil {
		if err := c.cfg.Opener.Open(context.Background(), c.cfg.RedirectURL); err != nil {
			c.logger.Error("redirect failed", "url", c.cfg.RedirectURL, "error", err)
		}
	}
	c.Dispatch(Redirected{})
}

// cardRect returns widget id's current on-screen rect, or the overlay when unknown
func (c *Controller) cardRect(id string) vmath.Rect {
	for i, w := range c.widgets {
		if w.ID == id {
			r := OnScreen(c.geom.Cards[i], c.scroll.Y())
			r.Y += WidgetEntrance(c.state.Loaded, i, c.sinceLoad()).Rise
			return r
		}
	}
	return c.geom.Overlay()
}

func (c *Controller) sinceLoad() time.Duration {
	if !c.state.Loaded {
		return 0
	}
	return c.timers.Now().Sub(c.state.LoadedAt)
}

func (c *Controller) onPointerDown(ev events.Event) {
	if c.preload.Blocking() {
		return
	}
	c.pressed = ev.Payload.(*events.PointerPayload).Chain
}

// onPointerUp clicks only when the release lands on what the press hit
func (c *Controller) onPointerUp(ev events.Event) {
	pressed := c.pressed
	c.pressed = nil
	if c.preload.Blocking() || len(pressed) == 0 {
		return
	}
	chain := ev.Payload.(*events.PointerPayload).Chain
	if !layout.Same(pressed, chain) {
		return
	}
	c.click(chain)
}

// click resolves the hovered chain leaf first; the first element with a meaning wins
func (c *Controller) click(chain []*layout.Element) {
	for _, el := range chain {
		id := el.ID
		switch {
		case id == IDClose || id == IDBackdrop:
			c.cfg.Cues.PlayClick()
			c.Dispatch(Close{})
			return
		case id == IDSubmit:
			c.submit()
			return
		case id == IDSelectDate:
			c.Dispatch(Select{ID: c.state.Booking})
			return
		case id == IDOverlay || id == IDField:
			return
		}
		if target, ok := stringsCut(id, prefixExpand); ok {
			c.Dispatch(Select{ID: target})
			return
		}
		if i, ok := parseIndexed(id, prefixAnswer); ok {
			c.answer(i)
			return
		}
		if i, ok := parseIndexed(id, prefixMood); ok {
			c.setMood(i)
			return
		}
		if i, ok := parseIndexed(id, prefixLink); ok {
			c.openLink(i)
			return
		}
		if w, ok := c.cfg.Content.Widget(id); ok && w.Kind == content.KindDossier {
			c.toggleFlip()
			return
		}
	}
}

func (c *Controller) answer(i int) {
	res, err := c.gate.Answer(i)
	if err != nil {
		c.logger.Debug("gate answer ignored", "choice", i, "error", err)
		return
	}
	c.mGateStep.Store(int64(c.gate.Index()))
	if res != gate.ResultWrong {
		c.cfg.Cues.PlayClick()
	}
}

func (c *Controller) setMood(i int) {
	if i < 0 || i >= len(c.cfg.Content.Moods.Items) || i == c.mood {
		return
	}
	c.mood = i
	c.moodFade.StartFrom(0, 1, constants.MoodFadeDuration)
	c.sched.Schedule(c.moodFade)
	c.cfg.Cues.PlayClick()
}

func (c *Controller) toggleFlip() {
	c.flipped = !c.flipped
	to := 0.0
	if c.flipped {
		to = 1
	}
	c.flip.Start(to, constants.CardFlipDuration)
	c.sched.Schedule(c.flip)
}

func (c *Controller) openLink(i int) {
	links := c.cfg.Content.Footer.Links
	if i < 0 || i >= len(links) || c.cfg.Opener == nil {
		return
	}
	if err := c.cfg.Opener.Open(context.Background(), links[i].URL); err != nil {
		c.logger.Error("open link failed", "url", links[i].URL, "error", err)
	}
}

func (c *Controller) submit() {
	if err := c.Dispatch(Submit{}); err != nil {
		c.logger.Debug("submit blocked", "error", err)
	}
}

// formFocused reports whether key presses edit the booking form
func (c *Controller) formFocused() bool {
	return c.state.Selected != "" && c.state.Selected == c.state.Booking && !c.state.Submitted
}

func (c *Controller) onKey(ev events.Event) {
	if c.preload.Blocking() {
		return
	}
	k := ev.Payload.(*events.KeyPayload)

	if c.formFocused() {
		text, kind := EditText(c.state.Message, k)
		switch kind {
		case FormEdited:
			c.Dispatch(EditMessage{Text: text})
		case FormSubmit:
			c.submit()
		case FormCancel:
			c.Dispatch(Close{})
		}
		return
	}

	switch k.Key {
	case tcell.KeyEscape:
		if c.state.Selected != "" {
			c.Dispatch(Close{})
			return
		}
		c.bus.Publish(events.EventQuit, nil)
	case tcell.KeyUp:
		c.scrollBy(-constants.KeyScrollStepPx)
	case tcell.KeyDown:
		c.scrollBy(constants.KeyScrollStepPx)
	case tcell.KeyPgUp:
		c.scrollBy(-c.pageStep())
	case tcell.KeyPgDn:
		c.scrollBy(c.pageStep())
	case tcell.KeyHome:
		c.scrollTo(0)
	case tcell.KeyEnd:
		c.scrollTo(c.scroll.Limit())
	case tcell.KeyRune:
		switch k.Rune {
		case ' ':
			c.scrollBy(c.pageStep())
		case 'q':
			c.bus.Publish(events.EventQuit, nil)
		}
	}
}

func (c *Controller) pageStep() float64 {
	return float64(c.geom.Rows) * constants.CellHeightPx * 0.9
}

func (c *Controller) onScroll(ev events.Event) {
	if c.preload.Blocking() {
		return
	}
	c.scrollBy(ev.Payload.(*events.ScrollPayload).DeltaY)
}

// scrollBy moves the smooth scroll target; the page is frozen under the overlay
func (c *Controller) scrollBy(delta float64) {
	if c.expand.Visible() {
		return
	}
	c.scroll.ScrollBy(delta)
	c.sched.Schedule(c.scroll)
}

func (c *Controller) scrollTo(y float64) {
	if c.expand.Visible() {
		return
	}
	c.scroll.ScrollTo(y)
	c.sched.Schedule(c.scroll)
}

// Frame captures the page at now, rebuilds the hit-test scene and re-runs hover detection
// Call after timers and animators advanced for this frame
func (c *Controller) Frame(now time.Time) *Frame {
	c.bus.Dispatch()

	f := c.snapshot(now)
	c.scene = BuildScene(f)
	f.Scene = c.scene

	c.input.Rehover()
	c.bus.Dispatch()
	f.Follower = c.follower.State()

	c.mAnimators.Store(int64(c.sched.Active()))
	c.mTimers.Store(int64(c.timers.Len()))
	c.mFrames.Store(int64(c.sched.Frames()))
	c.mGauge.Set(f.Gauge.Value)
	c.mScroll.Set(f.ScrollY)
	if c.cfg.Debug {
		f.Debug = c.cfg.Status.Lines()
	}
	return f
}

func (c *Controller) snapshot(now time.Time) *Frame {
	since := c.sinceLoad()
	scrollY := c.scroll.Y()

	f := &Frame{
		Now:      now,
		Content:  c.cfg.Content,
		State:    c.state,
		Geom:     c.geom,
		ScrollY:  scrollY,
		Widgets:  c.widgets,
		Cover:    c.preload.Cover(now),
		Blocking: c.preload.Blocking(),
		Header:   HeaderEntrance(c.state.Loaded, since),
		Follower: c.follower.State(),
		Flip:     c.flip.Value(),
		Gauge:    c.gauge.State(),
		Receipt:  c.receipt,
	}

	f.Entrances = make([]Entrance, len(c.widgets))
	for i := range c.widgets {
		f.Entrances[i] = WidgetEntrance(c.state.Loaded, i, since)
	}

	step, _ := c.gate.Current()
	f.Gate = GateView{
		Index:    c.gate.Index(),
		Len:      c.gate.Len(),
		Step:     step,
		Failed:   c.gate.Failed(),
		Unlocked: c.gate.Unlocked(),
		Shake:    c.gate.ShakeOffset(now),
	}

	fade := c.moodFade.Value()
	f.Mood = MoodView{
		Active: c.mood,
		Fade:   Entrance{Opacity: fade, Rise: constants.MoodRisePx * (1 - fade)},
	}

	f.Clock = CountdownView{
		Days:  c.countdown.Days(),
		Hours: c.countdown.Hours(),
		Done:  c.countdown.Done(),
		Month: ambient.MonthOf(c.countdown.Target(), now),
	}

	screenY, progress := c.gallery.Track.Pin(scrollY, c.gallery.SectionTop())
	vh := float64(c.geom.Rows) * constants.CellHeightPx
	items := make([]vmath.Rect, c.gallery.Track.Len())
	for i := range items {
		x, w := c.gallery.Track.ItemSpan(i)
		items[i] = vmath.R(x, screenY, w, vh).Inset(constants.GalleryItemInsetX*constants.CellWidthPx, constants.GalleryItemInsetY*constants.CellHeightPx)
	}
	f.Gallery = GalleryView{
		ScreenY:  screenY,
		Progress: progress,
		Offset:   c.gallery.Track.Offset(),
		Skew:     c.gallery.Skew.Value(),
		Items:    items,
	}

	f.Expand = ExpandView{
		Visible:  c.expand.Visible(),
		Shown:    c.expand.Shown(),
		Bounds:   c.expand.Bounds(c.geom.Overlay()),
		Progress: c.expand.Progress(),
		Backdrop: c.expand.Backdrop(),
		Payload:  c.expand.PayloadFor(c.expand.Shown()),
	}

	if c.redirect.Active() {
		f.RedirectIn = c.redirect.Deadline().Sub(now)
	}
	return f
}
