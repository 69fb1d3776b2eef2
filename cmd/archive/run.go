package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archive/audio"
	"github.com/lixenwraith/archive/browser"
	"github.com/lixenwraith/archive/config"
	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/content"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/events"
	"github.com/lixenwraith/archive/mail"
	"github.com/lixenwraith/archive/page"
	"github.com/lixenwraith/archive/render"
	"github.com/lixenwraith/archive/status"
	"github.com/lixenwraith/archive/telemetry"
)

type options struct {
	debug   bool
	mute    bool
	fps     int
	content string
}

func loadContent(path string) (*content.Content, error) {
	if path == "" {
		return content.Load()
	}
	return content.LoadFile(path)
}

func run(ctx context.Context, opts options) error {
	logFile, logger := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("dotenv not loaded", "error", err)
	}
	app, err := config.LoadApp()
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Setup(ctx, app.OTelEndpoint, version)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	c, err := loadContent(opts.content)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mARCHIVE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	reg := status.NewRegistry()

	var cues page.Cues
	if !opts.mute && app.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing muted", "error", err)
		} else {
			defer sm.Cleanup()
		}
		cues = sm
	}

	dispatcher := mail.NewDispatcher(mail.NewClient(nil), logger, reg)
	// Let an in-flight application finish before the process exits
	defer dispatcher.Wait()

	clock := engine.NewMonotonicClock()
	timers := engine.NewTimerQueue(clock.Now())
	sched := engine.NewFrameScheduler(constants.FrameInterval)
	bus := events.NewBus()

	ctrl, err := page.NewController(page.Config{
		Content:     c,
		Timers:      timers,
		Scheduler:   sched,
		Bus:         bus,
		Mailer:      dispatcher,
		Opener:      browser.SystemOpener{GOOS: runtime.GOOS},
		Cues:        cues,
		Status:      reg,
		Logger:      logger,
		RedirectURL: app.RedirectURL,
		Debug:       opts.debug,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	cols, rows := screen.Size()
	ctrl.Start(cols, rows)
	renderer := render.New(screen)

	interval := constants.FrameInterval
	if opts.fps > 0 {
		interval = time.Second / time.Duration(opts.fps)
	}
	fps := reg.Floats.Get(status.KeyFPS)
	var last time.Time

	loop := &engine.Loop[tcell.Event]{
		Clock:     clock,
		Interval:  interval,
		Timers:    timers,
		Scheduler: sched,
		OnEvent: func(ev tcell.Event) bool {
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			return ctrl.Handle(ev)
		},
		OnFrame: func(now time.Time) {
			if !last.IsZero() {
				if dt := now.Sub(last); dt > 0 {
					fps.Set(float64(time.Second) / float64(dt))
				}
			}
			last = now
			renderer.Draw(ctrl.Frame(now))
		},
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := make(chan tcell.Event, constants.InputBufferSize)
	go pump(ctx, screen, source)

	logger.Info("archive started", "version", version, "cols", cols, "rows", rows)
	err = loop.Run(ctx, source)
	logger.Info("archive stopped", "state", fmt.Sprintf("%+v", ctrl.State()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pump forwards terminal events to the loop; it is the only goroutine besides the loop that touches the screen
func pump(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		// Clean exit on terminal closure
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
