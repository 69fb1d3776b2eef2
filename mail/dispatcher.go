package mail

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/archive/config"
	"github.com/lixenwraith/archive/status"
)

// Sender is the send side of Client
type Sender interface {
	Send(ctx context.Context, cfg config.Mail, params map[string]string) error
}

// Dispatcher sends messages in the background, logging the outcome.
// Configuration is read at send time; failures never reach the caller and are not retried.
type Dispatcher struct {
	sender Sender
	load   func() (config.Mail, error)
	logger *slog.Logger
	wg     sync.WaitGroup

	sent   *atomic.Int64
	failed *atomic.Int64
}

// NewDispatcher creates a dispatcher; reg may be nil
func NewDispatcher(sender Sender, logger *slog.Logger, reg *status.Registry) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Dispatcher{
		sender: sender,
		load:   config.LoadMail,
		logger: logger,
		sent:   reg.Ints.Get(status.KeyMailSent),
		failed: reg.Ints.Get(status.KeyMailFailed),
	}
}

// SetLoader replaces the configuration source
func (d *Dispatcher) SetLoader(load func() (config.Mail, error)) {
	d.load = load
}

// Send starts delivery of msg and returns immediately
func (d *Dispatcher) Send(msg string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(msg)
	}()
}

func (d *Dispatcher) deliver(msg string) {
	cfg, err := d.load()
	if err != nil {
		d.failed.Add(1)
		d.logger.Error("mail config", "error", err)
		return
	}
	if !cfg.Complete() {
		d.failed.Add(1)
		d.logger.Error("mail not sent", "error", ErrMissingConfig)
		return
	}

	d.logger.Info("sending mail", "chars", len([]rune(msg)))
	if err := d.sender.Send(context.Background(), cfg, map[string]string{"msg": msg}); err != nil {
		d.failed.Add(1)
		d.logger.Error("mail send failed", "error", err)
		return
	}
	d.sent.Add(1)
	d.logger.Info("mail sent")
}

// Wait blocks until every started send has finished
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
