package ambient

import (
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/engine"
)

const day = 24 * time.Hour

// Remaining returns whole days and leftover whole hours until target, clamped at zero
func Remaining(now, target time.Time) (days, hours int) {
	d := target.Sub(now)
	if d <= 0 {
		return 0, 0
	}
	return int(d / day), int((d % day) / time.Hour)
}

// Countdown ticks toward a fixed instant and stops once it is reached
type Countdown struct {
	target time.Time
	timers *engine.TimerQueue
	timer  *engine.Timer

	days, hours int
	done        bool
}

// NewCountdown creates a countdown to target
func NewCountdown(target time.Time) *Countdown {
	return &Countdown{target: target}
}

// Start computes the initial reading and arms the tick
func (c *Countdown) Start(timers *engine.TimerQueue, scope *engine.Scope) {
	c.timers = timers
	if c.tick(); c.done {
		return
	}
	c.timer = scope.AddTimer(timers.Every(constants.CountdownTick, c.tick))
}

func (c *Countdown) tick() {
	now := c.timers.Now()
	c.days, c.hours = Remaining(now, c.target)
	if !now.Before(c.target) {
		c.done = true
		c.timer.Stop()
	}
}

// Days returns whole days remaining
func (c *Countdown) Days() int { return c.days }

// Hours returns leftover whole hours
func (c *Countdown) Hours() int { return c.hours }

// Done reports whether the target was reached and ticking stopped
func (c *Countdown) Done() bool { return c.done }

// Target returns the countdown instant
func (c *Countdown) Target() time.Time { return c.target }

// Ticking reports whether the periodic timer is armed
func (c *Countdown) Ticking() bool { return c.timer.Active() }
