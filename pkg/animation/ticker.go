// Package animation provides the timing and progress primitives behind the
// drawerkit sliding panel.
//
// # Core Components
//
//   - [ProgressController]: owns the normalized open/close progress of the
//     drawer, advancing it under eased timed runs (Open/Close), direct drag
//     writes (DragBy), or velocity-seeded spring settles (Fling).
//
//   - [Ticker]: per-frame callback registration. Tickers are advanced by the
//     host render loop calling [StepTickers] once per frame.
//
//   - [Curve]: easing functions ([Linear], [Ease], [EaseIn], [EaseOut],
//     [EaseInOut], custom [CubicBezier]).
//
//   - [SpringSimulation]: physics integration used for fling settles.
//
//   - [Tween]: maps the controller's 0-1 value onto other ranges or types.
//
// # Scheduling
//
// The package never spawns goroutines or timers. The host drives all timed
// runs cooperatively: it calls StepTickers from its frame loop, and every
// active ticker fires once with the elapsed time since it started. A stalled
// host simply freezes animations at their last value. Controllers obtain
// tickers through a [TickerProvider]; inject one to bind animations to a
// different frame source.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [ProgressController].
// Most code should use ProgressController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// TickerProvider creates tickers. ProgressController requests its tickers
// from a provider so hosts can substitute their own frame-callback source.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// frameTickerProvider registers tickers with the package frame pump.
type frameTickerProvider struct{}

func (frameTickerProvider) CreateTicker(callback func(time.Duration)) *Ticker {
	return NewTicker(callback)
}

// DefaultProvider is the TickerProvider used when none is injected.
var DefaultProvider TickerProvider = frameTickerProvider{}

// StepTickers advances all active tickers.
// This should be called once per frame by the host render loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
