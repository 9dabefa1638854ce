package drawer

import (
	"sync"

	"github.com/go-drift/drawerkit/pkg/animation"
)

// Controller is a detached imperative handle for a [Drawer].
//
// The host application holds the controller and passes the drawer a
// reference via [Drawer.AttachController]; menu buttons and other shell glue
// then call Toggle/Open/Close without ever touching the drawer's internals.
// Calls made before attach are dropped, except that a pending Open replays
// once the drawer attaches.
type Controller struct {
	mu sync.Mutex

	openFunc   func()
	closeFunc  func()
	toggleFunc func()
	valueFunc  func() float64
	statusFunc func() animation.Status

	pendingOpen bool

	progress     float64
	listeners    map[int]func(float64)
	nextListener int
}

// NewController creates an unattached controller.
func NewController() *Controller {
	return &Controller{}
}

// Open animates the attached drawer open. Before attach, the open is
// remembered and replayed on attach.
func (c *Controller) Open() {
	c.mu.Lock()
	open := c.openFunc
	if open == nil {
		c.pendingOpen = true
	}
	c.mu.Unlock()
	if open != nil {
		open()
	}
}

// Close animates the attached drawer closed.
func (c *Controller) Close() {
	c.mu.Lock()
	c.pendingOpen = false
	closeFunc := c.closeFunc
	c.mu.Unlock()
	if closeFunc != nil {
		closeFunc()
	}
}

// Toggle closes a fully open drawer and opens it otherwise.
func (c *Controller) Toggle() {
	c.mu.Lock()
	toggle := c.toggleFunc
	c.mu.Unlock()
	if toggle != nil {
		toggle()
	}
}

// IsOpen returns true when the attached drawer is at rest fully open.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	status := c.statusFunc
	c.mu.Unlock()
	if status == nil {
		return false
	}
	return status() == animation.StatusCompleted
}

// Progress returns the drawer's current progress, or the last pushed value
// when detached.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	value := c.valueFunc
	cached := c.progress
	c.mu.Unlock()
	if value != nil {
		return value()
	}
	return cached
}

// AddProgressListener registers a callback for progress changes.
// Returns an unsubscribe function.
func (c *Controller) AddProgressListener(listener func(float64)) func() {
	if listener == nil {
		return func() {}
	}
	c.mu.Lock()
	if c.listeners == nil {
		c.listeners = make(map[int]func(float64))
	}
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = listener
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// attach binds the controller to a drawer's callbacks. A pending Open made
// before attach is executed immediately.
func (c *Controller) attach(open, closeFn, toggle func(), value func() float64, status func() animation.Status) {
	c.mu.Lock()
	c.openFunc = open
	c.closeFunc = closeFn
	c.toggleFunc = toggle
	c.valueFunc = value
	c.statusFunc = status
	if value != nil {
		c.progress = value()
	}
	pending := c.pendingOpen
	c.pendingOpen = false
	c.mu.Unlock()

	if pending && open != nil {
		open()
	}
}

// detach unbinds the controller from the drawer's callbacks.
func (c *Controller) detach() {
	c.mu.Lock()
	c.openFunc = nil
	c.closeFunc = nil
	c.toggleFunc = nil
	c.valueFunc = nil
	c.statusFunc = nil
	c.mu.Unlock()
}

// setProgress records the drawer's progress and notifies listeners.
// Called by the drawer on every progress change.
func (c *Controller) setProgress(value float64) {
	c.mu.Lock()
	if c.progress == value {
		c.mu.Unlock()
		return
	}
	c.progress = value
	// Copy listeners to avoid holding the lock during callbacks
	listeners := make([]func(float64), 0, len(c.listeners))
	for _, listener := range c.listeners {
		listeners = append(listeners, listener)
	}
	c.mu.Unlock()
	for _, listener := range listeners {
		listener(value)
	}
}
