package sheet

import (
	"sync"

	"github.com/jask/sheetkit/internal/eventbus"
)

// Controller owns the visibility of one sheet within one scope.
//
// It starts hidden. A payload published on ShowTopic(id) makes it visible;
// anything on CloseTopic(id) hides it and drops the payload. The cycle can
// repeat any number of times until Unmount.
type Controller[C Component] struct {
	reg  *Registry[C]
	bus  eventbus.Bus
	opts options

	mu      sync.Mutex
	scope   string
	id      string
	mounted bool
	gen     uint64
	visible bool
	payload any
	subs    []eventbus.Subscription
}

func NewController[C Component](reg *Registry[C], bus eventbus.Bus, scope, id string, opts ...Option) *Controller[C] {
	return &Controller[C]{
		reg:   reg,
		bus:   bus,
		opts:  buildOptions(opts),
		scope: normalizeScope(scope),
		id:    id,
	}
}

// Mount subscribes to the sheet's show and close topics. When nothing is
// registered under the controller's scope and id it stays inert: no
// subscriptions and no output.
func (c *Controller[C]) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mounted {
		return
	}
	c.mounted = true
	if _, ok := c.reg.Lookup(c.scope, c.id); !ok {
		c.opts.logger.Debug("sheet not registered, controller inert", "scope", c.scope, "sheet", c.id)
		return
	}
	gen := c.gen
	c.subs = []eventbus.Subscription{
		c.bus.Subscribe(ShowTopic(c.id), func(payload any) { c.show(gen, payload) }),
		c.bus.Subscribe(CloseTopic(c.id), func(any) { c.close(gen) }),
	}
}

// Unmount releases both subscriptions and forgets any payload. Safe to call
// more than once.
func (c *Controller[C]) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked()
	c.mounted = false
}

// Rebind moves the controller to a new identity. Subscriptions made for the
// old id are released before any are made for the new one, and the
// controller comes back hidden.
func (c *Controller[C]) Rebind(scope, id string) {
	scope = normalizeScope(scope)
	c.mu.Lock()
	if c.scope == scope && c.id == id {
		c.mu.Unlock()
		return
	}
	wasMounted := c.mounted
	c.teardownLocked()
	c.mounted = false
	c.scope, c.id = scope, id
	c.mu.Unlock()

	if wasMounted {
		c.Mount()
	}
}

func (c *Controller[C]) teardownLocked() {
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	c.subs = nil
	c.gen++
	c.visible = false
	c.payload = nil
}

func (c *Controller[C]) show(gen uint64, payload any) {
	c.mu.Lock()
	if !c.mounted || c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.visible = true
	c.payload = payload
	scope, id := c.scope, c.id
	c.mu.Unlock()

	c.opts.logger.Debug("sheet shown", "scope", scope, "sheet", id)
	c.opts.present(id)
	c.opts.shown(scope, id, payload)
	c.opts.notifyRedraw()
}

func (c *Controller[C]) close(gen uint64) {
	c.mu.Lock()
	if !c.mounted || c.gen != gen || !c.visible {
		c.mu.Unlock()
		return
	}
	c.visible = false
	c.payload = nil
	scope, id := c.scope, c.id
	c.mu.Unlock()

	c.opts.logger.Debug("sheet closed", "scope", scope, "sheet", id)
	c.opts.closed(scope, id)
	c.opts.notifyRedraw()
}

func (c *Controller[C]) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

func (c *Controller[C]) Scope() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scope
}

// State reports whether the sheet is visible and the payload it was shown
// with. The payload is nil while hidden.
func (c *Controller[C]) State() (bool, any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible, c.payload
}

// Element returns what the controller renders: one instance of the
// registered component while visible, nothing otherwise. The component is
// looked up on every call so a re-registration takes effect on the next
// draw.
func (c *Controller[C]) Element() (Element[C], bool) {
	c.mu.Lock()
	visible, payload, scope, id := c.visible, c.payload, c.scope, c.id
	c.mu.Unlock()
	if !visible {
		return Element[C]{}, false
	}
	comp, ok := c.reg.Lookup(scope, id)
	if !ok {
		return Element[C]{}, false
	}
	return Element[C]{
		Scope:     scope,
		ID:        id,
		Component: comp,
		Props:     Props{SheetID: id, Payload: payload},
	}, true
}
