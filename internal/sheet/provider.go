package sheet

import (
	"sync"

	"github.com/jask/sheetkit/internal/eventbus"
)

// Provider makes the sheets registered in one scope available for display.
// While mounted it keeps one Controller per registered id, recomputing the
// id set from the registry every time the scope's register topic fires.
type Provider[C Component] struct {
	reg   *Registry[C]
	bus   eventbus.Bus
	scope string
	opts  options
	raw   []Option

	mu          sync.Mutex
	mounted     bool
	sub         eventbus.Subscription
	ids         []string
	controllers map[string]*Controller[C]
}

func NewProvider[C Component](reg *Registry[C], bus eventbus.Bus, scope string, opts ...Option) *Provider[C] {
	return &Provider[C]{
		reg:         reg,
		bus:         bus,
		scope:       normalizeScope(scope),
		opts:        buildOptions(opts),
		raw:         opts,
		controllers: make(map[string]*Controller[C]),
	}
}

func (p *Provider[C]) Scope() string { return p.scope }

// Mount subscribes to the scope's register topic and mounts a controller for
// every id already registered.
func (p *Provider[C]) Mount() {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return
	}
	p.mounted = true
	p.sub = p.bus.Subscribe(RegisterTopic(p.scope), func(any) { p.sync() })
	p.mu.Unlock()

	p.sync()
}

// Unmount releases the register subscription and every controller. Safe to
// call more than once.
func (p *Provider[C]) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.mounted {
		return
	}
	p.mounted = false
	if p.sub != nil {
		p.sub.Unsubscribe()
		p.sub = nil
	}
	for _, ctl := range p.controllers {
		ctl.Unmount()
	}
	p.controllers = make(map[string]*Controller[C])
	p.ids = nil
}

func (p *Provider[C]) sync() {
	ids := p.reg.IDs(p.scope)

	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		return
	}
	next := make(map[string]*Controller[C], len(ids))
	for _, id := range ids {
		if ctl, ok := p.controllers[id]; ok {
			next[id] = ctl
			continue
		}
		ctl := NewController(p.reg, p.bus, p.scope, id, p.raw...)
		ctl.Mount()
		next[id] = ctl
	}
	for id, ctl := range p.controllers {
		if _, ok := next[id]; !ok {
			ctl.Unmount()
		}
	}
	p.controllers = next
	p.ids = ids
	p.mu.Unlock()

	p.opts.logger.Debug("sheet provider synced", "scope", p.scope, "sheets", len(ids))
	p.opts.notifyRedraw()
}

// IDs returns the ids the provider currently has controllers for.
func (p *Provider[C]) IDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

func (p *Provider[C]) Controller(id string) (*Controller[C], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctl, ok := p.controllers[id]
	return ctl, ok
}

// Elements returns the visible sheets in id order. Hosts draw them after
// the provider's children.
func (p *Provider[C]) Elements() []Element[C] {
	p.mu.Lock()
	ctls := make([]*Controller[C], 0, len(p.ids))
	for _, id := range p.ids {
		if ctl, ok := p.controllers[id]; ok {
			ctls = append(ctls, ctl)
		}
	}
	p.mu.Unlock()

	var out []Element[C]
	for _, ctl := range ctls {
		if el, ok := ctl.Element(); ok {
			out = append(out, el)
		}
	}
	return out
}
