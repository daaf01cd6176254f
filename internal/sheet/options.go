package sheet

import (
	"log/slog"
)

// Option configures a Provider or Controller.
type Option func(*options)

type options struct {
	handles  HandleRegistry
	observer Observer
	redraw   func()
	logger   *slog.Logger
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithHandles sets the registry consulted for a presentation handle each
// time a sheet becomes visible.
func WithHandles(h HandleRegistry) Option {
	return func(o *options) { o.handles = h }
}

// WithObserver reports transitions to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithRedraw sets the callback invoked after any state change that alters
// what should be drawn. It runs synchronously inside the publish that
// caused the change; hosts are expected to schedule the actual redraw.
func WithRedraw(fn func()) Option {
	return func(o *options) { o.redraw = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o options) notifyRedraw() {
	if o.redraw != nil {
		o.redraw()
	}
}

func (o options) shown(scope, id string, payload any) {
	if o.observer != nil {
		o.observer.SheetShown(scope, id, payload)
	}
}

func (o options) closed(scope, id string) {
	if o.observer != nil {
		o.observer.SheetClosed(scope, id)
	}
}

func (o options) present(id string) {
	if o.handles == nil {
		return
	}
	if h, ok := o.handles.Get(id); ok && h != nil {
		h.Show()
	}
}
