package sheet

import "sync"

// Handle drives host-level presentation for a sheet. Show is called once
// per hidden-to-visible transition and again on every repeated show.
type Handle interface {
	Show()
}

// HandleFunc adapts a function to Handle.
type HandleFunc func()

func (f HandleFunc) Show() { f() }

// HandleRegistry looks up the presentation handle for a sheet id.
type HandleRegistry interface {
	Get(id string) (Handle, bool)
}

// Handles is a goroutine-safe HandleRegistry.
type Handles struct {
	mu      sync.RWMutex
	handles map[string]Handle
}

func NewHandles() *Handles {
	return &Handles{handles: make(map[string]Handle)}
}

func (h *Handles) Set(id string, handle Handle) {
	if id == "" || handle == nil {
		return
	}
	h.mu.Lock()
	h.handles[id] = handle
	h.mu.Unlock()
}

func (h *Handles) Get(id string) (Handle, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	handle, ok := h.handles[id]
	return handle, ok
}

func (h *Handles) Remove(id string) {
	h.mu.Lock()
	delete(h.handles, id)
	h.mu.Unlock()
}
