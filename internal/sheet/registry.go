package sheet

import (
	"reflect"
	"sort"
	"sync"

	"github.com/jask/sheetkit/internal/eventbus"
)

// Registry maps scope -> sheet id -> component. Entries are never removed;
// a second registration under the same key replaces the first.
type Registry[C Component] struct {
	bus eventbus.Bus

	mu     sync.RWMutex
	scopes map[string]map[string]C
}

func NewRegistry[C Component](bus eventbus.Bus) *Registry[C] {
	return &Registry[C]{bus: bus, scopes: make(map[string]map[string]C)}
}

// RegisterSheet stores c under (scope, id) and announces it on the scope's
// register topic. An empty id or a nil component is ignored without error so
// modules can register eagerly at start-up. An empty scope means DefaultScope.
func (r *Registry[C]) RegisterSheet(id string, c C, scope string) {
	if id == "" || isNil(c) {
		return
	}
	scope = normalizeScope(scope)

	r.mu.Lock()
	bucket, ok := r.scopes[scope]
	if !ok {
		bucket = make(map[string]C)
		r.scopes[scope] = bucket
	}
	bucket[id] = c
	r.mu.Unlock()

	r.bus.Publish(RegisterTopic(scope), nil)
}

// Lookup returns the component registered under (scope, id).
func (r *Registry[C]) Lookup(scope, id string) (C, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.scopes[normalizeScope(scope)][id]
	return c, ok
}

// IDs returns the sorted ids registered in scope. The slice is rebuilt on
// every call.
func (r *Registry[C]) IDs(scope string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bucket := r.scopes[normalizeScope(scope)]
	ids := make([]string, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry[C]) Scopes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.scopes))
	for s := range r.scopes {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// AllIDs returns every registered id across all scopes, deduplicated.
func (r *Registry[C]) AllIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, bucket := range r.scopes {
		for id := range bucket {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func normalizeScope(scope string) string {
	if scope == "" {
		return DefaultScope
	}
	return scope
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
