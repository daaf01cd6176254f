package sheet

import (
	"fmt"
	"sync"

	"github.com/jask/sheetkit/internal/eventbus"
)

type dialog struct{ name string }

func (d *dialog) Render(p Props) string {
	return fmt.Sprintf("%s[%s] %v", d.name, p.SheetID, p.Payload)
}

// recordingBus counts publishes per topic on top of a real Local bus.
type recordingBus struct {
	*eventbus.Local
	mu        sync.Mutex
	published map[string]int
}

func newRecordingBus() *recordingBus {
	return &recordingBus{Local: eventbus.NewLocal(), published: make(map[string]int)}
}

func (b *recordingBus) Publish(topic string, payload any) {
	b.mu.Lock()
	b.published[topic]++
	b.mu.Unlock()
	b.Local.Publish(topic, payload)
}

func (b *recordingBus) count(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.published[topic]
}

type countingHandle struct{ shows int }

func (h *countingHandle) Show() { h.shows++ }

type event struct {
	kind    string
	scope   string
	id      string
	payload any
}

type recordingObserver struct{ events []event }

func (o *recordingObserver) SheetShown(scope, id string, payload any) {
	o.events = append(o.events, event{kind: "show", scope: scope, id: id, payload: payload})
}

func (o *recordingObserver) SheetClosed(scope, id string) {
	o.events = append(o.events, event{kind: "close", scope: scope, id: id})
}
