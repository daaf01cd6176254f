package sheet

import (
	"log/slog"

	"github.com/agnivade/levenshtein"

	"github.com/jask/sheetkit/internal/eventbus"
)

// maxSuggestDistance bounds how far a typo may be from a registered id before
// we stop suggesting it.
const maxSuggestDistance = 3

// Manager publishes show and hide intent for sheets by id. It does not know
// where, or whether, a sheet is mounted.
type Manager struct {
	bus    eventbus.Bus
	known  func() []string
	logger *slog.Logger
}

// NewManager returns a Manager publishing on bus. known lists registered ids
// and is only used to improve the warning logged for unmounted sheets; it
// may be nil.
func NewManager(bus eventbus.Bus, known func() []string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{bus: bus, known: known, logger: logger}
}

// Show publishes payload on the sheet's show topic. With no mounted
// controller the event is dropped and a warning logged.
func (m *Manager) Show(id string, payload any) {
	topic := ShowTopic(id)
	if !m.bus.HasSubscribers(topic) {
		m.warnUnmounted(id, topic)
	}
	m.bus.Publish(topic, payload)
}

// Hide publishes on the sheet's close topic.
func (m *Manager) Hide(id string) {
	m.bus.Publish(CloseTopic(id), nil)
}

func (m *Manager) warnUnmounted(id, topic string) {
	attrs := []any{"sheet", id, "topic", topic}
	if s, ok := m.Suggest(id); ok {
		attrs = append(attrs, "did_you_mean", s)
	}
	m.logger.Warn("no mounted sheet for show event", attrs...)
}

// Suggest returns the registered id closest to id, if one is near enough
// and not id itself.
func (m *Manager) Suggest(id string) (string, bool) {
	if m.known == nil {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range m.known() {
		if k == id {
			continue
		}
		if d := levenshtein.ComputeDistance(id, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}
