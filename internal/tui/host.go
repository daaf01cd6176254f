// Package tui mounts a sheet provider inside a Bubble Tea program and draws
// visible sheets as cards over the wrapped model's view.
package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheetkit/internal/eventbus"
	"github.com/jask/sheetkit/internal/sheet"
)

// RedrawMsg asks the program to re-render after a sheet changed outside the
// update loop.
type RedrawMsg struct{}

// Host is the mount point for one sheet scope. It renders its child first
// and then every visible sheet on top, most recently shown last.
type Host struct {
	child    tea.Model
	provider *sheet.Provider[sheet.Component]
	manager  *sheet.Manager
	inner    sheet.HandleRegistry
	keys     KeyMap
	styles   Styles

	width  int
	height int

	mu    sync.Mutex
	focus []string
	send  func(tea.Msg)
}

// Deps bundles what a Host needs from the rest of the application.
type Deps struct {
	Registry *sheet.Registry[sheet.Component]
	Bus      eventbus.Bus
	Manager  *sheet.Manager
	// Handles are invoked after the host raises a sheet. Optional.
	Handles  sheet.HandleRegistry
	Scope    string
	Options  []sheet.Option
}

func NewHost(child tea.Model, deps Deps) *Host {
	h := &Host{
		child:   child,
		manager: deps.Manager,
		inner:   deps.Handles,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}
	opts := append([]sheet.Option{
		sheet.WithHandles(h),
		sheet.WithRedraw(h.requestRedraw),
	}, deps.Options...)
	h.provider = sheet.NewProvider(deps.Registry, deps.Bus, deps.Scope, opts...)
	return h
}

// Attach routes redraw requests to p. Call before p.Run.
func (h *Host) Attach(p *tea.Program) {
	h.mu.Lock()
	h.send = p.Send
	h.mu.Unlock()
}

// Provider exposes the mounted provider, mainly for inspection.
func (h *Host) Provider() *sheet.Provider[sheet.Component] { return h.provider }

// Get implements sheet.HandleRegistry: showing a sheet raises it above the
// others before any application handle runs.
func (h *Host) Get(id string) (sheet.Handle, bool) {
	return sheet.HandleFunc(func() {
		h.raise(id)
		if h.inner == nil {
			return
		}
		if inner, ok := h.inner.Get(id); ok && inner != nil {
			inner.Show()
		}
	}), true
}

func (h *Host) raise(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focus = append(removeID(h.focus, id), id)
}

func (h *Host) requestRedraw() {
	h.mu.Lock()
	send := h.send
	h.mu.Unlock()
	if send == nil {
		return
	}
	// Send blocks until the event loop reads it, and the publish that got us
	// here may be running inside Update.
	go send(RedrawMsg{})
}

func (h *Host) Init() tea.Cmd {
	h.provider.Mount()
	return h.child.Init()
}

// Close unmounts the provider and all of its sheets.
func (h *Host) Close() {
	h.provider.Unmount()
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RedrawMsg:
		return h, nil
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Quit):
			h.Close()
			return h, tea.Quit
		case key.Matches(msg, h.keys.Close):
			if id, ok := h.Focused(); ok && h.manager != nil {
				h.manager.Hide(id)
				return h, nil
			}
		}
	}
	var cmd tea.Cmd
	h.child, cmd = h.child.Update(msg)
	return h, cmd
}

// Focused returns the most recently shown sheet that is still visible.
func (h *Host) Focused() (string, bool) {
	els := h.ordered()
	if len(els) == 0 {
		return "", false
	}
	return els[len(els)-1].ID, true
}

// ordered returns visible elements, most recently raised last, and drops
// focus entries for sheets that have since closed.
func (h *Host) ordered() []sheet.Element[sheet.Component] {
	els := h.provider.Elements()
	byID := make(map[string]sheet.Element[sheet.Component], len(els))
	for _, el := range els {
		byID[el.ID] = el
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	kept := h.focus[:0]
	out := make([]sheet.Element[sheet.Component], 0, len(els))
	raised := make(map[string]bool, len(h.focus))
	for _, id := range h.focus {
		el, ok := byID[id]
		if !ok {
			continue
		}
		kept = append(kept, id)
		raised[id] = true
		out = append(out, el)
	}
	h.focus = kept
	// Visible but never raised (no handle lookup yet) sorts underneath.
	var under []sheet.Element[sheet.Component]
	for _, el := range els {
		if !raised[el.ID] {
			under = append(under, el)
		}
	}
	return append(under, out...)
}

func (h *Host) View() string {
	view := h.child.View()
	els := h.ordered()
	for i, el := range els {
		card := h.renderCard(el, i == len(els)-1)
		if h.width <= 0 || h.height <= 0 {
			view = view + "\n" + card
			continue
		}
		view = composite(view, card, h.width, h.height)
	}
	return view
}

func (h *Host) renderCard(el sheet.Element[sheet.Component], focused bool) string {
	style := h.styles.Card
	if focused {
		style = h.styles.FocusedCard
	}
	var b strings.Builder
	b.WriteString(h.styles.Title.Render(el.ID))
	b.WriteString("\n\n")
	b.WriteString(h.styles.Body.Render(el.Render()))
	if focused {
		b.WriteString("\n\n")
		b.WriteString(h.styles.Hint.Render(h.keys.Close.Help().Key + " " + h.keys.Close.Help().Desc))
	}
	return style.Render(b.String())
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
