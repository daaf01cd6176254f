package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProviderEndToEnd(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	handles := NewHandles()
	presented := &countingHandle{}
	handles.Set("confirm-dialog", presented)
	dialogComp := &dialog{name: "Dialog"}

	reg.RegisterSheet("confirm-dialog", dialogComp, "global")
	p := NewProvider(reg, bus, "", WithHandles(handles))
	p.Mount()
	t.Cleanup(p.Unmount)

	require.Empty(t, p.Elements())

	payload := map[string]string{"title": "Delete?"}
	bus.Publish(ShowTopic("confirm-dialog"), payload)

	els := p.Elements()
	require.Len(t, els, 1)
	require.Same(t, dialogComp, els[0].Component)
	require.Equal(t, "confirm-dialog", els[0].Props.SheetID)
	require.Equal(t, payload, els[0].Props.Payload)
	require.Equal(t, 1, presented.shows)

	bus.Publish(CloseTopic("confirm-dialog"), nil)
	require.Empty(t, p.Elements())
}

func TestProviderPicksUpLateRegistrations(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	redraws := 0
	p := NewProvider(reg, bus, "modal", WithRedraw(func() { redraws++ }))
	p.Mount()
	t.Cleanup(p.Unmount)
	require.Empty(t, p.IDs())

	reg.RegisterSheet("b", &dialog{name: "B"}, "modal")
	reg.RegisterSheet("a", &dialog{name: "A"}, "modal")

	require.Equal(t, []string{"a", "b"}, p.IDs())
	require.Equal(t, 3, redraws)

	bus.Publish(ShowTopic("a"), nil)
	els := p.Elements()
	require.Len(t, els, 1)
	require.Equal(t, "a", els[0].ID)
}

func TestProviderKeepsControllersAcrossResync(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	reg.RegisterSheet("a", &dialog{name: "A"}, "")
	p := NewProvider(reg, bus, "")
	p.Mount()
	t.Cleanup(p.Unmount)

	before, ok := p.Controller("a")
	require.True(t, ok)
	bus.Publish(ShowTopic("a"), "kept")

	reg.RegisterSheet("b", &dialog{name: "B"}, "")

	after, ok := p.Controller("a")
	require.True(t, ok)
	require.Same(t, before, after)
	visible, payload := after.State()
	require.True(t, visible)
	require.Equal(t, "kept", payload)
}

func TestProviderRendersLatestRegistration(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	reg.RegisterSheet("a", &dialog{name: "Old"}, "")
	p := NewProvider(reg, bus, "")
	p.Mount()
	t.Cleanup(p.Unmount)
	bus.Publish(ShowTopic("a"), 1)

	replacement := &dialog{name: "New"}
	reg.RegisterSheet("a", replacement, "")

	els := p.Elements()
	require.Len(t, els, 1)
	require.Same(t, replacement, els[0].Component)
	require.Equal(t, "New[a] 1", els[0].Render())
}

func TestProviderScopeIsolation(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	pa := NewProvider(reg, bus, "A")
	pb := NewProvider(reg, bus, "B")
	pa.Mount()
	pb.Mount()
	t.Cleanup(pa.Unmount)
	t.Cleanup(pb.Unmount)

	reg.RegisterSheet("shared", &dialog{name: "A"}, "A")

	require.Equal(t, []string{"shared"}, pa.IDs())
	require.Empty(t, pb.IDs())

	bus.Publish(ShowTopic("shared"), "p")
	require.Len(t, pa.Elements(), 1)
	require.Empty(t, pb.Elements())
}

func TestProviderUnmountStopsEverything(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	handles := NewHandles()
	handle := &countingHandle{}
	handles.Set("x", handle)
	reg.RegisterSheet("x", &dialog{name: "X"}, "")
	p := NewProvider(reg, bus, "", WithHandles(handles))
	p.Mount()
	ctl, ok := p.Controller("x")
	require.True(t, ok)

	p.Unmount()
	p.Unmount()

	bus.Publish(ShowTopic("x"), "late")
	require.Zero(t, handle.shows)
	visible, _ := ctl.State()
	require.False(t, visible)
	require.False(t, bus.HasSubscribers(RegisterTopic("")))
	require.False(t, bus.HasSubscribers(ShowTopic("x")))

	reg.RegisterSheet("y", &dialog{name: "Y"}, "")
	require.Empty(t, p.IDs())
}

func TestProviderEventsBeforeMountAreDropped(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	reg.RegisterSheet("x", &dialog{name: "X"}, "")

	bus.Publish(ShowTopic("x"), "early")

	p := NewProvider(reg, bus, "")
	p.Mount()
	t.Cleanup(p.Unmount)
	require.Empty(t, p.Elements())
}
