// Package sheet keeps track of the modal overlays ("sheets") an application
// can show and coordinates their visibility through an event bus.
//
// A sheet is registered once under a scope and id. A Provider mounted for
// that scope creates one Controller per registered id; the controller
// listens for show/close events on the bus and exposes the component and
// payload to render while the sheet is visible. Callers never hold a
// reference to the place a sheet is drawn, they only publish intent through
// a Manager or directly on the bus.
package sheet

// DefaultScope is used when no scope is given.
const DefaultScope = "global"

// Props are handed to a component when it is rendered.
type Props struct {
	SheetID string
	Payload any
}

// Component renders a sheet's body.
type Component interface {
	Render(p Props) string
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(p Props) string

func (f ComponentFunc) Render(p Props) string { return f(p) }

// Element is one rendered instance of a registered component.
type Element[C Component] struct {
	Scope     string
	ID        string
	Component C
	Props     Props
}

// Render draws the element's component with its props.
func (e Element[C]) Render() string {
	return e.Component.Render(e.Props)
}

// RegisterTopic is published by the registry whenever scope gains or
// replaces a sheet.
func RegisterTopic(scope string) string {
	return normalizeScope(scope) + "-on-register"
}

// ShowTopic carries the payload for showing sheet id.
func ShowTopic(id string) string { return "show_" + id }

// CloseTopic hides sheet id.
func CloseTopic(id string) string { return "onclose_" + id }

// Observer is told about every visibility transition a controller makes.
type Observer interface {
	SheetShown(scope, id string, payload any)
	SheetClosed(scope, id string)
}
