package drawer

import "reflect"

// MenuItem is one entry of the generated default panel content.
type MenuItem struct {
	// Title is the label the renderer displays.
	Title string
	// Icon is an optional icon identifier interpreted by the renderer.
	Icon string
	// OnSelect fires when the host reports the item was chosen.
	OnSelect func()
}

// Slots resolves what the panel displays, as a precedence chain rather than
// inheritance: an explicit full override wins, then an explicit content
// override, then a default generated from Items.
//
// W is whatever the host framework renders (a widget, a view, a string for
// terminal hosts). Resolution happens once per render, by the host.
type Slots[W any] struct {
	// Full replaces the entire panel, head included.
	Full W
	// Content replaces the item list but keeps the head slot.
	Content W
	// Head is an optional header above the content slot.
	Head W
	// Items feed the fallback builder when no override is set.
	Items []MenuItem
	// Fallback builds the default panel content from Items.
	Fallback func(items []MenuItem) W

	// IsSet reports whether a slot value counts as provided. Nil treats any
	// non-zero value as set, which suits pointer and interface widget types.
	IsSet func(W) bool
}

// Resolve returns the panel content under the precedence chain
// full > content > fallback(items). The second result is true when the full
// override won, so the host knows to skip the head slot.
func (s Slots[W]) Resolve() (W, bool) {
	if s.isSet(s.Full) {
		return s.Full, true
	}
	if s.isSet(s.Content) {
		return s.Content, false
	}
	var zero W
	if s.Fallback == nil {
		return zero, false
	}
	return s.Fallback(s.Items), false
}

// ResolveHead returns the head slot value and whether it was provided.
func (s Slots[W]) ResolveHead() (W, bool) {
	return s.Head, s.isSet(s.Head)
}

func (s Slots[W]) isSet(value W) bool {
	if s.IsSet != nil {
		return s.IsSet(value)
	}
	return !isZero(value)
}

// isZero reports whether value equals the zero value of its type.
// Reflection keeps this safe for non-comparable widget types.
func isZero[W any](value W) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return true
	}
	return v.IsZero()
}
