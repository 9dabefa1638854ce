package drawer

import (
	"strings"
	"testing"
)

func menuFallback(items []MenuItem) string {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	return strings.Join(titles, ",")
}

func TestSlotsFullOverrideWins(t *testing.T) {
	s := Slots[string]{
		Full:     "full panel",
		Content:  "content only",
		Items:    []MenuItem{{Title: "Home"}},
		Fallback: menuFallback,
	}
	got, full := s.Resolve()
	if got != "full panel" {
		t.Errorf("resolved = %q, want the full override", got)
	}
	if !full {
		t.Error("full flag should be true so the host skips the head slot")
	}
}

func TestSlotsContentBeatsFallback(t *testing.T) {
	s := Slots[string]{
		Content:  "content only",
		Items:    []MenuItem{{Title: "Home"}},
		Fallback: menuFallback,
	}
	got, full := s.Resolve()
	if got != "content only" {
		t.Errorf("resolved = %q, want the content override", got)
	}
	if full {
		t.Error("full flag should be false for a content override")
	}
}

func TestSlotsFallbackBuildsFromItems(t *testing.T) {
	s := Slots[string]{
		Items:    []MenuItem{{Title: "Home"}, {Title: "Settings"}},
		Fallback: menuFallback,
	}
	got, _ := s.Resolve()
	if got != "Home,Settings" {
		t.Errorf("resolved = %q, want %q", got, "Home,Settings")
	}
}

func TestSlotsNoFallbackYieldsZero(t *testing.T) {
	s := Slots[string]{Items: []MenuItem{{Title: "Home"}}}
	got, _ := s.Resolve()
	if got != "" {
		t.Errorf("resolved = %q, want the zero value", got)
	}
}

func TestSlotsResolveHead(t *testing.T) {
	s := Slots[string]{Head: "header", Fallback: menuFallback}
	head, ok := s.ResolveHead()
	if !ok || head != "header" {
		t.Errorf("head = %q ok=%v, want %q true", head, ok, "header")
	}

	empty := Slots[string]{}
	if _, ok := empty.ResolveHead(); ok {
		t.Error("unset head should report ok=false")
	}
}

func TestSlotsCustomIsSet(t *testing.T) {
	// Hosts whose zero widget is meaningful can redefine what "set" means.
	s := Slots[string]{
		Full:  "ignore me",
		IsSet: func(string) bool { return false },
		Items: []MenuItem{{Title: "Home"}},
		Fallback: func(items []MenuItem) string {
			return "fallback"
		},
	}
	got, _ := s.Resolve()
	if got != "fallback" {
		t.Errorf("resolved = %q, want %q", got, "fallback")
	}
}

func TestSlotsNonComparableWidgetType(t *testing.T) {
	type widget []string // slices are not comparable
	s := Slots[widget]{
		Items:    []MenuItem{{Title: "Home"}},
		Fallback: func(items []MenuItem) widget { return widget{items[0].Title} },
	}
	got, _ := s.Resolve()
	if len(got) != 1 || got[0] != "Home" {
		t.Errorf("resolved = %v, want [Home]", got)
	}
}
