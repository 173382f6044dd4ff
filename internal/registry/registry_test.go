package registry

import (
	"testing"

	"github.com/vovakirdan/leap-of-faith/internal/core"
)

func TestRosterRegisterAndLookup(t *testing.T) {
	Register(HeroInfo{ID: "test-b", Title: "Test B", Slot: 11, Color: core.ColorGreen})
	Register(HeroInfo{ID: "test-a", Title: "Test A", Slot: 10, Color: core.ColorRed})

	h, ok := Lookup("test-a")
	if !ok {
		t.Fatal("Lookup(test-a) not found")
	}
	if h.Title != "Test A" || h.Key() != "11" {
		t.Errorf("Lookup(test-a) = %+v, expected Test A on key 11", h)
	}

	h, ok = ByIndex(11)
	if !ok || h.ID != "test-b" {
		t.Errorf("ByIndex(11) = (%+v, %v), expected test-b", h, ok)
	}
	if _, ok := ByIndex(99); ok {
		t.Error("ByIndex(99) found a hero, expected none")
	}
	if !Exists("test-b") || Exists("nobody") {
		t.Error("Exists() returned unexpected results")
	}

	list := List()
	prev := -1
	for _, h := range list {
		if h.Slot <= prev {
			t.Errorf("List() not sorted by slot: %v", list)
		}
		prev = h.Slot
	}
}

func TestRosterRegisterDuplicatePanics(t *testing.T) {
	Register(HeroInfo{ID: "test-dup", Slot: 20})

	tests := []struct {
		name string
		hero HeroInfo
	}{
		{"duplicate id", HeroInfo{ID: "test-dup", Slot: 21}},
		{"duplicate slot", HeroInfo{ID: "test-other", Slot: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register(tt.hero)
		})
	}
}
