package card

import (
	"reflect"
	"testing"
)

func TestMoveLinkIsAPermutation(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to last", 0, 2, []string{"b", "c", "a"}},
		{"last to first", 2, 0, []string{"c", "a", "b"}},
		{"middle up", 1, 0, []string{"b", "a", "c"}},
		{"no-op same index", 1, 1, []string{"a", "b", "c"}},
		{"target clamped high", 0, 99, []string{"b", "c", "a"}},
		{"target clamped low", 2, -5, []string{"c", "a", "b"}},
		{"invalid source ignored", 7, 0, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []string{"a", "b", "c"}
			got := MoveLink(in, tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MoveLink(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			if len(got) != 3 {
				t.Errorf("length changed: %d", len(got))
			}
			// Multiset equality: every element still present exactly once
			seen := map[string]int{}
			for _, s := range got {
				seen[s]++
			}
			for _, s := range in {
				if seen[s] != 1 {
					t.Errorf("entry %q count %d after move", s, seen[s])
				}
			}
		})
	}
}

func TestRemoveLink(t *testing.T) {
	in := []OtherLink{
		{Title: "a", URL: "https://a"},
		{Title: "b", URL: "https://b"},
		{Title: "c", URL: "https://c"},
	}

	got := RemoveLink(in, 1)
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "c" {
		t.Errorf("RemoveLink(1) = %v", got)
	}

	// Out-of-range indexes leave the list alone
	if got := RemoveLink(in, -1); len(got) != 3 {
		t.Errorf("RemoveLink(-1) changed the list: %v", got)
	}
	if got := RemoveLink(in, 3); len(got) != 3 {
		t.Errorf("RemoveLink(3) changed the list: %v", got)
	}
}

func TestCanAddSocial(t *testing.T) {
	links := []SocialLink{}
	for i := 0; i < MaxSocialLinks; i++ {
		if !CanAddSocial(links) {
			t.Fatalf("should allow adding link %d", i+1)
		}
		links = append(links, SocialLink{Platform: "github", URL: "https://x"})
	}
	if CanAddSocial(links) {
		t.Error("6th social link must be rejected")
	}
}

func TestDragStateDropMatchesKind(t *testing.T) {
	social := []SocialLink{
		{Platform: "github", URL: "https://g"},
		{Platform: "linkedin", URL: "https://l"},
	}
	other := []OtherLink{
		{Title: "Blog", URL: "https://b"},
		{Title: "Shop", URL: "https://s"},
	}

	var drag DragState

	// Drop without an active drag is a no-op
	if got := drag.DropSocial(social, 0); !reflect.DeepEqual(got, social) {
		t.Errorf("inactive drop mutated list: %v", got)
	}

	// Drag from the other-links list must not land on the social list
	drag.Begin(0, ListOther)
	if got := drag.DropSocial(social, 1); !reflect.DeepEqual(got, social) {
		t.Errorf("cross-kind drop mutated list: %v", got)
	}
	if !drag.Active() {
		t.Error("mismatched drop should keep the drag alive")
	}

	got := drag.DropOther(other, 1)
	if got[0].Title != "Shop" || got[1].Title != "Blog" {
		t.Errorf("DropOther = %v", got)
	}
	if drag.Active() {
		t.Error("drag state must clear after a completed drop")
	}

	// Cancellation clears state too
	drag.Begin(1, ListSocial)
	drag.Clear()
	if drag.Active() {
		t.Error("Clear must deactivate the drag")
	}
}
