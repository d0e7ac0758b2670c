package card

// Ordered link collection operations. Both link lists (social and other) use
// the same splice-and-reinsert semantics: every reorder is a permutation, so
// entries are never lost or duplicated and relative order of the untouched
// entries is preserved. Moved entries are not re-validated on reinsert; shape
// checks happen once at the NewDraft boundary.

// ListKind identifies which ordered link list an operation targets.
type ListKind string

const (
	ListSocial ListKind = "social"
	ListOther  ListKind = "other"
)

// MoveLink performs a bounds-checked splice-and-reinsert. The source index
// must be within the list; the target index is clamped to [0, len-1].
// Returns the list unchanged for an invalid source index.
func MoveLink[T any](list []T, from, to int) []T {
	if from < 0 || from >= len(list) {
		return list
	}
	if to < 0 {
		to = 0
	}
	if to > len(list)-1 {
		to = len(list) - 1
	}
	if from == to {
		return list
	}

	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	moved := list[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}

// RemoveLink deletes the entry at index, shifting subsequent entries up.
// Returns the list unchanged for an out-of-range index.
func RemoveLink[T any](list []T, index int) []T {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return out
}

// CanAddSocial reports whether the social link list has room for another
// entry. Other links are unbounded.
func CanAddSocial(links []SocialLink) bool {
	return len(links) < MaxSocialLinks
}

// DragState describes an in-progress reorder: the grabbed index and the list
// it came from. It is created on drag start, consumed on drop, and cleared on
// drag end regardless of outcome.
type DragState struct {
	Index int
	Kind  ListKind
}

// Active reports whether a drag is in flight.
func (s *DragState) Active() bool {
	return s.Kind != ""
}

// Begin records the source of a drag.
func (s *DragState) Begin(index int, kind ListKind) {
	s.Index = index
	s.Kind = kind
}

// Clear resets the drag state, including on cancellation.
func (s *DragState) Clear() {
	s.Index = 0
	s.Kind = ""
}

// DropSocial completes a drag over the social list. A drop is a no-op unless
// the in-flight drag targets the same list kind.
func (s *DragState) DropSocial(links []SocialLink, target int) []SocialLink {
	if !s.Active() || s.Kind != ListSocial {
		return links
	}
	out := MoveLink(links, s.Index, target)
	s.Clear()
	return out
}

// DropOther completes a drag over the other-links list.
func (s *DragState) DropOther(links []OtherLink, target int) []OtherLink {
	if !s.Active() || s.Kind != ListOther {
		return links
	}
	out := MoveLink(links, s.Index, target)
	s.Clear()
	return out
}
