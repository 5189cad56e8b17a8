package inventory

import "nexus-asset-manager/internal/domain"

// Selection is a set of asset ids. It is independent of any filter so a
// selected row stays selected while hidden.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// ToggleAll clears the selection when every visible row is already selected,
// otherwise it selects exactly the visible rows.
func (s *Selection) ToggleAll(visible []domain.Asset) {
	if len(visible) > 0 && s.allSelected(visible) {
		s.Clear()
		return
	}
	s.ids = make(map[string]struct{}, len(visible))
	for _, a := range visible {
		s.ids[a.ID] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) Len() int { return len(s.ids) }

// Ordered returns the selected assets among visible, in visible order.
func (s *Selection) Ordered(visible []domain.Asset) []domain.Asset {
	out := make([]domain.Asset, 0, len(s.ids))
	for _, a := range visible {
		if s.IsSelected(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Selection) allSelected(visible []domain.Asset) bool {
	for _, a := range visible {
		if !s.IsSelected(a.ID) {
			return false
		}
	}
	return true
}
