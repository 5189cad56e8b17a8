// Package inventory filters the asset collection and tracks row selection.
package inventory

import (
	"strings"

	"nexus-asset-manager/internal/domain"
)

// All disables the status or type predicate.
const All = "All"

// Filter narrows the visible list. Empty fields match everything.
type Filter struct {
	Search string
	Status string
	Type   string
}

// Matches reports whether asset passes every active predicate.
func (f Filter) Matches(asset domain.Asset) bool {
	if f.Status != "" && f.Status != All && string(asset.Status) != f.Status {
		return false
	}
	if f.Type != "" && f.Type != All && string(asset.Type) != f.Type {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range []string{asset.Name, asset.ID, asset.SerialNumber, asset.AssignedTo} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Apply returns the assets matching f in their original order.
func Apply(assets []domain.Asset, f Filter) []domain.Asset {
	visible := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		if f.Matches(a) {
			visible = append(visible, a)
		}
	}
	return visible
}
