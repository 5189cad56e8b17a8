// Package labels composes printable QR asset tags and delivers them to an output.
package labels

import (
	"fmt"

	"nexus-asset-manager/internal/domain"
)

// Queue is the ordered list of assets awaiting a label print.
type Queue struct {
	items []domain.Asset
}

// NewQueue copies assets so later reordering never touches the caller's slice.
func NewQueue(assets []domain.Asset) *Queue {
	items := make([]domain.Asset, len(assets))
	copy(items, assets)
	return &Queue{items: items}
}

// Move removes the item at from and reinserts it at to.
func (q *Queue) Move(from, to int) error {
	if from < 0 || from >= len(q.items) {
		return &domain.ValidationError{Field: "from", Reason: fmt.Sprintf("position %d out of range", from)}
	}
	if to < 0 || to >= len(q.items) {
		return &domain.ValidationError{Field: "to", Reason: fmt.Sprintf("position %d out of range", to)}
	}
	if from == to {
		return nil
	}
	item := q.items[from]
	q.items = append(q.items[:from], q.items[from+1:]...)
	q.items = append(q.items[:to], append([]domain.Asset{item}, q.items[to:]...)...)
	return nil
}

// Remove drops the first item with id. It reports whether anything was removed.
func (q *Queue) Remove(id string) bool {
	for i, a := range q.items {
		if a.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) RemoveAt(i int) error {
	if i < 0 || i >= len(q.items) {
		return &domain.ValidationError{Field: "index", Reason: fmt.Sprintf("position %d out of range", i)}
	}
	q.items = append(q.items[:i], q.items[i+1:]...)
	return nil
}

// Items returns a copy of the queue in print order.
func (q *Queue) Items() []domain.Asset {
	out := make([]domain.Asset, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) CanPrint() bool { return len(q.items) > 0 }
