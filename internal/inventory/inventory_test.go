package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-asset-manager/internal/domain"
)

func ids(assets []domain.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.ID
	}
	return out
}

func TestApply(t *testing.T) {
	assets := domain.SampleAssets()

	t.Run("Empty filter keeps everything in order", func(t *testing.T) {
		assert.Equal(t, ids(assets), ids(Apply(assets, Filter{})))
		assert.Equal(t, ids(assets), ids(Apply(assets, Filter{Status: All, Type: All})))
	})

	t.Run("Search is case-insensitive across fields", func(t *testing.T) {
		byAssignee := Apply(assets, Filter{Search: "sarah"})
		require.NotEmpty(t, byAssignee)
		for _, a := range byAssignee {
			assert.Equal(t, "Sarah Jenkins", a.AssignedTo)
		}

		bySerial := Apply(assets, Filter{Search: "fvfx1234"})
		require.Len(t, bySerial, 1)
		assert.Equal(t, "AST-001", bySerial[0].ID)

		byID := Apply(assets, Filter{Search: "sub-10"})
		assert.Equal(t, []string{"SUB-101", "SUB-102", "SUB-103"}, ids(byID))
	})

	t.Run("Predicates combine", func(t *testing.T) {
		got := Apply(assets, Filter{Type: string(domain.AssetTypeLaptop), Status: string(domain.AssetStatusAvailable)})
		for _, a := range got {
			assert.Equal(t, domain.AssetTypeLaptop, a.Type)
			assert.Equal(t, domain.AssetStatusAvailable, a.Status)
		}
		assert.Contains(t, ids(got), "AST-002")
	})

	t.Run("No match", func(t *testing.T) {
		got := Apply(assets, Filter{Search: "nothing-like-this"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSelection(t *testing.T) {
	assets := domain.SampleAssets()

	t.Run("Toggle", func(t *testing.T) {
		s := NewSelection()
		s.Toggle("AST-001")
		assert.True(t, s.IsSelected("AST-001"))
		s.Toggle("AST-001")
		assert.False(t, s.IsSelected("AST-001"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Survives narrowing and widening", func(t *testing.T) {
		s := NewSelection()
		s.Toggle("AST-001")
		s.Toggle("SUB-101")

		narrowed := Apply(assets, Filter{Type: string(domain.AssetTypeLaptop)})
		assert.Equal(t, []string{"AST-001"}, ids(s.Ordered(narrowed)))
		assert.True(t, s.IsSelected("SUB-101"))

		widened := Apply(assets, Filter{})
		assert.Equal(t, []string{"AST-001", "SUB-101"}, ids(s.Ordered(widened)))
	})

	t.Run("ToggleAll selects exactly the visible rows", func(t *testing.T) {
		s := NewSelection()
		s.Toggle("SUB-101")
		laptops := Apply(assets, Filter{Type: string(domain.AssetTypeLaptop)})

		s.ToggleAll(laptops)
		assert.Equal(t, len(laptops), s.Len())
		assert.False(t, s.IsSelected("SUB-101"))

		s.ToggleAll(laptops)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("ToggleAll on an empty view", func(t *testing.T) {
		s := NewSelection()
		s.Toggle("AST-001")
		s.ToggleAll(nil)
		assert.Equal(t, 0, s.Len())
	})
}
