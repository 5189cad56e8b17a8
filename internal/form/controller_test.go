package form

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nexus-asset-manager/internal/domain"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Upsert(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

type sequenceIDs struct {
	ids []string
	pos int
}

func (s *sequenceIDs) NextID() string {
	id := s.ids[s.pos%len(s.ids)]
	s.pos++
	return id
}

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestRandomIDGenerator(t *testing.T) {
	gen := NewRandomIDGenerator()
	pattern := regexp.MustCompile(`^AST-[1-9][0-9]{5}$`)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, pattern, gen.NextID())
	}
}

func TestController_OpenNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-111111"}})
		require.NoError(t, c.OpenNew(now, nil))

		d := c.Draft()
		assert.Equal(t, OpenNew, c.State())
		assert.Equal(t, "AST-111111", d.ID)
		assert.Equal(t, domain.AssetTypeLaptop, d.Type)
		assert.Equal(t, domain.AssetStatusAvailable, d.Status)
		assert.Equal(t, "2024-06-01", d.PurchaseDate)
		assert.Equal(t, domain.BillingCycleOneTime, d.BillingCycle)
	})

	t.Run("Regenerates on collision", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-001001", "AST-002002"}})
		require.NoError(t, c.OpenNew(now, IDSet{"AST-001001": {}}))
		assert.Equal(t, "AST-002002", c.Draft().ID)
	})

	t.Run("Gives up when every candidate is taken", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-001001"}})
		err := c.OpenNew(now, IDSet{"AST-001001": {}})
		assert.ErrorIs(t, err, ErrIDUnavailable)
		assert.Equal(t, Closed, c.State())
	})

	t.Run("Subscription preset", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-333333"}})
		require.NoError(t, c.OpenNewSubscription(now, nil))
		d := c.Draft()
		assert.Equal(t, domain.AssetTypeSubscription, d.Type)
		assert.Equal(t, domain.AssetStatusActive, d.Status)
		assert.Equal(t, domain.BillingCycleYearly, d.BillingCycle)
	})
}

func TestController_TypeCoercion(t *testing.T) {
	t.Run("New record round trip", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		require.NoError(t, c.OpenNew(now, nil))

		c.SetType(domain.AssetTypeSubscription)
		assert.Equal(t, domain.AssetStatusActive, c.Draft().Status)
		assert.Equal(t, domain.BillingCycleYearly, c.Draft().BillingCycle)

		c.SetType(domain.AssetTypeLaptop)
		assert.Equal(t, domain.AssetStatusAvailable, c.Draft().Status)
		assert.Equal(t, domain.BillingCycleOneTime, c.Draft().BillingCycle)
	})

	t.Run("User-set status is left alone", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		require.NoError(t, c.OpenNew(now, nil))
		c.SetStatus(domain.AssetStatusAssigned)

		c.SetType(domain.AssetTypeSoftware)
		assert.Equal(t, domain.AssetStatusAssigned, c.Draft().Status)
		assert.Equal(t, domain.BillingCycleOneTime, c.Draft().BillingCycle)
	})

	t.Run("Editing never coerces", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		c.OpenEdit(domain.Asset{
			ID:           "AST-001",
			Name:         "Old laptop",
			Type:         domain.AssetTypeLaptop,
			Status:       domain.AssetStatusAvailable,
			BillingCycle: domain.BillingCycleOneTime,
		})
		c.SetType(domain.AssetTypeSubscription)
		assert.Equal(t, domain.AssetStatusAvailable, c.Draft().Status)
		assert.Equal(t, domain.BillingCycleOneTime, c.Draft().BillingCycle)
	})
}

func TestController_ID(t *testing.T) {
	c := NewController(&sequenceIDs{ids: []string{"AST-100000", "AST-200000"}})
	assert.ErrorIs(t, c.SetID("x"), ErrNotOpen)

	require.NoError(t, c.OpenNew(now, nil))
	require.NoError(t, c.SetID("  ast-777  "))
	assert.Equal(t, "AST-777", c.Draft().ID)

	require.NoError(t, c.RegenerateID(nil))
	assert.Equal(t, "AST-200000", c.Draft().ID)

	c.OpenEdit(domain.Asset{ID: "AST-001", Name: "Existing"})
	assert.ErrorIs(t, c.SetID("AST-002"), ErrIDImmutable)
	assert.ErrorIs(t, c.RegenerateID(nil), ErrIDImmutable)
	assert.Equal(t, "AST-001", c.Draft().ID)
}

func TestController_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success closes the form", func(t *testing.T) {
		saver := new(MockSaver)
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		require.NoError(t, c.OpenNew(now, nil))
		c.SetName("ThinkPad T14")
		require.NoError(t, c.SetPrice(1450))

		saver.On("Upsert", ctx, mock.MatchedBy(func(a domain.Asset) bool {
			return a.ID == "AST-123456" && a.Name == "ThinkPad T14" && a.Price == 1450
		})).Return(nil)

		saved, err := c.Submit(ctx, saver)
		require.NoError(t, err)
		assert.Equal(t, "ThinkPad T14", saved.Name)
		assert.Equal(t, Closed, c.State())
		saver.AssertExpectations(t)
	})

	t.Run("Missing name blocks submission", func(t *testing.T) {
		saver := new(MockSaver)
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		require.NoError(t, c.OpenNew(now, nil))

		_, err := c.Submit(ctx, saver)
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, OpenNew, c.State())
		saver.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Save failure keeps the draft", func(t *testing.T) {
		saver := new(MockSaver)
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		require.NoError(t, c.OpenNew(now, nil))
		c.SetName("Monitor")

		saver.On("Upsert", ctx, mock.Anything).Return(errors.New("remote down"))
		_, err := c.Submit(ctx, saver)
		assert.ErrorContains(t, err, "remote down")
		assert.Equal(t, OpenNew, c.State())
		assert.Equal(t, "Monitor", c.Draft().Name)
	})

	t.Run("Closed form", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		_, err := c.Submit(ctx, new(MockSaver))
		assert.ErrorIs(t, err, ErrNotOpen)
	})

	t.Run("Negative price rejected", func(t *testing.T) {
		c := NewController(&sequenceIDs{ids: []string{"AST-123456"}})
		require.NoError(t, c.OpenNew(now, nil))
		assert.Error(t, c.SetPrice(-5))
		assert.Equal(t, float64(0), c.Draft().Price)
	})
}
