package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nexus-asset-manager/internal/domain"
)

func TestAssetService_SaveAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAssetRepo)
		svc := NewAssetService(repo)
		asset := &domain.Asset{
			ID:           " AST-100 ",
			Name:         "Keyboard",
			Type:         domain.AssetTypePeripheral,
			Status:       domain.AssetStatusAvailable,
			PurchaseDate: "2024-02-01",
		}
		repo.On("Upsert", ctx, asset).Return(nil)

		require.NoError(t, svc.SaveAsset(ctx, asset))
		assert.Equal(t, "AST-100", asset.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Validation error never reaches the repository", func(t *testing.T) {
		repo := new(MockAssetRepo)
		svc := NewAssetService(repo)

		err := svc.SaveAsset(ctx, &domain.Asset{ID: "AST-1", Type: domain.AssetTypeLaptop, Status: domain.AssetStatusAvailable, PurchaseDate: "2024-01-01"})
		assert.True(t, domain.IsValidation(err))
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockAssetRepo)
		svc := NewAssetService(repo)
		asset := &domain.Asset{ID: "AST-1", Name: "X", Type: domain.AssetTypeOther, Status: domain.AssetStatusAvailable, PurchaseDate: "2024-01-01"}
		repo.On("Upsert", ctx, asset).Return(errors.New("db down"))

		assert.EqualError(t, svc.SaveAsset(ctx, asset), "db down")
	})
}

func TestAssetService_DeleteAsset(t *testing.T) {
	repo := new(MockAssetRepo)
	svc := NewAssetService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, "AST-404").Return(nil)
	assert.NoError(t, svc.DeleteAsset(ctx, "AST-404"))
	repo.AssertExpectations(t)
}

func TestAssetService_ResolveCode(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAssetRepo)
	svc := NewAssetService(repo)
	repo.On("List", ctx).Return(domain.SampleAssets(), nil)

	t.Run("By id", func(t *testing.T) {
		a, err := svc.ResolveCode(ctx, "AST-002")
		require.NoError(t, err)
		assert.Equal(t, "Dell XPS 15", a.Name)
	})

	t.Run("By serial", func(t *testing.T) {
		a, err := svc.ResolveCode(ctx, "FVFX1234K9")
		require.NoError(t, err)
		assert.Equal(t, "AST-001", a.ID)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := svc.ResolveCode(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAssetService_Reports(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assets := []domain.Asset{
		{ID: "A", Name: "Laptop", Type: domain.AssetTypeLaptop, Status: domain.AssetStatusAssigned, PurchaseDate: "2024-01-01", Price: 1000},
		{ID: "S", Name: "Slack", Type: domain.AssetTypeSubscription, Status: domain.AssetStatusActive, PurchaseDate: "2024-01-01", Price: 10, BillingCycle: domain.BillingCycleMonthly, RenewalDate: "2024-06-10"},
	}
	repo := new(MockAssetRepo)
	svc := NewAssetService(repo)
	repo.On("List", ctx).Return(assets, nil)

	t.Run("Alerts", func(t *testing.T) {
		alerts, err := svc.RenewalAlerts(ctx, now)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "S", alerts[0].AssetID)
		assert.Equal(t, 9, alerts[0].DaysLeft)
	})

	t.Run("Summary", func(t *testing.T) {
		summary, err := svc.Summary(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalAssets)
		assert.Equal(t, 1010.0, summary.TotalValue)
		assert.Equal(t, 1, summary.AssignedCount)
	})

	t.Run("Subscriptions", func(t *testing.T) {
		metrics, err := svc.SubscriptionMetrics(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, metrics.ActiveCount)
		assert.Equal(t, 1, metrics.ExpiringSoonCount)
		assert.InDelta(t, 10.0, metrics.MonthlyTotal, 0.001)
		assert.InDelta(t, 120.0, metrics.YearlyTotal, 0.001)
	})
}
