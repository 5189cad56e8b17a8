package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nexus-asset-manager/internal/domain"
)

func TestAssistantService_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAssetRepo)
		assistant := new(MockAssistant)
		svc := NewAssistantService(repo, assistant)
		assets := domain.SampleAssets()
		repo.On("List", ctx).Return(assets, nil)
		assistant.On("AnalyzeInventory", ctx, "Who has laptops?", assets).Return("Sarah Jenkins.", nil)

		answer, err := svc.Ask(ctx, "Who has laptops?")
		require.NoError(t, err)
		assert.Equal(t, "Sarah Jenkins.", answer)
	})

	t.Run("Repository error skips the model", func(t *testing.T) {
		repo := new(MockAssetRepo)
		assistant := new(MockAssistant)
		svc := NewAssistantService(repo, assistant)
		repo.On("List", ctx).Return([]domain.Asset(nil), errors.New("db down"))

		_, err := svc.Ask(ctx, "anything")
		assert.EqualError(t, err, "db down")
		assistant.AssertNotCalled(t, "AnalyzeInventory", mock.Anything, mock.Anything, mock.Anything)
	})
}
