package service

import (
	"context"

	"nexus-asset-manager/internal/ai"
	"nexus-asset-manager/internal/repository"
)

type assistantService struct {
	assetRepo repository.AssetRepository
	assistant ai.Assistant
}

func NewAssistantService(assetRepo repository.AssetRepository, assistant ai.Assistant) AssistantService {
	return &assistantService{assetRepo: assetRepo, assistant: assistant}
}

func (s *assistantService) Ask(ctx context.Context, query string) (string, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return "", err
	}
	return s.assistant.AnalyzeInventory(ctx, query, assets)
}
