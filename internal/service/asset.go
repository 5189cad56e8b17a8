package service

import (
	"context"
	"strings"
	"time"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/renewal"
	"nexus-asset-manager/internal/report"
	"nexus-asset-manager/internal/repository"
	"nexus-asset-manager/internal/scan"
)

type assetService struct {
	assetRepo repository.AssetRepository
}

func NewAssetService(assetRepo repository.AssetRepository) AssetService {
	return &assetService{assetRepo: assetRepo}
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.assetRepo.List(ctx)
}

func (s *assetService) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *assetService) SaveAsset(ctx context.Context, asset *domain.Asset) error {
	asset.ID = strings.TrimSpace(asset.ID)
	if err := asset.Validate(); err != nil {
		return err
	}
	if err := s.assetRepo.Upsert(ctx, asset); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Asset saved", "asset_id", asset.ID, "status", asset.Status)
	return nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	if err := s.assetRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Asset deleted", "asset_id", id)
	return nil
}

func (s *assetService) ResolveCode(ctx context.Context, code string) (*domain.Asset, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	a, err := scan.Resolve(code, assets)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *assetService) RenewalAlerts(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return renewal.DeriveAlerts(assets, now), nil
}

func (s *assetService) Summary(ctx context.Context, now time.Time) (*report.Summary, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := report.Summarize(assets, now)
	return &summary, nil
}

func (s *assetService) SubscriptionMetrics(ctx context.Context, now time.Time) (*report.SubscriptionMetrics, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics := report.Subscriptions(assets, now)
	return &metrics, nil
}
