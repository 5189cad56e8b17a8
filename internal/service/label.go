package service

import (
	"context"
	"fmt"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/labels"
	"nexus-asset-manager/internal/repository"
)

type labelService struct {
	assetRepo repository.AssetRepository
	printers  map[LabelFormat]*labels.Printer
}

// NewLabelService takes one printer per supported output format.
func NewLabelService(assetRepo repository.AssetRepository, printers map[LabelFormat]*labels.Printer) LabelService {
	return &labelService{assetRepo: assetRepo, printers: printers}
}

func (s *labelService) PrintLabels(ctx context.Context, ids []string, format LabelFormat) (string, error) {
	if format == "" {
		format = LabelFormatHTML
	}
	printer, ok := s.printers[format]
	if !ok {
		return "", &domain.ValidationError{Field: "format", Reason: fmt.Sprintf("unsupported value %q", format)}
	}
	if len(ids) == 0 {
		return "", domain.ErrEmptyQueue
	}

	assets := make([]domain.Asset, 0, len(ids))
	for _, id := range ids {
		a, err := s.assetRepo.GetByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("asset %s: %w", id, err)
		}
		assets = append(assets, *a)
	}
	return printer.Print(ctx, labels.NewQueue(assets))
}

func (s *labelService) SingleLabel(ctx context.Context, id string) ([]byte, error) {
	a, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return labels.ComposeSingle(*a)
}
