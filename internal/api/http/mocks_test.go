package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/report"
	"nexus-asset-manager/internal/service"
)

// MockAssetService
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockAssetService) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetService) SaveAsset(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
func (m *MockAssetService) DeleteAsset(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAssetService) ResolveCode(ctx context.Context, code string) (*domain.Asset, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetService) RenewalAlerts(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockAssetService) Summary(ctx context.Context, now time.Time) (*report.Summary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Summary), args.Error(1)
}
func (m *MockAssetService) SubscriptionMetrics(ctx context.Context, now time.Time) (*report.SubscriptionMetrics, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SubscriptionMetrics), args.Error(1)
}

// MockLabelService
type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) PrintLabels(ctx context.Context, ids []string, format service.LabelFormat) (string, error) {
	args := m.Called(ctx, ids, format)
	return args.String(0), args.Error(1)
}
func (m *MockLabelService) SingleLabel(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) ListDocuments(ctx context.Context) ([]domain.DocumentTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentService) GetDocument(ctx context.Context, id string) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentService) CreateDocument(ctx context.Context) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentService) UpdateDocument(ctx context.Context, id string, update service.DocumentUpdate) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentService) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDocumentService) ImportFile(ctx context.Context, targetID, filename, contentType string, data []byte) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, targetID, filename, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentService) DraftDocument(ctx context.Context, id, instruction string) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, id, instruction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentService) PrintDocument(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockAssistantService
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Ask(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}
