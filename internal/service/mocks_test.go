package service

import (
	"context"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/mock"

	"nexus-asset-manager/internal/domain"
)

// MockAssetRepo
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) List(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) Upsert(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
func (m *MockAssetRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) List(ctx context.Context) ([]domain.DocumentTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id string) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}
func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.DocumentTemplate) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockDocumentRepo) Update(ctx context.Context, doc *domain.DocumentTemplate) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockDocumentRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssistant
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) AnalyzeInventory(ctx context.Context, query string, assets []domain.Asset) (string, error) {
	args := m.Called(ctx, query, assets)
	return args.String(0), args.Error(1)
}
func (m *MockAssistant) DraftDocument(ctx context.Context, instruction string, current domain.Markup) (domain.Markup, error) {
	args := m.Called(ctx, instruction, current)
	return args.Get(0).(domain.Markup), args.Error(1)
}

// MockMailClient
type MockMailClient struct {
	mock.Mock
}

func (m *MockMailClient) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rest.Response), args.Error(1)
}
