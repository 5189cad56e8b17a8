package service

import (
	"context"
	"time"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/report"
)

type AssetService interface {
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	SaveAsset(ctx context.Context, asset *domain.Asset) error
	DeleteAsset(ctx context.Context, id string) error
	ResolveCode(ctx context.Context, code string) (*domain.Asset, error)
	RenewalAlerts(ctx context.Context, now time.Time) ([]domain.Notification, error)
	Summary(ctx context.Context, now time.Time) (*report.Summary, error)
	SubscriptionMetrics(ctx context.Context, now time.Time) (*report.SubscriptionMetrics, error)
}

type LabelFormat string

const (
	LabelFormatHTML LabelFormat = "html"
	LabelFormatPDF  LabelFormat = "pdf"
)

type LabelService interface {
	// PrintLabels renders a sheet for ids in the given order and returns where it was written.
	PrintLabels(ctx context.Context, ids []string, format LabelFormat) (string, error)
	// SingleLabel returns the printable HTML of one large label.
	SingleLabel(ctx context.Context, id string) ([]byte, error)
}

// DocumentUpdate carries the fields to change. Nil fields are left alone.
type DocumentUpdate struct {
	Title    *string                  `json:"title,omitempty"`
	Category *domain.DocumentCategory `json:"category,omitempty"`
	Content  *domain.Markup           `json:"content,omitempty"`
}

type DocumentService interface {
	ListDocuments(ctx context.Context) ([]domain.DocumentTemplate, error)
	GetDocument(ctx context.Context, id string) (*domain.DocumentTemplate, error)
	CreateDocument(ctx context.Context) (*domain.DocumentTemplate, error)
	UpdateDocument(ctx context.Context, id string, update DocumentUpdate) (*domain.DocumentTemplate, error)
	DeleteDocument(ctx context.Context, id string) error
	// ImportFile creates a new document from an uploaded file, or merges it
	// into targetID when that is non-empty.
	ImportFile(ctx context.Context, targetID, filename, contentType string, data []byte) (*domain.DocumentTemplate, error)
	DraftDocument(ctx context.Context, id, instruction string) (*domain.DocumentTemplate, error)
	PrintDocument(ctx context.Context, id string) ([]byte, error)
}

type AssistantService interface {
	Ask(ctx context.Context, query string) (string, error)
}

type EmailService interface {
	SendRenewalDigest(ctx context.Context, recipients []string, alerts []domain.Notification) error
	SendInventorySummary(ctx context.Context, recipients []string, summary *report.Summary, subs *report.SubscriptionMetrics) error
}
