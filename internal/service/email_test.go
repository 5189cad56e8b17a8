package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nexus-asset-manager/internal/config"
	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/report"
)

func TestEmailService_SendRenewalDigest(t *testing.T) {
	ctx := context.Background()
	alerts := []domain.Notification{
		{ID: "renew-S", AssetID: "S", Message: "Slack renews on Jun 10, 2024 (9 days left)."},
	}

	t.Run("Success", func(t *testing.T) {
		client := new(MockMailClient)
		svc := &emailService{client: client, from: "it@example.com", fromName: "Nexus"}
		client.On("SendWithContext", ctx, mock.MatchedBy(func(m *mail.SGMailV3) bool {
			return m.From.Address == "it@example.com" &&
				len(m.Personalizations) == 1 &&
				len(m.Personalizations[0].To) == 2 &&
				m.Subject == "Nexus: 1 subscription renewal(s) due within 30 days"
		})).Return(&rest.Response{StatusCode: 202}, nil)

		err := svc.SendRenewalDigest(ctx, []string{"a@example.com", "b@example.com"}, alerts)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("No alerts sends nothing", func(t *testing.T) {
		client := new(MockMailClient)
		svc := &emailService{client: client, from: "it@example.com"}
		require.NoError(t, svc.SendRenewalDigest(ctx, []string{"a@example.com"}, nil))
		client.AssertNotCalled(t, "SendWithContext", mock.Anything, mock.Anything)
	})

	t.Run("Rejected by provider", func(t *testing.T) {
		client := new(MockMailClient)
		svc := &emailService{client: client, from: "it@example.com"}
		client.On("SendWithContext", ctx, mock.Anything).Return(&rest.Response{StatusCode: 401, Body: "unauthorized"}, nil)

		err := svc.SendRenewalDigest(ctx, []string{"a@example.com"}, alerts)
		assert.ErrorContains(t, err, "status 401")
	})

	t.Run("Transport error", func(t *testing.T) {
		client := new(MockMailClient)
		svc := &emailService{client: client, from: "it@example.com"}
		client.On("SendWithContext", ctx, mock.Anything).Return(nil, errors.New("dial tcp: timeout"))

		err := svc.SendRenewalDigest(ctx, []string{"a@example.com"}, alerts)
		assert.ErrorContains(t, err, "dial tcp: timeout")
	})

	t.Run("No recipients", func(t *testing.T) {
		svc := &emailService{client: new(MockMailClient), from: "it@example.com"}
		err := svc.SendRenewalDigest(ctx, nil, alerts)
		assert.ErrorIs(t, err, domain.ErrConfigMissing)
	})
}

func TestEmailService_SendInventorySummary(t *testing.T) {
	ctx := context.Background()
	client := new(MockMailClient)
	svc := &emailService{client: client, from: "it@example.com"}
	client.On("SendWithContext", ctx, mock.MatchedBy(func(m *mail.SGMailV3) bool {
		return len(m.Content) == 1 && m.Content[0].Type == "text/plain"
	})).Return(&rest.Response{StatusCode: 202}, nil)

	summary := &report.Summary{TotalAssets: 3, TotalValue: 100, ByStatus: []report.Count{{Name: "Active", Value: 3}}}
	subs := &report.SubscriptionMetrics{ActiveCount: 3, MonthlyTotal: 30}
	require.NoError(t, svc.SendInventorySummary(ctx, []string{"a@example.com"}, summary, subs))
	client.AssertExpectations(t)
}

func TestNewEmailService_WithoutKeyOnlyLogs(t *testing.T) {
	svc := NewEmailService(config.EmailConfig{})
	_, ok := svc.(*logEmailService)
	require.True(t, ok)
	assert.NoError(t, svc.SendRenewalDigest(context.Background(), nil, []domain.Notification{{AssetID: "S"}}))
}

func TestRenewalDigestBody(t *testing.T) {
	body := renewalDigestBody([]domain.Notification{{AssetID: "S", Message: "Slack renews soon."}})
	assert.Contains(t, body, "[S] Slack renews soon.")
}
