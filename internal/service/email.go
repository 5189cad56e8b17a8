package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"nexus-asset-manager/internal/config"
	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/report"
)

// mailClient is the part of *sendgrid.Client the service uses.
type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	client   mailClient
	from     string
	fromName string
}

// NewEmailService returns a SendGrid-backed service, or one that only logs
// when no API key is configured.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SendGrid API key not configured, emails will only be logged")
		return &logEmailService{}
	}
	return &emailService{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (s *emailService) SendRenewalDigest(ctx context.Context, recipients []string, alerts []domain.Notification) error {
	if len(alerts) == 0 {
		return nil
	}
	subject := fmt.Sprintf("Nexus: %d subscription renewal(s) due within 30 days", len(alerts))
	return s.send(ctx, recipients, subject, renewalDigestBody(alerts))
}

func (s *emailService) SendInventorySummary(ctx context.Context, recipients []string, summary *report.Summary, subs *report.SubscriptionMetrics) error {
	return s.send(ctx, recipients, "Nexus: weekly inventory summary", inventorySummaryBody(summary, subs))
}

func (s *emailService) send(ctx context.Context, recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("%w: no email recipients", domain.ErrConfigMissing)
	}

	msg := mail.NewV3Mail()
	msg.SetFrom(mail.NewEmail(s.fromName, s.from))
	msg.Subject = subject
	p := mail.NewPersonalization()
	for _, r := range recipients {
		p.AddTos(mail.NewEmail("", r))
	}
	msg.AddPersonalizations(p)
	msg.AddContent(mail.NewContent("text/plain", body))

	logger.ExternalServiceCall("sendgrid", "send", "subject", subject, "recipients", len(recipients))
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid rejected email: status %d: %s", resp.StatusCode, resp.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil, "status", resp.StatusCode)
	return nil
}

type logEmailService struct{}

func (logEmailService) SendRenewalDigest(ctx context.Context, recipients []string, alerts []domain.Notification) error {
	for _, a := range alerts {
		logger.InfoContext(ctx, "Renewal alert", "asset_id", a.AssetID, "message", a.Message)
	}
	return nil
}

func (logEmailService) SendInventorySummary(ctx context.Context, recipients []string, summary *report.Summary, subs *report.SubscriptionMetrics) error {
	logger.InfoContext(ctx, "Inventory summary",
		"total_assets", summary.TotalAssets,
		"total_value", summary.TotalValue,
		"monthly_subscription_spend", subs.MonthlyTotal,
	)
	return nil
}

func renewalDigestBody(alerts []domain.Notification) string {
	var b strings.Builder
	b.WriteString("Hello,\n\nThe following subscriptions renew within the next 30 days:\n\n")
	for _, a := range alerts {
		fmt.Fprintf(&b, "  - [%s] %s\n", a.AssetID, a.Message)
	}
	b.WriteString("\nReview them in Nexus before they auto-renew.\n\nBest regards,\nNexus Asset Manager")
	return b.String()
}

func inventorySummaryBody(summary *report.Summary, subs *report.SubscriptionMetrics) string {
	var b strings.Builder
	b.WriteString("Hello,\n\nHere is the current inventory summary.\n\n")
	fmt.Fprintf(&b, "Total assets:   %d\n", summary.TotalAssets)
	fmt.Fprintf(&b, "Total value:    $%.2f\n", summary.TotalValue)
	fmt.Fprintf(&b, "Assigned:       %d\n", summary.AssignedCount)
	fmt.Fprintf(&b, "Available:      %d\n", summary.AvailableCount)
	fmt.Fprintf(&b, "In repair:      %d\n", summary.RepairCount)
	b.WriteString("\nBy status:\n")
	for _, c := range summary.ByStatus {
		fmt.Fprintf(&b, "  %s: %d\n", c.Name, c.Value)
	}
	b.WriteString("\nSubscriptions:\n")
	fmt.Fprintf(&b, "  Active:          %d\n", subs.ActiveCount)
	fmt.Fprintf(&b, "  Expiring soon:   %d\n", subs.ExpiringSoonCount)
	fmt.Fprintf(&b, "  Monthly spend:   $%.2f\n", subs.MonthlyTotal)
	fmt.Fprintf(&b, "  Yearly spend:    $%.2f\n", subs.YearlyTotal)
	b.WriteString("\nBest regards,\nNexus Asset Manager")
	return b.String()
}
