package jobs

import (
	"context"

	"nexus-asset-manager/internal/logger"
)

// SendRenewalAlerts emails the configured recipients a digest of
// subscriptions renewing within the alert window.
func (jr *JobRunner) SendRenewalAlerts() {
	jr.runWithRecovery("SendRenewalAlerts", func() {
		ctx := context.Background()

		alerts, err := jr.services.Assets.RenewalAlerts(ctx, jr.now())
		if err != nil {
			logger.Error("Failed to derive renewal alerts", "error", err)
			return
		}
		if len(alerts) == 0 {
			logger.Info("No upcoming renewals")
			return
		}

		if err := jr.services.Email.SendRenewalDigest(ctx, jr.config.Email.Recipients, alerts); err != nil {
			logger.Error("Failed to send renewal digest", "alerts", len(alerts), "error", err)
			return
		}
		logger.Info("Renewal digest sent", "alerts", len(alerts), "recipients", len(jr.config.Email.Recipients))
	})
}

// SendInventorySummary emails the dashboard figures and subscription spend.
func (jr *JobRunner) SendInventorySummary() {
	jr.runWithRecovery("SendInventorySummary", func() {
		ctx := context.Background()
		now := jr.now()

		summary, err := jr.services.Assets.Summary(ctx, now)
		if err != nil {
			logger.Error("Failed to summarize inventory", "error", err)
			return
		}
		subs, err := jr.services.Assets.SubscriptionMetrics(ctx, now)
		if err != nil {
			logger.Error("Failed to compute subscription metrics", "error", err)
			return
		}

		if err := jr.services.Email.SendInventorySummary(ctx, jr.config.Email.Recipients, summary, subs); err != nil {
			logger.Error("Failed to send inventory summary", "error", err)
			return
		}
		logger.Info("Inventory summary sent", "total_assets", summary.TotalAssets)
	})
}
