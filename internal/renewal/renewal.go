// Package renewal derives upcoming-renewal alerts from the asset collection.
package renewal

import (
	"fmt"
	"time"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/utils"
)

// WindowDays is the inclusive lookahead for upcoming renewals.
const WindowDays = 30

const alertTitle = "Upcoming Renewal"

// DeriveAlerts returns one warning per active subscription-like asset whose
// renewal date falls within [today, today+WindowDays], where today is the
// calendar date of now. Output follows input order.
func DeriveAlerts(assets []domain.Asset, now time.Time) []domain.Notification {
	today := utils.DateOf(now)
	alerts := []domain.Notification{}
	for _, a := range assets {
		renewal, ok := dueDate(a, today)
		if !ok {
			continue
		}
		daysLeft := utils.DaysBetween(today, renewal)
		alerts = append(alerts, domain.Notification{
			ID:       "renew-" + a.ID,
			Title:    alertTitle,
			Message:  fmt.Sprintf("%s renews on %s (%d days left).", a.Name, renewal.Display(), daysLeft),
			Type:     domain.NotificationWarning,
			Date:     renewal.String(),
			AssetID:  a.ID,
			DaysLeft: daysLeft,
		})
	}
	return alerts
}

// ExpiringSoonCount counts assets DeriveAlerts would report.
func ExpiringSoonCount(assets []domain.Asset, now time.Time) int {
	today := utils.DateOf(now)
	n := 0
	for _, a := range assets {
		if _, ok := dueDate(a, today); ok {
			n++
		}
	}
	return n
}

func dueDate(a domain.Asset, today utils.Date) (utils.Date, bool) {
	if !a.IsSubscriptionLike() || a.Status != domain.AssetStatusActive || a.RenewalDate == "" {
		return utils.Date{}, false
	}
	renewal, err := utils.ParseDate(a.RenewalDate)
	if err != nil {
		return utils.Date{}, false
	}
	if renewal.Before(today) || renewal.After(today.AddDays(WindowDays)) {
		return utils.Date{}, false
	}
	return renewal, true
}
