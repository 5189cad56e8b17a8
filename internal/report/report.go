// Package report computes dashboard and subscription figures from the asset collection.
package report

import (
	"time"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/renewal"
	"nexus-asset-manager/internal/utils"
)

// Count is one non-zero slice of a breakdown.
type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Summary backs the dashboard.
type Summary struct {
	TotalAssets    int     `json:"totalAssets"`
	TotalValue     float64 `json:"totalValue"`
	AssignedCount  int     `json:"assignedCount"`
	AvailableCount int     `json:"availableCount"`
	RepairCount    int     `json:"repairCount"`
	ByStatus       []Count `json:"byStatus"`
	ByType         []Count `json:"byType"`
	// AverageAgeMonths is the mean age of dated assets in whole months as of now.
	AverageAgeMonths float64 `json:"averageAgeMonths"`
}

// Summarize counts per status and type in their declared order, omitting zeros.
func Summarize(assets []domain.Asset, now time.Time) Summary {
	s := Summary{
		TotalAssets: len(assets),
		ByStatus:    []Count{},
		ByType:      []Count{},
	}
	statusCounts := make(map[domain.AssetStatus]int)
	typeCounts := make(map[domain.AssetType]int)
	today := utils.DateOf(now)
	var ageMonths, dated int

	for _, a := range assets {
		s.TotalValue += a.Price
		statusCounts[a.Status]++
		typeCounts[a.Type]++
		switch a.Status {
		case domain.AssetStatusAssigned:
			s.AssignedCount++
		case domain.AssetStatusAvailable:
			s.AvailableCount++
		case domain.AssetStatusInRepair:
			s.RepairCount++
		}

		purchased, err := utils.ParseDate(a.PurchaseDate)
		if err != nil {
			continue
		}
		diff, err := utils.CalculateDateDifference(purchased, today)
		if err != nil {
			continue
		}
		ageMonths += diff.Months
		dated++
	}

	for _, st := range domain.AssetStatuses {
		if n := statusCounts[st]; n > 0 {
			s.ByStatus = append(s.ByStatus, Count{Name: string(st), Value: n})
		}
	}
	for _, t := range domain.AssetTypes {
		if n := typeCounts[t]; n > 0 {
			s.ByType = append(s.ByType, Count{Name: string(t), Value: n})
		}
	}
	if dated > 0 {
		s.AverageAgeMonths = float64(ageMonths) / float64(dated)
	}
	return s
}

// SubscriptionMetrics backs the subscription manager view.
type SubscriptionMetrics struct {
	MonthlyTotal      float64        `json:"monthlyTotal"`
	YearlyTotal       float64        `json:"yearlyTotal"`
	ActiveCount       int            `json:"activeCount"`
	ExpiringSoonCount int            `json:"expiringSoonCount"`
	Subscriptions     []domain.Asset `json:"subscriptions"`
}

// Subscriptions estimates recurring spend over active subscription-like assets.
// One-time purchases contribute nothing.
func Subscriptions(assets []domain.Asset, now time.Time) SubscriptionMetrics {
	m := SubscriptionMetrics{Subscriptions: []domain.Asset{}}
	for _, a := range assets {
		if !a.IsSubscriptionLike() {
			continue
		}
		m.Subscriptions = append(m.Subscriptions, a)
		if a.Status != domain.AssetStatusActive {
			continue
		}
		m.ActiveCount++
		switch a.BillingCycle {
		case domain.BillingCycleMonthly:
			m.MonthlyTotal += a.Price
			m.YearlyTotal += a.Price * 12
		case domain.BillingCycleYearly:
			m.MonthlyTotal += a.Price / 12
			m.YearlyTotal += a.Price
		case domain.BillingCycleQuarterly:
			m.MonthlyTotal += a.Price / 3
			m.YearlyTotal += a.Price * 4
		}
	}
	m.ExpiringSoonCount = renewal.ExpiringSoonCount(assets, now)
	return m
}
