package domain

import (
	"fmt"
	"strings"

	"nexus-asset-manager/internal/utils"
)

type AssetType string

const (
	AssetTypeLaptop       AssetType = "Laptop"
	AssetTypeMonitor      AssetType = "Monitor"
	AssetTypeMobile       AssetType = "Mobile"
	AssetTypePeripheral   AssetType = "Peripheral"
	AssetTypeSoftware     AssetType = "Software"
	AssetTypeSubscription AssetType = "Subscription"
	AssetTypeOther        AssetType = "Other"
)

// AssetTypes lists every type in display order.
var AssetTypes = []AssetType{
	AssetTypeLaptop,
	AssetTypeMonitor,
	AssetTypeMobile,
	AssetTypePeripheral,
	AssetTypeSoftware,
	AssetTypeSubscription,
	AssetTypeOther,
}

type AssetStatus string

const (
	AssetStatusAvailable AssetStatus = "Available"
	AssetStatusAssigned  AssetStatus = "Assigned"
	AssetStatusInRepair  AssetStatus = "In Repair"
	AssetStatusRetired   AssetStatus = "Retired"
	AssetStatusLost      AssetStatus = "Lost"
	AssetStatusActive    AssetStatus = "Active"
	AssetStatusExpired   AssetStatus = "Expired"
)

// AssetStatuses lists every status in display order.
var AssetStatuses = []AssetStatus{
	AssetStatusAvailable,
	AssetStatusAssigned,
	AssetStatusInRepair,
	AssetStatusRetired,
	AssetStatusLost,
	AssetStatusActive,
	AssetStatusExpired,
}

type BillingCycle string

const (
	BillingCycleOneTime   BillingCycle = "One-Time"
	BillingCycleMonthly   BillingCycle = "Monthly"
	BillingCycleQuarterly BillingCycle = "Quarterly"
	BillingCycleYearly    BillingCycle = "Yearly"
)

// Asset is a tracked physical item or recurring subscription.
// Optional fields are empty strings when absent.
type Asset struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Model        string       `json:"model"`
	SerialNumber string       `json:"serialNumber"`
	Type         AssetType    `json:"type"`
	Status       AssetStatus  `json:"status"`
	PurchaseDate string       `json:"purchaseDate"`
	Price        float64      `json:"price"`
	AssignedTo   string       `json:"assignedTo,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	RenewalDate  string       `json:"renewalDate,omitempty"`
	BillingCycle BillingCycle `json:"billingCycle,omitempty"`
}

// IsSubscriptionLike reports whether the type carries renewal tracking.
func (t AssetType) IsSubscriptionLike() bool {
	return t == AssetTypeSubscription || t == AssetTypeSoftware
}

func (t AssetType) Valid() bool {
	for _, known := range AssetTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (s AssetStatus) Valid() bool {
	for _, known := range AssetStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (c BillingCycle) Valid() bool {
	switch c {
	case BillingCycleOneTime, BillingCycleMonthly, BillingCycleQuarterly, BillingCycleYearly:
		return true
	}
	return false
}

// ParseAssetType matches a type name case-insensitively.
func ParseAssetType(s string) (AssetType, error) {
	for _, t := range AssetTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown asset type %q", s)
}

// ParseAssetStatus matches a status name case-insensitively. "InRepair" is accepted for "In Repair".
func ParseAssetStatus(s string) (AssetStatus, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "InRepair") {
		return AssetStatusInRepair, nil
	}
	for _, st := range AssetStatuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown asset status %q", s)
}

func (a *Asset) IsSubscriptionLike() bool {
	return a.Type.IsSubscriptionLike()
}

// Validate checks the fields a stored record must carry.
func (a *Asset) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(a.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if !a.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown value %q", a.Type)}
	}
	if !a.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", a.Status)}
	}
	if a.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if _, err := utils.ParseDate(a.PurchaseDate); err != nil {
		return &ValidationError{Field: "purchaseDate", Reason: err.Error()}
	}
	if a.RenewalDate != "" {
		if _, err := utils.ParseDate(a.RenewalDate); err != nil {
			return &ValidationError{Field: "renewalDate", Reason: err.Error()}
		}
	}
	if a.BillingCycle != "" && !a.BillingCycle.Valid() {
		return &ValidationError{Field: "billingCycle", Reason: fmt.Sprintf("unknown value %q", a.BillingCycle)}
	}
	return nil
}
