// Package scan resolves decoded QR payloads and typed tags to assets.
package scan

import (
	"fmt"
	"strings"

	"nexus-asset-manager/internal/domain"
)

// Resolve finds the asset whose id or serial number equals text exactly.
// An id match wins over any serial match. Among serial matches the first in
// collection order wins.
func Resolve(text string, assets []domain.Asset) (domain.Asset, error) {
	if text == "" {
		return domain.Asset{}, &domain.ValidationError{Field: "code", Reason: "is empty"}
	}
	serialIdx := -1
	for i, a := range assets {
		if a.ID == text {
			return a, nil
		}
		if serialIdx < 0 && a.SerialNumber == text {
			serialIdx = i
		}
	}
	if serialIdx >= 0 {
		return assets[serialIdx], nil
	}
	return domain.Asset{}, fmt.Errorf("asset with ID/Serial %s: %w", text, domain.ErrNotFound)
}

// NotFoundMessage is the text shown when a scan matches nothing.
func NotFoundMessage(text string) string {
	return "Asset not found with ID/Serial: " + text
}

// ManualEntry normalizes a typed tag and resolves it.
func ManualEntry(text string, assets []domain.Asset) (domain.Asset, error) {
	return Resolve(NormalizeManual(text), assets)
}

// NormalizeManual trims and upper-cases typed input.
func NormalizeManual(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}
