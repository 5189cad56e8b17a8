package domain

// SampleAssets returns the inventory a fresh local store starts with.
func SampleAssets() []Asset {
	return []Asset{
		{
			ID:           "AST-001",
			Name:         `MacBook Pro 16"`,
			Model:        "M2 Max",
			SerialNumber: "FVFX1234K9",
			Type:         AssetTypeLaptop,
			Status:       AssetStatusAssigned,
			PurchaseDate: "2023-05-15",
			Price:        3499,
			AssignedTo:   "Sarah Jenkins",
			Notes:        "Primary dev machine for Lead Engineer",
		},
		{
			ID:           "AST-002",
			Name:         "Dell XPS 15",
			Model:        "9520",
			SerialNumber: "8H29A11",
			Type:         AssetTypeLaptop,
			Status:       AssetStatusAvailable,
			PurchaseDate: "2023-01-20",
			Price:        2100,
			Notes:        "Returned by previous employee, reformatted.",
		},
		{
			ID:           "AST-003",
			Name:         `Dell UltraSharp 27"`,
			Model:        "U2723QE",
			SerialNumber: "CN-0M5-74261",
			Type:         AssetTypeMonitor,
			Status:       AssetStatusAssigned,
			PurchaseDate: "2023-06-10",
			Price:        650,
			AssignedTo:   "Sarah Jenkins",
		},
		{
			ID:           "AST-004",
			Name:         "iPhone 14 Pro",
			Model:        "A2890",
			SerialNumber: "L992KA82",
			Type:         AssetTypeMobile,
			Status:       AssetStatusInRepair,
			PurchaseDate: "2022-11-05",
			Price:        999,
			AssignedTo:   "Michael Chen",
			Notes:        "Screen cracked, sent to vendor.",
		},
		{
			ID:           "AST-005",
			Name:         "Logitech MX Master 3S",
			Model:        "MR0077",
			SerialNumber: "2133LZ51",
			Type:         AssetTypePeripheral,
			Status:       AssetStatusAvailable,
			PurchaseDate: "2024-02-01",
			Price:        99,
		},
		{
			ID:           "AST-006",
			Name:         "Adobe Creative Cloud",
			Model:        "All Apps License",
			SerialNumber: "LIC-9921-22",
			Type:         AssetTypeSubscription,
			Status:       AssetStatusActive,
			PurchaseDate: "2024-01-01",
			RenewalDate:  "2025-01-01",
			BillingCycle: BillingCycleYearly,
			Price:        600,
			AssignedTo:   "Marketing Team",
		},
		{
			ID:           "AST-007",
			Name:         "ThinkPad X1 Carbon",
			Model:        "Gen 10",
			SerialNumber: "PF-2K91AA",
			Type:         AssetTypeLaptop,
			Status:       AssetStatusRetired,
			PurchaseDate: "2020-03-15",
			Price:        1800,
			Notes:        "End of lifecycle.",
		},
		{
			ID:           "AST-008",
			Name:         "Herman Miller Aeron",
			Model:        "Size B",
			SerialNumber: "HM-12941",
			Type:         AssetTypeOther,
			Status:       AssetStatusAssigned,
			PurchaseDate: "2022-08-20",
			Price:        1400,
			AssignedTo:   "David Miller",
		},
		{
			ID:           "SUB-101",
			Name:         "Slack Enterprise",
			Model:        "Business Plus",
			SerialNumber: "SLK-2291",
			Type:         AssetTypeSubscription,
			Status:       AssetStatusActive,
			PurchaseDate: "2023-05-01",
			RenewalDate:  "2024-05-01",
			BillingCycle: BillingCycleMonthly,
			Price:        1250,
			AssignedTo:   "Company Wide",
		},
		{
			ID:           "SUB-102",
			Name:         "Figma",
			Model:        "Professional",
			SerialNumber: "FIG-8821",
			Type:         AssetTypeSubscription,
			Status:       AssetStatusActive,
			PurchaseDate: "2023-08-15",
			RenewalDate:  "2024-08-15",
			BillingCycle: BillingCycleYearly,
			Price:        144,
			AssignedTo:   "Design Team",
		},
		{
			ID:           "SUB-103",
			Name:         "Jira Cloud",
			Model:        "Standard",
			SerialNumber: "AT-9921",
			Type:         AssetTypeSubscription,
			Status:       AssetStatusExpired,
			PurchaseDate: "2022-01-01",
			RenewalDate:  "2023-01-01",
			BillingCycle: BillingCycleYearly,
			Price:        2000,
			Notes:        "Migrated to Linear",
		},
	}
}
