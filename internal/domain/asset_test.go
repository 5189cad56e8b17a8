package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAsset() Asset {
	return Asset{
		ID:           "AST-123456",
		Name:         "Dell XPS 13",
		Type:         AssetTypeLaptop,
		Status:       AssetStatusAvailable,
		PurchaseDate: "2024-03-01",
		Price:        1299,
	}
}

func TestAssetValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		a := validAsset()
		assert.NoError(t, a.Validate())
	})

	t.Run("Missing name", func(t *testing.T) {
		a := validAsset()
		a.Name = "  "
		err := a.Validate()
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("Negative price", func(t *testing.T) {
		a := validAsset()
		a.Price = -1
		assert.ErrorContains(t, a.Validate(), "price")
	})

	t.Run("Bad renewal date", func(t *testing.T) {
		a := validAsset()
		a.RenewalDate = "2024/01/01"
		assert.ErrorContains(t, a.Validate(), "renewalDate")
	})

	t.Run("Unknown status", func(t *testing.T) {
		a := validAsset()
		a.Status = "Borrowed"
		assert.ErrorContains(t, a.Validate(), "status")
	})
}

func TestAssetTypeIsSubscriptionLike(t *testing.T) {
	assert.True(t, AssetTypeSubscription.IsSubscriptionLike())
	assert.True(t, AssetTypeSoftware.IsSubscriptionLike())
	assert.False(t, AssetTypeLaptop.IsSubscriptionLike())
	assert.False(t, AssetTypeOther.IsSubscriptionLike())
}

func TestParseAssetStatus(t *testing.T) {
	st, err := ParseAssetStatus("inrepair")
	require.NoError(t, err)
	assert.Equal(t, AssetStatusInRepair, st)

	st, err = ParseAssetStatus("in repair")
	require.NoError(t, err)
	assert.Equal(t, AssetStatusInRepair, st)

	_, err = ParseAssetStatus("gone")
	assert.Error(t, err)
}

func TestAssetJSONFieldNames(t *testing.T) {
	a := validAsset()
	a.SerialNumber = "SN1"
	data, err := json.Marshal(a)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "SN1", raw["serialNumber"])
	assert.Equal(t, "2024-03-01", raw["purchaseDate"])
	assert.NotContains(t, raw, "renewalDate")
	assert.NotContains(t, raw, "assignedTo")
}

func TestSampleAssetsAreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range SampleAssets() {
		assert.NoError(t, a.Validate(), a.ID)
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}
