package model_test

import (
	"testing"

	"holipass/internal/domains/content/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePreservesUnrelatedFields(t *testing.T) {
	existing := model.DefaultContent()

	merged := model.Merge(existing, model.EventContent{
		"venue": "Dighi Garden Mankundu",
	})

	assert.Equal(t, "Dighi Garden Mankundu", merged.Venue())
	// The historical failure this merge prevents: saving one field wiping
	// the gallery.
	assert.Equal(t, existing["gallery_images"], merged["gallery_images"])
	assert.Equal(t, existing["contact_persons"], merged["contact_persons"])
	assert.Equal(t, "Amrakunja Park", existing.Venue(), "inputs are not mutated")
}

func TestMergeBlankValuesAreNoOps(t *testing.T) {
	tests := []struct {
		name    string
		partial model.EventContent
	}{
		{"empty string", model.EventContent{"venue": ""}},
		{"nil value", model.EventContent{"venue": nil}},
		{"empty list", model.EventContent{"gallery_images": []any{}}},
		{"list of blank strings", model.EventContent{"gallery_images": []any{"", "  "}}},
		{"empty map", model.EventContent{"pricing": map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := model.DefaultContent()

			merged := model.Merge(existing, tt.partial)

			assert.Equal(t, existing, merged)
		})
	}
}

func TestMergeNonEmptyListReplacesWholesale(t *testing.T) {
	existing := model.DefaultContent()

	merged := model.Merge(existing, model.EventContent{
		"gallery_images": []any{"https://cdn.example.com/new.jpg"},
	})

	assert.Equal(t, []any{"https://cdn.example.com/new.jpg"}, merged["gallery_images"])
}

func TestMergeNestedMapsMergeRecursively(t *testing.T) {
	existing := model.DefaultContent()

	merged := model.Merge(existing, model.EventContent{
		"pricing": map[string]any{
			model.PricingEntryPass:     250,
			model.PricingFoodAvailable: "",
		},
	})

	pricing, ok := merged["pricing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 250, pricing[model.PricingEntryPass])
	assert.Equal(t, 350, pricing[model.PricingEntryPlusStarter], "unmentioned nested keys survive")
	assert.Equal(t, "Veg and Non-Veg options available at counters", pricing[model.PricingFoodAvailable],
		"blank nested values are no-ops too")
}

func TestMergeAddsNewKeys(t *testing.T) {
	merged := model.Merge(model.EventContent{}, model.EventContent{"offers": "Early bird 5% off"})

	assert.Equal(t, "Early bird 5% off", merged["offers"])
}

func TestPricingToleratesJSONNumbers(t *testing.T) {
	content := model.EventContent{
		"pricing": map[string]any{
			model.PricingEntryPass:        float64(225),
			model.PricingEntryPlusStarter: int64(375),
		},
	}

	assert.Equal(t, 225, content.UnitPrice("entry"))
	assert.Equal(t, 375, content.UnitPrice("entry_starter"))
	assert.Equal(t, 499, content.UnitPrice("entry_starter_lunch"), "missing entries keep defaults")
	assert.Equal(t, 225, content.UnitPrice("unknown"), "unknown pass types price as plain entry")
}
