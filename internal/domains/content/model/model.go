package model

import "holipass/shared/constant"

const CollectionName = "event_content"

// EventContent is the singleton event-configuration document. It is kept as
// a free-form map because the admin form and the merge rules operate key by
// key over arbitrary nesting; typed accessors below cover the fields the
// rest of the service reads.
type EventContent map[string]any

// Pricing map keys.
const (
	PricingEntryPass            = "entry_pass"
	PricingEntryPlusStarter     = "entry_plus_starter"
	PricingEntryPlusStarterLnch = "entry_plus_starter_lunch"
	PricingFoodAvailable        = "food_available"
)

// DefaultContent is the document seeded when no store holds one yet.
func DefaultContent() EventContent {
	return EventContent{
		"event_date": "March 4, 2026",
		"event_time": "10:00 AM – 5:00 PM",
		"venue":      "Amrakunja Park",
		"organizer":  "Spectra Group",
		"contact_persons": []any{
			map[string]any{"name": "Nirotyay Mukherjee", "phone": "7278737263"},
			map[string]any{"name": "Anirban Sarkar", "phone": "7439153943"},
		},
		"pricing": map[string]any{
			PricingEntryPass:            200,
			PricingEntryPlusStarter:     350,
			PricingEntryPlusStarterLnch: 499,
			PricingFoodAvailable:        "Veg and Non-Veg options available at counters",
		},
		"complimentary": "Abir & Special Lassi",
		"offers":        "",
		"hero_image":    "static/images/holi-hero.jpg",
		"gallery_images": []any{
			"images/image 1.jpeg",
			"https://images.unsplash.com/photo-1576018617798-17d3969b8781?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1583163093287-1a0d5459bdce?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1615723795498-a89ca47339c7?w=800&h=600&fit=crop",
		},
	}
}

func (c EventContent) stringField(key, fallback string) string {
	if value, ok := c[key].(string); ok && value != "" {
		return value
	}

	return fallback
}

func (c EventContent) Venue() string {
	return c.stringField("venue", "Amrakunja Park")
}

func (c EventContent) EventDate() string {
	return c.stringField("event_date", "March 4, 2026")
}

func (c EventContent) EventTime() string {
	return c.stringField("event_time", "10:00 AM – 5:00 PM")
}

func (c EventContent) Organizer() string {
	return c.stringField("organizer", "Spectra Group")
}

func (c EventContent) Complimentary() string {
	return c.stringField("complimentary", "Abir & Special Lassi")
}

// Pricing returns the pass-type price table keyed by the stored pass type.
// Missing entries fall back to the defaults, so a half-edited pricing map
// never zeroes an order.
func (c EventContent) Pricing() map[string]int {
	defaults := map[string]int{
		constant.PassTypeEntry:             200,
		constant.PassTypeEntryStarter:      350,
		constant.PassTypeEntryStarterLunch: 499,
	}

	raw, ok := c["pricing"].(map[string]any)
	if !ok {
		return defaults
	}

	keys := map[string]string{
		constant.PassTypeEntry:             PricingEntryPass,
		constant.PassTypeEntryStarter:      PricingEntryPlusStarter,
		constant.PassTypeEntryStarterLunch: PricingEntryPlusStarterLnch,
	}

	for passType, key := range keys {
		if price := asInt(raw[key]); price > 0 {
			defaults[passType] = price
		}
	}

	return defaults
}

// UnitPrice returns the per-pass price for a pass type, defaulting unknown
// types to the plain entry pass.
func (c EventContent) UnitPrice(passType string) int {
	pricing := c.Pricing()
	if price, ok := pricing[passType]; ok {
		return price
	}

	return pricing[constant.PassTypeEntry]
}

// asInt tolerates the numeric types the document may round-trip through:
// ints from the default document, float64 from JSON, int32/int64 from bson.
func asInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
