package services

import "testing"

// Models wrap JSON output in fences or prose more often than not, so the
// parser has to dig the object out of whatever came back.
func TestParseDiscFields(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		got := parseDiscFields(`{"brand":"Innova","name":"Destroyer","weight":175,"inked":true}`)
		if got.Brand != "Innova" || got.Name != "Destroyer" {
			t.Fatalf("brand/name = %q/%q", got.Brand, got.Name)
		}
		if got.Weight != "175" {
			t.Fatalf("weight = %q, want 175", got.Weight)
		}
		if got.Inked == nil || !*got.Inked {
			t.Fatalf("inked = %v, want true", got.Inked)
		}
	})

	t.Run("fenced json", func(t *testing.T) {
		got := parseDiscFields("```json\n{\"brand\": \"Discraft\", \"plastic\": \"ESP\", \"weight\": \"173-174\"}\n```")
		if got.Brand != "Discraft" || got.Plastic != "ESP" {
			t.Fatalf("brand/plastic = %q/%q", got.Brand, got.Plastic)
		}
		if got.Weight != "173-174" {
			t.Fatalf("weight = %q", got.Weight)
		}
	})

	t.Run("object wrapped in prose", func(t *testing.T) {
		got := parseDiscFields("Here is the extracted data: {\"color\": \"blue\", \"condition\": \"Used\"} Let me know if you need more.")
		if got.Color != "blue" || got.Condition != "Used" {
			t.Fatalf("color/condition = %q/%q", got.Color, got.Condition)
		}
	})

	t.Run("absent fields stay empty", func(t *testing.T) {
		got := parseDiscFields(`{"brand":"Innova"}`)
		if got.Name != "" || got.Weight != "" || got.Notes != "" {
			t.Fatalf("expected empty fields, got %+v", got)
		}
		if got.Inked != nil {
			t.Fatalf("inked = %v, want nil", got.Inked)
		}
	})

	t.Run("garbage yields zero value", func(t *testing.T) {
		for _, content := range []string{"", "I could not find a disc in that description.", "{broken"} {
			got := parseDiscFields(content)
			if got.Brand != "" || got.Name != "" || got.Inked != nil {
				t.Fatalf("parseDiscFields(%q) = %+v, want zero value", content, got)
			}
		}
	})
}
