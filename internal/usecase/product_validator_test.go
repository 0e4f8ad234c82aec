package usecase

import (
	"errors"
	"testing"

	"retail_assistant/internal/domain/catalog"
)

func TestProductValidator_Resolve(t *testing.T) {
	v := NewProductValidator(catalog.Default())

	t.Run("canonicalizes every field", func(t *testing.T) {
		p, err := v.Resolve(" SMARTPHONES ", "apple", "iphone 15 pro", "silver")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Brand != "Apple" || p.Model != "iPhone 15 Pro" || p.Color != "Silver" || p.Category != "smartphones" {
			t.Fatalf("unexpected product: %+v", p)
		}
		if p.Key() != "Apple iPhone 15 Pro" {
			t.Fatalf("unexpected key %q", p.Key())
		}
		if p.Price.IntPart() != 1200 {
			t.Fatalf("unexpected price %s", p.Price)
		}
	})

	t.Run("absent color is valid", func(t *testing.T) {
		p, err := v.Resolve("laptops", "Dell", "XPS 13", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Color != "" {
			t.Fatalf("expected default color, got %q", p.Color)
		}
	})

	t.Run("blank brand finds the owning brand", func(t *testing.T) {
		p, err := v.Resolve("accessories", "  ", "wireless charger", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Brand != "Belkin" {
			t.Fatalf("expected Belkin, got %q", p.Brand)
		}
	})

	t.Run("blank brand falls back to Generic", func(t *testing.T) {
		_, err := v.Resolve("smartphones", "", "Galaxy S99", "")
		var lookup *CatalogLookupError
		if !errors.As(err, &lookup) || lookup.Reason != ReasonBrandUnknown || lookup.Value != GenericBrand {
			t.Fatalf("expected BrandUnknown for Generic, got %v", err)
		}
	})

	cases := []struct {
		name                   string
		category, brand, model string
		color                  string
		reason, field          string
	}{
		{name: "unknown category", category: "toasters", brand: "Apple", model: "iPhone 14", reason: ReasonCategoryUnknown, field: "category"},
		{name: "unknown brand", category: "smartphones", brand: "Pixel", model: "Pixel 8", reason: ReasonBrandUnknown, field: "brand"},
		{name: "unknown model", category: "smartphones", brand: "Samsung", model: "Galaxy S22", reason: ReasonModelUnknown, field: "model"},
		{name: "unavailable color", category: "smartphones", brand: "Samsung", model: "Galaxy S23", color: "Purple", reason: ReasonColorUnavailable, field: "color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Resolve(tc.category, tc.brand, tc.model, tc.color)
			if !errors.Is(err, ErrCatalogLookup) {
				t.Fatalf("expected ErrCatalogLookup, got %v", err)
			}
			var lookup *CatalogLookupError
			if !errors.As(err, &lookup) {
				t.Fatalf("expected *CatalogLookupError, got %T", err)
			}
			if lookup.Reason != tc.reason || lookup.Field != tc.field {
				t.Fatalf("unexpected lookup error: %+v", lookup)
			}
			if len(lookup.Suggestions) == 0 {
				t.Fatalf("expected suggestions")
			}
		})
	}

	t.Run("blank model", func(t *testing.T) {
		_, err := v.Resolve("smartphones", "Apple", " ", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
