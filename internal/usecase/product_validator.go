package usecase

import (
	"log"
	"strings"

	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/entities"
)

// GenericBrand is assumed when a caller names a model without its brand and no
// brand of the category carries that model.
const GenericBrand = "Generic"

// ResolvedProduct is a catalog product plus the canonical color the caller
// asked for (empty means the default color).
type ResolvedProduct struct {
	entities.Product
	Color string
}

func (r ResolvedProduct) toOrderItem(quantity int) entities.OrderItem {
	return entities.OrderItem{
		Category:  r.Category,
		Brand:     r.Brand,
		Model:     r.Model,
		Color:     r.Color,
		UnitPrice: r.Price,
		Quantity:  quantity,
	}
}

// IProductValidator resolves free-text product references to catalog entries.
type IProductValidator interface {
	Resolve(category, brand, model, color string) (ResolvedProduct, error)
}

type ProductValidator struct {
	catalog *catalog.Catalog
}

var _ IProductValidator = (*ProductValidator)(nil)

func NewProductValidator(c *catalog.Catalog) *ProductValidator {
	return &ProductValidator{catalog: c}
}

// Resolve matches category, brand, model and color case-insensitively, in that
// order, and fails on the first field the catalog does not know.
//
// A blank brand is looked up leniently: any brand of the category that sells
// the model is accepted, otherwise GenericBrand is tried.
func (v *ProductValidator) Resolve(category, brand, model, color string) (ResolvedProduct, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return ResolvedProduct{}, NewValidationError("model", "is required")
	}

	cat, ok := v.catalog.Category(category)
	if !ok {
		log.Printf("[catalog][usecase] unknown category category=%q", category)
		return ResolvedProduct{}, &CatalogLookupError{
			Reason:      ReasonCategoryUnknown,
			Field:       "category",
			Value:       category,
			Suggestions: v.catalog.Categories(),
		}
	}

	brand = strings.TrimSpace(brand)
	if brand == "" {
		brand = GenericBrand
		if p, found := v.catalog.FindModel(cat, model); found {
			brand = p.Brand
		}
		log.Printf("[catalog][usecase] brand omitted category=%s model=%q resolved_brand=%s", cat, model, brand)
	}

	canonicalBrand, ok := v.catalog.Brand(cat, brand)
	if !ok {
		return ResolvedProduct{}, &CatalogLookupError{
			Reason:      ReasonBrandUnknown,
			Field:       "brand",
			Value:       brand,
			Suggestions: v.catalog.Brands(cat),
		}
	}

	p, ok := v.catalog.Lookup(cat, canonicalBrand, model)
	if !ok {
		models := v.catalog.Models(cat, canonicalBrand)
		names := make([]string, 0, len(models))
		for _, m := range models {
			names = append(names, m.Model)
		}
		return ResolvedProduct{}, &CatalogLookupError{
			Reason:      ReasonModelUnknown,
			Field:       "model",
			Value:       model,
			Suggestions: names,
		}
	}

	resolved := ResolvedProduct{Product: p}
	if color = strings.TrimSpace(color); color != "" {
		canonicalColor, ok := p.MatchColor(color)
		if !ok {
			return ResolvedProduct{}, &CatalogLookupError{
				Reason:      ReasonColorUnavailable,
				Field:       "color",
				Value:       color,
				Suggestions: p.Colors,
			}
		}
		resolved.Color = canonicalColor
	}
	return resolved, nil
}
