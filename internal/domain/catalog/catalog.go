package catalog

import (
	"strings"

	"retail_assistant/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AccessoriesCategory holds the products that upsell offers are drawn from.
const AccessoriesCategory = "accessories"

// ShippingRate is the surcharge fraction applied to an order subtotal for a
// destination country.
type ShippingRate struct {
	Country string          `json:"country"`
	Rate    decimal.Decimal `json:"rate"`
}

// Filter narrows Browse results. Zero fields do not filter.
type Filter struct {
	Category string
	Brand    string
	Color    string
	MaxPrice decimal.Decimal
}

type productKey struct {
	category string
	brand    string
	model    string
}

type categoryIndex struct {
	name   string
	brands []string
	// lower(brand) -> products in catalog order
	products map[string][]entities.Product
}

// Catalog is the read-only product and shipping reference.
//
// It is built once by New and never mutated afterwards, so it can be shared
// by every session without locking. Lookups are case-insensitive and always
// answer with the canonical spelling.
type Catalog struct {
	categories []string
	byCategory map[string]*categoryIndex
	products   map[productKey]entities.Product

	countries []ShippingRate
	byCountry map[string]ShippingRate
}

func New(products []entities.Product, rates []ShippingRate) *Catalog {
	c := &Catalog{
		byCategory: make(map[string]*categoryIndex),
		products:   make(map[productKey]entities.Product, len(products)),
		byCountry:  make(map[string]ShippingRate, len(rates)),
	}

	for _, p := range products {
		catKey := fold(p.Category)
		idx, ok := c.byCategory[catKey]
		if !ok {
			idx = &categoryIndex{name: p.Category, products: make(map[string][]entities.Product)}
			c.byCategory[catKey] = idx
			c.categories = append(c.categories, p.Category)
		}

		brandKey := fold(p.Brand)
		if _, ok := idx.products[brandKey]; !ok {
			idx.brands = append(idx.brands, p.Brand)
		}
		p.Colors = append([]string(nil), p.Colors...)
		idx.products[brandKey] = append(idx.products[brandKey], p)
		c.products[productKey{catKey, brandKey, fold(p.Model)}] = p
	}

	for _, r := range rates {
		key := fold(r.Country)
		if _, dup := c.byCountry[key]; dup {
			continue
		}
		c.byCountry[key] = r
		c.countries = append(c.countries, r)
	}
	return c
}

func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Category returns the canonical category name.
func (c *Catalog) Category(name string) (string, bool) {
	idx, ok := c.byCategory[fold(name)]
	if !ok {
		return "", false
	}
	return idx.name, true
}

func (c *Catalog) Brands(category string) []string {
	idx, ok := c.byCategory[fold(category)]
	if !ok {
		return nil
	}
	return append([]string(nil), idx.brands...)
}

// Brand returns the canonical brand registered under category.
func (c *Catalog) Brand(category, brand string) (string, bool) {
	idx, ok := c.byCategory[fold(category)]
	if !ok {
		return "", false
	}
	products, ok := idx.products[fold(brand)]
	if !ok || len(products) == 0 {
		return "", false
	}
	return products[0].Brand, true
}

// Models lists the products of one brand within a category.
func (c *Catalog) Models(category, brand string) []entities.Product {
	idx, ok := c.byCategory[fold(category)]
	if !ok {
		return nil
	}
	products := idx.products[fold(brand)]
	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		out = append(out, clone(p))
	}
	return out
}

// ModelNames lists "Brand Model" for every product of a category.
func (c *Catalog) ModelNames(category string) []string {
	idx, ok := c.byCategory[fold(category)]
	if !ok {
		return nil
	}
	var names []string
	for _, brand := range idx.brands {
		for _, p := range idx.products[fold(brand)] {
			names = append(names, p.Key())
		}
	}
	return names
}

func (c *Catalog) Lookup(category, brand, model string) (entities.Product, bool) {
	p, ok := c.products[productKey{fold(category), fold(brand), fold(model)}]
	if !ok {
		return entities.Product{}, false
	}
	return clone(p), true
}

// FindModel searches every brand of category for model, in catalog order.
func (c *Catalog) FindModel(category, model string) (entities.Product, bool) {
	idx, ok := c.byCategory[fold(category)]
	if !ok {
		return entities.Product{}, false
	}
	for _, brand := range idx.brands {
		if p, ok := c.Lookup(idx.name, brand, model); ok {
			return p, true
		}
	}
	return entities.Product{}, false
}

func (c *Catalog) Countries() []ShippingRate {
	return append([]ShippingRate(nil), c.countries...)
}

func (c *Catalog) CountryNames() []string {
	names := make([]string, 0, len(c.countries))
	for _, r := range c.countries {
		names = append(names, r.Country)
	}
	return names
}

// Country resolves name case-insensitively to its canonical entry.
func (c *Catalog) Country(name string) (ShippingRate, bool) {
	r, ok := c.byCountry[fold(name)]
	return r, ok
}

func (c *Catalog) Browse(f Filter) []entities.Product {
	categories := c.categories
	if f.Category != "" {
		if name, ok := c.Category(f.Category); ok {
			categories = []string{name}
		}
	}

	var out []entities.Product
	for _, category := range categories {
		idx := c.byCategory[fold(category)]
		for _, brand := range idx.brands {
			if f.Brand != "" && !strings.EqualFold(f.Brand, brand) {
				continue
			}
			for _, p := range idx.products[fold(brand)] {
				if f.Color != "" {
					if _, ok := p.MatchColor(f.Color); !ok {
						continue
					}
				}
				if f.MaxPrice.IsPositive() && p.Price.GreaterThan(f.MaxPrice) {
					continue
				}
				out = append(out, clone(p))
			}
		}
	}
	return out
}

// clone detaches the colors slice so callers cannot write through to the catalog.
func clone(p entities.Product) entities.Product {
	p.Colors = append([]string(nil), p.Colors...)
	return p
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
