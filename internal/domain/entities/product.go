package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Brand, Model and Colors hold the catalog's
// canonical spelling; every session-side key is derived from them.
type Product struct {
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Colors   []string        `json:"colors"`
	Price    decimal.Decimal `json:"price"`
}

// Key is the order item key ("Brand Model").
func (p Product) Key() string {
	return p.Brand + " " + p.Model
}

// MatchColor returns the canonical color matching c case-insensitively.
func (p Product) MatchColor(c string) (string, bool) {
	c = strings.TrimSpace(c)
	for _, color := range p.Colors {
		if strings.EqualFold(color, c) {
			return color, true
		}
	}
	return "", false
}
