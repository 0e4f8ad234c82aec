package usecase

import (
	"log"
	"strings"

	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/entities"
)

const maxUpsellSuggestions = 5

// upsellTable maps a product category to the accessories offered with it.
var upsellTable = map[string][]string{
	"smartphones":  {"Screen Protector", "Phone Case", "Wireless Charger"},
	"laptops":      {"Laptop Bag", "Wireless Mouse", "Cooling Pad"},
	"headphones":   {"Carrying Case", "Audio Cable", "Extra Ear Cushions"},
	"smartwatches": {"Extra Straps", "Screen Guard", "Wireless Charger"},
	"smart_home":   {"Smart Bulb", "Smart Plug"},
	"accessories":  {"USB-C Cable", "Portable Power Bank"},
}

type IUpsellAdvisor interface {
	Suggest(category string) []string
	Offer(session *entities.Session, categories []string) []string
	Accept(session *entities.Session, chosen string) (ResolvedProduct, error)
}

// UpsellAdvisor proposes accessories for the categories in an order. Only
// accessories the catalog actually sells are ever offered.
type UpsellAdvisor struct {
	catalog   *catalog.Catalog
	validator IProductValidator
}

var _ IUpsellAdvisor = (*UpsellAdvisor)(nil)

func NewUpsellAdvisor(c *catalog.Catalog, validator IProductValidator) *UpsellAdvisor {
	return &UpsellAdvisor{catalog: c, validator: validator}
}

// Suggest returns the accessories for category that exist in the catalog.
// Unknown categories yield an empty list.
func (a *UpsellAdvisor) Suggest(category string) []string {
	candidates := upsellTable[strings.ToLower(strings.TrimSpace(category))]
	out := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if p, ok := a.catalog.FindModel(catalog.AccessoriesCategory, name); ok {
			out = append(out, p.Model)
		}
	}
	return out
}

// Offer stores the combined suggestions for categories as the session's
// single-use upsell offer and returns it.
func (a *UpsellAdvisor) Offer(session *entities.Session, categories []string) []string {
	seen := make(map[string]struct{})
	var offer []string
	for _, category := range categories {
		for _, name := range a.Suggest(category) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			offer = append(offer, name)
			if len(offer) == maxUpsellSuggestions {
				session.SetUpsellOffer(offer)
				return offer
			}
		}
	}
	session.SetUpsellOffer(offer)
	return offer
}

// Accept matches chosen against the last offer and resolves the accessory.
// The offer is consumed whether or not anything matched.
func (a *UpsellAdvisor) Accept(session *entities.Session, chosen string) (ResolvedProduct, error) {
	offer := session.TakeUpsellOffer()
	needle := strings.ToLower(strings.TrimSpace(chosen))
	if needle == "" {
		return ResolvedProduct{}, NewValidationError("product", "is required")
	}

	for _, name := range offer {
		candidate := strings.ToLower(name)
		if !strings.Contains(candidate, needle) && !strings.Contains(needle, candidate) {
			continue
		}
		log.Printf("[upsell][usecase] accepted session_id=%s product=%q", session.ID, name)
		return a.validator.Resolve(catalog.AccessoriesCategory, "", name, "")
	}

	log.Printf("[upsell][usecase] not offered session_id=%s chosen=%q", session.ID, chosen)
	return ResolvedProduct{}, &CatalogLookupError{
		Reason:      ReasonUpsellNotOffered,
		Field:       "product",
		Value:       chosen,
		Suggestions: offer,
	}
}
