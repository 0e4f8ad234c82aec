package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/domain/knowledge"
	"retail_assistant/internal/usecase/interfaces"
)

// CompanyInfo is the public contact sheet read out to callers.
type CompanyInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	OfficeHours string `json:"office_hours"`
}

type BrowseResult struct {
	Products []entities.Product
	Summary  string
}

type OrderTracking struct {
	Order   entities.Order
	Message string
}

// CompanyAnswer is the FAQ entry chosen for a company question. When nothing
// matched, Found is false and Answer lists the topics that can be asked about.
type CompanyAnswer struct {
	Question string
	Answer   string
	Found    bool
}

type ISupportUseCase interface {
	Browse(f catalog.Filter) BrowseResult
	Countries() []catalog.ShippingRate
	TrackOrder(ctx context.Context, orderID string) (OrderTracking, error)
	ContactInfo(field string) (string, error)
	CompanyInfo(query string) (CompanyAnswer, error)
	LeadershipTeam() string
}

type SupportUseCase struct {
	catalog   *catalog.Catalog
	orders    interfaces.IOrderRepository
	company   CompanyInfo
	knowledge *knowledge.Base
}

var _ ISupportUseCase = (*SupportUseCase)(nil)

// NewSupportUseCase wires the session-less queries. A nil knowledge base uses
// the built-in company FAQ.
func NewSupportUseCase(c *catalog.Catalog, orders interfaces.IOrderRepository, company CompanyInfo, kb *knowledge.Base) *SupportUseCase {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &SupportUseCase{catalog: c, orders: orders, company: company, knowledge: kb}
}

func (uc *SupportUseCase) Browse(f catalog.Filter) BrowseResult {
	products := uc.catalog.Browse(f)
	if len(products) == 0 {
		return BrowseResult{
			Summary: "No products matched. We carry: " + strings.Join(uc.catalog.Categories(), ", ") + ".",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d products:\n", len(products))
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s) %s, colors: %s\n", p.Key(), p.Category, money(p.Price), strings.Join(p.Colors, ", "))
	}
	return BrowseResult{Products: products, Summary: strings.TrimRight(b.String(), "\n")}
}

func (uc *SupportUseCase) Countries() []catalog.ShippingRate {
	return uc.catalog.Countries()
}

// TrackOrder looks up a confirmed order. Order ids are matched case-insensitively.
func (uc *SupportUseCase) TrackOrder(ctx context.Context, orderID string) (OrderTracking, error) {
	id := strings.ToUpper(strings.TrimSpace(orderID))
	if id == "" {
		return OrderTracking{}, NewValidationError("order_id", "is required")
	}

	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] track failed order_id=%s err=%v", id, err)
		return OrderTracking{}, fmt.Errorf("loading order %s: %w", id, err)
	}
	if o.ID == "" {
		return OrderTracking{}, ErrOrderNotFound
	}

	msg := fmt.Sprintf("Order %s is %s. Total %s, shipping to %s.", o.ID, o.Status, money(o.Total), o.Country)
	if !o.OrderDate.IsZero() {
		msg += fmt.Sprintf(" Ordered on %s, estimated delivery %s.", formatDate(o.OrderDate), formatDate(o.DeliveryDate))
	}
	return OrderTracking{Order: o, Message: msg}, nil
}

// ContactInfo returns one field of the company contact sheet, or all of it
// when field is empty.
func (uc *SupportUseCase) ContactInfo(field string) (string, error) {
	c := uc.company
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "", "all":
		return fmt.Sprintf("%s\nAddress: %s\nPhone: %s\nEmail: %s\nOffice hours: %s",
			c.Name, c.Address, c.Phone, c.Email, c.OfficeHours), nil
	case "address":
		return "Our address is " + c.Address + ".", nil
	case "phone":
		return "You can call us at " + c.Phone + ".", nil
	case "email":
		return "You can email us at " + c.Email + ".", nil
	case "hours", "office_hours":
		return "Our office hours are " + c.OfficeHours + ".", nil
	default:
		return "", NewValidationError("field", "must be one of address, phone, email, office_hours")
	}
}

// CompanyInfo answers a free-text question about the company from the FAQ.
func (uc *SupportUseCase) CompanyInfo(query string) (CompanyAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return CompanyAnswer{}, NewValidationError("query", "is required")
	}

	e, ok := uc.knowledge.Lookup(query)
	if !ok {
		log.Printf("[company][usecase] no faq match query=%q", query)
		return CompanyAnswer{
			Answer: "Sorry, I couldn't find that in our company information. You can ask me: " +
				strings.Join(uc.knowledge.Questions(), " "),
		}, nil
	}
	return CompanyAnswer{Question: e.Question, Answer: e.Answer, Found: true}, nil
}

func (uc *SupportUseCase) LeadershipTeam() string {
	return uc.knowledge.Leadership()
}
