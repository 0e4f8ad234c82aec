package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase/interfaces"
)

const (
	orderIDPrefix       = "ORD"
	defaultStoreName    = "MayfairTech"
	minDeliveryDays     = 3
	maxDeliveryDays     = 10
	salesNoticeSubject  = "New Customer Order Received"
	receiptSubjectTempl = "Your Order Confirmation - %s"
)

// OrderItemRequest is one free-text item reference as extracted from the
// conversation.
type OrderItemRequest struct {
	Category string
	Brand    string
	Model    string
	Color    string
	Quantity int
}

func (r OrderItemRequest) label() string {
	label := strings.TrimSpace(strings.TrimSpace(r.Brand) + " " + strings.TrimSpace(r.Model))
	if label == "" {
		return strings.TrimSpace(r.Category)
	}
	return label
}

// OrderPreview is returned by every mutation of a pending order. Nothing in it
// has been persisted or sent.
type OrderPreview struct {
	Order                entities.Order
	Summary              string
	Upsell               []string
	Notices              []string
	RequiresConfirmation bool
}

type OrderConfirmation struct {
	Order    entities.Order
	Message  string
	Warnings []string
}

type IOrderUseCase interface {
	StartOrMerge(session *entities.Session, customer entities.Customer, country string, items []OrderItemRequest) (OrderPreview, error)
	AddItem(session *entities.Session, item OrderItemRequest) (OrderPreview, error)
	AcceptUpsell(session *entities.Session, chosen string, quantity int) (OrderPreview, error)
	Preview(session *entities.Session) (OrderPreview, error)
	Confirm(ctx context.Context, session *entities.Session) (OrderConfirmation, error)
	Cancel(session *entities.Session) (entities.Order, error)
}

type OrderOptions struct {
	SalesEmail    string
	StoreName     string
	NotifyTimeout time.Duration
	Clock         Clock
	NewID         IDGenerator
	DeliveryDays  DeliveryWindow
}

type OrderUseCase struct {
	catalog   *catalog.Catalog
	validator IProductValidator
	upsell    IUpsellAdvisor
	repo      interfaces.IOrderRepository
	notifier  interfaces.INotifier
	opts      OrderOptions
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	c *catalog.Catalog,
	validator IProductValidator,
	upsell IUpsellAdvisor,
	repo interfaces.IOrderRepository,
	notifier interfaces.INotifier,
	opts OrderOptions,
) *OrderUseCase {
	if opts.StoreName == "" {
		opts.StoreName = defaultStoreName
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = defaultNotifyTimeout
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.NewID == nil {
		opts.NewID = UUIDGenerator
	}
	if opts.DeliveryDays == nil {
		opts.DeliveryDays = RandomDeliveryWindow(minDeliveryDays, maxDeliveryDays)
	}
	return &OrderUseCase{
		catalog:   c,
		validator: validator,
		upsell:    upsell,
		repo:      repo,
		notifier:  notifier,
		opts:      opts,
	}
}

// StartOrMerge creates the session's pending order or merges items into it.
//
// Every input is checked before the session is touched: one bad item fails the
// whole call and leaves any existing order exactly as it was.
func (uc *OrderUseCase) StartOrMerge(session *entities.Session, customer entities.Customer, country string, items []OrderItemRequest) (OrderPreview, error) {
	if len(items) == 0 {
		return OrderPreview{}, NewValidationError("items", "at least one item is required")
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return OrderPreview{}, NewValidationError("quantity", "must be at least 1")
		}
	}

	existing := session.PendingOrder()
	var rate catalog.ShippingRate
	if existing == nil {
		customer.Name = strings.TrimSpace(customer.Name)
		customer.Email = strings.TrimSpace(customer.Email)
		if err := validateStruct(customer); err != nil {
			return OrderPreview{}, err
		}
		r, ok := uc.catalog.Country(country)
		if !ok {
			log.Printf("[order][usecase] unknown country session_id=%s country=%q", session.ID, country)
			return OrderPreview{}, &CatalogLookupError{
				Reason:      ReasonCountryUnknown,
				Field:       "country",
				Value:       country,
				Suggestions: uc.catalog.CountryNames(),
			}
		}
		rate = r
	}

	resolved, err := uc.resolveAll(items)
	if err != nil {
		log.Printf("[order][usecase] start/merge rejected session_id=%s err=%v", session.ID, err)
		return OrderPreview{}, err
	}

	now := uc.opts.Clock()
	var (
		order   entities.Order
		notices []string
	)
	if existing == nil {
		order = entities.Order{
			ID:           uc.opts.NewID(orderIDPrefix),
			Customer:     customer,
			Country:      rate.Country,
			ShippingRate: rate.Rate,
			Items:        make(map[string]entities.OrderItem, len(resolved)),
			Status:       entities.OrderStatusPending,
			CreatedAt:    now,
		}
		log.Printf("[order][usecase] order started session_id=%s order_id=%s country=%s", session.ID, order.ID, order.Country)
	} else {
		order = existing.Clone()
		if notice := uc.countryNotice(order, country); notice != "" {
			notices = append(notices, notice)
		}
		log.Printf("[order][usecase] merging items session_id=%s order_id=%s items=%d", session.ID, order.ID, len(resolved))
	}

	categories := make([]string, 0, len(resolved))
	for i, p := range resolved {
		if order.AddItem(p.toOrderItem(items[i].Quantity)) {
			notices = append(notices, mixedColorNotice(p.Key()))
		}
		categories = append(categories, p.Category)
	}
	order.Recalculate()
	order.UpdatedAt = now
	session.SetPendingOrder(&order)

	offer := uc.upsell.Offer(session, categories)
	return uc.preview(order, offer, notices), nil
}

// AddItem adds one item to the pending order and reprices it.
func (uc *OrderUseCase) AddItem(session *entities.Session, item OrderItemRequest) (OrderPreview, error) {
	existing := session.PendingOrder()
	if existing == nil {
		return OrderPreview{}, errNoPendingOrder
	}
	if item.Quantity < 1 {
		return OrderPreview{}, NewValidationError("quantity", "must be at least 1")
	}

	p, err := uc.validator.Resolve(item.Category, item.Brand, item.Model, item.Color)
	if err != nil {
		log.Printf("[order][usecase] add item rejected session_id=%s order_id=%s err=%v", session.ID, existing.ID, err)
		return OrderPreview{}, err
	}

	order, notices := uc.addResolved(session, *existing, p, item.Quantity)
	return uc.preview(order, session.UpsellOffer(), notices), nil
}

// AcceptUpsell adds an accessory from the session's upsell offer. The offer
// is consumed even when the choice does not match it.
func (uc *OrderUseCase) AcceptUpsell(session *entities.Session, chosen string, quantity int) (OrderPreview, error) {
	existing := session.PendingOrder()
	if existing == nil {
		session.SetUpsellOffer(nil)
		return OrderPreview{}, errNoPendingOrder
	}
	if quantity < 1 {
		return OrderPreview{}, NewValidationError("quantity", "must be at least 1")
	}

	p, err := uc.upsell.Accept(session, chosen)
	if err != nil {
		return OrderPreview{}, err
	}

	order, notices := uc.addResolved(session, *existing, p, quantity)
	return uc.preview(order, nil, notices), nil
}

func (uc *OrderUseCase) Preview(session *entities.Session) (OrderPreview, error) {
	existing := session.PendingOrder()
	if existing == nil {
		return OrderPreview{}, errNoPendingOrder
	}
	return uc.preview(existing.Clone(), session.UpsellOffer(), nil), nil
}

// Confirm persists the pending order and notifies the customer and the sales
// team. Once the order is saved the confirmation stands; failed sends are
// reported as warnings only.
func (uc *OrderUseCase) Confirm(ctx context.Context, session *entities.Session) (OrderConfirmation, error) {
	existing := session.PendingOrder()
	if existing == nil {
		return OrderConfirmation{}, errNoPendingOrder
	}

	now := uc.opts.Clock()
	order := existing.Clone()
	order.Status = entities.OrderStatusConfirmed
	order.OrderDate = now
	order.DeliveryDate = now.AddDate(0, 0, uc.opts.DeliveryDays())
	order.UpdatedAt = now

	if err := uc.repo.Save(ctx, order); err != nil {
		log.Printf("[order][usecase] confirm persist failed session_id=%s order_id=%s err=%v", session.ID, order.ID, err)
		return OrderConfirmation{}, fmt.Errorf("saving order %s: %w", order.ID, err)
	}
	session.ClearPendingOrder()
	session.SetUpsellOffer(nil)
	log.Printf("[order][usecase] confirm success order_id=%s total=%s", order.ID, money(order.Total))

	customerErr := notify(ctx, uc.notifier, uc.opts.NotifyTimeout, notification{
		to:      order.Customer.Email,
		subject: fmt.Sprintf(receiptSubjectTempl, uc.opts.StoreName),
		body:    customerReceipt(uc.opts.StoreName, order),
	})
	salesErr := notify(ctx, uc.notifier, uc.opts.NotifyTimeout, notification{
		to:      uc.opts.SalesEmail,
		subject: salesNoticeSubject,
		body:    salesCopy(order),
	})

	msg := fmt.Sprintf("Order %s confirmed. Total %s. Estimated delivery: %s.",
		order.ID, money(order.Total), formatDate(order.DeliveryDate))
	if customerErr == nil {
		msg += " A confirmation email has been sent to " + order.Customer.Email + "."
	}
	return OrderConfirmation{
		Order:    order,
		Message:  msg,
		Warnings: warningsOf(customerErr, salesErr),
	}, nil
}

// Cancel discards the pending order. Nothing is persisted.
func (uc *OrderUseCase) Cancel(session *entities.Session) (entities.Order, error) {
	existing := session.PendingOrder()
	if existing == nil {
		return entities.Order{}, errNoPendingOrder
	}
	order := existing.Clone()
	order.Status = entities.OrderStatusCancelled
	order.UpdatedAt = uc.opts.Clock()

	session.ClearPendingOrder()
	session.SetUpsellOffer(nil)
	log.Printf("[order][usecase] cancelled session_id=%s order_id=%s", session.ID, order.ID)
	return order, nil
}

// resolveAll resolves every item or none. Lookup failures are collected so the
// caller learns about all of them at once; a malformed item fails immediately.
func (uc *OrderUseCase) resolveAll(items []OrderItemRequest) ([]ResolvedProduct, error) {
	resolved := make([]ResolvedProduct, 0, len(items))
	var unresolved []UnresolvedItem
	var suggestions []string
	seen := make(map[string]struct{})

	for _, it := range items {
		p, err := uc.validator.Resolve(it.Category, it.Brand, it.Model, it.Color)
		if err == nil {
			resolved = append(resolved, p)
			continue
		}
		var lookup *CatalogLookupError
		if !errors.As(err, &lookup) {
			return nil, err
		}
		unresolved = append(unresolved, UnresolvedItem{Label: it.label(), Cause: lookup})

		alternatives := uc.catalog.Categories()
		if category, known := uc.catalog.Category(it.Category); known {
			alternatives = uc.catalog.ModelNames(category)
		}
		for _, s := range alternatives {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			suggestions = append(suggestions, s)
		}
	}

	if len(unresolved) > 0 {
		return nil, &UnresolvedItemsError{Items: unresolved, Suggestions: suggestions}
	}
	return resolved, nil
}

func (uc *OrderUseCase) addResolved(session *entities.Session, existing entities.Order, p ResolvedProduct, quantity int) (entities.Order, []string) {
	order := existing.Clone()
	var notices []string
	if order.AddItem(p.toOrderItem(quantity)) {
		notices = append(notices, mixedColorNotice(p.Key()))
	}
	order.Recalculate()
	order.UpdatedAt = uc.opts.Clock()
	session.SetPendingOrder(&order)
	log.Printf("[order][usecase] item added session_id=%s order_id=%s item=%q quantity=%d", session.ID, order.ID, p.Key(), quantity)
	return order, notices
}

func mixedColorNotice(key string) string {
	return fmt.Sprintf("%s was requested in different colors, so that line no longer lists a single color.", key)
}

// countryNotice explains why a country supplied on merge was not applied.
func (uc *OrderUseCase) countryNotice(order entities.Order, country string) string {
	country = strings.TrimSpace(country)
	if country == "" {
		return ""
	}
	if r, ok := uc.catalog.Country(country); ok && r.Country == order.Country {
		return ""
	}
	return fmt.Sprintf("Shipping country stays %s for order %s; start a new order to ship to %s.", order.Country, order.ID, country)
}

func (uc *OrderUseCase) preview(order entities.Order, upsell, notices []string) OrderPreview {
	summary := orderSummary(order)
	if len(upsell) > 0 {
		summary += "\nYou might also like: " + strings.Join(upsell, ", ") + "."
	}
	for _, n := range notices {
		summary += "\n" + n
	}
	return OrderPreview{
		Order:                order,
		Summary:              summary,
		Upsell:               upsell,
		Notices:              notices,
		RequiresConfirmation: true,
	}
}
