package entities

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of an order.
//
// Only Pending orders live in a session. Confirmed orders are persisted,
// Cancelled orders are dropped and never stored.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Customer struct {
	Name  string `json:"name" validate:"required,personname"`
	Email string `json:"email" validate:"required,email"`
}

// OrderItem is one line of an order, keyed by Product.Key().
type OrderItem struct {
	Category  string          `json:"category"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Color     string          `json:"color,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	// MixedColors marks a line merged from requests for different colors.
	// Such a line carries no single Color.
	MixedColors bool `json:"mixed_colors,omitempty"`
}

func (i OrderItem) Key() string {
	return i.Brand + " " + i.Model
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a customer order.
//
// Monetary fields are derived: Subtotal, ShippingCost and Total are only ever
// written by Recalculate, which prices the complete item map.
//   - Subtotal     = sum(unit price * quantity)
//   - ShippingCost = round(Subtotal * ShippingRate, 2)
//   - Total        = Subtotal + ShippingCost
//
// Country and ShippingRate are fixed when the order is created.
type Order struct {
	ID           string               `json:"id"`
	Customer     Customer             `json:"customer"`
	Country      string               `json:"country"`
	ShippingRate decimal.Decimal      `json:"shipping_rate"`
	Items        map[string]OrderItem `json:"items"`
	Subtotal     decimal.Decimal      `json:"subtotal"`
	ShippingCost decimal.Decimal      `json:"shipping_cost"`
	Total        decimal.Decimal      `json:"total"`
	Status       OrderStatus          `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	OrderDate    time.Time            `json:"order_date,omitzero"`
	DeliveryDate time.Time            `json:"delivery_date,omitzero"`
}

// AddItem merges item into the order, summing quantities for an existing key.
// It reports whether the merge combined two different colors on one line, in
// which case the line's color is cleared. It does not reprice; callers follow
// up with Recalculate.
func (o *Order) AddItem(item OrderItem) (colorConflict bool) {
	if o.Items == nil {
		o.Items = make(map[string]OrderItem)
	}
	key := item.Key()
	existing, ok := o.Items[key]
	if !ok {
		o.Items[key] = item
		return false
	}

	existing.Quantity += item.Quantity
	switch {
	case existing.MixedColors, item.Color == "":
	case existing.Color == "":
		existing.Color = item.Color
	case !strings.EqualFold(existing.Color, item.Color):
		existing.Color = ""
		existing.MixedColors = true
		colorConflict = true
	}
	o.Items[key] = existing
	return colorConflict
}

func (o *Order) Recalculate() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.Subtotal = subtotal
	o.ShippingCost = subtotal.Mul(o.ShippingRate).Round(2)
	o.Total = o.Subtotal.Add(o.ShippingCost)
}

// ItemKeys returns the item keys in a stable order for rendering.
func (o Order) ItemKeys() []string {
	keys := make([]string, 0, len(o.Items))
	for k := range o.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy; the items map is not shared.
func (o Order) Clone() Order {
	cp := o
	cp.Items = make(map[string]OrderItem, len(o.Items))
	for k, v := range o.Items {
		cp.Items[k] = v
	}
	return cp
}
