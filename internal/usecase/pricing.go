package usecase

import (
	"fmt"
	"strings"
	"time"

	"retail_assistant/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "January 02, 2006"

var hundred = decimal.NewFromInt(100)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(hundred).String() + "%"
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// orderLines renders one line per item, sorted by key.
func orderLines(o entities.Order) string {
	var b strings.Builder
	for _, key := range o.ItemKeys() {
		item := o.Items[key]
		label := key
		switch {
		case item.MixedColors:
			label = key + " (mixed colors)"
		case item.Color != "":
			label = fmt.Sprintf("%s (%s)", key, item.Color)
		}
		fmt.Fprintf(&b, "- %d x %s @ %s = %s\n", item.Quantity, label, money(item.UnitPrice), money(item.LineTotal()))
	}
	return b.String()
}

func orderTotals(o entities.Order) string {
	return fmt.Sprintf("Subtotal: %s\nShipping to %s (%s): %s\nTotal: %s",
		money(o.Subtotal), o.Country, percent(o.ShippingRate), money(o.ShippingCost), money(o.Total))
}

func orderSummary(o entities.Order) string {
	return fmt.Sprintf("Order %s for %s <%s>\n%s%s\nPlease confirm or cancel this order.",
		o.ID, o.Customer.Name, o.Customer.Email, orderLines(o), orderTotals(o))
}

func customerReceipt(store string, o entities.Order) string {
	return fmt.Sprintf("Dear %s,\n\nThank you for shopping with %s. Your order %s has been confirmed.\n\n%s%s\n\nOrder date: %s\nEstimated delivery: %s\n\nBest regards,\n%s",
		o.Customer.Name, store, o.ID, orderLines(o), orderTotals(o), formatDate(o.OrderDate), formatDate(o.DeliveryDate), store)
}

func salesCopy(o entities.Order) string {
	return fmt.Sprintf("New order %s\nCustomer: %s <%s>\nCountry: %s\n\n%s%s\n\nOrder date: %s\nEstimated delivery: %s",
		o.ID, o.Customer.Name, o.Customer.Email, o.Country, orderLines(o), orderTotals(o), formatDate(o.OrderDate), formatDate(o.DeliveryDate))
}
