package response

import (
	"time"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderItemResponse struct {
	Key       string `json:"key"`
	Category  string `json:"category"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Color       string `json:"color,omitempty"`
	MixedColors bool   `json:"mixed_colors,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// OrderResponse renders money with two decimals.
type OrderResponse struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	Customer     CustomerResponse    `json:"customer"`
	Country      string              `json:"country"`
	ShippingRate string              `json:"shipping_rate"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     string              `json:"subtotal"`
	ShippingCost string              `json:"shipping_cost"`
	Total        string              `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
	OrderDate    *time.Time          `json:"order_date,omitempty"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
}

type OrderPreviewResponse struct {
	Order                OrderResponse `json:"order"`
	Summary              string        `json:"summary"`
	Upsell               []string      `json:"upsell,omitempty"`
	Notices              []string      `json:"notices,omitempty"`
	RequiresConfirmation bool          `json:"requires_confirmation"`
}

type OrderConfirmationResponse struct {
	Order    OrderResponse `json:"order"`
	Message  string        `json:"message"`
	Warnings []string      `json:"warnings,omitempty"`
}

type OrderTrackingResponse struct {
	Order   OrderResponse `json:"order"`
	Message string        `json:"message"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, key := range o.ItemKeys() {
		it := o.Items[key]
		items = append(items, OrderItemResponse{
			Key:         key,
			Category:    it.Category,
			Brand:       it.Brand,
			Model:       it.Model,
			Color:       it.Color,
			MixedColors: it.MixedColors,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			LineTotal:   it.LineTotal().StringFixed(2),
		})
	}
	return OrderResponse{
		ID:           o.ID,
		Status:       string(o.Status),
		Customer:     CustomerResponse{Name: o.Customer.Name, Email: o.Customer.Email},
		Country:      o.Country,
		ShippingRate: o.ShippingRate.String(),
		Items:        items,
		Subtotal:     o.Subtotal.StringFixed(2),
		ShippingCost: o.ShippingCost.StringFixed(2),
		Total:        o.Total.StringFixed(2),
		CreatedAt:    o.CreatedAt,
		OrderDate:    optionalTime(o.OrderDate),
		DeliveryDate: optionalTime(o.DeliveryDate),
	}
}

func FromOrderPreview(p usecase.OrderPreview) OrderPreviewResponse {
	return OrderPreviewResponse{
		Order:                FromOrder(p.Order),
		Summary:              p.Summary,
		Upsell:               p.Upsell,
		Notices:              p.Notices,
		RequiresConfirmation: p.RequiresConfirmation,
	}
}

func FromOrderConfirmation(c usecase.OrderConfirmation) OrderConfirmationResponse {
	return OrderConfirmationResponse{
		Order:    FromOrder(c.Order),
		Message:  c.Message,
		Warnings: c.Warnings,
	}
}

func FromOrderTracking(t usecase.OrderTracking) OrderTrackingResponse {
	return OrderTrackingResponse{Order: FromOrder(t.Order), Message: t.Message}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
