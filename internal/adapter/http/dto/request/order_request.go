package request

import (
	"strings"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase"
)

// OrderItemRequest is one item as extracted from the conversation. Brand and
// color are optional; a missing quantity means one.
type OrderItemRequest struct {
	Category string `json:"category" binding:"required"`
	Brand    string `json:"brand"`
	Model    string `json:"model" binding:"required"`
	Color    string `json:"color"`
	Quantity *int   `json:"quantity"`
}

// quantityOrOne defaults an absent quantity to one. A quantity that was given
// is passed through as is and rejected by the usecase when below one.
func quantityOrOne(q *int) int {
	if q == nil {
		return 1
	}
	return *q
}

func (r OrderItemRequest) ToUseCase() usecase.OrderItemRequest {
	return usecase.OrderItemRequest{
		Category: r.Category,
		Brand:    r.Brand,
		Model:    r.Model,
		Color:    r.Color,
		Quantity: quantityOrOne(r.Quantity),
	}
}

type PlaceOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Country       string             `json:"country"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r PlaceOrderRequest) Customer() entities.Customer {
	return entities.Customer{
		Name:  strings.TrimSpace(r.CustomerName),
		Email: strings.TrimSpace(r.CustomerEmail),
	}
}

func (r PlaceOrderRequest) ItemsToUseCase() []usecase.OrderItemRequest {
	out := make([]usecase.OrderItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.ToUseCase())
	}
	return out
}

type AcceptUpsellRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity *int   `json:"quantity"`
}

func (r AcceptUpsellRequest) ResolveQuantity() int {
	return quantityOrOne(r.Quantity)
}
