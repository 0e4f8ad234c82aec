package request

import (
	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BrowseRequest is bound from the query string on HTTP and from tool
// arguments.
type BrowseRequest struct {
	Category string   `json:"category" form:"category"`
	Brand    string   `json:"brand" form:"brand"`
	Color    string   `json:"color" form:"color"`
	MaxPrice *float64 `json:"max_price" form:"max_price" binding:"omitempty,gt=0"`
}

func (r BrowseRequest) ToFilter() catalog.Filter {
	f := catalog.Filter{Category: r.Category, Brand: r.Brand, Color: r.Color}
	if r.MaxPrice != nil {
		f.MaxPrice = decimal.NewFromFloat(*r.MaxPrice)
	}
	return f
}

type TrackOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

type ContactInfoRequest struct {
	Field string `json:"field" form:"field"`
}

type CompanyInfoRequest struct {
	Query string `json:"query" form:"query" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactRequest) ToEntity() entities.ContactRequest {
	return entities.ContactRequest{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type ComplaintRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	OrderID   string `json:"order_id"`
	Complaint string `json:"complaint"`
}

func (r ComplaintRequest) ToEntity() entities.Complaint {
	return entities.Complaint{
		Name:      r.Name,
		Email:     r.Email,
		OrderID:   r.OrderID,
		Complaint: r.Complaint,
	}
}

// ResolveRequest confirms or cancels a pending contact request or complaint.
type ResolveRequest struct {
	Action string `json:"action" binding:"required"`
}
