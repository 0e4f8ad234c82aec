package entities

import "time"

// RequestKind identifies the pending-request slot of a session.
type RequestKind string

const (
	RequestKindContact   RequestKind = "contact"
	RequestKindComplaint RequestKind = "complaint"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// PendingRequest is an unconfirmed contact request or complaint held in a session.
type PendingRequest[T any] struct {
	ID        string        `json:"id"`
	Kind      RequestKind   `json:"kind"`
	Payload   T             `json:"payload"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,phone"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

type Complaint struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	OrderID   string `json:"order_id,omitempty"`
	Complaint string `json:"complaint" validate:"required"`
}

// ComplaintRecord is the durable, append-only form of a confirmed complaint.
type ComplaintRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	OrderID   string    `json:"order_id"`
	Complaint string    `json:"complaint"`
	CreatedAt time.Time `json:"created_at"`
}
