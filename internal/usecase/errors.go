package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Every error returned by the workflow engine wraps exactly
// one of them so adapters can map with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrCatalogLookup = errors.New("catalog lookup error")
	ErrState         = errors.New("state error")
	ErrNotification  = errors.New("notification error")

	ErrOrderNotFound = errors.New("order not found")
)

// Catalog lookup reasons.
const (
	ReasonCategoryUnknown  = "CategoryUnknown"
	ReasonBrandUnknown     = "BrandUnknown"
	ReasonModelUnknown     = "ModelUnknown"
	ReasonColorUnavailable = "ColorUnavailable"
	ReasonCountryUnknown   = "CountryUnknown"
	ReasonUpsellNotOffered = "UpsellNotOffered"
)

// ValidationError reports malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// CatalogLookupError reports a value missing from the catalog or the shipping
// table, with the alternatives the caller can offer instead.
type CatalogLookupError struct {
	Reason      string
	Field       string
	Value       string
	Suggestions []string
}

func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("%s: %s %q not found", e.Reason, e.Field, e.Value)
}

func (e *CatalogLookupError) Unwrap() error { return ErrCatalogLookup }

// UnresolvedItem is one requested item that failed resolution.
type UnresolvedItem struct {
	Label string              `json:"label"`
	Cause *CatalogLookupError `json:"-"`
}

// UnresolvedItemsError fails a multi-item request as a whole.
type UnresolvedItemsError struct {
	Items       []UnresolvedItem
	Suggestions []string
}

func (e *UnresolvedItemsError) Error() string {
	labels := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		labels = append(labels, it.Label)
	}
	return fmt.Sprintf("products not available: %s", strings.Join(labels, ", "))
}

func (e *UnresolvedItemsError) Unwrap() error { return ErrCatalogLookup }

// StateError reports an operation the current session state does not allow.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func (e *StateError) Unwrap() error { return ErrState }

var (
	errNoPendingOrder   = &StateError{Message: "no pending order"}
	errNoPendingRequest = &StateError{Message: "no pending request"}
)

// NotificationError records a failed send. It never aborts an operation; it is
// surfaced as a warning next to an otherwise successful result.
type NotificationError struct {
	Recipient string
	Subject   string
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("failed to notify %s (%s)", e.Recipient, e.Subject)
}

func (e *NotificationError) Unwrap() error { return ErrNotification }
