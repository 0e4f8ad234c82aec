package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase/interfaces"
)

const contactIDPrefix = "CTC"

type IContactUseCase interface {
	CreatePreview(session *entities.Session, payload entities.ContactRequest) (RequestPreview, error)
	Resolve(ctx context.Context, session *entities.Session, action string) (RequestResolution, error)
}

type ContactOptions struct {
	CompanyEmail  string
	StoreName     string
	NotifyTimeout time.Duration
	Clock         Clock
	NewID         IDGenerator
}

var _ IContactUseCase = (*RequestPreviewEngine[entities.ContactRequest])(nil)

// NewContactUseCase builds the contact-request flow: on confirmation the
// customer gets an acknowledgment and the company gets the message.
func NewContactUseCase(notifier interfaces.INotifier, opts ContactOptions) *RequestPreviewEngine[entities.ContactRequest] {
	if opts.StoreName == "" {
		opts.StoreName = defaultStoreName
	}
	return NewRequestPreviewEngine(RequestPreviewConfig[entities.ContactRequest]{
		Kind:     entities.RequestKindContact,
		IDPrefix: contactIDPrefix,
		Clock:    opts.Clock,
		NewID:    opts.NewID,
		Normalize: func(c entities.ContactRequest) (entities.ContactRequest, error) {
			c.Name = strings.TrimSpace(c.Name)
			c.Email = strings.TrimSpace(c.Email)
			c.Phone = strings.TrimSpace(c.Phone)
			c.Subject = strings.TrimSpace(c.Subject)
			c.Message = strings.TrimSpace(c.Message)
			return c, validateStruct(c)
		},
		Summarize: func(id string, c entities.ContactRequest) string {
			phone := c.Phone
			if phone == "" {
				phone = "not provided"
			}
			return fmt.Sprintf("Contact request %s\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\nMessage: %s\nShall I send this to our team?",
				id, c.Name, c.Email, phone, c.Subject, c.Message)
		},
		OnConfirm: func(ctx context.Context, req entities.PendingRequest[entities.ContactRequest]) (RequestResolution, error) {
			c := req.Payload
			customerErr := notify(ctx, notifier, opts.NotifyTimeout, notification{
				to:      c.Email,
				subject: fmt.Sprintf("We received your message - %s", opts.StoreName),
				body: fmt.Sprintf("Dear %s,\n\nThank you for contacting %s. Your request %s about %q has been received and our team will get back to you shortly.\n\nBest regards,\n%s",
					c.Name, opts.StoreName, req.ID, c.Subject, opts.StoreName),
			})
			companyErr := notify(ctx, notifier, opts.NotifyTimeout, notification{
				to:      opts.CompanyEmail,
				subject: "New Contact Request: " + c.Subject,
				body: fmt.Sprintf("Request: %s\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s",
					req.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message),
			})

			var msg string
			switch {
			case customerErr == nil && companyErr == nil:
				msg = fmt.Sprintf("Your message has been sent to our team and a confirmation was emailed to %s.", c.Email)
			case companyErr == nil:
				msg = "Your message has been sent to our team, but we could not email you a confirmation."
			case customerErr == nil:
				msg = fmt.Sprintf("We emailed a confirmation to %s, but could not reach our team right now. Please try again later.", c.Email)
			default:
				msg = fmt.Sprintf("We could not send your request %s right now and it was not saved. Please try again later.", req.ID)
			}
			return RequestResolution{Message: msg, Warnings: warningsOf(customerErr, companyErr)}, nil
		},
	})
}
