package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase/interfaces"
)

const (
	complaintIDPrefix    = "CMP"
	noOrderReference     = "N/A"
	complaintUserSubject = "Complaint Registered"
	complaintTeamSubject = "New Complaint Registered"
)

type IComplaintUseCase interface {
	CreatePreview(session *entities.Session, payload entities.Complaint) (RequestPreview, error)
	Resolve(ctx context.Context, session *entities.Session, action string) (RequestResolution, error)
}

type ComplaintOptions struct {
	SupportEmail  string
	StoreName     string
	NotifyTimeout time.Duration
	Clock         Clock
	NewID         IDGenerator
}

var _ IComplaintUseCase = (*RequestPreviewEngine[entities.Complaint])(nil)

// NewComplaintUseCase builds the complaint flow. A confirmed complaint is
// appended to the log before any email goes out, so a failed send never loses
// it.
func NewComplaintUseCase(complaints interfaces.IComplaintLog, notifier interfaces.INotifier, opts ComplaintOptions) *RequestPreviewEngine[entities.Complaint] {
	if opts.StoreName == "" {
		opts.StoreName = defaultStoreName
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}
	return NewRequestPreviewEngine(RequestPreviewConfig[entities.Complaint]{
		Kind:     entities.RequestKindComplaint,
		IDPrefix: complaintIDPrefix,
		Clock:    clock,
		NewID:    opts.NewID,
		Normalize: func(c entities.Complaint) (entities.Complaint, error) {
			c.Name = strings.TrimSpace(c.Name)
			c.Email = strings.TrimSpace(c.Email)
			c.OrderID = strings.ToUpper(strings.TrimSpace(c.OrderID))
			c.Complaint = strings.TrimSpace(c.Complaint)
			return c, validateStruct(c)
		},
		Summarize: func(id string, c entities.Complaint) string {
			return fmt.Sprintf("Complaint %s\nName: %s\nEmail: %s\nOrder: %s\nComplaint: %s\nShall I register this complaint?",
				id, c.Name, c.Email, orderReference(c.OrderID), c.Complaint)
		},
		OnConfirm: func(ctx context.Context, req entities.PendingRequest[entities.Complaint]) (RequestResolution, error) {
			c := req.Payload
			record := entities.ComplaintRecord{
				ID:        req.ID,
				Name:      c.Name,
				Email:     c.Email,
				OrderID:   orderReference(c.OrderID),
				Complaint: c.Complaint,
				CreatedAt: clock(),
			}
			if err := complaints.Append(ctx, record); err != nil {
				return RequestResolution{}, fmt.Errorf("recording complaint %s: %w", req.ID, err)
			}
			log.Printf("[complaint][usecase] recorded complaint_id=%s order_id=%s", record.ID, record.OrderID)

			userErr := notify(ctx, notifier, opts.NotifyTimeout, notification{
				to:      c.Email,
				subject: complaintUserSubject,
				body: fmt.Sprintf("Dear %s,\n\nYour complaint %s has been registered with %s.\nOrder: %s\nComplaint: %s\n\nOur support team will contact you soon.\n\nBest regards,\n%s Support",
					c.Name, record.ID, opts.StoreName, record.OrderID, c.Complaint, opts.StoreName),
			})
			teamErr := notify(ctx, notifier, opts.NotifyTimeout, notification{
				to:      opts.SupportEmail,
				subject: complaintTeamSubject,
				body: fmt.Sprintf("Complaint: %s\nName: %s\nEmail: %s\nOrder: %s\n\n%s",
					record.ID, c.Name, c.Email, record.OrderID, c.Complaint),
			})

			var msg string
			switch {
			case userErr == nil && teamErr == nil:
				msg = fmt.Sprintf("Your complaint %s has been registered. A confirmation was emailed to you and our support team has been notified.", record.ID)
			case userErr == nil:
				msg = fmt.Sprintf("Your complaint %s has been registered and a confirmation was emailed to you, but our support team could not be notified yet.", record.ID)
			case teamErr == nil:
				msg = fmt.Sprintf("Your complaint %s has been registered and our support team has been notified, but we could not email you a confirmation.", record.ID)
			default:
				msg = fmt.Sprintf("Your complaint %s has been registered locally. We could not send any emails right now.", record.ID)
			}
			return RequestResolution{Message: msg, Warnings: warningsOf(userErr, teamErr)}, nil
		},
	})
}

func orderReference(id string) string {
	if id == "" {
		return noOrderReference
	}
	return id
}
