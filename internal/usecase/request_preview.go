package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"retail_assistant/internal/domain/entities"
)

// Resolve actions.
const (
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// RequestPreview is the first phase of the protocol: the request is stored but
// nothing has been sent or persisted yet.
type RequestPreview struct {
	ID                   string
	Summary              string
	RequiresConfirmation bool
}

type RequestResolution struct {
	ID       string
	Status   entities.RequestStatus
	Message  string
	Warnings []string
}

// RequestPreviewConfig parameterises a RequestPreviewEngine for one payload type.
type RequestPreviewConfig[T any] struct {
	Kind     entities.RequestKind
	IDPrefix string
	// Normalize trims and validates the payload.
	Normalize func(T) (T, error)
	Summarize func(id string, payload T) string
	// OnConfirm runs the side effects of a confirmation. An error leaves the
	// request pending.
	OnConfirm func(ctx context.Context, req entities.PendingRequest[T]) (RequestResolution, error)
	Clock     Clock
	NewID     IDGenerator
}

// RequestPreviewEngine implements the two-phase preview/confirm protocol for
// one kind of request. Each session holds at most one pending request per kind.
type RequestPreviewEngine[T any] struct {
	cfg RequestPreviewConfig[T]
}

func NewRequestPreviewEngine[T any](cfg RequestPreviewConfig[T]) *RequestPreviewEngine[T] {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.NewID == nil {
		cfg.NewID = UUIDGenerator
	}
	return &RequestPreviewEngine[T]{cfg: cfg}
}

// CreatePreview validates payload and stores it as the session's pending
// request, replacing an older one of the same kind.
func (e *RequestPreviewEngine[T]) CreatePreview(session *entities.Session, payload T) (RequestPreview, error) {
	if e.cfg.Normalize != nil {
		normalized, err := e.cfg.Normalize(payload)
		if err != nil {
			return RequestPreview{}, err
		}
		payload = normalized
	}

	req := entities.PendingRequest[T]{
		ID:        e.cfg.NewID(e.cfg.IDPrefix),
		Kind:      e.cfg.Kind,
		Payload:   payload,
		Status:    entities.RequestStatusPending,
		CreatedAt: e.cfg.Clock(),
	}
	session.SetPendingRequest(e.cfg.Kind, &req)
	log.Printf("[%s][usecase] preview created session_id=%s request_id=%s", e.cfg.Kind, session.ID, req.ID)

	summary := ""
	if e.cfg.Summarize != nil {
		summary = e.cfg.Summarize(req.ID, payload)
	}
	return RequestPreview{ID: req.ID, Summary: summary, RequiresConfirmation: true}, nil
}

// Pending returns the session's pending request of this kind, if any.
func (e *RequestPreviewEngine[T]) Pending(session *entities.Session) (entities.PendingRequest[T], bool) {
	req, ok := session.PendingRequest(e.cfg.Kind).(*entities.PendingRequest[T])
	if !ok || req == nil {
		return entities.PendingRequest[T]{}, false
	}
	return *req, true
}

// Resolve confirms or cancels the pending request. Cancelling never runs the
// confirm hook.
func (e *RequestPreviewEngine[T]) Resolve(ctx context.Context, session *entities.Session, action string) (RequestResolution, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	if action != ActionConfirm && action != ActionCancel {
		return RequestResolution{}, NewValidationError("action", "unsupported action")
	}

	req, ok := e.Pending(session)
	if !ok {
		return RequestResolution{}, errNoPendingRequest
	}

	if action == ActionCancel {
		session.ClearPendingRequest(e.cfg.Kind)
		log.Printf("[%s][usecase] cancelled session_id=%s request_id=%s", e.cfg.Kind, session.ID, req.ID)
		return RequestResolution{
			ID:      req.ID,
			Status:  entities.RequestStatusCancelled,
			Message: fmt.Sprintf("Your %s request %s has been cancelled. Nothing was sent.", e.cfg.Kind, req.ID),
		}, nil
	}

	res := RequestResolution{ID: req.ID}
	if e.cfg.OnConfirm != nil {
		out, err := e.cfg.OnConfirm(ctx, req)
		if err != nil {
			log.Printf("[%s][usecase] confirm failed session_id=%s request_id=%s err=%v", e.cfg.Kind, session.ID, req.ID, err)
			return RequestResolution{}, err
		}
		res = out
		res.ID = req.ID
	}
	res.Status = entities.RequestStatusConfirmed
	session.ClearPendingRequest(e.cfg.Kind)
	log.Printf("[%s][usecase] confirmed session_id=%s request_id=%s warnings=%d", e.cfg.Kind, session.ID, req.ID, len(res.Warnings))
	return res, nil
}
