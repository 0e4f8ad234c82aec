package handlers

import (
	"context"
	"net/http"

	request "retail_assistant/internal/adapter/http/dto/request"
	response "retail_assistant/internal/adapter/http/dto/response"
	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes the contact-request and complaint preview/confirm
// flows.
type RequestHandler struct {
	sessions   *usecase.SessionRegistry
	contact    usecase.IContactUseCase
	complaints usecase.IComplaintUseCase
}

func NewRequestHandler(sessions *usecase.SessionRegistry, contact usecase.IContactUseCase, complaints usecase.IComplaintUseCase) *RequestHandler {
	return &RequestHandler{sessions: sessions, contact: contact, complaints: complaints}
}

func (h *RequestHandler) CreateContactRequest(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "contact", err)
		return
	}

	h.createPreview(c, "contact", func(s *entities.Session) (usecase.RequestPreview, error) {
		return h.contact.CreatePreview(s, payload.ToEntity())
	})
}

func (h *RequestHandler) ResolveContactRequest(c *gin.Context) {
	h.resolve(c, "contact", h.contact.Resolve)
}

func (h *RequestHandler) CreateComplaint(c *gin.Context) {
	var payload request.ComplaintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "complaint", err)
		return
	}

	h.createPreview(c, "complaint", func(s *entities.Session) (usecase.RequestPreview, error) {
		return h.complaints.CreatePreview(s, payload.ToEntity())
	})
}

func (h *RequestHandler) ResolveComplaint(c *gin.Context) {
	h.resolve(c, "complaint", h.complaints.Resolve)
}

func (h *RequestHandler) createPreview(c *gin.Context, area string, run func(*entities.Session) (usecase.RequestPreview, error)) {
	var preview usecase.RequestPreview
	err := h.sessions.With(c.Param("session_id"), func(s *entities.Session) error {
		var err error
		preview, err = run(s)
		return err
	})
	if err != nil {
		writeError(c, area, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRequestPreview(preview))
}

type resolveFunc func(ctx context.Context, s *entities.Session, action string) (usecase.RequestResolution, error)

func (h *RequestHandler) resolve(c *gin.Context, area string, run resolveFunc) {
	var payload request.ResolveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, area, err)
		return
	}

	var resolution usecase.RequestResolution
	err := h.sessions.With(c.Param("session_id"), func(s *entities.Session) error {
		var err error
		resolution, err = run(c.Request.Context(), s, payload.Action)
		return err
	})
	if err != nil {
		writeError(c, area, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRequestResolution(resolution))
}
