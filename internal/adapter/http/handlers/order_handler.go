package handlers

import (
	"log"
	"net/http"

	request "retail_assistant/internal/adapter/http/dto/request"
	response "retail_assistant/internal/adapter/http/dto/response"
	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the pending-order workflow of a conversation session.
type OrderHandler struct {
	sessions *usecase.SessionRegistry
	usecase  usecase.IOrderUseCase
}

func NewOrderHandler(sessions *usecase.SessionRegistry, uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{sessions: sessions, usecase: uc}
}

// PlaceOrder starts the session's pending order or merges items into it.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "order", err)
		return
	}

	h.preview(c, func(s *entities.Session) (usecase.OrderPreview, error) {
		return h.usecase.StartOrMerge(s, payload.Customer(), payload.Country, payload.ItemsToUseCase())
	})
}

func (h *OrderHandler) GetPendingOrder(c *gin.Context) {
	h.preview(c, h.usecase.Preview)
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	var payload request.OrderItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "order", err)
		return
	}

	h.preview(c, func(s *entities.Session) (usecase.OrderPreview, error) {
		return h.usecase.AddItem(s, payload.ToUseCase())
	})
}

func (h *OrderHandler) AcceptUpsell(c *gin.Context) {
	var payload request.AcceptUpsellRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "order", err)
		return
	}

	h.preview(c, func(s *entities.Session) (usecase.OrderPreview, error) {
		return h.usecase.AcceptUpsell(s, payload.Product, payload.ResolveQuantity())
	})
}

func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[order][handler] confirm start session_id=%s", sessionID)

	var confirmation usecase.OrderConfirmation
	err := h.sessions.With(sessionID, func(s *entities.Session) error {
		var err error
		confirmation, err = h.usecase.Confirm(c.Request.Context(), s)
		return err
	})
	if err != nil {
		writeError(c, "order", err)
		return
	}
	log.Printf("[order][handler] confirm success session_id=%s order_id=%s warnings=%d", sessionID, confirmation.Order.ID, len(confirmation.Warnings))

	c.JSON(http.StatusCreated, response.FromOrderConfirmation(confirmation))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var cancelled entities.Order
	err := h.sessions.With(c.Param("session_id"), func(s *entities.Session) error {
		var err error
		cancelled, err = h.usecase.Cancel(s)
		return err
	})
	if err != nil {
		writeError(c, "order", err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(cancelled))
}

func (h *OrderHandler) preview(c *gin.Context, run func(*entities.Session) (usecase.OrderPreview, error)) {
	var preview usecase.OrderPreview
	err := h.sessions.With(c.Param("session_id"), func(s *entities.Session) error {
		var err error
		preview, err = run(s)
		return err
	})
	if err != nil {
		writeError(c, "order", err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPreview(preview))
}
