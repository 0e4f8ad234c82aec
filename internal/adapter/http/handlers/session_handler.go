package handlers

import (
	"net/http"

	"retail_assistant/internal/usecase"
	"retail_assistant/pkg"

	"github.com/gin-gonic/gin"
)

// SessionHandler receives the end-of-conversation signal from the runtime.
type SessionHandler struct {
	sessions *usecase.SessionRegistry
}

func NewSessionHandler(sessions *usecase.SessionRegistry) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// EndSession discards everything still pending in the session.
func (h *SessionHandler) EndSession(c *gin.Context) {
	if !h.sessions.End(c.Param("session_id")) {
		appErr := pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
