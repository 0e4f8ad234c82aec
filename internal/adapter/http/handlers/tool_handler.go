package handlers

import (
	"errors"
	"io"
	"net/http"

	"retail_assistant/internal/adapter/tools"

	"github.com/gin-gonic/gin"
)

// ToolHandler lets the conversational runtime list and invoke the assistant
// tools by name.
type ToolHandler struct {
	registry *tools.Registry
}

func NewToolHandler(registry *tools.Registry) *ToolHandler {
	return &ToolHandler{registry: registry}
}

func (h *ToolHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.List())
}

// InvokeTool runs one tool. The body is the argument object; an empty body
// means no arguments.
func (h *ToolHandler) InvokeTool(c *gin.Context) {
	var args map[string]any
	if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
		writeInvalidPayload(c, "tools", err)
		return
	}

	name := c.Param("name")
	result, err := h.registry.Call(c.Request.Context(), c.Param("session_id"), name, args)
	if err != nil {
		writeError(c, "tools", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tool": name, "result": result})
}
