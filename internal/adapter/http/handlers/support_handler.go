package handlers

import (
	"net/http"

	request "retail_assistant/internal/adapter/http/dto/request"
	response "retail_assistant/internal/adapter/http/dto/response"
	"retail_assistant/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SupportHandler serves the session-less queries: catalog, shipping
// countries, company details and order tracking.
type SupportHandler struct {
	usecase usecase.ISupportUseCase
}

func NewSupportHandler(uc usecase.ISupportUseCase) *SupportHandler {
	return &SupportHandler{usecase: uc}
}

func (h *SupportHandler) BrowseProducts(c *gin.Context) {
	var query request.BrowseRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidPayload(c, "catalog", err)
		return
	}

	c.JSON(http.StatusOK, response.FromBrowseResult(h.usecase.Browse(query.ToFilter())))
}

func (h *SupportHandler) ListCountries(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCountries(h.usecase.Countries()))
}

func (h *SupportHandler) GetContactInfo(c *gin.Context) {
	var query request.ContactInfoRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidPayload(c, "company", err)
		return
	}

	info, err := h.usecase.ContactInfo(query.Field)
	if err != nil {
		writeError(c, "company", err)
		return
	}
	c.JSON(http.StatusOK, response.ContactInfoResponse{Info: info})
}

func (h *SupportHandler) GetCompanyInfo(c *gin.Context) {
	var query request.CompanyInfoRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidPayload(c, "company", err)
		return
	}

	answer, err := h.usecase.CompanyInfo(query.Query)
	if err != nil {
		writeError(c, "company", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyAnswer(answer))
}

func (h *SupportHandler) GetLeadershipTeam(c *gin.Context) {
	c.JSON(http.StatusOK, response.LeadershipResponse{Team: h.usecase.LeadershipTeam()})
}

func (h *SupportHandler) TrackOrder(c *gin.Context) {
	tracking, err := h.usecase.TrackOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderTracking(tracking))
}
