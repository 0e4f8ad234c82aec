package routes

import (
	"retail_assistant/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathCompany  = "/company"
	PathOrders   = "/orders"
	PathSessions = "/sessions"
	PathTools    = "/tools"
)

func addCatalogRoutes(rg *gin.RouterGroup, supportHandler *handlers.SupportHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/products", supportHandler.BrowseProducts)
		catalog.GET("/countries", supportHandler.ListCountries)
	}

	company := rg.Group(PathCompany)
	{
		company.GET("/contact", supportHandler.GetContactInfo)
		company.GET("/info", supportHandler.GetCompanyInfo)
		company.GET("/leadership", supportHandler.GetLeadershipTeam)
	}

	rg.GET(PathOrders+"/:order_id", supportHandler.TrackOrder)
}

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, orderHandler *handlers.OrderHandler, requestHandler *handlers.RequestHandler) {
	session := rg.Group(PathSessions + "/:session_id")
	{
		session.DELETE("", sessionHandler.EndSession)
	}

	orders := session.Group("/orders")
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("/pending", orderHandler.GetPendingOrder)
		orders.POST("/items", orderHandler.AddItem)
		orders.POST("/upsell", orderHandler.AcceptUpsell)
		orders.POST("/confirm", orderHandler.ConfirmOrder)
		orders.POST("/cancel", orderHandler.CancelOrder)
	}

	contact := session.Group("/contact")
	{
		contact.POST("", requestHandler.CreateContactRequest)
		contact.POST("/resolve", requestHandler.ResolveContactRequest)
	}

	complaints := session.Group("/complaints")
	{
		complaints.POST("", requestHandler.CreateComplaint)
		complaints.POST("/resolve", requestHandler.ResolveComplaint)
	}
}

func addToolRoutes(rg *gin.RouterGroup, toolHandler *handlers.ToolHandler) {
	rg.GET(PathTools, toolHandler.ListTools)
	rg.POST(PathSessions+"/:session_id"+PathTools+"/:name", toolHandler.InvokeTool)
}
