package routes

import (
	"context"
	"log"
	"time"

	_ "retail_assistant/docs" // generated by swag init
	"retail_assistant/internal/adapter/http/handlers"
	"retail_assistant/internal/adapter/persistence/repository"
	"retail_assistant/internal/adapter/tools"
	"retail_assistant/internal/config"
	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/knowledge"
	"retail_assistant/internal/infrastructure/database"
	"retail_assistant/internal/infrastructure/notification"
	"retail_assistant/internal/usecase"
	"retail_assistant/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sessions := getRoutes(router, cfg)
	go sessions.Janitor(context.Background(), sweepInterval(cfg.SessionIdleTimeout), cfg.SessionIdleTimeout)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type stores struct {
	orders     interfaces.IOrderRepository
	complaints interfaces.IComplaintLog
}

func newStores(cfg config.Config) stores {
	if cfg.Storage == config.StorageDynamoDB {
		ddb := database.ConnectDynamoDB(cfg.DynamoDB)
		log.Printf("[routes] storage=dynamodb orders_table=%s complaints_table=%s", cfg.DynamoDB.OrdersTable, cfg.DynamoDB.ComplaintsTable)
		return stores{
			orders:     repository.NewOrderDynamoRepository(ddb, cfg.DynamoDB.OrdersTable),
			complaints: repository.NewComplaintDynamoLog(ddb, cfg.DynamoDB.ComplaintsTable),
		}
	}

	log.Printf("[routes] storage=memory, confirmed orders and complaints are lost on restart")
	return stores{
		orders:     repository.NewOrderMemoryRepository(),
		complaints: repository.NewComplaintMemoryLog(),
	}
}

// sweepInterval checks a few times per idle window, at most once a minute.
func sweepInterval(idle time.Duration) time.Duration {
	if d := idle / 4; d < time.Minute {
		return d
	}
	return time.Minute
}

func newKnowledge(cfg config.Knowledge) *knowledge.Base {
	kb, err := knowledge.LoadFiles(cfg.AboutFile, cfg.LeadershipFile)
	if err != nil {
		log.Printf("[routes] company knowledge load failed, using built-in text: %v", err)
		return knowledge.Default()
	}
	return kb
}

func getRoutes(r *gin.Engine, cfg config.Config) *usecase.SessionRegistry {
	store := newStores(cfg)
	notifier := notification.NewSMTPNotifier(cfg.SMTP)
	products := catalog.Default()
	sessions := usecase.NewSessionRegistry(nil)

	validator := usecase.NewProductValidator(products)
	upsell := usecase.NewUpsellAdvisor(products, validator)

	orderUseCase := usecase.NewOrderUseCase(products, validator, upsell, store.orders, notifier, usecase.OrderOptions{
		SalesEmail:    cfg.SalesEmail,
		StoreName:     cfg.Company.Name,
		NotifyTimeout: cfg.SMTP.Timeout,
	})
	contactUseCase := usecase.NewContactUseCase(notifier, usecase.ContactOptions{
		CompanyEmail:  cfg.Company.Email,
		StoreName:     cfg.Company.Name,
		NotifyTimeout: cfg.SMTP.Timeout,
	})
	complaintUseCase := usecase.NewComplaintUseCase(store.complaints, notifier, usecase.ComplaintOptions{
		SupportEmail:  cfg.SupportEmail,
		StoreName:     cfg.Company.Name,
		NotifyTimeout: cfg.SMTP.Timeout,
	})
	supportUseCase := usecase.NewSupportUseCase(products, store.orders, usecase.CompanyInfo{
		Name:        cfg.Company.Name,
		Address:     cfg.Company.Address,
		Phone:       cfg.Company.Phone,
		Email:       cfg.Company.Email,
		OfficeHours: cfg.Company.OfficeHours,
	}, newKnowledge(cfg.Knowledge))

	registry := tools.NewRegistry(sessions, tools.AssistantTools(tools.Deps{
		Orders:     orderUseCase,
		Contact:    contactUseCase,
		Complaints: complaintUseCase,
		Support:    supportUseCase,
	})...)

	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, handlers.NewSupportHandler(supportUseCase))
	addSessionRoutes(v1,
		handlers.NewSessionHandler(sessions),
		handlers.NewOrderHandler(sessions, orderUseCase),
		handlers.NewRequestHandler(sessions, contactUseCase, complaintUseCase),
	)
	addToolRoutes(v1, handlers.NewToolHandler(registry))
	return sessions
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
