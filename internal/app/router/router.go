package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	"github.com/yashdave182/FinAgent/configs"
	"github.com/yashdave182/FinAgent/internal/app/handlers"
	"github.com/yashdave182/FinAgent/internal/app/middleware"
	"github.com/yashdave182/FinAgent/internal/pkg/kafka/producer"
	"github.com/yashdave182/FinAgent/internal/pkg/notification"
	"github.com/yashdave182/FinAgent/internal/pkg/pubsub"
	"github.com/yashdave182/FinAgent/internal/pkg/services"
	"github.com/yashdave182/FinAgent/internal/pkg/store"
	"github.com/yashdave182/FinAgent/internal/pkg/store/repository"
	"github.com/yashdave182/FinAgent/internal/pkg/utils/worker"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher, kafkaProducer *producer.Producer) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	// Stores
	redisAdapter := repository.NewRedisStoreAdapter(redisClient)
	sessionTTL := time.Duration(configs.SESSION_TTL_HOURS) * time.Hour
	sessionStore := repository.NewRedisSessionStore(redisAdapter, sessionTTL, configs.MAX_CHAT_HISTORY)
	profileRepo := store.NewProfileRepository()
	applicationRepo := store.NewLoanApplicationRepository()
	documentRepo := store.NewSanctionDocumentRepository()

	// Domain services
	notificationService := notification.NewNotificationService(pubsubPublisher)
	sanctionService := services.NewSanctionService(documentRepo, configs.SANCTION_VALIDITY_DAYS)
	extractionService := services.NewExtractionService()
	underwritingService := services.NewUnderwritingService(services.DefaultUnderwritingConfig())
	applicationService := services.NewApplicationService(profileRepo, applicationRepo, sanctionService, notificationService, kafkaProducer, workerPool)
	conversationService := services.NewConversationService(sessionStore, profileRepo, extractionService, underwritingService, applicationService, kafkaProducer, workerPool, configs.MAX_CHAT_HISTORY, configs.SANCTION_VALIDITY_DAYS)

	// Handlers
	chatHandler := handlers.NewChatHandler(conversationService)
	loanHandler := handlers.NewLoanHandler(applicationRepo, documentRepo)
	sessionHandler := handlers.NewSessionHandler(sessionStore, profileRepo)

	r.POST("/api/chat", chatHandler.Chat)
	r.GET("/api/chat/session/:sessionId/info", sessionHandler.SessionInfo)
	r.GET("/api/chat/history/:sessionId", sessionHandler.SessionHistory)
	r.DELETE("/api/chat/session/:sessionId", sessionHandler.ClearSession)

	r.GET("/api/loan/:loanId", loanHandler.LoanById)
	r.GET("/api/loan/:loanId/sanction", loanHandler.SanctionDocument)
	r.GET("/api/users/:userId/loans", loanHandler.LoansByUser)

	r.POST("/api/admin/profiles", sessionHandler.UpsertProfile)

	r.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
