package routes

import (
	"context"
	"os"

	_ "github.com/kavyp12/rama-vista-hub-sub001/docs" // swag-generated
	"github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/handlers"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/middleware"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/persistence/repository"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/config"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/infrastructure/cache"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/infrastructure/database"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/infrastructure/mq"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/infrastructure/payments"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the dependency graph and starts the server. Fatal only on
// startup failures; optional infrastructure (broker, cache, gateway)
// degrades with a warning.
func Run() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	router := gin.Default()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(router, cfg, log)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}

func registerRoutes(router *gin.Engine, cfg config.Config, log *zap.Logger) {
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		log.Fatal("failed to create dynamodb client", zap.Error(err))
	}

	leadRepo := repository.NewLeadDynamoRepository(ddb)
	visitRepo := repository.NewSiteVisitDynamoRepository(ddb)
	callRepo := repository.NewCallLogDynamoRepository(ddb)
	dealRepo := repository.NewDealDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	propertyRepo := repository.NewPropertyDynamoRepository(ddb)
	campaignRepo := repository.NewCampaignDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	activityRepo := repository.NewActivityLogDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	var publisher interfaces.IEventPublisher
	mqPublisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Warn("event publisher not configured", zap.Error(err))
	} else {
		publisher = mqPublisher
	}

	reportCache := cache.NewRedisCache(cfg.Redis)
	if err := reportCache.Ping(context.Background()); err != nil {
		log.Warn("report cache unreachable, reports will recompute on every request", zap.Error(err))
	}

	leadUseCase := usecase.NewLeadUseCase(leadRepo, visitRepo, callRepo, dealRepo, activityRepo)
	visitUseCase := usecase.NewSiteVisitUseCase(visitRepo, leadRepo)
	callUseCase := usecase.NewCallLogUseCase(callRepo, leadRepo)
	dealUseCase := usecase.NewDealUseCase(dealRepo, leadRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, dealRepo, paymentGateway, log)
	inventoryUseCase := usecase.NewInventoryUseCase(projectRepo, propertyRepo)
	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo, publisher, log)
	reportUseCase := usecase.NewReportUseCase(leadRepo, visitRepo, dealRepo, campaignRepo, reportCache, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWT.Secret)
	activityUseCase := usecase.NewActivityLogUseCase(activityRepo)

	h := crmHandlers{
		auth:      handlers.NewAuthHandler(authUseCase),
		lead:      handlers.NewLeadHandler(leadUseCase),
		visit:     handlers.NewSiteVisitHandler(visitUseCase),
		call:      handlers.NewCallLogHandler(callUseCase),
		deal:      handlers.NewDealHandler(dealUseCase),
		payment:   handlers.NewPaymentHandler(paymentUseCase, log),
		inventory: handlers.NewInventoryHandler(inventoryUseCase),
		campaign:  handlers.NewCampaignHandler(campaignUseCase),
		report:    handlers.NewReportHandler(reportUseCase),
		activity:  handlers.NewActivityLogHandler(activityUseCase),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, cfg.JWT.Secret, h)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
