package routes

import (
	"log"
	"strconv"

	_ "micsa_os/docs" // This will be auto-generated
	"micsa_os/internal/adapter/http/handlers"
	repository2 "micsa_os/internal/adapter/persistence/repository"
	"micsa_os/internal/domain/pricing"
	"micsa_os/internal/infrastructure/database"
	"micsa_os/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	signatureRepo := repository2.NewSignatureDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	rates := pricing.RatesFromEnv()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogRepo, rates)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteRepo)
	signatureUseCase := usecase.NewSignatureUseCase(signatureRepo, projectRepo)
	complianceUseCase := usecase.NewComplianceUseCase()
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	signatureHandler := handlers.NewSignatureHandler(signatureUseCase)
	complianceHandler := handlers.NewComplianceHandler(complianceUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, projectHandler, signatureHandler, complianceHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
