package routes

import (
	"micsa_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathProjects   = "/projects"
	PathSignatures = "/signatures"
	PathCompliance = "/compliance"
	PathCatalog    = "/catalog"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	projectHandler *handlers.ProjectHandler,
	signatureHandler *handlers.SignatureHandler,
	complianceHandler *handlers.ComplianceHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.ComputeQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/printable", quoteHandler.GetQuotePrintable)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.PromoteProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/close", projectHandler.CloseProject)

		projects.POST("/:id/signatures", signatureHandler.CreateSignatureRequest)
		projects.GET("/:id/signatures", signatureHandler.ListProjectSignatures)
	}

	signatures := rg.Group(PathSignatures)
	{
		signatures.PATCH("/:id/sign", signatureHandler.Sign)
	}

	compliance := rg.Group(PathCompliance)
	{
		compliance.POST("/start-check", complianceHandler.StartCheck)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.PUT("/epp", catalogHandler.UpsertCatalog)
		catalog.GET("/epp", catalogHandler.ListCatalog)
	}
}
