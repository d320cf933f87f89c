package handlers

import (
	"net/http"

	request "micsa_os/internal/adapter/http/dto/request"
	response "micsa_os/internal/adapter/http/dto/response"
	"micsa_os/internal/usecase"
	"micsa_os/pkg"

	"github.com/gin-gonic/gin"
)

// ComplianceHandler handles the advisory start-check endpoint.

type ComplianceHandler struct {
	usecase usecase.IComplianceUseCase
}

func NewComplianceHandler(uc usecase.IComplianceUseCase) *ComplianceHandler {
	return &ComplianceHandler{usecase: uc}
}

func (h *ComplianceHandler) StartCheck(c *gin.Context) {
	var payload request.ComplianceCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_COMPLIANCE_INPUT", "Invalid compliance payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result := h.usecase.StartCheck(payload.ToEntity())
	c.JSON(http.StatusOK, response.FromComplianceResult(result))
}
