package handlers

import (
	"errors"
	"net/http"

	request "micsa_os/internal/adapter/http/dto/request"
	response "micsa_os/internal/adapter/http/dto/response"
	"micsa_os/internal/usecase"
	"micsa_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler maintains the EPP reference catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) UpsertCatalog(c *gin.Context) {
	var payload request.CatalogUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	count, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntities())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CatalogUpsertResponse{Count: count})
}

func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCatalogUpsert), errors.Is(err, usecase.ErrInvalidCatalogItem):
		return pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
