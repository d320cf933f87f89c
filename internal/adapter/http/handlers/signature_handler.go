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

var errInvalidSignaturePayload = pkg.NewDomainErrorSimple("INVALID_SIGNATURE_INPUT", "Invalid signature payload", http.StatusBadRequest)

// SignatureHandler handles HTTP requests for the signature sub-flow.

type SignatureHandler struct {
	usecase usecase.ISignatureUseCase
}

func NewSignatureHandler(uc usecase.ISignatureUseCase) *SignatureHandler {
	return &SignatureHandler{usecase: uc}
}

// CreateSignatureRequest opens a PENDING request and returns the plaintext
// bearer token exactly once.
func (h *SignatureHandler) CreateSignatureRequest(c *gin.Context) {
	var payload request.SignatureCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	created, token, err := h.usecase.Request(c.Request.Context(), c.Param("id"), payload.SignerName, payload.SignerRole)
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSignatureCreated(created, token))
}

func (h *SignatureHandler) ListProjectSignatures(c *gin.Context) {
	items, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSignatures(items))
}

// Sign validates the presented token and flips the request to SIGNED. A
// repeat call with the same valid token is refused, not silently accepted.
func (h *SignatureHandler) Sign(c *gin.Context) {
	var payload request.SignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	signed, err := h.usecase.Sign(c.Request.Context(), c.Param("id"), payload.Token, payload.SignatureBase64)
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSigned(signed))
}

func mapSignatureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidSignatureID),
		errors.Is(err, usecase.ErrInvalidSignerName),
		errors.Is(err, usecase.ErrInvalidSignerRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSignatureNotFound):
		return pkg.NewDomainErrorSimple("SIGNATURE_NOT_FOUND", "Signature request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotActive):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_ACTIVE", "Project is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignatureAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "Signature request already signed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid signature token", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
