package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"micsa_os/internal/adapter/http/handlers/mocks"
	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase"
)

func TestSignatureHandler_CreateSignatureRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/signatures", h.CreateSignatureRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/signatures", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("project not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/signatures", h.CreateSignatureRequest)

		uc.EXPECT().Request(gomock.Any(), "p-1", "Ana", "supervisor").Return(entities.SignatureRequest{}, "", usecase.ErrProjectNotActive)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/signatures", bytes.NewBufferString(`{"signer_name":"Ana","signer_role":"supervisor"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the plaintext token once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/signatures", h.CreateSignatureRequest)

		created := entities.SignatureRequest{
			ID:         "s-1",
			ProjectID:  "p-1",
			SignerName: "Ana",
			SignerRole: "supervisor",
			Status:     entities.SignatureStatusPending,
			TokenHash:  "deadbeef",
		}
		uc.EXPECT().Request(gomock.Any(), "p-1", "Ana", "supervisor").Return(created, "the-plaintext-token", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/signatures", bytes.NewBufferString(`{"signer_name":"Ana","signer_role":"supervisor"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["signature_request_id"] != "s-1" || body["token"] != "the-plaintext-token" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if bytes.Contains(w.Body.Bytes(), []byte("deadbeef")) {
			t.Fatalf("token hash leaked: %s", w.Body.String())
		}
	})
}

func TestSignatureHandler_ListProjectSignatures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISignatureUseCase(ctrl)
	h := NewSignatureHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id/signatures", h.ListProjectSignatures)

	uc.EXPECT().ListByProject(gomock.Any(), "p-1").Return([]entities.SignatureRequest{
		{ID: "s-1", SignerName: "Ana", Status: entities.SignatureStatusPending, TokenHash: "deadbeef"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/signatures", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("deadbeef")) || bytes.Contains(w.Body.Bytes(), []byte("token")) {
		t.Fatalf("listing must not expose token material: %s", w.Body.String())
	}
}

func TestSignatureHandler_Sign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		r := gin.New()
		r.PATCH("/v1/signatures/:id/sign", h.Sign)

		req := httptest.NewRequest(http.MethodPatch, "/v1/signatures/s-1/sign", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		r := gin.New()
		r.PATCH("/v1/signatures/:id/sign", h.Sign)

		uc.EXPECT().Sign(gomock.Any(), "s-1", "wrong", "").Return(entities.SignatureRequest{}, usecase.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodPatch, "/v1/signatures/s-1/sign", bytes.NewBufferString(`{"token":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("already signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		r := gin.New()
		r.PATCH("/v1/signatures/:id/sign", h.Sign)

		uc.EXPECT().Sign(gomock.Any(), "s-1", "tok", "").Return(entities.SignatureRequest{}, usecase.ErrSignatureAlreadySigned)

		req := httptest.NewRequest(http.MethodPatch, "/v1/signatures/s-1/sign", bytes.NewBufferString(`{"token":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		r := gin.New()
		r.PATCH("/v1/signatures/:id/sign", h.Sign)

		uc.EXPECT().Sign(gomock.Any(), "s-1", "tok", "aW1n").Return(entities.SignatureRequest{
			ID:     "s-1",
			Status: entities.SignatureStatusSigned,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/signatures/s-1/sign", bytes.NewBufferString(`{"token":"tok","signature_base64":"aW1n"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "SIGNED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapSignatureError(t *testing.T) {
	if got := mapSignatureError(usecase.ErrInvalidSignerName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSignatureError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSignatureError(usecase.ErrSignatureNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSignatureError(usecase.ErrProjectNotActive); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSignatureError(usecase.ErrSignatureAlreadySigned); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSignatureError(usecase.ErrInvalidToken); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapSignatureError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
