package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"micsa_os/internal/adapter/http/handlers/mocks"
	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase"
)

func TestCatalogHandler_UpsertCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/catalog/epp", h.UpsertCatalog)

		req := httptest.NewRequest(http.MethodPut, "/v1/catalog/epp", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/catalog/epp", h.UpsertCatalog)

		req := httptest.NewRequest(http.MethodPut, "/v1/catalog/epp", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad unit rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/catalog/epp", h.UpsertCatalog)

		payload := `{"items":[{"sku":"EPP-CASCO","name":"Casco","unit":"box","unit_price_with_tax":180}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/catalog/epp", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/catalog/epp", h.UpsertCatalog)

		uc.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(0, usecase.ErrInvalidCatalogItem)

		payload := `{"items":[{"sku":"EPP-CASCO","name":"Casco","unit":"piece","unit_price_with_tax":180}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/catalog/epp", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/catalog/epp", h.UpsertCatalog)

		uc.EXPECT().Upsert(gomock.Any(), gomock.Len(2)).Return(2, nil)

		payload := `{"items":[
			{"sku":"EPP-CASCO","name":"Casco","unit":"piece","unit_price_with_tax":180},
			{"sku":"EPP-BOTAS","name":"Botas","unit":"pair","unit_price_with_tax":650}
		]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/catalog/epp", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["count"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_ListCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/epp", h.ListCatalog)

		uc.EXPECT().List(gomock.Any()).Return([]entities.EppCatalogItem{
			{SKU: "EPP-CASCO", Name: "Casco", Unit: entities.EppUnitPiece, UnitPriceWithTax: decimal.NewFromInt(180)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/epp", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("EPP-CASCO")) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/epp", h.ListCatalog)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/epp", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
