package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"micsa_os/internal/adapter/http/handlers/mocks"
	"micsa_os/internal/domain/entities"
)

func TestComplianceHandler_StartCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplianceUseCase(ctrl)
		h := NewComplianceHandler(uc)

		r := gin.New()
		r.POST("/v1/compliance/start-check", h.StartCheck)

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/start-check", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blocked with actions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplianceUseCase(ctrl)
		h := NewComplianceHandler(uc)

		r := gin.New()
		r.POST("/v1/compliance/start-check", h.StartCheck)

		uc.EXPECT().StartCheck(gomock.Any()).DoAndReturn(func(in entities.ComplianceInput) entities.ComplianceResult {
			if !in.MedicalOk || in.DC3Ok {
				t.Fatalf("payload not bound as expected: %+v", in)
			}
			return entities.ComplianceResult{
				StartAllowed: false,
				MissingItems: []string{"DC3 per position"},
				Actions:      []entities.ComplianceAction{{Item: "DC3 per position", Action: "Issue DC3 certificates for every position on site"}},
			}
		})

		payload := `{"medical_ok":true,"doping_ok":true,"dc3_ok":false,"epp_ok":true,"induction_ok":true,"iso_docs_ok":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/start-check", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			StartAllowed bool     `json:"start_allowed"`
			MissingItems []string `json:"missing_items"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.StartAllowed || len(body.MissingItems) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplianceUseCase(ctrl)
		h := NewComplianceHandler(uc)

		r := gin.New()
		r.POST("/v1/compliance/start-check", h.StartCheck)

		uc.EXPECT().StartCheck(gomock.Any()).Return(entities.ComplianceResult{
			StartAllowed: true,
			MissingItems: []string{},
			Actions:      []entities.ComplianceAction{},
		})

		payload := `{"medical_ok":true,"doping_ok":true,"dc3_ok":true,"epp_ok":true,"induction_ok":true,"iso_docs_ok":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/start-check", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"start_allowed":true`)) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
