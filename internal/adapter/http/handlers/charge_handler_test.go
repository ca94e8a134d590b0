package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paguezap/internal/adapter/http/handlers/mocks"
	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChargeHandler_SendCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IChargeLifecycleUseCase) *gin.Engine {
		h := NewChargeHandler(uc, nil)
		r := gin.New()
		r.POST("/v1/charges/:charge_id/send", h.SendCharge)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		uc.EXPECT().SendCharge(gomock.Any(), "charge-1").Return(usecase.SendChargeResult{Success: true, MessageID: "wamid.1"}, nil)

		w := serve(newRouter(uc), http.MethodPost, "/v1/charges/charge-1/send", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["messageId"] != "wamid.1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delivery failure carries details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		uc.EXPECT().SendCharge(gomock.Any(), "charge-1").Return(usecase.SendChargeResult{
			Error:   usecase.ErrDeliveryFailed.Error(),
			Details: json.RawMessage(`{"error":{"code":131030}}`),
		}, usecase.ErrDeliveryFailed)

		w := serve(newRouter(uc), http.MethodPost, "/v1/charges/charge-1/send", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != usecase.ErrDeliveryFailed.Error() || body["details"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("precondition errors are 400", func(t *testing.T) {
		for _, err := range []error{usecase.ErrMessagingNotConfigured, usecase.ErrPixNotConfigured, usecase.ErrInvalidPixKey, usecase.ErrChargeAlreadyPaid, usecase.ErrChargeCancelled, usecase.ErrChargeAlreadySent} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
			uc.EXPECT().SendCharge(gomock.Any(), "charge-1").Return(usecase.SendChargeResult{Error: err.Error()}, err)

			w := serve(newRouter(uc), http.MethodPost, "/v1/charges/charge-1/send", "", nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %v, got %d", err, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{err: usecase.ErrChargeNotFound, code: http.StatusNotFound},
			{err: usecase.ErrTenantNotFound, code: http.StatusNotFound},
			{err: usecase.ErrSendInProgress, code: http.StatusConflict},
			{err: errors.New("db"), code: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
			uc.EXPECT().SendCharge(gomock.Any(), "charge-1").Return(usecase.SendChargeResult{}, tc.err)

			w := serve(newRouter(uc), http.MethodPost, "/v1/charges/charge-1/send", "", nil)
			if w.Code != tc.code {
				t.Fatalf("expected %d for %v, got %d", tc.code, tc.err, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestChargeHandler_CancelCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IChargeLifecycleUseCase) *gin.Engine {
		h := NewChargeHandler(uc, nil)
		r := gin.New()
		r.POST("/v1/charges/:charge_id/cancel", h.CancelCharge)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		now := time.Now().UTC()
		uc.EXPECT().CancelCharge(gomock.Any(), "charge-1").Return(entities.Charge{
			ID:          "charge-1",
			Amount:      decimal.NewFromInt(10),
			Status:      entities.ChargeStatusCancelled,
			CancelledAt: &now,
		}, nil)

		w := serve(newRouter(uc), http.MethodPost, "/v1/charges/charge-1/cancel", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "CANCELLED" || body["amount"] != "10.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("paid conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		uc.EXPECT().CancelCharge(gomock.Any(), "charge-1").Return(entities.Charge{}, usecase.ErrChargeAlreadyPaid)

		w := serve(newRouter(uc), http.MethodPost, "/v1/charges/charge-1/cancel", "", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CHARGE_ALREADY_PAID" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		uc.EXPECT().CancelCharge(gomock.Any(), "charge-1").Return(entities.Charge{}, usecase.ErrChargeNotFound)

		w := serve(newRouter(uc), http.MethodPost, "/v1/charges/charge-1/cancel", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
