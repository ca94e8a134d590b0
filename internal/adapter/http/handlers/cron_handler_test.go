package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"paguezap/internal/adapter/http/handlers/mocks"
	"paguezap/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCronHandler_ProcessCharges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IChargeLifecycleUseCase, secret string) *gin.Engine {
		h := NewCronHandler(uc, secret, nil)
		r := gin.New()
		r.GET("/v1/cron/process-charges", h.ProcessCharges)
		r.POST("/v1/cron/process-charges", h.ProcessCharges)
		return r
	}

	t.Run("unauthorized", func(t *testing.T) {
		cases := []struct {
			name    string
			target  string
			headers map[string]string
		}{
			{name: "no credentials", target: "/v1/cron/process-charges"},
			{name: "wrong bearer", target: "/v1/cron/process-charges", headers: map[string]string{"Authorization": "Bearer nope"}},
			{name: "wrong key", target: "/v1/cron/process-charges?key=nope"},
			{name: "basic auth", target: "/v1/cron/process-charges", headers: map[string]string{"Authorization": "Basic s3cret"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)

				w := serve(newRouter(uc, "s3cret"), http.MethodPost, tc.target, "", tc.headers)
				if w.Code != http.StatusUnauthorized {
					t.Fatalf("expected 401, got %d", w.Code)
				}
			})
		}
	})

	t.Run("empty secret rejects everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)

		w := serve(newRouter(uc, ""), http.MethodGet, "/v1/cron/process-charges?key=", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		uc.EXPECT().ProcessScheduledCharges(gomock.Any()).Return([]usecase.BatchItemResult{
			{ChargeID: "a", Success: true, MessageID: "wamid.a"},
			{ChargeID: "b", Error: "charge not found"},
		}, nil)

		w := serve(newRouter(uc, "s3cret"), http.MethodPost, "/v1/cron/process-charges", "", map[string]string{"Authorization": "Bearer s3cret"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Message string                    `json:"message"`
			Results []usecase.BatchItemResult `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Message != "Processed 2 charges" || len(body.Results) != 2 || body.Results[1].Error != "charge not found" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		uc.EXPECT().ProcessScheduledCharges(gomock.Any()).Return(nil, nil)

		w := serve(newRouter(uc, "s3cret"), http.MethodGet, "/v1/cron/process-charges?key=s3cret", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("batch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeLifecycleUseCase(ctrl)
		uc.EXPECT().ProcessScheduledCharges(gomock.Any()).Return(nil, errors.New("db"))

		w := serve(newRouter(uc, "s3cret"), http.MethodGet, "/v1/cron/process-charges?key=s3cret", "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
