package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"villa_pricing/internal/adapter/http/handlers/mocks"
	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase"
)

func newOverrideRouter(t *testing.T) (*gin.Engine, *mocks.MockIOverrideUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOverrideUseCase(ctrl)
	h := NewOverrideHandler(uc)

	r := gin.New()
	r.GET("/v1/rooms/:room_id/override", h.GetOverride)
	r.PUT("/v1/rooms/:room_id/override", h.SetOverride)
	r.DELETE("/v1/rooms/:room_id/override", h.ClearOverride)
	return r, uc
}

func TestOverrideHandler_SetOverride(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newOverrideRouter(t)
		w := doRequest(r, http.MethodPut, "/v1/rooms/knp/override", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().SetOverride(gomock.Any(), "knp", -5.0).Return(entities.PriceOverride{}, usecase.ErrInvalidInput)

		w := doRequest(r, http.MethodPut, "/v1/rooms/knp/override", `{"custom_price":-5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of bounds carries the maximum", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().SetOverride(gomock.Any(), "r300", 286.0).
			Return(entities.PriceOverride{}, &usecase.OutOfBoundsError{RoomID: "r300", CustomPrice: 286, MaxAllowed: 285})

		w := doRequest(r, http.MethodPut, "/v1/rooms/r300/override", `{"custom_price":286}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "OVERRIDE_OUT_OF_BOUNDS" || body.Details["max_allowed_price"] != 285.0 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("room without reference rate", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().SetOverride(gomock.Any(), "z", 10.0).Return(entities.PriceOverride{}, usecase.ErrInvalidReferenceRate)

		w := doRequest(r, http.MethodPut, "/v1/rooms/z/override", `{"custom_price":10}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "INVALID_REFERENCE_RATE" {
			t.Fatalf("expected INVALID_REFERENCE_RATE, got %q", body.Code)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().SetOverride(gomock.Any(), "nope", 100.0).Return(entities.PriceOverride{}, usecase.ErrRoomNotFound)

		w := doRequest(r, http.MethodPut, "/v1/rooms/nope/override", `{"custom_price":100}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		setAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().SetOverride(gomock.Any(), "knp6", 200.0).
			Return(entities.PriceOverride{ID: "o1", RoomID: "knp6", CustomPrice: 200, AutoPrice: 200, SetAt: setAt}, nil)

		w := doRequest(r, http.MethodPut, "/v1/rooms/knp6/override", `{"custom_price":200}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["room_id"] != "knp6" || body["custom_price"] != 200.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("lock failure is internal", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().SetOverride(gomock.Any(), "knp", 300.0).Return(entities.PriceOverride{}, errors.New("acquire overrides lock: redis"))

		w := doRequest(r, http.MethodPut, "/v1/rooms/knp/override", `{"custom_price":300}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOverrideHandler_GetOverride(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().GetOverride(gomock.Any(), "knp").Return(entities.PriceOverride{}, false, nil)

		w := doRequest(r, http.MethodGet, "/v1/rooms/knp/override", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().GetOverride(gomock.Any(), "knp").Return(entities.PriceOverride{ID: "o1", RoomID: "knp", CustomPrice: 350}, true, nil)

		w := doRequest(r, http.MethodGet, "/v1/rooms/knp/override", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOverrideHandler_ClearOverride(t *testing.T) {
	t.Run("cleared", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().ClearOverride(gomock.Any(), "knp").Return(true, nil)

		w := doRequest(r, http.MethodDelete, "/v1/rooms/knp/override", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"cleared":true`) {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("nothing to clear", func(t *testing.T) {
		r, uc := newOverrideRouter(t)
		uc.EXPECT().ClearOverride(gomock.Any(), "knp").Return(false, nil)

		w := doRequest(r, http.MethodDelete, "/v1/rooms/knp/override", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"cleared":false`) {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}
