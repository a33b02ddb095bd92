package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orcamento_bot/internal/adapter/http/handlers"
	"orcamento_bot/internal/adapter/http/handlers/mocks"
	"orcamento_bot/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handoff := mocks.NewMockIHandoffUseCase(ctrl)
	handoff.EXPECT().List(gomock.Any()).Return([]string{"1"}, nil).AnyTimes()

	router := NewRouter(Handlers{
		Handoff: handlers.NewHandoffHandler(handoff),
	}, Options{AdminToken: "s3cret", Metrics: metrics.NewRegistry().Handler()})

	do := func(method, path, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("ping is public", func(t *testing.T) {
		if w := do(http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("admin routes need the token", func(t *testing.T) {
		if w := do(http.MethodGet, "/v1/handoffs", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w := do(http.MethodGet, "/v1/handoffs", "Bearer wrong"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w := do(http.MethodGet, "/v1/handoffs", "Bearer s3cret"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("webhook is not mounted without a handler", func(t *testing.T) {
		if w := do(http.MethodPost, "/v1/messages", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := do(http.MethodGet, "/metrics", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "orcamento_bot_") {
			t.Fatalf("expected metrics output, got %d", w.Code)
		}
	})
}

func TestNewServer(t *testing.T) {
	srv := NewServer(":9999", http.NotFoundHandler())
	if srv.Addr != ":9999" || srv.ReadHeaderTimeout == 0 {
		t.Fatalf("unexpected server: %+v", srv)
	}
}
