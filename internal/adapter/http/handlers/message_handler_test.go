package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcamento_bot/internal/adapter/chat"
	"orcamento_bot/internal/adapter/http/handlers/mocks"
	"orcamento_bot/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMessageHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *MessageHandler, body string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/v1/messages", h.Receive)
		req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIMessageDispatcher(ctrl)

		w := post(NewMessageHandler(d), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIMessageDispatcher(ctrl)

		w := post(NewMessageHandler(d), `{"chat_id":"5511","text":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("queue full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIMessageDispatcher(ctrl)
		d.EXPECT().Dispatch(gomock.Any()).Return(chat.ErrChatQueueFull)

		w := post(NewMessageHandler(d), `{"chat_id":"5511","text":"oi"}`)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("shutting down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIMessageDispatcher(ctrl)
		d.EXPECT().Dispatch(gomock.Any()).Return(chat.ErrDispatcherClosed)

		w := post(NewMessageHandler(d), `{"chat_id":"5511","text":"oi"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIMessageDispatcher(ctrl)
		d.EXPECT().Dispatch(gomock.Any()).Return(errors.New("boom"))

		w := post(NewMessageHandler(d), `{"chat_id":"5511","text":"oi"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIMessageDispatcher(ctrl)
		d.EXPECT().Dispatch(gomock.Any()).DoAndReturn(func(msg entities.InboundMessage) error {
			if msg.ChatID != "5511" || msg.SenderID != "5511" || msg.Text != "quero 3 milho" || msg.ReceivedAt.IsZero() {
				t.Fatalf("unexpected message: %+v", msg)
			}
			return nil
		})

		w := post(NewMessageHandler(d), `{"chat_id":"5511","sender_id":"5511","text":" quero 3 milho "}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body["chat_id"] != "5511" || body["status"] != "queued" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
